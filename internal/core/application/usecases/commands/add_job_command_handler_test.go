package commands_test

import (
	"testing"
	"time"

	"github.com/KimJinHyeon0/vroom/internal/core/application/usecases/commands"
	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/job"
	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/kernel"
	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/problem"
	"github.com/KimJinHyeon0/vroom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStoredProblem(t *testing.T, scale kernel.DurationScale) *problem.Problem {
	t.Helper()
	f, err := job.NewFactory(scale, kernel.DefaultPriorityRange())
	require.NoError(t, err)
	p, err := problem.NewProblem(kernel.NewUUID(), 1, f, time.Now())
	require.NoError(t, err)

	j, err := f.NewFromNetAmount(job.Attributes{
		ID:          1,
		Location:    kernel.NewLocationFromIndex(0),
		TimeWindows: []kernel.TimeWindow{kernel.DefaultTimeWindow()},
	}, kernel.Amount{1})
	require.NoError(t, err)
	require.NoError(t, p.AddJob(j))
	return p
}

func TestAddJobCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	scale, err := kernel.NewDurationScale(10)
	require.NoError(t, err)
	stored := newStoredProblem(t, scale)

	in := validJobInput(2, commands.PickupDemand(kernel.Amount{3}))
	in.TimeWindows = []commands.UserTimeWindow{{Start: 5, End: 8}}
	cmd, err := commands.NewAddJobCommand(stored.ID(), in)
	require.NoError(t, err)

	mockRepo := new(MockProblemRepository)
	mockUoW := new(MockProblemUoW)
	mockFactory := new(MockProblemUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ProblemRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
		mockRepo.On("Update", ctx, stored).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAddJobCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)

	added, err := stored.Job(2)
	require.NoError(t, err)
	assert.Equal(t, job.Pickup, added.Type())
	assert.Equal(t, kernel.Amount{0}, added.Delivery())
	// The stored problem's scale applies, not the default one.
	assert.Equal(t, kernel.Duration(30), added.TWLength())
	assert.Equal(t, kernel.Duration(3000), added.Service())
}

func TestAddJobCommandHandler_Handle_DuplicateJob(t *testing.T) {
	ctx := t.Context()
	stored := newStoredProblem(t, kernel.DefaultDurationScale())

	cmd, err := commands.NewAddJobCommand(stored.ID(), validJobInput(1, commands.NetDemand(kernel.Amount{2})))
	require.NoError(t, err)

	mockRepo := new(MockProblemRepository)
	mockUoW := new(MockProblemUoW)
	mockFactory := new(MockProblemUoWFactory)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("ProblemRepository").Return(mockRepo).Once()
	mockRepo.On("Get", ctx, stored.ID()).Return(stored, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewAddJobCommandHandler(mockFactory)

	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInput)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
	assert.Len(t, stored.Jobs(), 1)
}

func TestAddJobCommandHandler_Handle_ProblemNotFound(t *testing.T) {
	ctx := t.Context()
	problemID := kernel.NewUUID()
	cmd, err := commands.NewAddJobCommand(problemID, validJobInput(1, commands.NetDemand(kernel.Amount{1})))
	require.NoError(t, err)

	notFound := errs.NewObjectNotFoundError("problem", problemID.String())
	mockRepo := new(MockProblemRepository)
	mockUoW := new(MockProblemUoW)
	mockFactory := new(MockProblemUoWFactory)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("ProblemRepository").Return(mockRepo).Once()
	mockRepo.On("Get", ctx, problemID).Return((*problem.Problem)(nil), notFound).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewAddJobCommandHandler(mockFactory)

	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestAddJobCommandHandler_Handle_InvalidCommand(t *testing.T) {
	mockFactory := new(MockProblemUoWFactory)
	handler := commands.NewAddJobCommandHandler(mockFactory)

	err := handler.Handle(t.Context(), commands.AddJobCommand{})

	require.ErrorIs(t, err, commands.ErrAddJobCommandIsNotConstructed)
	mockFactory.AssertNotCalled(t, "Create")
}
