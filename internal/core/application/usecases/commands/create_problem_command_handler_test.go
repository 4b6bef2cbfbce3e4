package commands_test

import (
	"errors"
	"testing"

	"github.com/KimJinHyeon0/vroom/internal/core/application/usecases/commands"
	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/job"
	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/kernel"
	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/problem"
	"github.com/KimJinHyeon0/vroom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newJobFactory(t *testing.T) job.Factory {
	t.Helper()
	f, err := job.NewFactory(kernel.DefaultDurationScale(), kernel.DefaultPriorityRange())
	require.NoError(t, err)
	return f
}

func TestNewCreateProblemCommandHandler(t *testing.T) {
	handler := commands.NewCreateProblemCommandHandler(new(MockProblemUoWFactory), newJobFactory(t))

	assert.NotNil(t, handler)
}

func TestCreateProblemCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	single := validJobInput(1, commands.SingleDemand(kernel.Amount{2, 0}, kernel.Amount{0, 3}))
	single.TimeWindows = []commands.UserTimeWindow{{Start: 0, End: 10}, {Start: 20, End: 30}}
	net := validJobInput(2, commands.NetDemand(kernel.Amount{4, -5}))

	cmd, err := commands.NewCreateProblemCommand(2, []commands.JobInput{single, net})
	require.NoError(t, err)

	var stored *problem.Problem
	mockRepo := new(MockProblemRepository)
	mockUoW := new(MockProblemUoW)
	mockFactory := new(MockProblemUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ProblemRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*problem.Problem")).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*problem.Problem) }).
			Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateProblemCommandHandler(mockFactory, newJobFactory(t))

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)

	require.NotNil(t, stored)
	assert.True(t, stored.ID().IsEqual(cmd.ProblemID()))
	jobs := stored.Jobs()
	require.Len(t, jobs, 2)

	assert.Equal(t, job.Single, jobs[0].Type())
	assert.Equal(t, kernel.Duration(2000), jobs[0].TWLength())
	assert.Equal(t, kernel.Duration(30000), jobs[0].Service())

	assert.Equal(t, kernel.Amount{4, 0}, jobs[1].Delivery())
	assert.Equal(t, kernel.Amount{0, 5}, jobs[1].Pickup())
	tws := jobs[1].TimeWindows()
	require.Len(t, tws, 1)
	assert.True(t, tws[0].IsDefault())
}

func TestCreateProblemCommandHandler_Handle_InvalidCommand(t *testing.T) {
	ctx := t.Context()
	var invalidCmd commands.CreateProblemCommand

	mockFactory := new(MockProblemUoWFactory)
	handler := commands.NewCreateProblemCommandHandler(mockFactory, newJobFactory(t))

	err := handler.Handle(ctx, invalidCmd)

	require.ErrorIs(t, err, commands.ErrCreateProblemCommandIsNotConstructed)
	mockFactory.AssertNotCalled(t, "Create")
}

func TestCreateProblemCommandHandler_Handle_InvalidJobs(t *testing.T) {
	overlapping := validJobInput(1, commands.NetDemand(kernel.Amount{1}))
	overlapping.TimeWindows = []commands.UserTimeWindow{{Start: 0, End: 10}, {Start: 10, End: 20}}

	unsorted := validJobInput(1, commands.NetDemand(kernel.Amount{1}))
	unsorted.TimeWindows = []commands.UserTimeWindow{{Start: 20, End: 30}, {Start: 0, End: 10}}

	reversed := validJobInput(1, commands.NetDemand(kernel.Amount{1}))
	reversed.TimeWindows = []commands.UserTimeWindow{{Start: 30, End: 20}}

	highPriority := validJobInput(1, commands.NetDemand(kernel.Amount{1}))
	highPriority.Priority = 101

	testCases := []struct {
		name            string
		jobs            []commands.JobInput
		expectedMessage string
	}{
		{
			name:            "touching windows",
			jobs:            []commands.JobInput{overlapping},
			expectedMessage: "unsorted or overlapping time windows for job 1",
		},
		{
			name:            "unsorted windows",
			jobs:            []commands.JobInput{unsorted},
			expectedMessage: "unsorted or overlapping time windows for job 1",
		},
		{
			name: "reversed window",
			jobs: []commands.JobInput{reversed},
		},
		{
			name:            "priority above range",
			jobs:            []commands.JobInput{highPriority},
			expectedMessage: "invalid priority value for job 1",
		},
		{
			name: "duplicate ids",
			jobs: []commands.JobInput{
				validJobInput(1, commands.NetDemand(kernel.Amount{1})),
				validJobInput(1, commands.NetDemand(kernel.Amount{2})),
			},
			expectedMessage: "duplicate id for job 1",
		},
		{
			name:            "amount size mismatch",
			jobs:            []commands.JobInput{validJobInput(3, commands.DeliveryDemand(kernel.Amount{1, 2}))},
			expectedMessage: "inconsistent amount length for job 3",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := commands.NewCreateProblemCommand(1, tc.jobs)
			require.NoError(t, err)

			mockFactory := new(MockProblemUoWFactory)
			handler := commands.NewCreateProblemCommandHandler(mockFactory, newJobFactory(t))

			err = handler.Handle(t.Context(), cmd)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrInput)
			if tc.expectedMessage != "" {
				assert.Contains(t, err.Error(), tc.expectedMessage)
			}
			mockFactory.AssertNotCalled(t, "Create")
		})
	}
}

func TestCreateProblemCommandHandler_Handle_BeginTransactionError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateProblemCommand(0, nil)
	require.NoError(t, err)

	expectedError := errors.New("begin transaction failed")
	mockUoW := new(MockProblemUoW)
	mockFactory := new(MockProblemUoWFactory)

	mock.InOrder(
		mockFactory.On("Create").Return(mockUoW).Once(),
		mockUoW.On("Begin", ctx).Return(expectedError).Once(),
	)

	handler := commands.NewCreateProblemCommandHandler(mockFactory, newJobFactory(t))

	err = handler.Handle(ctx, cmd)

	assert.Equal(t, expectedError, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
}

func TestCreateProblemCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateProblemCommand(1, []commands.JobInput{
		validJobInput(1, commands.NetDemand(kernel.Amount{1})),
	})
	require.NoError(t, err)

	expectedError := errors.New("insert failed")
	mockRepo := new(MockProblemRepository)
	mockUoW := new(MockProblemUoW)
	mockFactory := new(MockProblemUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ProblemRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*problem.Problem")).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateProblemCommandHandler(mockFactory, newJobFactory(t))

	err = handler.Handle(ctx, cmd)

	assert.Equal(t, expectedError, err)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
}
