package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KimJinHyeon0/vroom/internal/core/application/usecases/queries"
	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/job"
	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/kernel"
	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/problem"
	"github.com/KimJinHyeon0/vroom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProblemReader struct {
	mock.Mock
}

func (m *MockProblemReader) Get(ctx context.Context, id kernel.UUID) (*problem.Problem, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*problem.Problem), args.Error(1)
}

// problemWithWindows stores one job (id 7) whose windows are given in user seconds.
func problemWithWindows(t *testing.T, windows ...[2]kernel.UserDuration) *problem.Problem {
	t.Helper()
	f, err := job.NewFactory(kernel.DefaultDurationScale(), kernel.DefaultPriorityRange())
	require.NoError(t, err)

	tws := make([]kernel.TimeWindow, 0, len(windows))
	for _, w := range windows {
		tw, twErr := kernel.NewUserTimeWindow(f.Scale(), w[0], w[1])
		require.NoError(t, twErr)
		tws = append(tws, tw)
	}

	j, err := f.NewFromNetAmount(job.Attributes{
		ID:          7,
		Location:    kernel.NewLocationFromIndex(0),
		TimeWindows: tws,
	}, kernel.Amount{})
	require.NoError(t, err)

	p, err := problem.NewProblem(kernel.NewUUID(), 0, f, time.Now())
	require.NoError(t, err)
	require.NoError(t, p.AddJob(j))
	return p
}

func TestNewCheckJobStartQuery(t *testing.T) {
	problemID := kernel.NewUUID()

	query, err := queries.NewCheckJobStartQuery(problemID, 7, 15)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.ProblemID().IsEqual(problemID))
	assert.Equal(t, uint64(7), query.JobID())
	assert.Equal(t, kernel.UserDuration(15), query.At())

	_, err = queries.NewCheckJobStartQuery(kernel.UUID{}, 7, 15)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	assert.ErrorIs(t, queries.CheckJobStartQuery{}.Validate(), queries.ErrCheckJobStartQueryIsNotConstructed)
}

func TestCheckJobStartQueryHandler_Handle(t *testing.T) {
	p := problemWithWindows(t, [2]kernel.UserDuration{0, 10}, [2]kernel.UserDuration{20, 30})

	testCases := []struct {
		name     string
		at       kernel.UserDuration
		expected bool
	}{
		{"window start", 0, true},
		{"inside first window", 5, true},
		{"first window end", 10, true},
		{"gap", 15, false},
		{"second window start", 20, true},
		{"second window end", 30, true},
		{"after last window", 31, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			reader := new(MockProblemReader)
			reader.On("Get", ctx, p.ID()).Return(p, nil).Once()

			query, err := queries.NewCheckJobStartQuery(p.ID(), 7, tc.at)
			require.NoError(t, err)

			resp, err := queries.NewCheckJobStartQueryHandler(reader).Handle(ctx, query)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, resp.Valid)
			assert.Equal(t, kernel.Duration(int64(tc.at)*kernel.DefaultDurationFactor), resp.Internal)
			reader.AssertExpectations(t)
		})
	}
}

func TestCheckJobStartQueryHandler_Handle_UnknownJob(t *testing.T) {
	ctx := t.Context()
	p := problemWithWindows(t, [2]kernel.UserDuration{0, 10})
	reader := new(MockProblemReader)
	reader.On("Get", ctx, p.ID()).Return(p, nil).Once()

	query, err := queries.NewCheckJobStartQuery(p.ID(), 8, 0)
	require.NoError(t, err)

	_, err = queries.NewCheckJobStartQueryHandler(reader).Handle(ctx, query)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCheckJobStartQueryHandler_Handle_ReaderError(t *testing.T) {
	ctx := t.Context()
	problemID := kernel.NewUUID()
	expectedError := errors.New("connection refused")
	reader := new(MockProblemReader)
	reader.On("Get", ctx, problemID).Return((*problem.Problem)(nil), expectedError).Once()

	query, err := queries.NewCheckJobStartQuery(problemID, 1, 0)
	require.NoError(t, err)

	_, err = queries.NewCheckJobStartQueryHandler(reader).Handle(ctx, query)

	assert.Equal(t, expectedError, err)
}

func TestCheckJobStartQueryHandler_Handle_InvalidQuery(t *testing.T) {
	reader := new(MockProblemReader)

	_, err := queries.NewCheckJobStartQueryHandler(reader).Handle(t.Context(), queries.CheckJobStartQuery{})

	require.ErrorIs(t, err, queries.ErrCheckJobStartQueryIsNotConstructed)
	reader.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}
