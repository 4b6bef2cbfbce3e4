package problem_test

import (
	"errors"
	"testing"
	"time"

	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/job"
	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/kernel"
	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/problem"
	"github.com/KimJinHyeon0/vroom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createFactory(t *testing.T) job.Factory {
	t.Helper()
	f, err := job.NewFactory(kernel.DefaultDurationScale(), kernel.DefaultPriorityRange())
	require.NoError(t, err)
	return f
}

func createJob(t *testing.T, f job.Factory, id uint64, net kernel.Amount) *job.Job {
	t.Helper()
	j, err := f.NewFromNetAmount(job.Attributes{
		ID:          id,
		Location:    kernel.NewLocationFromIndex(uint(id)),
		TimeWindows: []kernel.TimeWindow{kernel.DefaultTimeWindow()},
	}, net)
	require.NoError(t, err)
	return j
}

func createProblem(t *testing.T, amountSize int) *problem.Problem {
	t.Helper()
	p, err := problem.NewProblem(kernel.NewUUID(), amountSize, createFactory(t), time.Now())
	require.NoError(t, err)
	return p
}

func TestNewProblem(t *testing.T) {
	t.Run("should create empty problem", func(t *testing.T) {
		id := kernel.NewUUID()
		createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.FixedZone("UTC+3", 3*3600))

		p, err := problem.NewProblem(id, 2, createFactory(t), createdAt)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, 2, p.AmountSize())
		assert.Empty(t, p.Jobs())
		assert.Equal(t, time.UTC, p.CreatedAt().Location())
		assert.True(t, p.CreatedAt().Equal(createdAt))
	})

	t.Run("should join every invalid argument", func(t *testing.T) {
		p, err := problem.NewProblem(kernel.UUID{}, -1, job.Factory{}, time.Time{})

		require.Error(t, err)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.ErrorIs(t, err, job.ErrFactoryIsNotConstructed)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestProblem_Validate(t *testing.T) {
	var nilProblem *problem.Problem
	assert.ErrorIs(t, nilProblem.Validate(), problem.ErrProblemIsNotConstructed)
	assert.ErrorIs(t, (&problem.Problem{}).Validate(), problem.ErrProblemIsNotConstructed)
}

func TestProblem_AddJob(t *testing.T) {
	t.Run("should keep insertion order", func(t *testing.T) {
		p := createProblem(t, 2)
		f := p.Factory()

		require.NoError(t, p.AddJob(createJob(t, f, 7, kernel.Amount{1, -1})))
		require.NoError(t, p.AddJob(createJob(t, f, 3, kernel.Amount{0, 2})))

		jobs := p.Jobs()
		require.Len(t, jobs, 2)
		assert.Equal(t, uint64(7), jobs[0].ID())
		assert.Equal(t, uint64(3), jobs[1].ID())
	})

	t.Run("should reject duplicate id", func(t *testing.T) {
		p := createProblem(t, 1)
		require.NoError(t, p.AddJob(createJob(t, p.Factory(), 1, kernel.Amount{1})))

		err := p.AddJob(createJob(t, p.Factory(), 1, kernel.Amount{2}))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInput)
		assert.Contains(t, err.Error(), "duplicate id for job 1")
		assert.Len(t, p.Jobs(), 1)
	})

	t.Run("should reject mismatched amount size", func(t *testing.T) {
		p := createProblem(t, 2)

		err := p.AddJob(createJob(t, p.Factory(), 1, kernel.Amount{1, 2, 3}))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInput)
		assert.Contains(t, err.Error(), "inconsistent amount length for job 1")
		assert.Empty(t, p.Jobs())
	})

	t.Run("should reject unconstructed job", func(t *testing.T) {
		p := createProblem(t, 0)

		err := p.AddJob(&job.Job{})

		assert.ErrorIs(t, err, job.ErrJobIsNotConstructed)
	})

	t.Run("should not expose internal slice", func(t *testing.T) {
		p := createProblem(t, 1)
		require.NoError(t, p.AddJob(createJob(t, p.Factory(), 1, kernel.Amount{1})))

		jobs := p.Jobs()
		jobs[0] = nil

		assert.NotNil(t, p.Jobs()[0])
	})
}

func TestProblem_Job(t *testing.T) {
	p := createProblem(t, 1)
	require.NoError(t, p.AddJob(createJob(t, p.Factory(), 42, kernel.Amount{1})))

	j, err := p.Job(42)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), j.ID())

	_, err = p.Job(43)
	var notFound *errs.ObjectNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, uint64(43), notFound.ID)
}

func TestProblem_Totals(t *testing.T) {
	p := createProblem(t, 2)
	f := p.Factory()
	require.NoError(t, p.AddJob(createJob(t, f, 1, kernel.Amount{3, -2})))
	require.NoError(t, p.AddJob(createJob(t, f, 2, kernel.Amount{-1, 4})))

	assert.Equal(t, kernel.Amount{3, 4}, p.TotalDelivery())
	assert.Equal(t, kernel.Amount{1, 2}, p.TotalPickup())
}

func TestRestoreProblem(t *testing.T) {
	f := createFactory(t)
	id := kernel.NewUUID()
	jobs := []*job.Job{createJob(t, f, 1, kernel.Amount{1}), createJob(t, f, 2, kernel.Amount{-1})}

	t.Run("should restore jobs", func(t *testing.T) {
		p, err := problem.RestoreProblem(id, 1, f, time.Now(), jobs)

		require.NoError(t, err)
		assert.Len(t, p.Jobs(), 2)
		assert.True(t, p.IsEqual(p))
	})

	t.Run("should fail on duplicated rows", func(t *testing.T) {
		p, err := problem.RestoreProblem(id, 1, f, time.Now(), append(jobs, jobs[0]))

		assert.Nil(t, p)
		assert.ErrorIs(t, err, errs.ErrInput)
	})
}

func TestProblem_PendingJobs(t *testing.T) {
	f := createFactory(t)

	t.Run("new problem has every job pending", func(t *testing.T) {
		p := createProblem(t, 1)
		require.NoError(t, p.AddJob(createJob(t, f, 1, kernel.Amount{1})))
		require.NoError(t, p.AddJob(createJob(t, f, 2, kernel.Amount{2})))

		pending := p.PendingJobs()
		require.Len(t, pending, 2)
		assert.Equal(t, uint64(1), pending[0].ID())
	})

	t.Run("restored jobs are not pending", func(t *testing.T) {
		p, err := problem.RestoreProblem(kernel.NewUUID(), 1, f, time.Now(),
			[]*job.Job{createJob(t, f, 1, kernel.Amount{1})})
		require.NoError(t, err)
		assert.Empty(t, p.PendingJobs())

		require.NoError(t, p.AddJob(createJob(t, f, 5, kernel.Amount{1})))

		pending := p.PendingJobs()
		require.Len(t, pending, 1)
		assert.Equal(t, uint64(5), pending[0].ID())
	})

	t.Run("mark stored clears pending jobs", func(t *testing.T) {
		p := createProblem(t, 1)
		require.NoError(t, p.AddJob(createJob(t, f, 1, kernel.Amount{1})))

		p.MarkStored()

		assert.Empty(t, p.PendingJobs())
		assert.Len(t, p.Jobs(), 1)
	})
}
