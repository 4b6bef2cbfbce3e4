package problem

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/job"
	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/kernel"
	"github.com/KimJinHyeon0/vroom/internal/pkg/errs"
	"github.com/KimJinHyeon0/vroom/internal/pkg/guard"
)

var (
	// ErrProblemIsNotConstructed indicates that the Problem was not created through
	// NewProblem or RestoreProblem.
	ErrProblemIsNotConstructed = errors.New("Problem must be created via NewProblem constructor")
)

// Problem is the aggregate root grouping the jobs of one routing request.
//
// Example:
//
//	factory, _ := job.NewFactory(kernel.DefaultDurationScale(), kernel.DefaultPriorityRange())
//	p, err := problem.NewProblem(kernel.NewUUID(), 2, factory, time.Now())
//	if err != nil {
//	    return err
//	}
//	j, err := p.Factory().NewTyped(attrs, job.DeliveryOf(kernel.Amount{4, 0}))
//	if err != nil {
//	    return err
//	}
//	if err := p.AddJob(j); err != nil {
//	    return err
//	}
type Problem struct {
	id         kernel.UUID
	amountSize int
	factory    job.Factory
	createdAt  time.Time
	jobs       []*job.Job
	jobIndex   map[uint64]int
	storedJobs int

	guard guard.ConstructorGuard
}

// NewProblem creates an empty problem whose jobs carry amountSize capacity
// dimensions and are built by factory.
func NewProblem(id kernel.UUID, amountSize int, factory job.Factory, createdAt time.Time) (*Problem, error) {
	p := &Problem{
		jobIndex: make(map[uint64]int),
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setAmountSize(amountSize),
		p.setFactory(factory),
		p.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProblem reconstructs a Problem and its jobs from persistent storage.
// The restored jobs count as stored.
func RestoreProblem(
	id kernel.UUID,
	amountSize int,
	factory job.Factory,
	createdAt time.Time,
	jobs []*job.Job,
) (*Problem, error) {
	p, err := NewProblem(id, amountSize, factory, createdAt)
	if err != nil {
		return nil, err
	}

	for _, j := range jobs {
		if err = p.AddJob(j); err != nil {
			return nil, err
		}
	}
	p.MarkStored()

	return p, nil
}

func (p *Problem) Validate() error {
	if p == nil {
		return ErrProblemIsNotConstructed
	}
	return p.guard.Validate(ErrProblemIsNotConstructed)
}

// IsEqual compares problems by identity.
func (p *Problem) IsEqual(other *Problem) bool {
	return other != nil && p.id.IsEqual(other.id)
}

func (p *Problem) ID() kernel.UUID {
	return p.id
}

// AmountSize returns the number of capacity dimensions shared by all jobs.
func (p *Problem) AmountSize() int {
	return p.amountSize
}

// Factory returns the job factory configured for this problem.
func (p *Problem) Factory() job.Factory {
	return p.factory
}

func (p *Problem) CreatedAt() time.Time {
	return p.createdAt
}

// Jobs returns the jobs in insertion order.
func (p *Problem) Jobs() []*job.Job {
	return slices.Clone(p.jobs)
}

// Job looks a job up by its identifier.
func (p *Problem) Job(id uint64) (*job.Job, error) {
	i, ok := p.jobIndex[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("job", id)
	}
	return p.jobs[i], nil
}

// AddJob appends a validated job. Jobs with a foreign dimensionality or an
// identifier already present are rejected with an INPUT error.
func (p *Problem) AddJob(j *job.Job) error {
	if err := j.Validate(); err != nil {
		return err
	}

	if size := j.Delivery().Size(); size != p.amountSize {
		return errs.NewInputErrorWithCause(
			fmt.Sprintf("inconsistent amount length for job %d", j.ID()),
			fmt.Errorf("expected %d dimensions, got %d", p.amountSize, size),
		)
	}
	if _, exists := p.jobIndex[j.ID()]; exists {
		return errs.NewInputError("duplicate id for job %d", j.ID())
	}

	p.jobIndex[j.ID()] = len(p.jobs)
	p.jobs = append(p.jobs, j)
	return nil
}

// PendingJobs returns the jobs added since the problem was created, restored
// or last marked stored, in insertion order.
func (p *Problem) PendingJobs() []*job.Job {
	return slices.Clone(p.jobs[p.storedJobs:])
}

// MarkStored records that every job has been persisted.
func (p *Problem) MarkStored() {
	p.storedJobs = len(p.jobs)
}

// TotalDelivery sums the delivery vectors of all jobs.
func (p *Problem) TotalDelivery() kernel.Amount {
	return p.sum((*job.Job).Delivery)
}

// TotalPickup sums the pickup vectors of all jobs.
func (p *Problem) TotalPickup() kernel.Amount {
	return p.sum((*job.Job).Pickup)
}

func (p *Problem) sum(component func(*job.Job) kernel.Amount) kernel.Amount {
	total := kernel.NewAmount(p.amountSize)
	for _, j := range p.jobs {
		// AddJob guarantees matching sizes.
		total, _ = total.Add(component(j))
	}
	return total
}

func (p *Problem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Problem) setAmountSize(size int) error {
	if size < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount size", fmt.Errorf("%d is negative", size))
	}
	p.amountSize = size
	return nil
}

func (p *Problem) setFactory(factory job.Factory) error {
	if err := factory.Validate(); err != nil {
		return err
	}
	p.factory = factory
	return nil
}

func (p *Problem) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	p.createdAt = createdAt.UTC()
	return nil
}
