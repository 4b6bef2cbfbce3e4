package problemrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/kernel"
	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/problem"
	"github.com/KimJinHyeon0/vroom/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProblemRepository implements ports.ProblemRepository using GORM.
type GormProblemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProblemRepository creates a new GORM problem repository.
func NewGormProblemRepository(db *gorm.DB, tracker aggregateTracker) *GormProblemRepository {
	return &GormProblemRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new problem and all of its jobs.
func (r *GormProblemRepository) Add(ctx context.Context, aggregate *problem.Problem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	aggregate.MarkStored()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update appends the aggregate's pending jobs. Stored jobs are immutable and
// never rewritten. The problem row is locked for the rest of the transaction,
// so positions are assigned after every earlier append. A pending job whose
// identifier is already stored fails with an input error.
func (r *GormProblemRepository) Update(ctx context.Context, aggregate *problem.Problem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	var row ProblemDTO
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		First(&row, "id = ?", aggregate.ID().Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("problem", aggregate.ID().String())
		}
		return err
	}

	var stored int64
	if err = db.Model(&JobDTO{}).Where("problem_id = ?", row.ID).Count(&stored).Error; err != nil {
		return err
	}

	for i, j := range aggregate.PendingJobs() {
		jobRow := jobFromDomain(row.ID, int(stored)+i, j)
		if err = db.Create(&jobRow).Error; err != nil {
			if errors.Is(r.translate(err), gorm.ErrDuplicatedKey) {
				return errs.NewInputErrorWithCause(fmt.Sprintf("duplicate id for job %d", j.ID()), err)
			}
			return err
		}
	}

	aggregate.MarkStored()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a problem by ID with its jobs in insertion order. Inside a
// transaction the problem row stays locked until commit or rollback.
func (r *GormProblemRepository) Get(ctx context.Context, id kernel.UUID) (*problem.Problem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	if inTransaction(db) {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto ProblemDTO
	err := db.
		Preload("Jobs", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("problem", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// DeleteCreatedBefore removes problems older than cutoff. Jobs go with them
// through the ON DELETE CASCADE constraint.
func (r *GormProblemRepository) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&ProblemDTO{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// translate maps driver errors such as unique violations to gorm's sentinels.
func (r *GormProblemRepository) translate(err error) error {
	if translator, ok := r.db.Dialector.(gorm.ErrorTranslator); ok {
		return translator.Translate(err)
	}
	return err
}

func inTransaction(db *gorm.DB) bool {
	_, ok := db.Statement.ConnPool.(gorm.TxCommitter)
	return ok
}
