package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/job"
	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/kernel"
	"github.com/KimJinHyeon0/vroom/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ListProblemJobsQueryHandler reads stored jobs with plain SQL. Rows are
// mapped straight to the read model without rebuilding domain jobs.
//
// Example:
//
//	handler := NewListProblemJobsQueryHandler(db)
//	jobs, err := handler.Handle(ctx, query)
type ListProblemJobsQueryHandler struct {
	db *gorm.DB
}

func NewListProblemJobsQueryHandler(db *gorm.DB) ListProblemJobsQueryHandler {
	return ListProblemJobsQueryHandler{db: db}
}

// Handle returns the jobs of the problem, or an ObjectNotFoundError when the
// problem does not exist. An existing problem without jobs yields an empty slice.
func (h ListProblemJobsQueryHandler) Handle(
	ctx context.Context,
	query ListProblemJobsQuery,
) ([]ListProblemJobsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	problemID := query.ProblemID()

	var factor int64
	err := h.db.WithContext(ctx).
		Raw(`SELECT duration_factor FROM problems WHERE id = ?`, problemID.Bytes()).
		Row().
		Scan(&factor)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("problem", problemID.String())
		}
		return nil, err
	}

	scale, err := kernel.NewDurationScale(factor)
	if err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			job_id,
			type,
			location_index,
			location_lon,
			location_lat,
			setup,
			service,
			delivery,
			pickup,
			skills,
			priority,
			tw_starts,
			tw_ends,
			description
		FROM problem_jobs
		WHERE problem_id = ?
		ORDER BY position
	`, problemID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]ListProblemJobsQueryResponse, 0)
	for rows.Next() {
		var (
			r                ListProblemJobsQueryResponse
			jobID            int64
			jobType          int16
			index            *int64
			lon, lat         *float64
			setup, service   int64
			delivery, pickup pq.Int64Array
			skills           pq.Int64Array
			starts, ends     pq.Int64Array
			priority         int
			description      sql.NullString
		)

		if err = rows.Scan(
			&jobID,
			&jobType,
			&index,
			&lon,
			&lat,
			&setup,
			&service,
			&delivery,
			&pickup,
			&skills,
			&priority,
			&starts,
			&ends,
			&description,
		); err != nil {
			return nil, err
		}

		r.ID = uint64(jobID) //nolint:gosec // stored bit-for-bit
		r.Type = job.Type(jobType).String()
		if r.Location, err = scanLocation(index, lon, lat); err != nil {
			return nil, err
		}
		r.Setup = toUser(scale, kernel.Duration(setup))
		r.Service = toUser(scale, kernel.Duration(service))
		r.Delivery = kernel.Amount(delivery).Clone()
		r.Pickup = kernel.Amount(pickup).Clone()
		r.Skills = make([]kernel.Skill, 0, len(skills))
		for _, s := range skills {
			r.Skills = append(r.Skills, kernel.Skill(s)) //nolint:gosec // stored from uint32
		}
		r.Priority = kernel.Priority(priority)
		r.TimeWindows = make([]TimeWindowView, 0, len(starts))
		for i := range min(len(starts), len(ends)) {
			r.TimeWindows = append(r.TimeWindows, TimeWindowView{
				Start: toUser(scale, kernel.Duration(starts[i])),
				End:   toUser(scale, kernel.Duration(ends[i])),
			})
		}
		r.Description = description.String

		jobs = append(jobs, r)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}

func scanLocation(index *int64, lon, lat *float64) (kernel.Location, error) {
	hasCoords := lon != nil && lat != nil
	switch {
	case index != nil && hasCoords:
		return kernel.NewLocation(uint(*index), *lon, *lat) //nolint:gosec // stored from uint
	case index != nil:
		return kernel.NewLocationFromIndex(uint(*index)), nil //nolint:gosec // stored from uint
	case hasCoords:
		return kernel.NewLocationFromCoordinates(*lon, *lat)
	default:
		return kernel.Location{}, errs.NewValueIsRequiredError("location")
	}
}
