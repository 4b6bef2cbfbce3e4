// Package problemrepo persists problem aggregates and their jobs with GORM.
// Amount vectors, skills and time-window bounds are stored as Postgres
// bigint arrays; every job is rebuilt through job.RestoreJob on load.
package problemrepo

import (
	"fmt"
	"time"

	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/job"
	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/kernel"
	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/problem"
	"github.com/KimJinHyeon0/vroom/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ProblemDTO is the row of the problems table.
type ProblemDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	AmountSize     int       `gorm:"type:int;not null"`
	DurationFactor int64     `gorm:"type:bigint;not null"`
	PriorityMin    int       `gorm:"type:int;not null"`
	PriorityMax    int       `gorm:"type:int;not null"`
	CreatedAt      time.Time `gorm:"not null;index"`
	Jobs           []JobDTO  `gorm:"foreignKey:ProblemID;constraint:OnDelete:CASCADE"`
}

func (ProblemDTO) TableName() string {
	return "problems"
}

// JobDTO is the row of the problem_jobs table. Job identifiers are unique per
// problem, so (problem_id, job_id) is the primary key. uint64 identifiers are
// stored bit-for-bit in a signed bigint.
type JobDTO struct {
	ProblemID   uuid.UUID     `gorm:"type:uuid;primaryKey"`
	JobID       int64         `gorm:"type:bigint;primaryKey;autoIncrement:false"`
	Position    int           `gorm:"type:int;not null"`
	Type        int16         `gorm:"type:smallint;not null"`
	Location    LocationDTO   `gorm:"embedded;embeddedPrefix:location_"`
	Setup       int64         `gorm:"type:bigint;not null"`
	Service     int64         `gorm:"type:bigint;not null"`
	Delivery    pq.Int64Array `gorm:"type:bigint[];not null"`
	Pickup      pq.Int64Array `gorm:"type:bigint[];not null"`
	Skills      pq.Int64Array `gorm:"type:bigint[]"`
	Priority    int           `gorm:"type:int;not null"`
	TWStarts    pq.Int64Array `gorm:"column:tw_starts;type:bigint[];not null"`
	TWEnds      pq.Int64Array `gorm:"column:tw_ends;type:bigint[];not null"`
	Description string        `gorm:"type:text"`
}

func (JobDTO) TableName() string {
	return "problem_jobs"
}

// LocationDTO stores whichever parts of a location were supplied.
type LocationDTO struct {
	Index *int64   `gorm:"type:bigint"`
	Lon   *float64 `gorm:"type:double precision"`
	Lat   *float64 `gorm:"type:double precision"`
}

func fromDomain(aggregate *problem.Problem) ProblemDTO {
	problemID := aggregate.ID().Bytes()
	factory := aggregate.Factory()

	jobs := make([]JobDTO, 0, len(aggregate.Jobs()))
	for i, j := range aggregate.Jobs() {
		jobs = append(jobs, jobFromDomain(problemID, i, j))
	}

	return ProblemDTO{
		ID:             problemID,
		AmountSize:     aggregate.AmountSize(),
		DurationFactor: factory.Scale().Factor(),
		PriorityMin:    int(factory.Priorities().Min()),
		PriorityMax:    int(factory.Priorities().Max()),
		CreatedAt:      aggregate.CreatedAt(),
		Jobs:           jobs,
	}
}

func jobFromDomain(problemID uuid.UUID, position int, j *job.Job) JobDTO {
	tws := j.TimeWindows()
	starts := make(pq.Int64Array, 0, len(tws))
	ends := make(pq.Int64Array, 0, len(tws))
	for _, tw := range tws {
		starts = append(starts, int64(tw.Start()))
		ends = append(ends, int64(tw.End()))
	}

	skills := j.Skills().Slice()
	skillValues := make(pq.Int64Array, 0, len(skills))
	for _, s := range skills {
		skillValues = append(skillValues, int64(s))
	}

	return JobDTO{
		ProblemID:   problemID,
		JobID:       int64(j.ID()), //nolint:gosec // round-trips through uint64
		Position:    position,
		Type:        int16(j.Type()), //nolint:gosec // small enum
		Location:    locationFromDomain(j.Location()),
		Setup:       int64(j.Setup()),
		Service:     int64(j.Service()),
		Delivery:    pq.Int64Array(j.Delivery()),
		Pickup:      pq.Int64Array(j.Pickup()),
		Skills:      skillValues,
		Priority:    int(j.Priority()),
		TWStarts:    starts,
		TWEnds:      ends,
		Description: j.Description(),
	}
}

func locationFromDomain(location kernel.Location) LocationDTO {
	var dto LocationDTO
	if index, ok := location.Index(); ok {
		raw := int64(index) //nolint:gosec // matrix indices are small
		dto.Index = &raw
	}
	if coords, ok := location.Coordinates(); ok {
		lon, lat := coords.Lon, coords.Lat
		dto.Lon = &lon
		dto.Lat = &lat
	}
	return dto
}

// toDomain rebuilds the aggregate. Jobs are expected in position order.
func toDomain(dto ProblemDTO) (*problem.Problem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	scale, err := kernel.NewDurationScale(dto.DurationFactor)
	if err != nil {
		return nil, err
	}

	priorities, err := kernel.NewPriorityRange(kernel.Priority(dto.PriorityMin), kernel.Priority(dto.PriorityMax))
	if err != nil {
		return nil, err
	}

	factory, err := job.NewFactory(scale, priorities)
	if err != nil {
		return nil, err
	}

	jobs := make([]*job.Job, 0, len(dto.Jobs))
	for _, jobDTO := range dto.Jobs {
		j, jobErr := jobToDomain(jobDTO, priorities)
		if jobErr != nil {
			return nil, jobErr
		}
		jobs = append(jobs, j)
	}

	return problem.RestoreProblem(id, dto.AmountSize, factory, dto.CreatedAt, jobs)
}

func jobToDomain(dto JobDTO, priorities kernel.PriorityRange) (*job.Job, error) {
	id := uint64(dto.JobID) //nolint:gosec // round-trips through int64

	location, err := locationToDomain(dto.Location)
	if err != nil {
		return nil, fmt.Errorf("job %d: %w", id, err)
	}

	if len(dto.TWStarts) != len(dto.TWEnds) {
		return nil, errs.NewInternalError("job %d has %d window starts and %d window ends",
			id, len(dto.TWStarts), len(dto.TWEnds))
	}
	tws := make([]kernel.TimeWindow, 0, len(dto.TWStarts))
	for i := range dto.TWStarts {
		tw, twErr := kernel.NewTimeWindow(kernel.Duration(dto.TWStarts[i]), kernel.Duration(dto.TWEnds[i]))
		if twErr != nil {
			return nil, twErr
		}
		tws = append(tws, tw)
	}

	skills := make([]kernel.Skill, 0, len(dto.Skills))
	for _, s := range dto.Skills {
		skills = append(skills, kernel.Skill(s)) //nolint:gosec // stored from uint32
	}

	return job.RestoreJob(
		id,
		location,
		job.Type(dto.Type),
		kernel.Duration(dto.Setup),
		kernel.Duration(dto.Service),
		kernel.Amount(dto.Delivery),
		kernel.Amount(dto.Pickup),
		kernel.NewSkills(skills...),
		kernel.Priority(dto.Priority),
		tws,
		dto.Description,
		priorities,
	)
}

func locationToDomain(dto LocationDTO) (kernel.Location, error) {
	hasCoords := dto.Lon != nil && dto.Lat != nil
	switch {
	case dto.Index != nil && hasCoords:
		return kernel.NewLocation(uint(*dto.Index), *dto.Lon, *dto.Lat) //nolint:gosec // stored from uint
	case dto.Index != nil:
		return kernel.NewLocationFromIndex(uint(*dto.Index)), nil //nolint:gosec // stored from uint
	case hasCoords:
		return kernel.NewLocationFromCoordinates(*dto.Lon, *dto.Lat)
	default:
		return kernel.Location{}, errs.NewValueIsRequiredError("location")
	}
}
