package http

import (
	"time"

	"github.com/KimJinHyeon0/vroom/internal/core/application/usecases/commands"
	"github.com/KimJinHyeon0/vroom/internal/core/application/usecases/queries"
	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/job"
	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/kernel"
	"github.com/KimJinHyeon0/vroom/internal/pkg/errs"

	"github.com/google/uuid"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code     int    `json:"code"`
	Category string `json:"category,omitempty"`
	Message  string `json:"message"`
}

// NewProblem is the body of POST /api/v1/problems.
type NewProblem struct {
	AmountSize *int     `json:"amount_size,omitempty"`
	Jobs       []NewJob `json:"jobs"`
}

// NewJob is a raw job. Durations and windows are in seconds.
type NewJob struct {
	ID            uint64      `json:"id"`
	Type          string      `json:"type,omitempty"`
	Location      *[2]float64 `json:"location,omitempty"`
	LocationIndex *uint       `json:"location_index,omitempty"`
	Setup         uint32      `json:"setup,omitempty"`
	Service       uint32      `json:"service,omitempty"`
	Delivery      []int64     `json:"delivery,omitempty"`
	Pickup        []int64     `json:"pickup,omitempty"`
	Amount        []int64     `json:"amount,omitempty"`
	Skills        []uint32    `json:"skills,omitempty"`
	Priority      int         `json:"priority,omitempty"`
	TimeWindows   [][2]uint32 `json:"time_windows,omitempty"`
	Description   string      `json:"description,omitempty"`
}

// ProblemCreated is the body of a successful problem creation.
type ProblemCreated struct {
	ID uuid.UUID `json:"id"`
}

// ProblemSummary is the body of GET /api/v1/problems/{problemId}.
type ProblemSummary struct {
	ID                uuid.UUID `json:"id"`
	AmountSize        int       `json:"amount_size"`
	DurationFactor    int64     `json:"duration_factor"`
	MaxPriority       int       `json:"max_priority"`
	JobCount          int       `json:"job_count"`
	UnconstrainedJobs int       `json:"unconstrained_jobs"`
	TotalDelivery     []int64   `json:"total_delivery"`
	TotalPickup       []int64   `json:"total_pickup"`
	CreatedAt         time.Time `json:"created_at"`
}

// Job is a stored job as returned by GET /api/v1/problems/{problemId}/jobs.
type Job struct {
	ID            uint64      `json:"id"`
	Type          string      `json:"type"`
	Location      *[2]float64 `json:"location,omitempty"`
	LocationIndex *uint       `json:"location_index,omitempty"`
	Setup         uint32      `json:"setup"`
	Service       uint32      `json:"service"`
	Delivery      []int64     `json:"delivery"`
	Pickup        []int64     `json:"pickup"`
	Skills        []uint32    `json:"skills"`
	Priority      int         `json:"priority"`
	TimeWindows   [][2]uint32 `json:"time_windows"`
	Description   string      `json:"description,omitempty"`
}

// ValidStart is the body of the valid-start answer.
type ValidStart struct {
	Valid bool `json:"valid"`
}

// amountSize returns the declared size, else the size of the first job's demand.
func (p NewProblem) amountSize(inputs []commands.JobInput) int {
	if p.AmountSize != nil {
		return *p.AmountSize
	}
	if len(inputs) > 0 {
		return inputs[0].Demand.Size()
	}
	return 0
}

func (j NewJob) toInput() (commands.JobInput, error) {
	location, err := j.location()
	if err != nil {
		return commands.JobInput{}, err
	}

	demand, err := j.demand()
	if err != nil {
		return commands.JobInput{}, err
	}

	skills := make([]kernel.Skill, 0, len(j.Skills))
	for _, s := range j.Skills {
		skills = append(skills, kernel.Skill(s))
	}

	tws := make([]commands.UserTimeWindow, 0, len(j.TimeWindows))
	for _, tw := range j.TimeWindows {
		tws = append(tws, commands.UserTimeWindow{
			Start: kernel.UserDuration(tw[0]),
			End:   kernel.UserDuration(tw[1]),
		})
	}

	return commands.JobInput{
		ID:          j.ID,
		Location:    location,
		Setup:       kernel.UserDuration(j.Setup),
		Service:     kernel.UserDuration(j.Service),
		Skills:      kernel.NewSkills(skills...),
		Priority:    kernel.Priority(j.Priority),
		TimeWindows: tws,
		Description: j.Description,
		Demand:      demand,
	}, nil
}

func (j NewJob) location() (kernel.Location, error) {
	switch {
	case j.LocationIndex != nil && j.Location != nil:
		return kernel.NewLocation(*j.LocationIndex, j.Location[0], j.Location[1])
	case j.LocationIndex != nil:
		return kernel.NewLocationFromIndex(*j.LocationIndex), nil
	case j.Location != nil:
		return kernel.NewLocationFromCoordinates(j.Location[0], j.Location[1])
	default:
		return kernel.Location{}, errs.NewInputError("missing location for job %d", j.ID)
	}
}

// demand picks the construction path: a typed job takes its amount from
// "amount"; an untyped job uses explicit delivery/pickup when either is
// present and falls back to the signed "amount" otherwise.
func (j NewJob) demand() (commands.Demand, error) {
	jobType := job.Single
	if j.Type != "" {
		parsed, err := job.ParseType(j.Type)
		if err != nil {
			return commands.Demand{}, errs.NewInputErrorWithCause("invalid type for job", err)
		}
		jobType = parsed
	}

	switch jobType {
	case job.Pickup:
		return commands.PickupDemand(j.Amount), nil
	case job.Delivery:
		return commands.DeliveryDemand(j.Amount), nil
	}

	if j.Delivery == nil && j.Pickup == nil {
		return commands.NetDemand(j.Amount), nil
	}

	delivery, pickup := kernel.Amount(j.Delivery), kernel.Amount(j.Pickup)
	if delivery == nil {
		delivery = kernel.NewAmount(pickup.Size())
	}
	if pickup == nil {
		pickup = kernel.NewAmount(delivery.Size())
	}
	return commands.SingleDemand(delivery, pickup), nil
}

func jobFromResponse(r queries.ListProblemJobsQueryResponse) Job {
	out := Job{
		ID:          r.ID,
		Type:        r.Type,
		Setup:       uint32(r.Setup),
		Service:     uint32(r.Service),
		Delivery:    []int64(r.Delivery.Clone()),
		Pickup:      []int64(r.Pickup.Clone()),
		Skills:      make([]uint32, 0, len(r.Skills)),
		Priority:    int(r.Priority),
		TimeWindows: make([][2]uint32, 0, len(r.TimeWindows)),
		Description: r.Description,
	}

	if index, ok := r.Location.Index(); ok {
		out.LocationIndex = &index
	}
	if coords, ok := r.Location.Coordinates(); ok {
		out.Location = &[2]float64{coords.Lon, coords.Lat}
	}
	for _, s := range r.Skills {
		out.Skills = append(out.Skills, uint32(s))
	}
	for _, tw := range r.TimeWindows {
		out.TimeWindows = append(out.TimeWindows, [2]uint32{uint32(tw.Start), uint32(tw.End)})
	}

	return out
}

func summaryFromResponse(r queries.GetProblemQueryResponse) ProblemSummary {
	return ProblemSummary{
		ID:                r.ID.Bytes(),
		AmountSize:        r.AmountSize,
		DurationFactor:    r.DurationFactor,
		MaxPriority:       int(r.MaxPriority),
		JobCount:          r.JobCount,
		UnconstrainedJobs: r.UnconstrainedJobs,
		TotalDelivery:     []int64(r.TotalDelivery.Clone()),
		TotalPickup:       []int64(r.TotalPickup.Clone()),
		CreatedAt:         r.CreatedAt,
	}
}
