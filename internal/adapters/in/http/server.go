package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/KimJinHyeon0/vroom/internal/core/application/usecases/commands"
	"github.com/KimJinHyeon0/vroom/internal/core/application/usecases/queries"
	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/kernel"
	"github.com/KimJinHyeon0/vroom/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Use-case ports of the server. The concrete command and query handlers
// satisfy them; tests substitute mocks.
type (
	CreateProblemHandler interface {
		Handle(ctx context.Context, cmd commands.CreateProblemCommand) error
	}

	AddJobHandler interface {
		Handle(ctx context.Context, cmd commands.AddJobCommand) error
	}

	ListProblemJobsHandler interface {
		Handle(ctx context.Context, query queries.ListProblemJobsQuery) ([]queries.ListProblemJobsQueryResponse, error)
	}

	CheckJobStartHandler interface {
		Handle(ctx context.Context, query queries.CheckJobStartQuery) (queries.CheckJobStartQueryResponse, error)
	}

	GetProblemHandler interface {
		Handle(ctx context.Context, query queries.GetProblemQuery) (queries.GetProblemQueryResponse, error)
	}
)

var _ ServerInterface = (*Server)(nil)

// Server handles HTTP requests by delegating to application use cases.
type Server struct {
	// Command handlers
	createProblemHandler CreateProblemHandler
	addJobHandler        AddJobHandler

	// Query handlers
	getProblemHandler      GetProblemHandler
	listProblemJobsHandler ListProblemJobsHandler
	checkJobStartHandler   CheckJobStartHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createProblemHandler CreateProblemHandler,
	addJobHandler AddJobHandler,
	getProblemHandler GetProblemHandler,
	listProblemJobsHandler ListProblemJobsHandler,
	checkJobStartHandler CheckJobStartHandler,
) *Server {
	return &Server{
		createProblemHandler:   createProblemHandler,
		addJobHandler:          addJobHandler,
		getProblemHandler:      getProblemHandler,
		listProblemJobsHandler: listProblemJobsHandler,
		checkJobStartHandler:   checkJobStartHandler,
	}
}

// CreateProblem handles POST /api/v1/problems.
func (s *Server) CreateProblem(ctx echo.Context) error {
	var body NewProblem
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	inputs := make([]commands.JobInput, 0, len(body.Jobs))
	for _, j := range body.Jobs {
		in, err := j.toInput()
		if err != nil {
			return writeError(ctx, err)
		}
		inputs = append(inputs, in)
	}

	cmd, err := commands.NewCreateProblemCommand(body.amountSize(inputs), inputs)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createProblemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ProblemCreated{ID: cmd.ProblemID().Bytes()})
}

// AddJob handles POST /api/v1/problems/{problemId}/jobs.
func (s *Server) AddJob(ctx echo.Context, problemId openapi_types.UUID) error {
	problemID, err := kernel.UUIDFromBytes(problemId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	var body NewJob
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	in, err := body.toInput()
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAddJobCommand(problemID, in)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.addJobHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetProblem handles GET /api/v1/problems/{problemId}.
func (s *Server) GetProblem(ctx echo.Context, problemId openapi_types.UUID) error {
	problemID, err := kernel.UUIDFromBytes(problemId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetProblemQuery(problemID)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getProblemHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summaryFromResponse(resp))
}

// ListJobs handles GET /api/v1/problems/{problemId}/jobs.
func (s *Server) ListJobs(ctx echo.Context, problemId openapi_types.UUID) error {
	problemID, err := kernel.UUIDFromBytes(problemId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewListProblemJobsQuery(problemID)
	if err != nil {
		return writeError(ctx, err)
	}

	jobs, err := s.listProblemJobsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Job, len(jobs))
	for i, j := range jobs {
		response[i] = jobFromResponse(j)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CheckValidStart handles GET /api/v1/problems/{problemId}/jobs/{jobId}/valid-start.
func (s *Server) CheckValidStart(
	ctx echo.Context,
	problemId openapi_types.UUID,
	jobId uint64,
	params CheckValidStartParams,
) error {
	problemID, err := kernel.UUIDFromBytes(problemId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewCheckJobStartQuery(problemID, jobId, kernel.UserDuration(params.Time))
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.checkJobStartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ValidStart{Valid: resp.Valid})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:     http.StatusBadRequest,
		Category: errs.CategoryInput.String(),
		Message:  message,
	})
}

// writeError maps use-case errors to responses. Missing objects are 404 and
// other input errors 400, both carrying their category. Routing failures are
// 502 and anything else an opaque 500.
func writeError(ctx echo.Context, err error) error {
	category := errs.CategoryOf(err)

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:     http.StatusNotFound,
			Category: category.String(),
			Message:  err.Error(),
		})
	case category == errs.CategoryInput:
		return badRequest(ctx, err.Error())
	case category == errs.CategoryRouting:
		ctx.Logger().Error(err)
		return ctx.JSON(http.StatusBadGateway, Error{
			Code:     http.StatusBadGateway,
			Category: category.String(),
			Message:  "Routing failure",
		})
	default:
		ctx.Logger().Error(err)
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:     http.StatusInternalServerError,
			Category: errs.CategoryInternal.String(),
			Message:  "Internal server error",
		})
	}
}
