package http

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CheckValidStartParams defines parameters for CheckValidStart.
type CheckValidStartParams struct {
	// Time is the candidate start in seconds.
	Time uint32 `form:"time" json:"time"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Create a problem
	// (POST /api/v1/problems)
	CreateProblem(ctx echo.Context) error
	// Summarize a problem
	// (GET /api/v1/problems/{problemId})
	GetProblem(ctx echo.Context, problemId openapi_types.UUID) error
	// List the jobs of a problem
	// (GET /api/v1/problems/{problemId}/jobs)
	ListJobs(ctx echo.Context, problemId openapi_types.UUID) error
	// Add a job to a problem
	// (POST /api/v1/problems/{problemId}/jobs)
	AddJob(ctx echo.Context, problemId openapi_types.UUID) error
	// Check a job start
	// (GET /api/v1/problems/{problemId}/jobs/{jobId}/valid-start)
	CheckValidStart(ctx echo.Context, problemId openapi_types.UUID, jobId uint64, params CheckValidStartParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// CreateProblem converts echo context to params.
func (w *ServerInterfaceWrapper) CreateProblem(ctx echo.Context) error {
	return w.Handler.CreateProblem(ctx)
}

// GetProblem converts echo context to params.
func (w *ServerInterfaceWrapper) GetProblem(ctx echo.Context) error {
	problemId, err := bindProblemID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	return w.Handler.GetProblem(ctx, problemId)
}

// ListJobs converts echo context to params.
func (w *ServerInterfaceWrapper) ListJobs(ctx echo.Context) error {
	problemId, err := bindProblemID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	return w.Handler.ListJobs(ctx, problemId)
}

// AddJob converts echo context to params.
func (w *ServerInterfaceWrapper) AddJob(ctx echo.Context) error {
	problemId, err := bindProblemID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	return w.Handler.AddJob(ctx, problemId)
}

// CheckValidStart converts echo context to params.
func (w *ServerInterfaceWrapper) CheckValidStart(ctx echo.Context) error {
	problemId, err := bindProblemID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var jobId uint64
	err = runtime.BindStyledParameterWithOptions("simple", "jobId", ctx.Param("jobId"), &jobId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return badRequest(ctx, fmt.Sprintf("invalid format for parameter jobId: %s", err))
	}

	var params CheckValidStartParams
	err = runtime.BindQueryParameter("form", true, true, "time", ctx.QueryParams(), &params.Time)
	if err != nil {
		return badRequest(ctx, fmt.Sprintf("invalid format for parameter time: %s", err))
	}

	return w.Handler.CheckValidStart(ctx, problemId, jobId, params)
}

func bindProblemID(ctx echo.Context) (openapi_types.UUID, error) {
	var problemId openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "problemId", ctx.Param("problemId"), &problemId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return openapi_types.UUID{}, fmt.Errorf("invalid format for parameter problemId: %w", err)
	}
	return problemId, nil
}

// EchoRouter is the subset of echo routing RegisterHandlers needs. Both
// *echo.Echo and *echo.Group satisfy it.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the handlers under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/api/v1/problems", wrapper.CreateProblem)
	router.GET(baseURL+"/api/v1/problems/:problemId", wrapper.GetProblem)
	router.GET(baseURL+"/api/v1/problems/:problemId/jobs", wrapper.ListJobs)
	router.POST(baseURL+"/api/v1/problems/:problemId/jobs", wrapper.AddJob)
	router.GET(baseURL+"/api/v1/problems/:problemId/jobs/:jobId/valid-start", wrapper.CheckValidStart)
}
