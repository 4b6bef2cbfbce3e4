package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"

	"github.com/KimJinHyeon0/vroom/internal/pkg/errs"
)

// OpenAPIValidator returns a middleware rejecting requests that do not match
// doc with 400. Requests for paths the document does not describe, such as
// /health or /swagger/*, pass through untouched.
func OpenAPIValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				var routeErr *routers.RouteError
				if errors.As(findErr, &routeErr) {
					return next(c)
				}
				return findErr
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options: &openapi3filter.Options{
					AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
				},
			}
			if validationErr := openapi3filter.ValidateRequest(req.Context(), input); validationErr != nil {
				return c.JSON(http.StatusBadRequest, Error{
					Code:     http.StatusBadRequest,
					Category: errs.CategoryInput.String(),
					Message:  validationMessage(validationErr),
				})
			}

			return next(c)
		}
	}, nil
}

// validationMessage keeps the first line of a kin-openapi error; the rest is a
// schema dump that is not useful to clients.
func validationMessage(err error) string {
	var requestErr *openapi3filter.RequestError
	if errors.As(err, &requestErr) {
		reason := requestErr.Reason
		if requestErr.Err != nil {
			reason = firstLine(requestErr.Err.Error())
		}
		switch {
		case requestErr.Parameter != nil:
			return "invalid parameter " + requestErr.Parameter.Name + ": " + reason
		case requestErr.RequestBody != nil:
			return "invalid request body: " + reason
		}
	}
	return firstLine(err.Error())
}

func firstLine(msg string) string {
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		return msg[:i]
	}
	return msg
}
