package http

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/belvip/logistic-application/internal/adapters/out/metrics"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const unmatchedRoute = "unmatched"

// RequestLogger writes one structured log line per request.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= 500 {
				level = slog.LevelError
			}

			logger.LogAttrs(context.Background(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
				slog.String("remote_ip", v.RemoteIP),
			)
			return nil
		},
	})
}

// RequestMetrics records the status and latency of every request.
func RequestMetrics(recorder *metrics.Recorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil && !c.Response().Committed {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = unmatchedRoute
			}
			recorder.ObserveRequest(c.Request().Method, route, c.Response().Status, time.Since(start))

			return err
		}
	}
}

// RequestValidator checks path and query parameters against doc before the
// handler runs. Routes under prefix that doc does not describe pass through.
// Request bodies are left to the command constructors, which report
// field-level messages.
func RequestValidator(doc *openapi3.T, prefix string) echo.MiddlewareFunc {
	options := &openapi3filter.Options{
		ExcludeRequestBody:  true,
		ExcludeResponseBody: true,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			route, ok := findRoute(doc, prefix, c)
			if !ok {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    c.Request(),
				PathParams: pathParams(c),
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(c.Request().Context(), input); err != nil {
				return err
			}

			return next(c)
		}
	}
}

// findRoute maps the echo route of c, e.g. /api/v1/packages/:id, to the
// OpenAPI operation for /packages/{id}.
func findRoute(doc *openapi3.T, prefix string, c echo.Context) (*routers.Route, bool) {
	echoPath := c.Path()
	if !strings.HasPrefix(echoPath, prefix) {
		return nil, false
	}

	segments := strings.Split(strings.TrimPrefix(echoPath, prefix), "/")
	for i, segment := range segments {
		if strings.HasPrefix(segment, ":") {
			segments[i] = "{" + strings.TrimPrefix(segment, ":") + "}"
		}
	}
	path := strings.Join(segments, "/")

	item := doc.Paths.Find(path)
	if item == nil {
		return nil, false
	}

	method := c.Request().Method
	operation := item.GetOperation(method)
	if operation == nil {
		return nil, false
	}

	return &routers.Route{
		Spec:      doc,
		Path:      path,
		PathItem:  item,
		Method:    method,
		Operation: operation,
	}, true
}

func pathParams(c echo.Context) map[string]string {
	names := c.ParamNames()
	values := c.ParamValues()

	params := make(map[string]string, len(names))
	for i, name := range names {
		if i < len(values) {
			params[name] = values[i]
		}
	}
	return params
}
