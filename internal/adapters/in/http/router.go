package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/belvip/logistic-application/internal/adapters/out/metrics"
	"github.com/belvip/logistic-application/internal/adapters/in/http/docs"
	"github.com/belvip/logistic-application/internal/adapters/in/http/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig holds everything NewRouter needs besides the Server.
type RouterConfig struct {
	// APIPrefix is prepended to every package route, e.g. "/api/v1".
	APIPrefix string
	Logger    *slog.Logger
	Metrics   *metrics.Recorder
	Swagger   *openapi3.T
}

// NewRouter wires server, middleware and the operational endpoints into an echo instance.
//
// Example:
//
//	e, err := NewRouter(server, RouterConfig{APIPrefix: "/api/v1", Logger: logger, Metrics: recorder, Swagger: doc})
//	if err != nil {
//	    return err
//	}
//	e.Logger.Fatal(e.Start(":8080"))
func NewRouter(server servers.ServerInterface, cfg RouterConfig) (*echo.Echo, error) {
	if err := docs.Register(cfg.Swagger, cfg.APIPrefix); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(cfg.Logger, time.Now)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(RequestMetrics(cfg.Metrics))
	e.Use(RequestLogger(cfg.Logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(cfg.Metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(cfg.APIPrefix, RequestValidator(cfg.Swagger, cfg.APIPrefix))
	servers.RegisterHandlers(api, server)

	return e, nil
}
