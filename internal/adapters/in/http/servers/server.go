package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Get paginated packages
	// (GET /packages/all)
	ListPackages(ctx echo.Context, params ListPackagesParams) error
	// Create a new package
	// (POST /packages/create)
	CreatePackage(ctx echo.Context) error
	// Delete package
	// (DELETE /packages/{id})
	DeletePackage(ctx echo.Context, id int64) error
	// Get package by ID
	// (GET /packages/{id})
	GetPackage(ctx echo.Context, id int64) error
	// Update package
	// (PUT /packages/{id})
	UpdatePackage(ctx echo.Context, id int64) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListPackages converts echo context to params.
func (w *ServerInterfaceWrapper) ListPackages(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params ListPackagesParams
	// ------------- Optional query parameter "pageNumber" -------------

	err = runtime.BindQueryParameter("form", true, false, "pageNumber", ctx.QueryParams(), &params.PageNumber)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter pageNumber: %s", err))
	}

	// ------------- Optional query parameter "pageSize" -------------

	err = runtime.BindQueryParameter("form", true, false, "pageSize", ctx.QueryParams(), &params.PageSize)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter pageSize: %s", err))
	}

	// ------------- Optional query parameter "sortBy" -------------

	err = runtime.BindQueryParameter("form", true, false, "sortBy", ctx.QueryParams(), &params.SortBy)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter sortBy: %s", err))
	}

	// ------------- Optional query parameter "sortOrder" -------------

	err = runtime.BindQueryParameter("form", true, false, "sortOrder", ctx.QueryParams(), &params.SortOrder)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter sortOrder: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListPackages(ctx, params)
	return err
}

// CreatePackage converts echo context to params.
func (w *ServerInterfaceWrapper) CreatePackage(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreatePackage(ctx)
	return err
}

// DeletePackage converts echo context to params.
func (w *ServerInterfaceWrapper) DeletePackage(ctx echo.Context) error {
	id, err := bindPackageID(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeletePackage(ctx, id)
	return err
}

// GetPackage converts echo context to params.
func (w *ServerInterfaceWrapper) GetPackage(ctx echo.Context) error {
	id, err := bindPackageID(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetPackage(ctx, id)
	return err
}

// UpdatePackage converts echo context to params.
func (w *ServerInterfaceWrapper) UpdatePackage(ctx echo.Context) error {
	id, err := bindPackageID(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdatePackage(ctx, id)
	return err
}

// ------------- Path parameter "id" -------------
func bindPackageID(ctx echo.Context) (int64, error) {
	var id int64

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return id, nil
}

// EchoRouter is the subset of echo.Echo and echo.Group used to register routes.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/packages/all", wrapper.ListPackages)
	router.POST(baseURL+"/packages/create", wrapper.CreatePackage)
	router.DELETE(baseURL+"/packages/:id", wrapper.DeletePackage)
	router.GET(baseURL+"/packages/:id", wrapper.GetPackage)
	router.PUT(baseURL+"/packages/:id", wrapper.UpdatePackage)
}
