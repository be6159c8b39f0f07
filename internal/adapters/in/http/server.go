package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/belvip/logistic-application/internal/core/application/mapper"
	"github.com/belvip/logistic-application/internal/core/application/usecases/commands"
	"github.com/belvip/logistic-application/internal/core/application/usecases/queries"
	"github.com/belvip/logistic-application/internal/core/domain/model/paging"
	"github.com/belvip/logistic-application/internal/adapters/in/http/servers"
	"github.com/belvip/logistic-application/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const malformedBodyMessage = "Malformed JSON request. Use valid values and double quotes for field names."

type (
	CreatePackageHandler interface {
		Handle(ctx context.Context, cmd commands.CreatePackageCommand) (mapper.PackageResponse, error)
	}

	UpdatePackageHandler interface {
		Handle(ctx context.Context, cmd commands.UpdatePackageCommand) (mapper.PackageResponse, error)
	}

	GetPackageHandler interface {
		Handle(ctx context.Context, query queries.GetPackageQuery) (mapper.PackageResponse, error)
	}

	ListPackagesHandler interface {
		Handle(ctx context.Context, query queries.ListPackagesQuery) (paging.Page[mapper.PackageResponse], error)
	}
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createPackageHandler CreatePackageHandler
	updatePackageHandler UpdatePackageHandler

	// Query handlers
	getPackageHandler   GetPackageHandler
	listPackagesHandler ListPackagesHandler
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createPackageHandler CreatePackageHandler,
	updatePackageHandler UpdatePackageHandler,
	getPackageHandler GetPackageHandler,
	listPackagesHandler ListPackagesHandler,
) *Server {
	return &Server{
		createPackageHandler: createPackageHandler,
		updatePackageHandler: updatePackageHandler,
		getPackageHandler:    getPackageHandler,
		listPackagesHandler:  listPackagesHandler,
	}
}

// CreatePackage handles POST /packages/create.
func (s *Server) CreatePackage(ctx echo.Context) error {
	var body servers.CreatePackageJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	fields, err := readPackageRequest(body)
	cmd, cmdErr := commands.NewCreatePackageCommand(fields.description, fields.weight, fields.fragile, fields.status)
	if err = errors.Join(err, cmdErr); err != nil {
		return err
	}

	created, err := s.createPackageHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, toPackageResponse(created))
}

// ListPackages handles GET /packages/all.
func (s *Server) ListPackages(ctx echo.Context, params servers.ListPackagesParams) error {
	query, err := queries.NewListPackagesQuery(widen(params.PageNumber), widen(params.PageSize), params.SortBy, params.SortOrder)
	if err != nil {
		return err
	}

	page, err := s.listPackagesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toPackagePage(page))
}

// GetPackage handles GET /packages/{id}.
func (s *Server) GetPackage(ctx echo.Context, id int64) error {
	found, err := s.getPackageHandler.Handle(ctx.Request().Context(), queries.NewGetPackageQuery(&id))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toPackageResponse(found))
}

// UpdatePackage handles PUT /packages/{id}.
func (s *Server) UpdatePackage(ctx echo.Context, id int64) error {
	var body servers.UpdatePackageJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	fields, err := readPackageRequest(body)
	cmd, cmdErr := commands.NewUpdatePackageCommand(&id, fields.description, fields.weight, fields.fragile, fields.status)
	if err = errors.Join(err, cmdErr); err != nil {
		return err
	}

	updated, err := s.updatePackageHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toPackageResponse(updated))
}

// DeletePackage handles DELETE /packages/{id}. Packages cannot be deleted.
func (s *Server) DeletePackage(_ echo.Context, _ int64) error {
	return echo.NewHTTPError(http.StatusNotImplemented, "Deleting packages is not supported")
}

func widen(v *int32) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}

func bindBody(ctx echo.Context, body *servers.PackageRequest) error {
	if err := ctx.Bind(body); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) && httpErr.Code != http.StatusBadRequest {
			return err
		}
		return echo.NewHTTPError(http.StatusBadRequest, malformedBodyMessage).SetInternal(err)
	}
	return nil
}

type packageFields struct {
	description string
	weight      float64
	fragile     bool
	status      string
}

// readPackageRequest reports every missing mandatory field. Missing fields
// are returned as zero values so the command constructor still checks the rest.
func readPackageRequest(body servers.PackageRequest) (packageFields, error) {
	var fields packageFields
	var missing []error

	if body.Description != nil {
		fields.description = *body.Description
	}

	if body.Weight == nil {
		missing = append(missing, errs.NewValueIsRequiredError("weight"))
	} else {
		fields.weight = *body.Weight
	}

	if body.Fragile == nil {
		missing = append(missing, errs.NewValueIsRequiredError("fragile"))
	} else {
		fields.fragile = *body.Fragile
	}

	if body.Status == nil {
		missing = append(missing, errs.NewValueIsRequiredError("status"))
	} else {
		fields.status = string(*body.Status)
	}

	return fields, errors.Join(missing...)
}

func toPackageResponse(r mapper.PackageResponse) servers.PackageResponse {
	return servers.PackageResponse{
		PackageId:   r.PackageID,
		Description: r.Description,
		Weight:      r.Weight,
		Fragile:     r.Fragile,
		Status:      servers.PackageStatus(r.Status.String()),
	}
}

func toPackagePage(page paging.Page[mapper.PackageResponse]) servers.PackagePage {
	content := make([]servers.PackageResponse, 0, len(page.Content))
	for _, r := range page.Content {
		content = append(content, toPackageResponse(r))
	}

	return servers.PackagePage{
		Content:       content,
		PageNumber:    page.PageNumber,
		PageSize:      page.PageSize,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
		LastPage:      page.Last,
	}
}
