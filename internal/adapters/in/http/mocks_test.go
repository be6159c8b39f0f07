package http_test

import (
	"context"

	"github.com/belvip/logistic-application/internal/core/application/mapper"
	"github.com/belvip/logistic-application/internal/core/application/usecases/commands"
	"github.com/belvip/logistic-application/internal/core/application/usecases/queries"
	"github.com/belvip/logistic-application/internal/core/domain/model/paging"

	"github.com/stretchr/testify/mock"
)

type MockCreatePackageHandler struct{ mock.Mock }

func (m *MockCreatePackageHandler) Handle(
	ctx context.Context,
	cmd commands.CreatePackageCommand,
) (mapper.PackageResponse, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(mapper.PackageResponse), args.Error(1)
}

type MockUpdatePackageHandler struct{ mock.Mock }

func (m *MockUpdatePackageHandler) Handle(
	ctx context.Context,
	cmd commands.UpdatePackageCommand,
) (mapper.PackageResponse, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(mapper.PackageResponse), args.Error(1)
}

type MockGetPackageHandler struct{ mock.Mock }

func (m *MockGetPackageHandler) Handle(
	ctx context.Context,
	query queries.GetPackageQuery,
) (mapper.PackageResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(mapper.PackageResponse), args.Error(1)
}

type MockListPackagesHandler struct{ mock.Mock }

func (m *MockListPackagesHandler) Handle(
	ctx context.Context,
	query queries.ListPackagesQuery,
) (paging.Page[mapper.PackageResponse], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(paging.Page[mapper.PackageResponse]), args.Error(1)
}
