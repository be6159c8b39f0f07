package commands_test

import (
	"context"

	"github.com/belvip/logistic-application/internal/core/application/usecases/commands"
	"github.com/belvip/logistic-application/internal/core/domain/model/packages"
	"github.com/belvip/logistic-application/internal/core/domain/model/paging"
	"github.com/belvip/logistic-application/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockPackageRepository struct{ mock.Mock }

func (m *MockPackageRepository) Add(ctx context.Context, p *packages.Package) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPackageRepository) Update(ctx context.Context, p *packages.Package) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPackageRepository) Get(ctx context.Context, id int64) (*packages.Package, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*packages.Package)
	return p, args.Error(1)
}

func (m *MockPackageRepository) GetForUpdate(ctx context.Context, id int64) (*packages.Package, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*packages.Package)
	return p, args.Error(1)
}

func (m *MockPackageRepository) FindAllPaged(
	ctx context.Context,
	query paging.Query,
) (paging.Page[*packages.Package], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(paging.Page[*packages.Package]), args.Error(1)
}

func (m *MockPackageRepository) CountByStatus(ctx context.Context) (map[packages.Status]int64, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).(map[packages.Status]int64)
	return counts, args.Error(1)
}

type MockPackageUoW struct{ mock.Mock }

func (m *MockPackageUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPackageUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPackageUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPackageUoW) PackageRepository() ports.PackageRepository {
	args := m.Called()
	return args.Get(0).(ports.PackageRepository)
}

type MockPackageUoWFactory struct{ mock.Mock }

func (m *MockPackageUoWFactory) Create() commands.PackageUoW {
	args := m.Called()
	return args.Get(0).(commands.PackageUoW)
}
