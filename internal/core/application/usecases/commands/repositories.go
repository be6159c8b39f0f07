// Package commands holds the write side of the package service: registering
// a package and moving it along its lifecycle.
// Every handler follows the same sequence: check the command, open a unit of
// work, load or build the aggregate, run the lifecycle validator, save and commit.
package commands

import (
	"context"

	"github.com/belvip/logistic-application/internal/core/ports"
)

type (
	// TxManager controls the transaction of one command.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PackageRepoFactory exposes the package repository bound to the open transaction.
	PackageRepoFactory interface {
		PackageRepository() ports.PackageRepository
	}

	// PackageUoW is the transaction a package command runs in.
	//
	// Example:
	//   uow := factory.Create()
	//   if err := uow.Begin(ctx); err != nil {
	//       return err
	//   }
	//   defer func() { _ = uow.Rollback(ctx) }()
	//
	//   existing, err := uow.PackageRepository().Get(ctx, id)
	//   // ... validate, revise, Update
	//
	//   return uow.Commit(ctx)
	PackageUoW interface {
		TxManager
		PackageRepoFactory
	}

	// PackageUoWFactory creates one PackageUoW per command.
	PackageUoWFactory interface {
		Create() PackageUoW
	}
)
