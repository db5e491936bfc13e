// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"parcellocker/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// BloqRepoFactory provides access to the bloq repository within a transaction.
	BloqRepoFactory interface {
		BloqRepository() ports.BloqRepository
	}

	// LockerRepoFactory provides access to the locker repository within a transaction.
	LockerRepoFactory interface {
		LockerRepository() ports.LockerRepository
	}

	// RentRepoFactory provides access to the rent repository within a transaction.
	RentRepoFactory interface {
		RentRepository() ports.RentRepository
	}

	// AccountRepoFactory provides access to the account repository within a transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// BloqUoW manages transactions for bloq-only operations.
	// Used when commands only modify site records.
	BloqUoW interface {
		TxManager
		BloqRepoFactory
	}

	// BloqUoWFactory creates new bloq unit of work instances.
	BloqUoWFactory interface {
		Create() BloqUoW
	}

	// LockerUoW manages transactions for locker administration.
	// Creating a locker also reads the owning bloq, so both repositories
	// are exposed.
	LockerUoW interface {
		TxManager
		LockerRepoFactory
		BloqRepoFactory
	}

	// LockerUoWFactory creates new locker unit of work instances.
	LockerUoWFactory interface {
		Create() LockerUoW
	}

	// AccountUoW manages transactions for account registration.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// RentUoW manages transactions across the rent lifecycle. Lifecycle
	// transitions coordinate rent, locker, bloq and account records inside a
	// single transaction boundary.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   rentRepo := uow.RentRepository()
	//   lockerRepo := uow.LockerRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	RentUoW interface {
		TxManager
		RentRepoFactory
		LockerRepoFactory
		BloqRepoFactory
		AccountRepoFactory
	}

	// RentUoWFactory creates new rent unit of work instances.
	RentUoWFactory interface {
		Create() RentUoW
	}
)
