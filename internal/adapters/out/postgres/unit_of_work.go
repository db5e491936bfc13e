// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work wraps one business transaction: repositories created
// from it share the same database transaction, changes become visible together
// on Commit and disappear together on Rollback.
//
// Each command handler creates a fresh unit of work via the factory, so
// concurrent operations stay isolated:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.RentRepository().Add(ctx, aggregate); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit is a no-op error that the deferred call
// discards. The unit of work additionally tracks every aggregate the
// repositories touched, which keeps the door open for outbox-style event
// publishing after commit.
package postgres

import (
	"context"

	"parcellocker/internal/adapters/out/postgres/accountrepo"
	"parcellocker/internal/adapters/out/postgres/bloqrepo"
	"parcellocker/internal/adapters/out/postgres/lockerrepo"
	"parcellocker/internal/adapters/out/postgres/rentrepo"
	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// connection pool. Every Create call yields an independent transaction scope.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to the given database.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction across the bloq, locker,
// rent and account repositories. Repositories requested before Begin run
// against the bare connection; after Begin they share the transaction.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the database transaction. Calling Begin twice on the same
// instance is safe; the second call is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// BloqRepository returns a bloq repository bound to the current transaction.
func (uow *GormUnitOfWork) BloqRepository() ports.BloqRepository {
	return bloqrepo.NewGormBloqRepository(uow.conn(), uow)
}

// LockerRepository returns a locker repository bound to the current transaction.
func (uow *GormUnitOfWork) LockerRepository() ports.LockerRepository {
	return lockerrepo.NewGormLockerRepository(uow.conn(), uow)
}

// RentRepository returns a rent repository bound to the current transaction.
func (uow *GormUnitOfWork) RentRepository() ports.RentRepository {
	return rentrepo.NewGormRentRepository(uow.conn(), uow)
}

// AccountRepository returns an account repository bound to the current transaction.
func (uow *GormUnitOfWork) AccountRepository() ports.AccountRepository {
	return accountrepo.NewGormAccountRepository(uow.conn(), uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. Repositories call it on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
