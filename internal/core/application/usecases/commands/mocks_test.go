package commands_test

import (
	"context"

	"parcellocker/internal/core/application/usecases/commands"
	"parcellocker/internal/core/domain/model/account"
	"parcellocker/internal/core/domain/model/bloq"
	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/locker"
	"parcellocker/internal/core/domain/model/rent"
	"parcellocker/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Shared testify mocks for the command handler tests.

type MockBloqRepository struct{ mock.Mock }

func (m *MockBloqRepository) Add(ctx context.Context, b *bloq.Bloq) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBloqRepository) Update(ctx context.Context, b *bloq.Bloq) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBloqRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBloqRepository) Get(ctx context.Context, id kernel.UUID) (*bloq.Bloq, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bloq.Bloq), args.Error(1)
}

func (m *MockBloqRepository) GetAllByCountry(ctx context.Context, country kernel.Country) ([]*bloq.Bloq, error) {
	args := m.Called(ctx, country)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bloq.Bloq), args.Error(1)
}

type MockLockerRepository struct{ mock.Mock }

func (m *MockLockerRepository) Add(ctx context.Context, l *locker.Locker) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLockerRepository) Update(ctx context.Context, l *locker.Locker) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLockerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLockerRepository) Get(ctx context.Context, id kernel.UUID) (*locker.Locker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*locker.Locker), args.Error(1)
}

func (m *MockLockerRepository) GetAllByBloq(ctx context.Context, bloqID kernel.UUID) ([]*locker.Locker, error) {
	args := m.Called(ctx, bloqID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*locker.Locker), args.Error(1)
}

func (m *MockLockerRepository) GetAllAvailable(
	ctx context.Context,
	bloqID kernel.UUID,
	size kernel.Size,
) ([]*locker.Locker, error) {
	args := m.Called(ctx, bloqID, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*locker.Locker), args.Error(1)
}

type MockRentRepository struct{ mock.Mock }

func (m *MockRentRepository) Add(ctx context.Context, r *rent.Rent) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRentRepository) Update(ctx context.Context, r *rent.Rent) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRentRepository) Get(ctx context.Context, id kernel.UUID) (*rent.Rent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rent.Rent), args.Error(1)
}

func (m *MockRentRepository) GetAllInCreatedStatus(ctx context.Context) ([]*rent.Rent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*rent.Rent), args.Error(1)
}

func (m *MockRentRepository) GetAllByLocker(ctx context.Context, lockerID kernel.UUID) ([]*rent.Rent, error) {
	args := m.Called(ctx, lockerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*rent.Rent), args.Error(1)
}

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Add(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

// MockUoW implements every command unit-of-work combination.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) BloqRepository() ports.BloqRepository {
	args := m.Called()
	return args.Get(0).(ports.BloqRepository)
}

func (m *MockUoW) LockerRepository() ports.LockerRepository {
	args := m.Called()
	return args.Get(0).(ports.LockerRepository)
}

func (m *MockUoW) RentRepository() ports.RentRepository {
	args := m.Called()
	return args.Get(0).(ports.RentRepository)
}

func (m *MockUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

type MockBloqUoWFactory struct{ mock.Mock }

func (m *MockBloqUoWFactory) Create() commands.BloqUoW {
	args := m.Called()
	return args.Get(0).(commands.BloqUoW)
}

type MockLockerUoWFactory struct{ mock.Mock }

func (m *MockLockerUoWFactory) Create() commands.LockerUoW {
	args := m.Called()
	return args.Get(0).(commands.LockerUoW)
}

type MockRentUoWFactory struct{ mock.Mock }

func (m *MockRentUoWFactory) Create() commands.RentUoW {
	args := m.Called()
	return args.Get(0).(commands.RentUoW)
}

type MockAccountUoWFactory struct{ mock.Mock }

func (m *MockAccountUoWFactory) Create() commands.AccountUoW {
	args := m.Called()
	return args.Get(0).(commands.AccountUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyDropoff(ctx context.Context, r *rent.Rent) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockNotifier) NotifyDelivered(ctx context.Context, r *rent.Rent) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
