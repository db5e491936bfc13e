package commands_test

import (
	"errors"
	"testing"

	"parcellocker/internal/core/application/usecases/commands"
	"parcellocker/internal/core/domain/model/account"
	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/locker"
	"parcellocker/internal/core/domain/model/rent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func senderPrincipal() account.Principal {
	return account.Principal{
		ID:      kernel.NewUUID(),
		Email:   "s@x.com",
		Role:    account.RegularUser,
		Country: kernel.France,
	}
}

func newWaitingDropoffRent(t *testing.T, lockerID kernel.UUID) *rent.Rent {
	t.Helper()
	r, err := rent.NewRent(kernel.NewUUID(), 7, kernel.SizeMedium, "s@x.com", "r@x.com")
	require.NoError(t, err)
	require.NoError(t, r.Allocate(lockerID))
	return r
}

func newReservedLocker(t *testing.T, id kernel.UUID) *locker.Locker {
	t.Helper()
	l, err := locker.NewLocker(id, kernel.NewUUID(), kernel.SizeMedium)
	require.NoError(t, err)
	require.NoError(t, l.Reserve())
	return l
}

func TestDropoffRentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	lockerID := kernel.NewUUID()
	aggregate := newWaitingDropoffRent(t, lockerID)
	boundLocker := newReservedLocker(t, lockerID)

	cmd, err := commands.NewDropoffRentCommand(aggregate.ID(), senderPrincipal())
	require.NoError(t, err)

	rentRepo := new(MockRentRepository)
	lockerRepo := new(MockLockerRepository)
	notifier := new(MockNotifier)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RentRepository").Return(rentRepo).Once(),
		rentRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("LockerRepository").Return(lockerRepo).Once(),
		lockerRepo.On("Get", mock.Anything, lockerID).Return(boundLocker, nil).Once(),
		rentRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		lockerRepo.On("Update", mock.Anything, boundLocker).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("NotifyDropoff", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDropoffRentCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, rent.WaitingPickup, aggregate.Status())
	assert.Len(t, aggregate.Code(), rent.CodeLength)
	assert.True(t, boundLocker.IsOccupied())
	rentRepo.AssertExpectations(t)
	lockerRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDropoffRentCommandHandler_Handle_NotAuthorized(t *testing.T) {
	ctx := t.Context()
	lockerID := kernel.NewUUID()
	aggregate := newWaitingDropoffRent(t, lockerID)

	stranger := account.Principal{
		ID:      kernel.NewUUID(),
		Email:   "stranger@x.com",
		Role:    account.RegularUser,
		Country: kernel.France,
	}
	cmd, err := commands.NewDropoffRentCommand(aggregate.ID(), stranger)
	require.NoError(t, err)

	rentRepo := new(MockRentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RentRepository").Return(rentRepo).Once(),
		rentRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRentUoWFactory)
	factory.On("Create").Return(uow).Once()
	notifier := new(MockNotifier)

	h := commands.NewDropoffRentCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, rent.ErrNotAuthorizedToView)
	assert.Equal(t, rent.WaitingDropoff, aggregate.Status())
	notifier.AssertNotCalled(t, "NotifyDropoff", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestDropoffRentCommandHandler_Handle_SecondDropoffForbidden(t *testing.T) {
	ctx := t.Context()
	lockerID := kernel.NewUUID()
	aggregate := newWaitingDropoffRent(t, lockerID)
	require.NoError(t, aggregate.Dropoff("CODE2345"))

	cmd, err := commands.NewDropoffRentCommand(aggregate.ID(), senderPrincipal())
	require.NoError(t, err)

	rentRepo := new(MockRentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RentRepository").Return(rentRepo).Once(),
		rentRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRentUoWFactory)
	factory.On("Create").Return(uow).Once()
	notifier := new(MockNotifier)

	h := commands.NewDropoffRentCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, rent.ErrNotInDropoffStatus)
	assert.Equal(t, "CODE2345", aggregate.Code())
	uow.AssertExpectations(t)
}

func TestDropoffRentCommandHandler_Handle_NotificationFailureAfterCommit(t *testing.T) {
	ctx := t.Context()
	lockerID := kernel.NewUUID()
	aggregate := newWaitingDropoffRent(t, lockerID)
	boundLocker := newReservedLocker(t, lockerID)

	cmd, err := commands.NewDropoffRentCommand(aggregate.ID(), senderPrincipal())
	require.NoError(t, err)

	rentRepo := new(MockRentRepository)
	lockerRepo := new(MockLockerRepository)
	notifier := new(MockNotifier)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RentRepository").Return(rentRepo).Once(),
		rentRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("LockerRepository").Return(lockerRepo).Once(),
		lockerRepo.On("Get", mock.Anything, lockerID).Return(boundLocker, nil).Once(),
		rentRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		lockerRepo.On("Update", mock.Anything, boundLocker).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("NotifyDropoff", mock.Anything, aggregate).
			Return(errors.New("smtp unreachable")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDropoffRentCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)

	// The transition is committed even though notification failed.
	require.Error(t, err)
	assert.Equal(t, rent.WaitingPickup, aggregate.Status())
	uow.AssertExpectations(t)
}
