package services_test

import (
	"testing"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/locker"
	"parcellocker/internal/core/domain/model/rent"
	"parcellocker/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper functions.
func createRent(t *testing.T, size kernel.Size) *rent.Rent {
	t.Helper()
	r, err := rent.NewRent(kernel.NewUUID(), 2, size, "sender@example.com", "receiver@example.com")
	require.NoError(t, err)
	return r
}

func createLocker(t *testing.T, size kernel.Size) *locker.Locker {
	t.Helper()
	l, err := locker.NewLocker(kernel.NewUUID(), kernel.NewUUID(), size)
	require.NoError(t, err)
	return l
}

func TestLockerAllocator_Allocate(t *testing.T) {
	t.Run("should reserve first matching locker and bind the rent", func(t *testing.T) {
		r := createRent(t, kernel.SizeMedium)
		locker1 := createLocker(t, kernel.SizeMedium)
		locker2 := createLocker(t, kernel.SizeMedium)
		allocator := services.LockerAllocator{}

		result, err := allocator.Allocate(r, []*locker.Locker{locker1, locker2})

		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.True(t, result.IsEqual(locker1), "should return the first matching locker")

		// Verify the rent is bound and the locker reserved
		assert.Equal(t, rent.WaitingDropoff, r.Status())
		require.NotNil(t, r.LockerID())
		assert.True(t, r.LockerID().IsEqual(locker1.ID()))
		assert.Equal(t, locker.StatusClosed, locker1.Status())
		assert.False(t, locker1.IsOccupied())

		// The second locker is untouched
		assert.Equal(t, locker.StatusOpen, locker2.Status())
	})

	t.Run("should skip lockers of a different size", func(t *testing.T) {
		r := createRent(t, kernel.SizeLarge)
		smallLocker := createLocker(t, kernel.SizeSmall)
		largeLocker := createLocker(t, kernel.SizeLarge)
		allocator := services.LockerAllocator{}

		result, err := allocator.Allocate(r, []*locker.Locker{smallLocker, largeLocker})

		require.NoError(t, err)
		assert.True(t, result.IsEqual(largeLocker))
		assert.Equal(t, locker.StatusOpen, smallLocker.Status())
	})

	t.Run("should skip closed and occupied lockers", func(t *testing.T) {
		r := createRent(t, kernel.SizeMedium)

		closedLocker := createLocker(t, kernel.SizeMedium)
		closedLocker.Close()

		occupiedLocker := createLocker(t, kernel.SizeMedium)
		occupiedLocker.Occupy()

		freeLocker := createLocker(t, kernel.SizeMedium)
		allocator := services.LockerAllocator{}

		result, err := allocator.Allocate(r, []*locker.Locker{closedLocker, occupiedLocker, freeLocker})

		require.NoError(t, err)
		assert.True(t, result.IsEqual(freeLocker))
	})

	t.Run("should return error when no lockers provided", func(t *testing.T) {
		r := createRent(t, kernel.SizeMedium)
		allocator := services.LockerAllocator{}

		result, err := allocator.Allocate(r, nil)

		require.Error(t, err)
		assert.Nil(t, result)
		require.ErrorIs(t, err, services.ErrLockerNotFound)
		assert.Equal(t, rent.Created, r.Status())
	})

	t.Run("should return error when no locker matches", func(t *testing.T) {
		r := createRent(t, kernel.SizeLarge)
		locker1 := createLocker(t, kernel.SizeSmall)
		locker2 := createLocker(t, kernel.SizeMedium)
		allocator := services.LockerAllocator{}

		result, err := allocator.Allocate(r, []*locker.Locker{locker1, locker2})

		require.Error(t, err)
		assert.Nil(t, result)
		require.ErrorIs(t, err, services.ErrLockerNotFound)
		assert.Equal(t, rent.Created, r.Status())
	})

	t.Run("should return error when rent is invalid", func(t *testing.T) {
		var invalidRent *rent.Rent
		allocator := services.LockerAllocator{}

		result, err := allocator.Allocate(invalidRent, []*locker.Locker{createLocker(t, kernel.SizeSmall)})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, rent.ErrRentIsNotConstructed, err)
	})

	t.Run("should return error when rent is already allocated", func(t *testing.T) {
		r := createRent(t, kernel.SizeMedium)
		require.NoError(t, r.Allocate(kernel.NewUUID()))
		allocator := services.LockerAllocator{}

		result, err := allocator.Allocate(r, []*locker.Locker{createLocker(t, kernel.SizeMedium)})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "not a valid status to assign")
	})

	t.Run("should return error when locker slice contains invalid locker", func(t *testing.T) {
		r := createRent(t, kernel.SizeMedium)
		var invalidLocker locker.Locker
		allocator := services.LockerAllocator{}

		result, err := allocator.Allocate(r, []*locker.Locker{&invalidLocker})

		require.Error(t, err)
		assert.Nil(t, result)
		require.ErrorIs(t, err, locker.ErrLockerIsNotConstructed)
		assert.Equal(t, rent.Created, r.Status())
	})

	t.Run("should work with zero value allocator", func(t *testing.T) {
		var allocator services.LockerAllocator
		r := createRent(t, kernel.SizeSmall)
		l := createLocker(t, kernel.SizeSmall)

		result, err := allocator.Allocate(r, []*locker.Locker{l})

		require.NoError(t, err)
		assert.True(t, result.IsEqual(l))
	})
}
