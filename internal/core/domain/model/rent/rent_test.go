package rent_test

import (
	"testing"

	"parcellocker/internal/core/domain/model/account"
	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/rent"
	"parcellocker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	senderEmail   = "sender@example.com"
	receiverEmail = "receiver@example.com"
)

// Test helper functions.
func createValidRent(t *testing.T) *rent.Rent {
	t.Helper()
	r, err := rent.NewRent(kernel.NewUUID(), 2.5, kernel.SizeMedium, senderEmail, receiverEmail)
	require.NoError(t, err)
	require.NotNil(t, r)
	return r
}

func createAllocatedRent(t *testing.T) (*rent.Rent, kernel.UUID) {
	t.Helper()
	r := createValidRent(t)
	lockerID := kernel.NewUUID()
	require.NoError(t, r.Allocate(lockerID))
	return r, lockerID
}

func createDroppedOffRent(t *testing.T, code string) *rent.Rent {
	t.Helper()
	r, _ := createAllocatedRent(t)
	require.NoError(t, r.Dropoff(code))
	return r
}

func regularPrincipal(email string) account.Principal {
	return account.Principal{
		ID:      kernel.NewUUID(),
		Email:   email,
		Role:    account.RegularUser,
		Country: kernel.France,
	}
}

func operationsPrincipal() account.Principal {
	return account.Principal{
		ID:      kernel.NewUUID(),
		Email:   "ops@example.com",
		Role:    account.OperationsUser,
		Country: kernel.France,
	}
}

func TestNewRent(t *testing.T) {
	t.Run("should create rent with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()

		r, err := rent.NewRent(id, 1.2, kernel.SizeSmall, senderEmail, receiverEmail)

		require.NoError(t, err)
		assert.NotNil(t, r)
		require.NoError(t, r.Validate())
		assert.True(t, r.ID().IsEqual(id))
		assert.Nil(t, r.LockerID())
		assert.InEpsilon(t, 1.2, r.Weight(), 1e-9)
		assert.Equal(t, kernel.SizeSmall, r.Size())
		assert.Equal(t, rent.Created, r.Status())
		assert.Equal(t, senderEmail, r.SenderEmail())
		assert.Equal(t, receiverEmail, r.ReceiverEmail())
		assert.Empty(t, r.Code())
	})

	t.Run("should return error for invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		r, err := rent.NewRent(invalidID, 1.2, kernel.SizeSmall, senderEmail, receiverEmail)

		require.Error(t, err)
		assert.Nil(t, r)
		assert.Contains(t, err.Error(), kernel.ErrUUIDIsNotConstructed.Error())
	})

	t.Run("should return error for non-positive weight", func(t *testing.T) {
		testCases := []struct {
			name   string
			weight float64
		}{
			{"zero weight", 0},
			{"negative weight", -1.5},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				r, err := rent.NewRent(kernel.NewUUID(), tc.weight, kernel.SizeSmall, senderEmail, receiverEmail)

				require.Error(t, err)
				assert.Nil(t, r)
				assert.Contains(t, err.Error(), "weight")
			})
		}
	})

	t.Run("should return error for invalid size", func(t *testing.T) {
		r, err := rent.NewRent(kernel.NewUUID(), 1, kernel.SizeUnknown, senderEmail, receiverEmail)

		require.Error(t, err)
		assert.Nil(t, r)
		assert.Contains(t, err.Error(), "size")
	})

	t.Run("should return error for missing emails", func(t *testing.T) {
		r, err := rent.NewRent(kernel.NewUUID(), 1, kernel.SizeSmall, "", "")

		require.Error(t, err)
		assert.Nil(t, r)
		assert.ErrorIs(t, err, rent.ErrSenderEmailIsRequired)
		assert.ErrorIs(t, err, rent.ErrReceiverEmailIsRequired)
	})
}

func TestRestoreRent(t *testing.T) {
	t.Run("should restore created rent without locker and code", func(t *testing.T) {
		id := kernel.NewUUID()

		r, err := rent.RestoreRent(id, nil, 3, kernel.SizeLarge, rent.Created, senderEmail, receiverEmail, "", 1)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, rent.Created, r.Status())
		assert.Nil(t, r.LockerID())
		assert.Equal(t, 1, r.Version())
	})

	t.Run("should restore waiting pickup rent with locker and code", func(t *testing.T) {
		lockerID := kernel.NewUUID()

		r, err := rent.RestoreRent(
			kernel.NewUUID(), &lockerID, 3, kernel.SizeLarge,
			rent.WaitingPickup, senderEmail, receiverEmail, "AAAA2222", 3,
		)

		require.NoError(t, err)
		require.NotNil(t, r.LockerID())
		assert.True(t, r.LockerID().IsEqual(lockerID))
		assert.Equal(t, "AAAA2222", r.Code())
	})

	t.Run("should reject created rent with locker", func(t *testing.T) {
		lockerID := kernel.NewUUID()

		r, err := rent.RestoreRent(
			kernel.NewUUID(), &lockerID, 3, kernel.SizeLarge,
			rent.Created, senderEmail, receiverEmail, "", 1,
		)

		require.Error(t, err)
		assert.Nil(t, r)
	})

	t.Run("should reject waiting pickup rent without code", func(t *testing.T) {
		lockerID := kernel.NewUUID()

		r, err := rent.RestoreRent(
			kernel.NewUUID(), &lockerID, 3, kernel.SizeLarge,
			rent.WaitingPickup, senderEmail, receiverEmail, "", 1,
		)

		require.Error(t, err)
		assert.Nil(t, r)
	})

	t.Run("should reject non-positive version", func(t *testing.T) {
		r, err := rent.RestoreRent(
			kernel.NewUUID(), nil, 3, kernel.SizeLarge,
			rent.Created, senderEmail, receiverEmail, "", 0,
		)

		require.Error(t, err)
		assert.Nil(t, r)
		assert.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	})
}

func TestRentValidate(t *testing.T) {
	t.Run("should fail on zero-value rent", func(t *testing.T) {
		var r rent.Rent
		assert.ErrorIs(t, r.Validate(), rent.ErrRentIsNotConstructed)
	})

	t.Run("should fail on nil rent", func(t *testing.T) {
		var r *rent.Rent
		assert.ErrorIs(t, r.Validate(), rent.ErrRentIsNotConstructed)
	})
}

func TestRentAllocate(t *testing.T) {
	t.Run("should bind locker and advance to waiting dropoff", func(t *testing.T) {
		r := createValidRent(t)
		lockerID := kernel.NewUUID()

		err := r.Allocate(lockerID)

		require.NoError(t, err)
		assert.Equal(t, rent.WaitingDropoff, r.Status())
		require.NotNil(t, r.LockerID())
		assert.True(t, r.LockerID().IsEqual(lockerID))
	})

	t.Run("should reject second allocation", func(t *testing.T) {
		r, lockerID := createAllocatedRent(t)

		err := r.Allocate(kernel.NewUUID())

		require.Error(t, err)
		assert.True(t, r.LockerID().IsEqual(lockerID))
	})
}

func TestRentMoveToLocker(t *testing.T) {
	t.Run("should behave like allocation on created rent", func(t *testing.T) {
		r := createValidRent(t)
		lockerID := kernel.NewUUID()

		require.NoError(t, r.MoveToLocker(lockerID))

		assert.Equal(t, rent.WaitingDropoff, r.Status())
		assert.True(t, r.LockerID().IsEqual(lockerID))
	})

	t.Run("should rebind without status change on progressed rent", func(t *testing.T) {
		r, _ := createAllocatedRent(t)
		newLockerID := kernel.NewUUID()

		require.NoError(t, r.MoveToLocker(newLockerID))

		assert.Equal(t, rent.WaitingDropoff, r.Status())
		assert.True(t, r.LockerID().IsEqual(newLockerID))
	})
}

func TestRentChangeWeightAndSize(t *testing.T) {
	r := createValidRent(t)

	require.NoError(t, r.ChangeWeight(7.25))
	require.NoError(t, r.ChangeSize(kernel.SizeLarge))
	assert.InEpsilon(t, 7.25, r.Weight(), 1e-9)
	assert.Equal(t, kernel.SizeLarge, r.Size())

	require.Error(t, r.ChangeWeight(0))
	require.Error(t, r.ChangeSize(kernel.SizeUnknown))
}

func TestRentDropoff(t *testing.T) {
	t.Run("should store code and advance to waiting pickup", func(t *testing.T) {
		r, _ := createAllocatedRent(t)

		err := r.Dropoff("CODE2345")

		require.NoError(t, err)
		assert.Equal(t, rent.WaitingPickup, r.Status())
		assert.Equal(t, "CODE2345", r.Code())
	})

	t.Run("should reject dropoff without a locker", func(t *testing.T) {
		r := createValidRent(t)

		err := r.Dropoff("CODE2345")

		assert.ErrorIs(t, err, rent.ErrNoLockerAssigned)
	})

	t.Run("should reject repeated dropoff", func(t *testing.T) {
		r := createDroppedOffRent(t, "CODE2345")

		err := r.Dropoff("OTHER234")

		assert.ErrorIs(t, err, rent.ErrNotInDropoffStatus)
		assert.Equal(t, "CODE2345", r.Code())
	})
}

func TestRentPickup(t *testing.T) {
	t.Run("should deliver with the matching code", func(t *testing.T) {
		r := createDroppedOffRent(t, "CODE2345")

		err := r.Pickup("CODE2345")

		require.NoError(t, err)
		assert.Equal(t, rent.Delivered, r.Status())
	})

	t.Run("should reject wrong code and keep status", func(t *testing.T) {
		r := createDroppedOffRent(t, "CODE2345")

		err := r.Pickup("WRONG234")

		assert.ErrorIs(t, err, rent.ErrInvalidCode)
		assert.Equal(t, rent.WaitingPickup, r.Status())
	})

	t.Run("code comparison is case sensitive", func(t *testing.T) {
		r := createDroppedOffRent(t, "CODE2345")

		err := r.Pickup("code2345")

		assert.ErrorIs(t, err, rent.ErrInvalidCode)
	})

	t.Run("should reject pickup before dropoff", func(t *testing.T) {
		r, _ := createAllocatedRent(t)

		err := r.Pickup("CODE2345")

		assert.ErrorIs(t, err, rent.ErrNotInPickupStatus)
	})

	t.Run("should reject second pickup with the same code", func(t *testing.T) {
		r := createDroppedOffRent(t, "CODE2345")
		require.NoError(t, r.Pickup("CODE2345"))

		err := r.Pickup("CODE2345")

		assert.ErrorIs(t, err, rent.ErrNotInPickupStatus)
	})
}

func TestRentAuthorization(t *testing.T) {
	t.Run("sender may view, receiver may not", func(t *testing.T) {
		r := createValidRent(t)

		assert.NoError(t, r.EnsureViewableBy(regularPrincipal(senderEmail)))
		assert.ErrorIs(t, r.EnsureViewableBy(regularPrincipal(receiverEmail)), rent.ErrNotAuthorizedToView)
		assert.ErrorIs(t, r.EnsureViewableBy(regularPrincipal("stranger@example.com")), rent.ErrNotAuthorizedToView)
	})

	t.Run("receiver may pick up, sender may not", func(t *testing.T) {
		r := createValidRent(t)

		assert.NoError(t, r.EnsurePickupBy(regularPrincipal(receiverEmail)))
		assert.ErrorIs(t, r.EnsurePickupBy(regularPrincipal(senderEmail)), rent.ErrNotAuthorizedToUpdate)
	})

	t.Run("operations users bypass both rules", func(t *testing.T) {
		r := createValidRent(t)

		assert.NoError(t, r.EnsureViewableBy(operationsPrincipal()))
		assert.NoError(t, r.EnsurePickupBy(operationsPrincipal()))
	})
}
