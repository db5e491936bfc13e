package account_test

import (
	"testing"

	"parcellocker/internal/core/domain/model/account"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromString(t *testing.T) {
	t.Run("should parse valid roles", func(t *testing.T) {
		role, err := account.RoleFromString("REGULAR_USER")
		require.NoError(t, err)
		assert.Equal(t, account.RegularUser, role)

		role, err = account.RoleFromString("OPERATIONS_USER")
		require.NoError(t, err)
		assert.Equal(t, account.OperationsUser, role)
	})

	t.Run("should return error for invalid strings", func(t *testing.T) {
		for _, input := range []string{"", "ADMIN", "regular_user"} {
			t.Run(input, func(t *testing.T) {
				role, err := account.RoleFromString(input)

				require.Error(t, err)
				assert.Equal(t, account.RoleUnknown, role)
			})
		}
	})
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "REGULAR_USER", account.RegularUser.String())
	assert.Equal(t, "OPERATIONS_USER", account.OperationsUser.String())
	assert.Equal(t, "UNKNOWN", account.RoleUnknown.String())
}

func TestRoleValidate(t *testing.T) {
	assert.NoError(t, account.RegularUser.Validate())
	assert.NoError(t, account.OperationsUser.Validate())
	assert.Error(t, account.RoleUnknown.Validate())
	assert.Error(t, account.Role(42).Validate())
}
