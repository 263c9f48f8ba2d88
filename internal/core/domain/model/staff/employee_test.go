package staff_test

import (
	"testing"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/staff"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmployee(t *testing.T) {
	t.Run("creates_valid_employee", func(t *testing.T) {
		// Given
		identity := kernel.NewIdentity()

		// When
		employee, err := staff.NewEmployee(identity, staff.RoleCook)

		// Then
		require.NoError(t, err)
		require.NoError(t, employee.Validate())
		assert.True(t, employee.Identity().IsEqual(identity))
		assert.Equal(t, staff.RoleCook, employee.Role())
	})

	t.Run("zero_identity_is_rejected", func(t *testing.T) {
		var zero kernel.Identity

		_, err := staff.NewEmployee(zero, staff.RoleCook)

		require.Error(t, err)
	})

	t.Run("unknown_role_is_rejected", func(t *testing.T) {
		_, err := staff.NewEmployee(kernel.NewIdentity(), staff.RoleUnknown)

		require.Error(t, err)
	})
}

func TestEmployee_Validate(t *testing.T) {
	t.Run("zero_value_is_not_constructed", func(t *testing.T) {
		var employee staff.Employee

		err := employee.Validate()

		require.Error(t, err)
		assert.Equal(t, staff.ErrEmployeeIsNotConstructed, err)
	})

	t.Run("nil_is_not_constructed", func(t *testing.T) {
		var employee *staff.Employee

		require.Error(t, employee.Validate())
	})
}

func TestEmployee_IsEqual(t *testing.T) {
	identity := kernel.NewIdentity()
	a, _ := staff.NewEmployee(identity, staff.RoleCook)
	b, _ := staff.NewEmployee(identity, staff.RoleDeliveryMan)
	c, _ := staff.NewEmployee(kernel.NewIdentity(), staff.RoleCook)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
