//go:build unit

package user_test

import (
	"testing"

	"bus-seat-booking/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewRole(t *testing.T) {
	for _, s := range []string{"viewer", "operator", "admin"} {
		role, err := user.NewRole(s)
		assert.NoError(t, err)
		assert.Equal(t, s, role.String())
	}

	_, err := user.NewRole("root")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
	_, err = user.NewRole("")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestRole_AtLeast(t *testing.T) {
	testCases := []struct {
		role user.Role
		min  user.Role
		want bool
	}{
		{user.RoleViewer, user.RoleViewer, true},
		{user.RoleViewer, user.RoleOperator, false},
		{user.RoleOperator, user.RoleViewer, true},
		{user.RoleAdmin, user.RoleOperator, true},
		{user.Role("ghost"), user.RoleViewer, false},
		{user.RoleAdmin, user.Role("ghost"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.role.String()+">="+tc.min.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.role.AtLeast(tc.min))
		})
	}
}

func TestActor_CanAccess(t *testing.T) {
	owner := uuid.New()

	assert.True(t, user.NewActor(owner, user.RoleViewer).CanAccess(owner))
	assert.False(t, user.NewActor(uuid.New(), user.RoleOperator).CanAccess(owner))
	assert.True(t, user.NewActor(uuid.New(), user.RoleAdmin).CanAccess(owner))
	assert.False(t, user.NewActor(uuid.Nil, user.RoleViewer).CanAccess(uuid.Nil))
}
