package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoles_Normalize(t *testing.T) {
	roles := Roles{"Admin", " ", "Normal", "Admin", ""}

	assert.Equal(t, Roles{"Admin", "Normal"}, roles.Normalize())
	assert.True(t, roles.HasBlank())
	assert.False(t, roles.Normalize().HasBlank())
}

func TestRoles_ContainsAny(t *testing.T) {
	roles := Roles{RoleNormal}

	assert.True(t, roles.ContainsAny(RoleAdmin, RoleNormal))
	assert.False(t, roles.ContainsAny(RoleAdmin))
	assert.False(t, Roles(nil).ContainsAny(RoleNormal))
}

func TestRefreshTokenRecord_IsActiveAt(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	expires := time.Date(2026, 1, 1, 12, 0, 0, 0, loc)

	record := NewRefreshTokenRecord("token", expires)

	assert.Equal(t, time.UTC, record.Expires.Location())
	assert.True(t, record.IsActiveAt(expires.Add(-time.Second)))
	assert.False(t, record.IsActiveAt(expires))
	assert.False(t, record.IsActiveAt(expires.Add(time.Second)))
}
