package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatekeeper/config"
	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/errors"
)

// base64(salt 0x01..0x10 || PBKDF2-SHA256("hunter2", salt, 10000, 20))
const aliceHash = "AQIDBAUGBwgJCgsMDQ4PECndgaTB44TlKRYKEfe6HztyEfqm"

func TestUserRepository_FindByUsername(t *testing.T) {
	cfg := &config.Config{Users: []config.UserConfig{
		{Username: "alice", DisplayName: "Alice", PasswordHash: aliceHash, Roles: []string{"Normal", "Admin", "Normal", ""}},
	}}

	repo, err := NewUserRepository(cfg)
	require.NoError(t, err)

	user, err := repo.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "Alice", user.DisplayName)
	assert.Equal(t, entity.Roles{"Normal", "Admin"}, user.Roles)
	assert.Equal(t, aliceHash, user.Password.AsBase64String())

	user.Roles[0] = "Mutated"
	again, err := repo.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "Normal", again.Roles[0])

	_, err = repo.FindByUsername(context.Background(), "Alice")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound), "lookups are case-sensitive")
}

func TestNewUserRepository_InvalidEntries(t *testing.T) {
	tests := []struct {
		name  string
		users []config.UserConfig
	}{
		{name: "blank username", users: []config.UserConfig{{Username: " ", PasswordHash: aliceHash}}},
		{name: "bad hash", users: []config.UserConfig{{Username: "alice", PasswordHash: "not-base64!"}}},
		{name: "duplicate", users: []config.UserConfig{
			{Username: "alice", PasswordHash: aliceHash},
			{Username: "alice", PasswordHash: aliceHash},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUserRepository(&config.Config{Users: tt.users})
			assert.Error(t, err)
		})
	}
}

func TestNewUserRepository_Empty(t *testing.T) {
	repo, err := NewUserRepository(&config.Config{})
	require.NoError(t, err)

	_, err = repo.FindByUsername(context.Background(), "alice")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}
