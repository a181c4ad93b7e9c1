package memory

import (
	"context"
	"strings"

	"gatekeeper/config"
	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/errors"
)

// userRepository implements the repository.UserRepository interface over a fixed user list.
// It is read-only after construction, so lookups need no locking.
type userRepository struct {
	users map[string]entity.User
}

// NewUserRepository builds the user directory from the users section of the config.
// Blank or duplicate usernames and undecodable password hashes fail construction.
func NewUserRepository(cfg *config.Config) (repository.UserRepository, error) {
	users := make(map[string]entity.User, len(cfg.Users))

	for i, u := range cfg.Users {
		username := strings.TrimSpace(u.Username)
		if username == "" {
			return nil, errors.Errorf("users[%d]: username must not be blank", i)
		}
		if _, exists := users[username]; exists {
			return nil, errors.Errorf("users[%d]: duplicate username %q", i, username)
		}

		password, err := entity.ParseHashedPassword(u.PasswordHash)
		if err != nil {
			return nil, errors.Wrapf(err, "users[%d]: invalid passwordHash for %q", i, username)
		}

		users[username] = entity.User{
			Username:    username,
			DisplayName: u.DisplayName,
			Password:    password,
			Roles:       entity.Roles(u.Roles).Normalize(),
		}
	}

	return &userRepository{users: users}, nil
}

// FindByUsername retrieves a copy of the user, or ErrUserNotFound.
func (repo *userRepository) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	user, ok := repo.users[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	user.Roles = entity.Roles(user.Roles.ToStrings())

	return &user, nil
}
