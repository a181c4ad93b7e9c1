package validator

import (
	"testing"

	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/errors"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Username string `validate:"notblank"`
	Password string `validate:"notblank"`
}

func TestValidator_NotBlank(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sample{Username: "alice", Password: "hunter2"}))

	err := v.Validate(&sample{Username: "  \t", Password: "hunter2"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "Username")

	err = v.Validate(&sample{})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "Password")
}
