package handler

import (
	"net/http"

	"gatekeeper/internal/errors"
	"gatekeeper/internal/usecase"

	"github.com/labstack/echo/v4"
)

// TestAuthMessage is the body of the role-gated probe.
const TestAuthMessage = "All your base is belong to us"

// TestHandler handles development-only endpoints.
type TestHandler struct {
	uc usecase.AuthUsecase
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(uc usecase.AuthUsecase) *TestHandler {
	return &TestHandler{uc: uc}
}

// GenerateHashedPassword returns the storable hash of ?password= as plain text,
// for seeding the users section of the config.
func (h *TestHandler) GenerateHashedPassword(c echo.Context) error {
	encoded, err := h.uc.HashPassword(c.Request().Context(), c.QueryParam("password"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.String(http.StatusOK, encoded)
}

// TestAuth answers only requests whose bearer token passed authentication and the role gate.
func (h *TestHandler) TestAuth(c echo.Context) error {
	return c.String(http.StatusOK, TestAuthMessage)
}
