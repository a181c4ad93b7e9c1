// Package handler contains the HTTP handlers for the API delivery.
package handler

import (
	"net/http"

	"gatekeeper/internal/delivery/api/response"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/errors"
	"gatekeeper/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionHandler exposes authenticate, refresh and revoke.
type SessionHandler struct {
	uc usecase.AuthUsecase
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.AuthUsecase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

// Authenticate exchanges username/password for a token pair.
func (h *SessionHandler) Authenticate(c echo.Context) error {
	var input usecase.AuthenticateInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	output, err := h.uc.Authenticate(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, output)
}

// Refresh rotates a token pair.
func (h *SessionHandler) Refresh(c echo.Context) error {
	var input usecase.TokenInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	output, err := h.uc.Refresh(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, output)
}

// Revoke ends the session of a token pair.
func (h *SessionHandler) Revoke(c echo.Context) error {
	var input usecase.TokenInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	if err := h.uc.Revoke(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func bindAndValidate(c echo.Context, input any) error {
	if err := c.Bind(input); err != nil {
		return errors.Wrap(domainerrors.ErrInvalidInput, "request body is not valid JSON")
	}

	return c.Validate(input)
}
