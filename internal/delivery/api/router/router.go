// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gatekeeper/config"
	"gatekeeper/internal/delivery/api/middleware"
	"gatekeeper/internal/delivery/api/router/handler"
	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler *handler.SessionHandler
	TestHandler    *handler.TestHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Metrics
	Config         *config.Config
}

// Router holds all the handlers that need to be registered.
type Router struct {
	sessionHandler *handler.SessionHandler
	testHandler    *handler.TestHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Metrics
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *Router {
	return &Router{
		sessionHandler: params.SessionHandler,
		testHandler:    params.TestHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *Router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics != nil && r.config.Metrics.Enabled && r.metrics != nil {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	sessionGroup := e.Group("/session")
	{
		sessionGroup.POST("/authenticate", r.sessionHandler.Authenticate)
		sessionGroup.POST("/refresh", r.sessionHandler.Refresh)
		sessionGroup.POST("/revoke", r.sessionHandler.Revoke)
	}
}

// RegisterTestRoutes adds development endpoints when enabled in config.
func (r *Router) RegisterTestRoutes(e *echo.Echo) {
	if r.config.TestRoutes == nil || !r.config.TestRoutes.Enabled {
		return
	}

	testGroup := e.Group("/test")
	testGroup.GET("/generateHashedPassword", r.testHandler.GenerateHashedPassword)
	testGroup.GET("/testAuth", r.testHandler.TestAuth,
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireRole(entity.RoleNormal, entity.RoleAdmin),
	)
}
