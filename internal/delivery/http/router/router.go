// Package router contains routing setup for the HTTP delivery.
package router

import (
	"shelf/internal/delivery/http/middleware"
	"shelf/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler  *handler.SessionHandler
	FavoriteHandler *handler.FavoriteHandler
	BookHandler     *handler.BookHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler  *handler.SessionHandler
	favoriteHandler *handler.FavoriteHandler
	bookHandler     *handler.BookHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:  params.SessionHandler,
		favoriteHandler: params.FavoriteHandler,
		bookHandler:     params.BookHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session routes. The GET probe deliberately skips the auth guard; it
	// reports token state instead of rejecting bad tokens.
	e.POST("/session", r.sessionHandler.Login)
	e.GET("/session", r.sessionHandler.Probe)
	e.DELETE("/session", r.sessionHandler.Logout)

	// Catalog routes
	bookGroup := e.Group("/books")
	{
		bookGroup.GET("", r.bookHandler.List)
		bookGroup.GET("/:id", r.bookHandler.Get)
		bookGroup.POST("", r.bookHandler.Create)
		bookGroup.PATCH("/:id", r.bookHandler.Update)
		bookGroup.DELETE("/:id", r.bookHandler.Delete)
	}

	// Favorite routes, all scoped to the authenticated user
	favoriteGroup := e.Group("/favorites")
	favoriteGroup.Use(r.authMiddleware.Authenticate)
	{
		favoriteGroup.GET("", r.favoriteHandler.List)
		favoriteGroup.GET("/check", r.favoriteHandler.Check)
		favoriteGroup.POST("", r.favoriteHandler.Add)
		favoriteGroup.DELETE("", r.favoriteHandler.Remove)
	}
}
