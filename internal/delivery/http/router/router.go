// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"blog/internal/delivery/http/middleware"
	"blog/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	PostHandler    *handler.PostHandler
	CommentHandler *handler.CommentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	postHandler    *handler.PostHandler
	commentHandler *handler.CommentHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		postHandler:    params.PostHandler,
		commentHandler: params.CommentHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Registration and login are the only unauthenticated write routes.
	authGroup := e.Group("/authentication")
	{
		authGroup.POST("/sign-up", r.authHandler.SignUp)
		authGroup.POST("/sign-in", r.authHandler.SignIn)
	}

	// Posts are fully owner scoped and require authentication throughout,
	// including the per-post comment routes.
	postGroup := e.Group("/posts")
	postGroup.Use(r.authMiddleware.Authenticate)
	{
		postGroup.POST("", r.postHandler.Create)
		postGroup.GET("", r.postHandler.FindAll)
		postGroup.GET("/:id", r.postHandler.FindOne)
		postGroup.PATCH("/:id", r.postHandler.Update)
		postGroup.DELETE("/:id", r.postHandler.Remove)
		postGroup.POST("/:id/comments", r.postHandler.CreateComment)
		postGroup.GET("/:id/comments", r.postHandler.FindAllComments)
	}

	// Comment reads are public; writes go through the email-claim guard in
	// the usecase, so only authentication is enforced here.
	commentGroup := e.Group("/comments")
	{
		commentGroup.GET("", r.commentHandler.FindAll)
		commentGroup.GET("/:id", r.commentHandler.FindOne)
		commentGroup.PATCH("/:id", r.commentHandler.Update, r.authMiddleware.Authenticate)
		commentGroup.DELETE("/:id", r.commentHandler.Remove, r.authMiddleware.Authenticate)
	}
}
