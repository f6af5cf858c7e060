// Package router contains routing setup for the HTTP delivery.
package router

import (
	"fixflow/internal/delivery/http/middleware"
	"fixflow/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RequestHandler *handler.RequestHandler
	SupplyHandler  *handler.SupplyHandler
	UserHandler    *handler.UserHandler
	MessageHandler *handler.MessageHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	requestHandler *handler.RequestHandler
	supplyHandler  *handler.SupplyHandler
	userHandler    *handler.UserHandler
	messageHandler *handler.MessageHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		requestHandler: params.RequestHandler,
		supplyHandler:  params.SupplyHandler,
		userHandler:    params.UserHandler,
		messageHandler: params.MessageHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Role checks live in the usecases, so routes only distinguish public from
// authenticated.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Maintenance request routes, all authenticated.
	requestGroup := e.Group("/requests")
	requestGroup.Use(r.authMiddleware.Authenticate)
	{
		requestGroup.POST("", r.requestHandler.Create)
		requestGroup.GET("", r.requestHandler.List)
		// Static paths must be registered before the /:id wildcard.
		requestGroup.GET("/export-report", r.requestHandler.ExportReport)
		requestGroup.GET("/user/:userId", r.requestHandler.ListForUser)
		requestGroup.GET("/:id", r.requestHandler.GetByID)
		requestGroup.PUT("/:id", r.requestHandler.Update)
		requestGroup.DELETE("/:id", r.requestHandler.Delete)
		requestGroup.PATCH("/:id/status", r.requestHandler.ChangeStatus)
		requestGroup.PATCH("/:id/assign", r.requestHandler.Assign)
		requestGroup.PATCH("/:id/resolve", r.requestHandler.Resolve)
		requestGroup.POST("/:id/note", r.requestHandler.AddNote)
		requestGroup.GET("/:id/qrcode", r.requestHandler.QRCode)
	}

	// Alternative supply routes, all authenticated.
	supplyGroup := e.Group("/supplies")
	supplyGroup.Use(r.authMiddleware.Authenticate)
	{
		supplyGroup.POST("", r.supplyHandler.Create)
		supplyGroup.GET("", r.supplyHandler.List)
		supplyGroup.GET("/my", r.supplyHandler.ListMine)
		supplyGroup.GET("/:id", r.supplyHandler.GetByID)
		supplyGroup.PATCH("/:id/status", r.supplyHandler.ChangeStatus)
		supplyGroup.PATCH("/:id/assign", r.supplyHandler.Assign)
		supplyGroup.POST("/:id/note", r.supplyHandler.AddNote)
		supplyGroup.DELETE("/:id", r.supplyHandler.Delete)
	}

	// User routes; register and login are public.
	userGroup := e.Group("/users")
	{
		userGroup.POST("/register", r.userHandler.Register)
		userGroup.POST("/login", r.userHandler.Login)
	}
	userAuthGroup := e.Group("/users")
	userAuthGroup.Use(r.authMiddleware.Authenticate)
	{
		userAuthGroup.POST("/admin", r.userHandler.RegisterAdmin)
		userAuthGroup.GET("", r.userHandler.List)
		userAuthGroup.GET("/:id", r.userHandler.GetProfile)
		userAuthGroup.PUT("/:id", r.userHandler.UpdateProfile)
		userAuthGroup.PATCH("/:id/password", r.userHandler.ChangePassword)
		userAuthGroup.DELETE("/:id", r.userHandler.Delete)
	}

	// Contact message routes; external submission is public.
	messageGroup := e.Group("/messages")
	{
		messageGroup.POST("/external", r.messageHandler.CreateExternal)
	}
	messageAuthGroup := e.Group("/messages")
	messageAuthGroup.Use(r.authMiddleware.Authenticate)
	{
		messageAuthGroup.POST("/internal", r.messageHandler.SendInternal)
		messageAuthGroup.GET("", r.messageHandler.List)
		// Static paths must be registered before the /:id wildcard.
		messageAuthGroup.GET("/external/all", r.messageHandler.ListExternal)
		messageAuthGroup.GET("/user/:userId", r.messageHandler.ListForUser)
		messageAuthGroup.GET("/:id", r.messageHandler.GetByID)
		messageAuthGroup.PATCH("/:id/status", r.messageHandler.ChangeStatus)
		messageAuthGroup.PATCH("/:id/reply", r.messageHandler.Reply)
		messageAuthGroup.PATCH("/:id/feature", r.messageHandler.SetFeatured)
		messageAuthGroup.DELETE("/:id", r.messageHandler.Delete)
	}
}
