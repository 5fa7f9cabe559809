// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"connect/internal/delivery/http/middleware"
	"connect/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware, injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	BookingHandler *handler.BookingHandler
	ReviewHandler  *handler.ReviewHandler
	ChatHandler    *handler.ChatHandler
	DeviceHandler  *handler.DeviceHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticate := r.params.AuthMiddleware.Authenticate

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", r.params.AuthHandler.Signup)
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/logout", r.params.AuthHandler.Logout)
		authGroup.GET("/current-user", r.params.AuthHandler.CurrentUser, authenticate)
	}

	profileGroup := api.Group("/profiles")
	{
		// Public discovery routes
		profileGroup.GET("/search", r.params.ProfileHandler.Search)
		profileGroup.GET("/user/:userId", r.params.ProfileHandler.GetByUserID)
		profileGroup.GET("/user/:userId/picture", r.params.ProfileHandler.ServePicture)
		profileGroup.GET("/user/:userId/qrcode", r.params.ProfileHandler.ShareQR)

		// Own-profile routes
		profileGroup.GET("/me", r.params.ProfileHandler.GetOwn, authenticate)
		profileGroup.POST("", r.params.ProfileHandler.Upsert, authenticate)
		profileGroup.PUT("", r.params.ProfileHandler.Upsert, authenticate)
		profileGroup.DELETE("", r.params.ProfileHandler.Delete, authenticate)
		profileGroup.POST("/picture", r.params.ProfileHandler.UploadPicture, authenticate)
	}

	bookingGroup := api.Group("/bookings")
	bookingGroup.Use(authenticate)
	{
		bookingGroup.POST("", r.params.BookingHandler.Create)
		bookingGroup.GET("/user", r.params.BookingHandler.ListAsConsumer)
		bookingGroup.GET("/provider", r.params.BookingHandler.ListAsProvider)
		bookingGroup.PUT("/status", r.params.BookingHandler.UpdateStatus)
	}

	reviewGroup := api.Group("/reviews")
	{
		reviewGroup.GET("/user/:userId", r.params.ReviewHandler.ListForUser)
		reviewGroup.POST("", r.params.ReviewHandler.Create, authenticate)
		reviewGroup.PUT("/:reviewId", r.params.ReviewHandler.Update, authenticate)
		reviewGroup.DELETE("/:reviewId", r.params.ReviewHandler.Delete, authenticate)
	}

	chatGroup := api.Group("/chat")
	chatGroup.Use(authenticate)
	{
		chatGroup.POST("/send", r.params.ChatHandler.Send)
		chatGroup.GET("/stream", r.params.ChatHandler.Stream)
		chatGroup.GET("/:userId", r.params.ChatHandler.Conversation)
		chatGroup.PUT("/:messageId/read", r.params.ChatHandler.MarkRead)
	}

	deviceGroup := api.Group("/devices")
	deviceGroup.Use(authenticate)
	{
		deviceGroup.POST("", r.params.DeviceHandler.RegisterDevice)
		deviceGroup.GET("", r.params.DeviceHandler.GetUserDevices)
	}
}
