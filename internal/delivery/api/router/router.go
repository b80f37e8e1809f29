// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fabquote/internal/delivery/api/middleware"
	"fabquote/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	QuotationHandler *handler.QuotationHandler
	FileHandler      *handler.FileHandler
	AdminHandler     *handler.AdminHandler
	ProfileHandler   *handler.ProfileHandler
	ContactHandler   *handler.ContactHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	quotationHandler *handler.QuotationHandler
	fileHandler      *handler.FileHandler
	adminHandler     *handler.AdminHandler
	profileHandler   *handler.ProfileHandler
	contactHandler   *handler.ContactHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		quotationHandler: params.QuotationHandler,
		fileHandler:      params.FileHandler,
		adminHandler:     params.AdminHandler,
		profileHandler:   params.ProfileHandler,
		contactHandler:   params.ContactHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Public contact form
	apiV1.POST("/contact", r.contactHandler.SubmitContact)

	authed := apiV1.Group("")
	authed.Use(r.authMiddleware.Authenticate)

	authed.POST("/files", r.fileHandler.UploadFile)

	quotationsGroup := authed.Group("/quotations")
	{
		quotationsGroup.POST("", r.quotationHandler.SubmitQuotation)
		quotationsGroup.GET("", r.quotationHandler.ListQuotations)
		quotationsGroup.GET("/:id", r.quotationHandler.GetQuotation)
		quotationsGroup.DELETE("/:id", r.quotationHandler.CancelQuotation)
		quotationsGroup.POST("/:id/payment", r.quotationHandler.ConfirmPayment)
		quotationsGroup.GET("/:id/download", r.quotationHandler.DownloadFile)
		quotationsGroup.GET("/:id/qr", r.quotationHandler.PaymentQR)
	}

	profileGroup := authed.Group("/profile")
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PUT("", r.profileHandler.UpdateProfile)
	}

	// Staff dashboard
	adminGroup := authed.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireStaff)
	{
		adminGroup.PATCH("/quotations/:id", r.adminHandler.UpdateQuotation)
		adminGroup.GET("/contacts", r.adminHandler.ListContacts)
	}
}
