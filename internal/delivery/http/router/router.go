// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"feria/internal/delivery/http/middleware"
	"feria/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler   *handler.SessionHandler
	DirectoryHandler *handler.DirectoryHandler
	VendorHandler    *handler.VendorHandler
	ScannerHandler   *handler.ScannerHandler
	ClaimsHandler    *handler.ClaimsHandler
	DashboardHandler *handler.DashboardHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler   *handler.SessionHandler
	directoryHandler *handler.DirectoryHandler
	vendorHandler    *handler.VendorHandler
	scannerHandler   *handler.ScannerHandler
	claimsHandler    *handler.ClaimsHandler
	dashboardHandler *handler.DashboardHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:   params.SessionHandler,
		directoryHandler: params.DirectoryHandler,
		vendorHandler:    params.VendorHandler,
		scannerHandler:   params.ScannerHandler,
		claimsHandler:    params.ClaimsHandler,
		dashboardHandler: params.DashboardHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session routes open to unauthenticated visitors: the welcome flow.
	sessionGroup := e.Group("/session")
	{
		sessionGroup.GET("", r.sessionHandler.GetSession)
		sessionGroup.POST("/role", r.sessionHandler.ChooseRole)
		sessionGroup.POST("/register", r.sessionHandler.Register)
	}

	// Session routes for an authenticated user.
	authedSession := e.Group("/session")
	authedSession.Use(r.authMiddleware.Authenticate)
	{
		authedSession.PUT("/category", r.sessionHandler.SelectCategory)
		authedSession.POST("/home", r.sessionHandler.GoHome)
		authedSession.POST("/logout", r.sessionHandler.Logout)
	}

	// Directory browsing requires a session.
	directoryGroup := e.Group("/directory")
	directoryGroup.Use(r.authMiddleware.Authenticate)
	{
		directoryGroup.GET("/categories", r.directoryHandler.Categories)
		directoryGroup.GET("/vendors", r.directoryHandler.Vendors)
		directoryGroup.GET("/saved", r.directoryHandler.Saved)
		directoryGroup.GET("/announcements", r.directoryHandler.Announcements)
		directoryGroup.POST("/search", r.directoryHandler.Search)
	}

	vendorGroup := e.Group("/vendors")
	vendorGroup.Use(r.authMiddleware.Authenticate)
	{
		vendorGroup.GET("/:id", r.vendorHandler.Get)
		vendorGroup.POST("/:id/open", r.vendorHandler.Open)
		vendorGroup.POST("/close", r.vendorHandler.Close)
		vendorGroup.GET("/:id/insight", r.vendorHandler.Insight)
	}

	scannerGroup := e.Group("/scanner")
	scannerGroup.Use(r.authMiddleware.Authenticate)
	{
		scannerGroup.POST("/open", r.scannerHandler.Open)
		scannerGroup.POST("/scan", r.scannerHandler.Scan)
	}

	claimsGroup := e.Group("/claims")
	claimsGroup.Use(r.authMiddleware.Authenticate)
	{
		claimsGroup.POST("/open", r.claimsHandler.Open)
		claimsGroup.POST("", r.claimsHandler.Submit)
		claimsGroup.POST("/back", r.claimsHandler.Back)
	}

	// Dashboard routes require the vendedor role on top of authentication.
	dashboardGroup := e.Group("/dashboard")
	dashboardGroup.Use(r.authMiddleware.Authenticate)
	dashboardGroup.Use(r.authMiddleware.RequireRole("vendedor"))
	{
		dashboardGroup.GET("/stats", r.dashboardHandler.Stats)
		dashboardGroup.GET("/qr", r.dashboardHandler.StallQR)
		dashboardGroup.GET("/tip", r.dashboardHandler.Tip)
		dashboardGroup.GET("/messages", r.dashboardHandler.Messages)
		dashboardGroup.PUT("/draft", r.dashboardHandler.UpdateDraft)
		dashboardGroup.POST("/draft/description", r.dashboardHandler.GenerateDescription)
		dashboardGroup.POST("/products", r.dashboardHandler.PublishProduct)
	}
}
