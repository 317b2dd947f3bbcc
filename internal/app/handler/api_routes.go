package handler

import (
	"printshop/internal/app/middleware"
	"printshop/internal/app/role"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes registers the public and staff REST routes. The intake
// handlers run in front of every public POST that writes or authenticates.
func (h *APIHandler) RegisterAPIRoutes(router gin.IRouter, authMiddleware *middleware.AuthMiddleware, intake ...gin.HandlerFunc) {
	api := router.Group("/api")

	// ============ Public order intake ============
	public := api.Group("", intake...)
	{
		public.POST("/upload", h.Upload)
		public.POST("/orders", h.CreateOrder)
		public.POST("/contact", h.Contact)
		public.POST("/auth/login", h.AuthHandler.LoginStaff)
	}
	api.GET("/pricing", h.GetPricing)

	quote := api.Group("/quote")
	{
		quote.POST("/print", h.QuotePrint)
		quote.POST("/binding", h.QuoteBinding)
		quote.POST("/plagiarism", h.QuotePlagiarism)
	}
	api.POST("/plagiarism/services/toggle", h.ToggleService)

	// ============ Staff ============
	staffOnly := authMiddleware.WithAuthCheck(role.Staff, role.Admin)

	orders := api.Group("/orders", staffOnly)
	{
		orders.GET("", h.GetOrders)
		orders.GET("/:id", h.GetOrder)
		orders.GET("/ref/:reference", h.GetOrderByReference)
	}
	api.GET("/files/:filename", staffOnly, h.DownloadFile)

	auth := api.Group("/auth")
	{
		auth.GET("/profile", staffOnly, h.AuthHandler.GetStaffProfile)
		auth.POST("/logout", staffOnly, h.AuthHandler.LogoutStaff)
		auth.POST("/staff", authMiddleware.WithAuthCheck(role.Admin), h.AuthHandler.CreateStaff)
	}

	router.GET("/ping", h.Ping)
}
