// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/router/handler"
	"marketplace/internal/domain/entity"
	"marketplace/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProductHandler         *handler.ProductHandler
	CartHandler            *handler.CartHandler
	VoucherHandler         *handler.VoucherHandler
	OrderHandler           *handler.OrderHandler
	PaymentHandler         *handler.PaymentHandler
	ComplaintHandler       *handler.ComplaintHandler
	RoleApplicationHandler *handler.RoleApplicationHandler
	ModerationHandler      *handler.ModerationHandler
	AuthMiddleware         *middleware.AuthMiddleware
	Metrics                *metrics.Registry
}

// router holds all the handlers that need to be registered.
type router struct {
	productHandler         *handler.ProductHandler
	cartHandler            *handler.CartHandler
	voucherHandler         *handler.VoucherHandler
	orderHandler           *handler.OrderHandler
	paymentHandler         *handler.PaymentHandler
	complaintHandler       *handler.ComplaintHandler
	roleApplicationHandler *handler.RoleApplicationHandler
	moderationHandler      *handler.ModerationHandler
	authMiddleware         *middleware.AuthMiddleware
	metrics                *metrics.Registry
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		productHandler:         params.ProductHandler,
		cartHandler:            params.CartHandler,
		voucherHandler:         params.VoucherHandler,
		orderHandler:           params.OrderHandler,
		paymentHandler:         params.PaymentHandler,
		complaintHandler:       params.ComplaintHandler,
		roleApplicationHandler: params.RoleApplicationHandler,
		moderationHandler:      params.ModerationHandler,
		authMiddleware:         params.AuthMiddleware,
		metrics:                params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	// Public routes
	public := e.Group("/api")
	{
		// The gateway authenticates with the payload signature, not a bearer token.
		public.POST("/payments/webhook", r.paymentHandler.Webhook)
		public.GET("/products/:id", r.productHandler.GetProduct)
	}

	api := e.Group("/api")
	api.Use(r.authMiddleware.Authenticate)

	sellerOnly := r.authMiddleware.RequireRole(entity.RoleSeller)
	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)

	productsGroup := api.Group("/products", sellerOnly)
	{
		productsGroup.POST("", r.productHandler.CreateProduct)
		productsGroup.PUT("/:id", r.productHandler.UpdateProduct)
		productsGroup.DELETE("/:id", r.productHandler.DeleteProduct)
	}

	cartGroup := api.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:productId", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:productId", r.cartHandler.RemoveItem)
	}

	vouchersGroup := api.Group("/vouchers")
	{
		vouchersGroup.GET("", r.voucherHandler.ListActive)
		vouchersGroup.GET("/mine", r.voucherHandler.ListMine)
		vouchersGroup.POST("/:code/claim", r.voucherHandler.Claim)
		vouchersGroup.POST("/:code/apply", r.voucherHandler.Apply)
		vouchersGroup.POST("", r.voucherHandler.Create, adminOnly)
		vouchersGroup.DELETE("/:code", r.voucherHandler.Deactivate, adminOnly)
	}

	ordersGroup := api.Group("/orders")
	{
		ordersGroup.POST("/checkout", r.orderHandler.Checkout)
		ordersGroup.GET("", r.orderHandler.ListMine)
		ordersGroup.GET("/:id", r.orderHandler.Get)
		ordersGroup.POST("/:id/cancel", r.orderHandler.Cancel)
		ordersGroup.PUT("/:id/status", r.orderHandler.UpdateStatus,
			r.authMiddleware.RequireRole(entity.RoleSeller, entity.RoleShipper, entity.RoleAdmin))
	}

	paymentsGroup := api.Group("/payments")
	{
		paymentsGroup.POST("/orders/:id/link", r.paymentHandler.CreateLink)
		paymentsGroup.GET("/:orderCode", r.paymentHandler.GetInfo)
		paymentsGroup.POST("/:orderCode/cancel", r.paymentHandler.CancelLink)
		paymentsGroup.GET("/:orderCode/qr", r.paymentHandler.GetQR)
	}

	complaintsGroup := api.Group("/complaints")
	{
		complaintsGroup.POST("", r.complaintHandler.Create)
		complaintsGroup.GET("", r.complaintHandler.ListMine)
		complaintsGroup.GET("/:id", r.complaintHandler.Get)
		complaintsGroup.DELETE("/:id", r.complaintHandler.Delete)
		complaintsGroup.POST("/:id/responses", r.complaintHandler.AddResponse)
		complaintsGroup.POST("/:id/close", r.complaintHandler.Close)
		complaintsGroup.POST("/:id/assign", r.complaintHandler.Assign, adminOnly)
		complaintsGroup.POST("/:id/decision", r.complaintHandler.Decide, adminOnly)
	}

	applicationsGroup := api.Group("/role-applications")
	{
		applicationsGroup.POST("", r.roleApplicationHandler.Submit)
		applicationsGroup.GET("", r.roleApplicationHandler.ListMine)
		applicationsGroup.POST("/:id/approve", r.roleApplicationHandler.Approve, adminOnly)
		applicationsGroup.POST("/:id/reject", r.roleApplicationHandler.Reject, adminOnly)
	}

	// Admin routes
	adminGroup := api.Group("/admin", adminOnly)
	{
		adminGroup.GET("/complaints", r.complaintHandler.ListAll)
		adminGroup.GET("/role-applications", r.roleApplicationHandler.ListPending)
		adminGroup.POST("/users/:id/ban", r.moderationHandler.BanUser)
		adminGroup.POST("/users/:id/unban", r.moderationHandler.UnbanUser)
		adminGroup.POST("/shops/:id/ban", r.moderationHandler.BanShop)
		adminGroup.POST("/shops/:id/unban", r.moderationHandler.UnbanShop)
	}
}
