// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"marketplace/internal/delivery/http/middleware"
	"marketplace/internal/delivery/http/router/handler"
	"marketplace/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	CategoryHandler *handler.CategoryHandler
	ProductHandler  *handler.ProductHandler
	PhotoHandler    *handler.PhotoHandler
	CartHandler     *handler.CartHandler
	WishlistHandler *handler.WishlistHandler
	OrderHandler    *handler.OrderHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	categoryHandler *handler.CategoryHandler
	productHandler  *handler.ProductHandler
	photoHandler    *handler.PhotoHandler
	cartHandler     *handler.CartHandler
	wishlistHandler *handler.WishlistHandler
	orderHandler    *handler.OrderHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		categoryHandler: params.CategoryHandler,
		productHandler:  params.ProductHandler,
		photoHandler:    params.PhotoHandler,
		cartHandler:     params.CartHandler,
		wishlistHandler: params.WishlistHandler,
		orderHandler:    params.OrderHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Public catalog routes, no authentication required
	e.GET("/categories", r.categoryHandler.ListCategories)
	e.GET("/products", r.productHandler.ListProducts)
	e.GET("/products/:id", r.productHandler.GetProduct)
	e.GET("/products/:id/photos/:photoId", r.photoHandler.GetPhoto)

	// Merchant routes that require authentication and the MERCHANT role
	merchantOnly := []echo.MiddlewareFunc{
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireType(entity.UserTypeMerchant),
	}
	e.POST("/categories", r.categoryHandler.CreateCategory, merchantOnly...)
	e.POST("/products", r.productHandler.CreateProduct, merchantOnly...)
	e.PUT("/products/:id", r.productHandler.UpdateProduct, merchantOnly...)
	e.DELETE("/products/:id", r.productHandler.DeleteProduct, merchantOnly...)
	e.POST("/products/:id/photos", r.photoHandler.UploadPhoto, merchantOnly...)

	merchantGroup := e.Group("/merchant")
	merchantGroup.Use(r.authMiddleware.Authenticate)
	merchantGroup.Use(r.authMiddleware.RequireType(entity.UserTypeMerchant))
	{
		merchantGroup.GET("/products", r.productHandler.ListMerchantProducts)
		merchantGroup.GET("/orders", r.orderHandler.ListMerchantOrders)
		merchantGroup.PATCH("/orders/:id/status", r.orderHandler.UpdateOrderStatus)
	}

	// Customer routes that require authentication and the CUSTOMER role
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	cartGroup.Use(r.authMiddleware.RequireType(entity.UserTypeCustomer))
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.DELETE("/items/:itemId", r.cartHandler.RemoveItem)
	}

	wishlistGroup := e.Group("/wishlist")
	wishlistGroup.Use(r.authMiddleware.Authenticate)
	wishlistGroup.Use(r.authMiddleware.RequireType(entity.UserTypeCustomer))
	{
		wishlistGroup.GET("", r.wishlistHandler.GetWishlist)
		wishlistGroup.POST("", r.wishlistHandler.AddProduct)
		wishlistGroup.DELETE("/:productId", r.wishlistHandler.RemoveProduct)
	}

	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	orderGroup.Use(r.authMiddleware.RequireType(entity.UserTypeCustomer))
	{
		orderGroup.POST("", r.orderHandler.Checkout)
		orderGroup.GET("", r.orderHandler.ListCustomerOrders)
		orderGroup.POST("/:id/cancel", r.orderHandler.CancelOrder)
	}
}
