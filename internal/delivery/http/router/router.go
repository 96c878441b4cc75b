// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ProductHandler *handler.ProductHandler
	ReviewHandler  *handler.ReviewHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	productHandler *handler.ProductHandler
	reviewHandler  *handler.ReviewHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		productHandler: params.ProductHandler,
		reviewHandler:  params.ReviewHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Status endpoint
	e.GET("/", handler.Status)

	apiGroup := e.Group("/api/v1")
	{
		// Accounts
		apiGroup.POST("/register", r.userHandler.Register)
		apiGroup.POST("/login", r.userHandler.Login)
		apiGroup.GET("/users", r.userHandler.List)
		apiGroup.PUT("/user/:userId", r.userHandler.PromoteToAdmin)
		apiGroup.DELETE("/user/:id", r.userHandler.Delete)

		// Catalog
		apiGroup.POST("/product", r.productHandler.Create)
		apiGroup.GET("/products", r.productHandler.List)
		apiGroup.GET("/product/:productId", r.productHandler.Get)
		apiGroup.DELETE("/product/:id", r.productHandler.Delete)

		// Embedded reviews
		apiGroup.POST("/review", r.reviewHandler.Submit)
		apiGroup.DELETE("/review/:productId/:reviewerEmail", r.reviewHandler.Remove)
	}
}
