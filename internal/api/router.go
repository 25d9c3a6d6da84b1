// Package api wires the storefront HTTP surface: catalog listing and
// management, auth, and order creation/reads.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mcastellanos/storefront/internal/httpx"
	"github.com/mcastellanos/storefront/internal/logger"
	"github.com/mcastellanos/storefront/internal/user"
)

type Deps struct {
	Log      *logger.Logger
	Products *ProductHandler
	Orders   *OrderHandler
	Auth     *AuthHandler
	Users    *user.Service
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(d.Log))

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	products := r.Group("/api/products")
	{
		products.GET("", d.Products.List)
		products.POST("", d.Products.Create)
		products.PUT("/:id", d.Products.Update)
		products.DELETE("/:id", d.Products.Delete)
	}

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", d.Auth.Register)
		auth.POST("/login", d.Auth.Login)
		auth.POST("/logout", RequireAuth(d.Users), d.Auth.Logout)
		auth.GET("/me", RequireAuth(d.Users), d.Auth.Me)
	}

	orders := r.Group("/api/orders", RequireAuth(d.Users))
	{
		orders.POST("", d.Orders.Create)
		orders.GET("/my", d.Orders.ListMine)
		orders.GET("", RequireAdmin(), d.Orders.ListAll)
	}

	return r
}
