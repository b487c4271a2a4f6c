package routes

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"product-admin/internal/auth"
	"product-admin/internal/handlers"
	"product-admin/internal/media"
	"product-admin/internal/middleware"
	"product-admin/internal/repository"
)

// Dependencies are the collaborators the HTTP surface is built from.
type Dependencies struct {
	Store         repository.ProductStore
	Authorizer    auth.Authorizer
	AdminPassword string
	AdminToken    string
	Uploader      media.Uploader
	UploadDir     string
	// LoginLimiter, when set, runs before the login handler.
	LoginLimiter gin.HandlerFunc
	Ready        func(ctx context.Context) error
}

func RegisterRoutes(router *gin.Engine, deps Dependencies) {
	health := handlers.NewHealthHandler(deps.Ready)
	router.GET("/health", health.Health)
	router.GET("/ready", health.Ready)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	products := handlers.NewProductHandler(deps.Store)
	login := handlers.NewAuthHandler(deps.AdminPassword, deps.AdminToken)
	upload := handlers.NewUploadHandler(deps.Uploader, deps.UploadDir)
	admin := middleware.RequireAdmin(deps.Authorizer)

	api := router.Group("/api")
	{
		if deps.LoginLimiter != nil {
			api.POST("/login", deps.LoginLimiter, login.Login)
		} else {
			api.POST("/login", login.Login)
		}

		api.GET("/products", products.ListProducts)
		api.GET("/products/:id", products.GetProduct)
		api.POST("/products", admin, products.CreateProduct)
		api.PUT("/products/:id", admin, products.UpdateProduct)
		api.DELETE("/products/:id", admin, products.DeleteProduct)

		api.POST("/upload", admin, upload.Upload)
	}
}
