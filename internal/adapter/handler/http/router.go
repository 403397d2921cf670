package http

import (
	"net/http"
	"time"

	"github.com/LudNieto/ecommerce-go/internal/adapter/config"
	"github.com/LudNieto/ecommerce-go/internal/core/port"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	*gin.Engine
}

// NewAuthRouter wires the authentication service routes. Only this
// router carries CORS, the frontend talks to auth directly.
func NewAuthRouter(
	corsConf *config.Cors,
	tokenService port.TokenService,
	userHandler *UserHandler) (*Router, error) {

	router := gin.New()
	router.Use(gin.Recovery(), requestID())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{corsConf.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", healthCheck)

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := router.Group("/auth")
	{
		auth.POST("/signup", userHandler.SignUp)
		auth.POST("/signin", userHandler.SignIn)
		auth.POST("/refresh", userHandler.Refresh)
	}

	user := router.Group("/user")
	{
		user.Use(authCheck(tokenService))
		user.GET("/me", userHandler.Me)
		user.PUT("/update", userHandler.Update)
		user.DELETE("/deactivate", userHandler.Deactivate)
	}

	return &Router{router}, nil
}

// NewCatalogRouter wires the product, category and order routes.
func NewCatalogRouter(
	productHandler *ProductHandler,
	categoryHandler *CategoryHandler,
	orderHandler *OrderHandler) (*Router, error) {

	router := gin.New()
	router.Use(gin.Recovery(), requestID())

	router.GET("/health", healthCheck)

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	products := router.Group("/products")
	{
		products.GET("", productHandler.List)
		products.POST("", productHandler.Create)
		products.GET("/:id", productHandler.Get)
		products.GET("/category/:category_id", productHandler.ListByCategory)
		products.GET("/status/:status", productHandler.ListByStatus)
		products.PUT("/:id", productHandler.Update)
		products.DELETE("/:id", productHandler.Delete)
	}

	categories := router.Group("/categories")
	{
		categories.GET("", categoryHandler.List)
		categories.GET("/:id", categoryHandler.Get)
		categories.POST("", categoryHandler.Create)
		categories.PUT("/:id", categoryHandler.Update)
		categories.DELETE("/:id", categoryHandler.Delete)
	}

	orders := router.Group("/orders")
	{
		orders.POST("", orderHandler.Create)
		orders.GET("", orderHandler.List)
		orders.GET("/:id", orderHandler.Get)
		orders.GET("/status/:status", orderHandler.ListByStatus)
		orders.GET("/user/:user_id", orderHandler.ListByUser)
		orders.PUT("/:id", orderHandler.Update)
		orders.GET("/:id/items", orderHandler.ListItems)
		orders.GET("/items/:item_id", orderHandler.GetItem)
	}

	return &Router{router}, nil
}

func healthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "OK"})
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
