package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edumgt/eden-api/internal/shared/middleware"
	"github.com/edumgt/eden-api/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupTokenRoutes(v1, c)
		setupUserRoutes(v1, c)
		setupProductRoutes(v1, c)
		setupCartRoutes(v1, c)
		setupCommentRoutes(v1, c)
		setupCardRoutes(v1, c)
	}

	return router
}

// ========================================
// TOKEN ROUTES
// ========================================
func setupTokenRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.POST("/token", c.UserHandler.Token)
	v1.POST("/login", c.UserHandler.Login)
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := middleware.Auth(c.JWTManager)

	users := v1.Group("/users")
	{
		// Registration and lookups are open; mutations require a token.
		users.POST("", c.UserHandler.Register)
		users.GET("", c.UserHandler.FindAll)
		users.GET("/find", c.UserHandler.FindByParameter)
		users.PATCH("/:id", auth, c.UserHandler.PartialUpdate)
		users.DELETE("/:id", auth, c.UserHandler.Delete)

		users.POST("/favorite", auth, c.UserHandler.RegisterFavorite)
		users.GET("/:id/favorites", c.UserHandler.Favorites)
		users.DELETE("/:id/favorites/:productId", auth, c.UserHandler.DeleteFavorite)

		users.GET("/:id/cards", auth, c.CardHandler.FindByUserID)
	}
}

// ========================================
// PRODUCT ROUTES
// ========================================
func setupProductRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := middleware.Auth(c.JWTManager)

	products := v1.Group("/products")
	{
		products.POST("", auth, c.ProductHandler.Register)
		products.GET("", c.ProductHandler.FindAll)
		products.GET("/search", c.ProductHandler.Search)
		products.GET("/:id", c.ProductHandler.FindByID)
		products.PATCH("/:id", auth, c.ProductHandler.PartialUpdate)
		products.DELETE("/:id", auth, c.ProductHandler.Delete)

		products.GET("/:id/comments", c.CommentHandler.FindByProductID)
	}
}

// ========================================
// CART ROUTES
// ========================================
func setupCartRoutes(v1 *gin.RouterGroup, c *container.Container) {
	carts := v1.Group("/carts")
	carts.Use(middleware.Auth(c.JWTManager))
	{
		carts.GET("/:userId", c.CartHandler.FindByUserID)
	}
}

// ========================================
// COMMENT ROUTES
// ========================================
func setupCommentRoutes(v1 *gin.RouterGroup, c *container.Container) {
	comments := v1.Group("/comments")
	comments.Use(middleware.Auth(c.JWTManager))
	{
		comments.POST("", c.CommentHandler.Register)
		comments.PATCH("/:id", c.CommentHandler.PartialUpdate)
		comments.DELETE("/:id", c.CommentHandler.Delete)
	}
}

// ========================================
// CARD ROUTES
// ========================================
func setupCardRoutes(v1 *gin.RouterGroup, c *container.Container) {
	cards := v1.Group("/cards")
	cards.Use(middleware.Auth(c.JWTManager))
	{
		cards.POST("", c.CardHandler.Register)
		cards.DELETE("/:id", c.CardHandler.Delete)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// Redis degradation is not fatal; the API serves without cache.
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else if err := appCtx.Cache.Ping(c.Request.Context()); err != nil {
			redisStatus = fmt.Sprintf("error: %v", err)
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}
		c.JSON(statusCode, health)
	}
}
