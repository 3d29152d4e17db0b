package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"reviews-backend/internal/shared/middleware"
	"reviews-backend/internal/shared/response"
	"reviews-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	// A wrong verb on a known path is 405, not 404.
	router.HandleMethodNotAllowed = true
	router.NoMethod(response.MethodNotAllowed)

	router.GET("/health", healthCheckHandler(c))

	auth := middleware.AuthMiddleware(c.JWTManager)

	router.POST("/token-auth/", c.ReviewerHandler.TokenAuth)

	setupCompanyRoutes(router, c, auth)
	setupReviewRoutes(router, c, auth)
	setupReviewerRoutes(router, c, auth)
	setupAdminRoutes(router, c, auth)

	return router
}

func setupCompanyRoutes(router *gin.Engine, c *container.Container, auth gin.HandlerFunc) {
	companies := router.Group("/companies", auth)
	{
		companies.GET("/", c.CompanyHandler.List)
		companies.GET("/:id/", c.CompanyHandler.Get)
	}
}

func setupReviewRoutes(router *gin.Engine, c *container.Container, auth gin.HandlerFunc) {
	reviews := router.Group("/reviews", auth)
	{
		reviews.GET("/", c.ReviewHandler.List)
		reviews.POST("/", c.ReviewHandler.Create)
		reviews.GET("/:id/", c.ReviewHandler.Get)
		reviews.PUT("/:id/", c.ReviewHandler.Update)
		reviews.PATCH("/:id/", c.ReviewHandler.Update)
		reviews.DELETE("/:id/", c.ReviewHandler.Delete)
	}
}

func setupReviewerRoutes(router *gin.Engine, c *container.Container, auth gin.HandlerFunc) {
	// Registration is open; everything else is scoped to the caller.
	router.POST("/reviewers/", c.ReviewerHandler.Register)

	reviewers := router.Group("/reviewers", auth)
	{
		reviewers.GET("/:id/", c.ReviewerHandler.Get)
		reviewers.PUT("/:id/", c.ReviewerHandler.Update)
		reviewers.PATCH("/:id/", c.ReviewerHandler.Update)
	}
}

func setupAdminRoutes(router *gin.Engine, c *container.Container, auth gin.HandlerFunc) {
	admin := router.Group("/admin/companies", auth, middleware.StaffMiddleware())
	{
		admin.GET("/", c.CompanyHandler.List)
		admin.POST("/", c.CompanyHandler.Create)
		admin.PUT("/:id/", c.CompanyHandler.Update)
		admin.PATCH("/:id/", c.CompanyHandler.Update)
		admin.DELETE("/:id/", c.CompanyHandler.Delete)
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
			}
		}

		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			health["status"] = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
