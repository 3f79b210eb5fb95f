package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"artistry-backend/internal/shared/middleware"
	"artistry-backend/pkg/container"
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

		setupArtistRoutes(v1, c)
	}

	return router
}

// All artist operations take their parameters in the request body,
// matching the envelope the upstream callers already send. Reads are
// POSTs for the same reason.
func setupArtistRoutes(v1 *gin.RouterGroup, c *container.Container) {
	artists := v1.Group("/artists")
	{
		artists.POST("/register", c.ArtistHandler.Register)
		artists.PUT("/name", c.ArtistHandler.ChangeName)
		artists.PUT("/info", c.ArtistHandler.ChangeInfo)
		artists.POST("/profile", c.ArtistHandler.GetProfile)
		artists.POST("/search", c.ArtistHandler.SearchByName)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := http.StatusOK
		health := gin.H{
			"status":      "ok",
			"version":     c.Config.App.Version,
			"environment": c.Config.App.Environment,
		}

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			health["status"] = "degraded"
			health["database"] = err.Error()
		} else {
			health["database"] = "up"
		}

		if c.Redis != nil {
			if err := c.Redis.HealthCheck(ctx.Request.Context()); err != nil {
				status = http.StatusServiceUnavailable
				health["status"] = "degraded"
				health["cache"] = err.Error()
			} else {
				health["cache"] = "up"
			}
		}

		ctx.JSON(status, health)
	}
}
