package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nomadlab/seoulbang-backend-go/internal/config"
	"github.com/nomadlab/seoulbang-backend-go/internal/handler"
	"github.com/nomadlab/seoulbang-backend-go/internal/middleware"
)

// SetupRouter wires middleware and routes.
func SetupRouter(
	cfg *config.Config,
	log *zap.Logger,
	recommendHandler *handler.RecommendHandler,
	scoreHandler *handler.ScoreHandler,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	metrics := middleware.NewHTTPMetrics("seoulbang-backend")
	r.Use(metrics.Middleware())

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Seoulbang recommendation API is running",
		})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api/v1")
	{
		recommend := api.Group("/recommend")
		{
			recommend.POST("/area", recommendHandler.RecommendArea)
			recommend.POST("/property", recommendHandler.RecommendProperty)
		}

		admin := api.Group("/admin", middleware.AdminAuth(cfg.JWTSecret))
		{
			admin.POST("/scores/rebuild", scoreHandler.RebuildScores)
		}
	}

	return r
}
