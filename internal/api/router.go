package api

import (
	"bodylover-backend/config"
	"bodylover-backend/internal/api/v1/auth"
	"bodylover-backend/internal/api/v1/family"
	"bodylover-backend/internal/api/v1/health"
	"bodylover-backend/internal/api/v1/plan"
	userRoutes "bodylover-backend/internal/api/v1/user"
	"bodylover-backend/internal/middleware"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const healthzPath = "/healthz"

// NewRouter wires every route onto a fresh engine. It expects database.DB
// (and optionally database.RedisClient) to be set already.
func NewRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger(healthzPath), gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.GET(healthzPath, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// serves the UI; swag init generates the document it loads
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		auth.RegisterRoutes(api)

		authorized := api.Group("")
		if cfg.AuthRequired {
			authorized.Use(middleware.AuthMiddleware())
		}
		{
			userRoutes.RegisterRoutes(authorized)
			health.RegisterRoutes(authorized)
			plan.RegisterRoutes(authorized)
			family.RegisterRoutes(authorized)
		}
	}

	return router
}
