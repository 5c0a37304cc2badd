package router

import (
	"net/http"
	"time"

	"bluedock/api"
	"bluedock/config"
	_ "bluedock/docs"
	"bluedock/middleware"
	"bluedock/store"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter builds the HTTP routes. notifier may be nil.
func SetupRouter(cfg *config.Config, st store.Store, notifier api.StatusNotifier) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(CORSMiddleware())

	serviceHandler := api.NewServiceHandler(st, cfg, notifier)
	categoryHandler := api.NewCategoryHandler(st)
	dashboardHandler := api.NewDashboardHandler(st, cfg)
	exportHandler := api.NewExportHandler(st)
	authHandler := api.NewAuthHandler(st, cfg)

	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/auth/login",
			middleware.LoginRateLimit(cfg.Auth.LoginMaxAttempts, time.Duration(cfg.Auth.LoginWindowSeconds)*time.Second),
			authHandler.Login)

		apiGroup.GET("/categories", categoryHandler.List)

		apiGroup.GET("/services", serviceHandler.List)
		apiGroup.GET("/services/export/excel", exportHandler.ExportExcel)
		apiGroup.GET("/services/export/csv", exportHandler.ExportCSV)
		apiGroup.GET("/services/:id", serviceHandler.Get)
		apiGroup.GET("/services/:id/notification", serviceHandler.Notification)

		dashboard := apiGroup.Group("/dashboard")
		{
			dashboard.GET("/productivity", dashboardHandler.Productivity)
			dashboard.GET("/summary", dashboardHandler.Summary)
		}

		// mutating routes need a staff token when auth is enabled
		write := apiGroup.Group("")
		if cfg.Auth.Enabled {
			write.Use(middleware.JWTAuth())
		}
		{
			write.POST("/services", serviceHandler.Create)
			write.PUT("/services/:id", serviceHandler.Update)
			write.DELETE("/services/:id", serviceHandler.Delete)
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware allows the dashboard client to call the API from another origin
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Disposition, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
