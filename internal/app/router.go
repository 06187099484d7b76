package app

import (
	"lifequest_backend/docs"
	"lifequest_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		// 档案与设置
		api.GET("/profile", c.profile.GetProfile)
		api.PUT("/profile", c.profile.UpdateProfile)
		api.GET("/settings", c.profile.GetSettings)
		api.PUT("/settings", c.profile.UpdateSettings)

		// 成就
		api.GET("/achievements", c.achievement.ListCatalog)
		api.GET("/achievements/recommended", c.achievement.GetRecommended)
		api.GET("/achievements/:id/tasks", c.achievement.GetTasks)
		api.GET("/achievements/:id/progress", c.achievement.GetProgress)
		api.POST("/achievements/:id/start", c.achievement.Start)
		api.DELETE("/achievements/:id", c.achievement.Remove)

		// 任务
		api.POST("/tasks/:taskId/complete", c.task.Complete)
		api.GET("/tasks/period/:period", c.task.GetPeriodTasks)
		api.POST("/sync", c.achievement.Sync)

		// 公民行动
		api.GET("/civic/actions", c.civic.ListActions)
		api.POST("/civic/actions/:id/complete", c.civic.CompleteAction)
		api.GET("/civic/tasks/:id", c.civic.GetTasks)
		api.GET("/civic/history", c.civic.History)

		// 备份
		api.GET("/backup/export", c.backup.Export)
		api.POST("/backup/restore", c.backup.Restore)
	}
}
