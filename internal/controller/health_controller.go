package controller

import (
	"net/http"

	"lifequest_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type HealthController struct {
	DB    *gorm.DB
	Redis *redis.Client // 可为 nil
}

func NewHealthController(db *gorm.DB, rdb *redis.Client) *HealthController {
	return &HealthController{DB: db, Redis: rdb}
}

// @Summary 健康检查
// @Description 检查服务及依赖组件状态
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /health [get]
func (ctl *HealthController) HealthCheck(c *gin.Context) {
	// 检查数据库连接
	sqlDB, err := ctl.DB.DB()
	if err != nil {
		util.InternalServerError(c)
		return
	}

	if err := sqlDB.Ping(); err != nil {
		util.Error(c, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	components := gin.H{"database": "up"}
	if ctl.Redis != nil {
		if err := ctl.Redis.Ping(c.Request.Context()).Err(); err != nil {
			components["redis"] = "down"
		} else {
			components["redis"] = "up"
		}
	}

	util.Success(c, gin.H{
		"status":     "ok",
		"components": components,
	})
}
