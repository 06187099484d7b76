package util

import "github.com/gin-gonic/gin"

// UserID 从请求头取用户 ID，单用户本地部署时退回配置的默认用户
func UserID(c *gin.Context, fallback string) string {
	if id := c.GetHeader("X-User-ID"); id != "" {
		return id
	}
	return fallback
}
