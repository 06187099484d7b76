package controller

import (
	"io"

	"lifequest_backend/internal/service"
	"lifequest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type BackupController struct {
	Backup      *service.BackupService
	DefaultUser string
}

func NewBackupController(backup *service.BackupService, defaultUser string) *BackupController {
	return &BackupController{Backup: backup, DefaultUser: defaultUser}
}

// @Summary 导出备份
// @Description 导出完整档案快照（档案、签到、设置），可直接用于恢复
// @Tags 备份
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/backup/export [get]
func (ctl *BackupController) Export(c *gin.Context) {
	userID := util.UserID(c, ctl.DefaultUser)

	snapshot, err := ctl.Backup.Export(c.Request.Context(), userID)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, snapshot)
}

// @Summary 恢复备份
// @Description 校验快照结构后整体替换当前档案，恢复时重放 ID 方案迁移
// @Tags 备份
// @Accept json
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/backup/restore [post]
func (ctl *BackupController) Restore(c *gin.Context) {
	userID := util.UserID(c, ctl.DefaultUser)

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Backup.Restore(c.Request.Context(), userID, raw); err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, gin.H{"restored": true})
}
