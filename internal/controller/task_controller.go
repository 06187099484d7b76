package controller

import (
	"lifequest_backend/internal/service"
	"lifequest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TaskController struct {
	Progress    *service.ProgressService
	DefaultUser string
}

func NewTaskController(progress *service.ProgressService, defaultUser string) *TaskController {
	return &TaskController{Progress: progress, DefaultUser: defaultUser}
}

type completeTaskRequest struct {
	Evidence string `json:"evidence"`
}

// @Summary 完成任务
// @Description 需要拍照/自拍验证的任务必须附带证据描述，重复完成为幂等空操作
// @Tags 任务
// @Accept json
// @Produce json
// @Param taskId path string true "任务ID"
// @Param body body completeTaskRequest false "验证证据"
// @Success 200 {object} util.Response
// @Router /api/tasks/{taskId}/complete [post]
func (ctl *TaskController) Complete(c *gin.Context) {
	userID := util.UserID(c, ctl.DefaultUser)

	var req completeTaskRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			util.BadRequest(c, err.Error())
			return
		}
	}

	taskID := c.Param("taskId")
	if err := ctl.Progress.CompleteTask(c.Request.Context(), userID, taskID, req.Evidence); err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, gin.H{"taskId": taskID, "completed": true})
}

// @Summary 周期任务
// @Description 按 daily/weekly/monthly 或类别范围生成确定性任务序列
// @Tags 任务
// @Produce json
// @Param period path string true "周期或类别"
// @Success 200 {object} util.Response
// @Router /api/tasks/period/{period} [get]
func (ctl *TaskController) GetPeriodTasks(c *gin.Context) {
	userID := util.UserID(c, ctl.DefaultUser)

	tasks, err := ctl.Progress.PeriodTasks(c.Request.Context(), userID, c.Param("period"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, tasks)
}
