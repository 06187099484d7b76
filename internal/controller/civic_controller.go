package controller

import (
	"lifequest_backend/internal/service"
	"lifequest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CivicController struct {
	Civic       *service.CivicService
	DefaultUser string
}

func NewCivicController(civic *service.CivicService, defaultUser string) *CivicController {
	return &CivicController{Civic: civic, DefaultUser: defaultUser}
}

// @Summary 公民行动目录
// @Tags 公民行动
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/civic/actions [get]
func (ctl *CivicController) ListActions(c *gin.Context) {
	util.Success(c, ctl.Civic.Actions())
}

// @Summary 公民行动任务
// @Tags 公民行动
// @Produce json
// @Param id path string true "行动ID"
// @Success 200 {object} util.Response
// @Router /api/civic/tasks/{id} [get]
func (ctl *CivicController) GetTasks(c *gin.Context) {
	userID := util.UserID(c, ctl.DefaultUser)

	tasks, err := ctl.Civic.Tasks(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, tasks)
}

type completeActionRequest struct {
	Evidence string `json:"evidence"`
}

// @Summary 完成公民行动
// @Description 发放影响力积分并写入行动日志，重复完成为幂等空操作
// @Tags 公民行动
// @Accept json
// @Produce json
// @Param id path string true "行动ID"
// @Param body body completeActionRequest false "验证证据"
// @Success 200 {object} util.Response
// @Router /api/civic/actions/{id}/complete [post]
func (ctl *CivicController) CompleteAction(c *gin.Context) {
	userID := util.UserID(c, ctl.DefaultUser)

	var req completeActionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			util.BadRequest(c, err.Error())
			return
		}
	}

	actionID := c.Param("id")
	if err := ctl.Civic.CompleteAction(c.Request.Context(), userID, actionID, req.Evidence); err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, gin.H{"actionId": actionID, "completed": true})
}

// @Summary 公民行动历史
// @Tags 公民行动
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/civic/history [get]
func (ctl *CivicController) History(c *gin.Context) {
	userID := util.UserID(c, ctl.DefaultUser)

	logs, total, err := ctl.Civic.History(c.Request.Context(), userID)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, gin.H{"logs": logs, "totalImpact": total})
}
