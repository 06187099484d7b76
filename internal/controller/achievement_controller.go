package controller

import (
	"errors"

	"lifequest_backend/internal/service"
	"lifequest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AchievementController struct {
	Personalization *service.PersonalizationService
	Progress        *service.ProgressService
	Profiles        *service.ProfileService
	DefaultUser     string
}

func NewAchievementController(personalization *service.PersonalizationService, progress *service.ProgressService, profiles *service.ProfileService, defaultUser string) *AchievementController {
	return &AchievementController{
		Personalization: personalization,
		Progress:        progress,
		Profiles:        profiles,
		DefaultUser:     defaultUser,
	}
}

// handleServiceError 业务错误到 HTTP 状态码的统一映射
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrAchievementNotFound),
		errors.Is(err, util.ErrCivicActionNotFound):
		util.NotFound(c)
	case errors.Is(err, util.ErrCapacityReached),
		errors.Is(err, util.ErrAchievementLocked),
		errors.Is(err, util.ErrAlreadyActive),
		errors.Is(err, util.ErrAlreadyCompleted),
		errors.Is(err, util.ErrAchievementNotActive):
		util.Conflict(c, err.Error())
	case errors.Is(err, util.ErrEvidenceRequired),
		errors.Is(err, util.ErrRemoveNotConfirmed),
		errors.Is(err, util.ErrInvalidBackup):
		util.BadRequest(c, err.Error())
	default:
		util.LogInternalError(c, err)
	}
}

// RecommendedEntry 推荐条目，带锁定标记
type RecommendedEntry struct {
	Achievement interface{} `json:"achievement"`
	Locked      bool        `json:"locked"`
	Active      bool        `json:"active"`
	Completed   bool        `json:"completed"`
}

// @Summary 个性化成就推荐
// @Description 按用户画像筛选并排序成就目录，带锁定/进行中标记
// @Tags 成就
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/achievements/recommended [get]
func (ctl *AchievementController) GetRecommended(c *gin.Context) {
	userID := util.UserID(c, ctl.DefaultUser)

	profile, err := ctl.Profiles.Get(c.Request.Context(), userID)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}

	recs := ctl.Personalization.GetPersonalized(c.Request.Context(), profile)
	entries := make([]RecommendedEntry, 0, len(recs))
	for i := range recs {
		def := recs[i]
		entries = append(entries, RecommendedEntry{
			Achievement: def,
			Locked:      ctl.Personalization.IsLocked(&def, profile.CompletedLifeAchievements),
			Active:      profile.CurrentLifeAchievements.Has(def.ID),
			Completed:   profile.CompletedLifeAchievements.Has(def.ID),
		})
	}

	util.Success(c, entries)
}

// @Summary 成就目录
// @Tags 成就
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/achievements [get]
func (ctl *AchievementController) ListCatalog(c *gin.Context) {
	util.Success(c, ctl.Progress.Catalog.All())
}

// @Summary 开始成就
// @Description 进行中的成就最多 15 个，前置成就未完成时拒绝
// @Tags 成就
// @Produce json
// @Param id path string true "成就ID"
// @Success 200 {object} util.Response
// @Router /api/achievements/{id}/start [post]
func (ctl *AchievementController) Start(c *gin.Context) {
	userID := util.UserID(c, ctl.DefaultUser)
	achievementID := c.Param("id")

	if err := ctl.Progress.Start(c.Request.Context(), userID, achievementID); err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, gin.H{"achievementId": achievementID, "started": true})
}

// @Summary 成就进度
// @Description 重新生成任务序列并计算完成百分比、下一个任务和剩余时间
// @Tags 成就
// @Produce json
// @Param id path string true "成就ID"
// @Success 200 {object} util.Response
// @Router /api/achievements/{id}/progress [get]
func (ctl *AchievementController) GetProgress(c *gin.Context) {
	userID := util.UserID(c, ctl.DefaultUser)

	progress, err := ctl.Progress.Progress(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, progress)
}

// @Summary 成就任务列表
// @Tags 成就
// @Produce json
// @Param id path string true "成就ID"
// @Success 200 {object} util.Response
// @Router /api/achievements/{id}/tasks [get]
func (ctl *AchievementController) GetTasks(c *gin.Context) {
	userID := util.UserID(c, ctl.DefaultUser)

	tasks, err := ctl.Progress.Tasks(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, tasks)
}

type removeRequest struct {
	Confirmed bool `json:"confirmed"`
}

// @Summary 放弃成就
// @Description 破坏性操作：移出进行中集合并把等级减半，必须显式确认
// @Tags 成就
// @Accept json
// @Produce json
// @Param id path string true "成就ID"
// @Param body body removeRequest true "确认标志"
// @Success 200 {object} util.Response
// @Router /api/achievements/{id} [delete]
func (ctl *AchievementController) Remove(c *gin.Context) {
	userID := util.UserID(c, ctl.DefaultUser)

	var req removeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Progress.Remove(c.Request.Context(), userID, c.Param("id"), req.Confirmed); err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, gin.H{"achievementId": c.Param("id"), "removed": true})
}

// @Summary 进度对账
// @Description 任务全部完成的成就移入已完成集合并发放奖励（恰好一次）
// @Tags 成就
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/sync [post]
func (ctl *AchievementController) Sync(c *gin.Context) {
	userID := util.UserID(c, ctl.DefaultUser)

	completed, err := ctl.Progress.Sync(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	util.Success(c, gin.H{"newlyCompleted": completed})
}
