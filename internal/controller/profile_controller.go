package controller

import (
	"lifequest_backend/internal/model"
	"lifequest_backend/internal/service"
	"lifequest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	Profiles    *service.ProfileService
	DefaultUser string
}

func NewProfileController(profiles *service.ProfileService, defaultUser string) *ProfileController {
	return &ProfileController{Profiles: profiles, DefaultUser: defaultUser}
}

// @Summary 用户档案
// @Description 返回档案总览，首次访问时创建空档案
// @Tags 档案
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/profile [get]
func (ctl *ProfileController) GetProfile(c *gin.Context) {
	userID := util.UserID(c, ctl.DefaultUser)

	overview, err := ctl.Profiles.Overview(c.Request.Context(), userID)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, overview)
}

// @Summary 更新用户画像
// @Description 部分更新，缺省字段保持原值；修订号递增使推荐缓存失效
// @Tags 档案
// @Accept json
// @Produce json
// @Param body body service.UpdateProfileRequest true "画像字段"
// @Success 200 {object} util.Response
// @Router /api/profile [put]
func (ctl *ProfileController) UpdateProfile(c *gin.Context) {
	userID := util.UserID(c, ctl.DefaultUser)

	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	p, err := ctl.Profiles.Update(c.Request.Context(), userID, req)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, p)
}

// @Summary 应用设置
// @Tags 档案
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/settings [get]
func (ctl *ProfileController) GetSettings(c *gin.Context) {
	userID := util.UserID(c, ctl.DefaultUser)

	settings, err := ctl.Profiles.Settings(c.Request.Context(), userID)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, settings)
}

// @Summary 保存应用设置
// @Tags 档案
// @Accept json
// @Produce json
// @Param body body model.AppSettings true "设置"
// @Success 200 {object} util.Response
// @Router /api/settings [put]
func (ctl *ProfileController) UpdateSettings(c *gin.Context) {
	userID := util.UserID(c, ctl.DefaultUser)

	var settings model.AppSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Profiles.SaveSettings(c.Request.Context(), userID, settings); err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, settings)
}
