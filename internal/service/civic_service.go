package service

import (
	"context"

	"lifequest_backend/internal/catalog"
	"lifequest_backend/internal/model"
	"lifequest_backend/internal/util"
	"lifequest_backend/pkg/logger"

	"go.uber.org/zap"
)

// CivicLogStore 行动流水的持久化接口
type CivicLogStore interface {
	Create(log *model.CivicLog) error
	FindByUserID(userID string) ([]model.CivicLog, error)
	TotalImpact(userID string) (int, error)
}

// CivicService 公民行动：独立于成就图谱的 completedCivicActions 集合，
// 外加一张只追加的流水表。行动完成会改档案，
// 因此与进度引擎共用 ProfileService 的聚合锁。
type CivicService struct {
	Catalog  *catalog.Catalog
	TaskGen  *TaskGenService
	Profiles *ProfileService
	Repo     CivicLogStore
}

func NewCivicService(cat *catalog.Catalog, taskGen *TaskGenService, profiles *ProfileService, repo CivicLogStore) *CivicService {
	return &CivicService{Catalog: cat, TaskGen: taskGen, Profiles: profiles, Repo: repo}
}

// Actions 公民行动目录
func (s *CivicService) Actions() []model.CivicAction {
	return s.Catalog.CivicAll()
}

// Tasks 行动的任务分解，带完成标记
func (s *CivicService) Tasks(ctx context.Context, userID, actionID string) ([]model.TaskItem, error) {
	p, err := s.Profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	tasks := s.TaskGen.GenerateCivicTasks(actionID, userID)
	for i := range tasks {
		tasks[i].IsCompleted = p.CompletedTasks.Has(tasks[i].ID)
	}
	return tasks, nil
}

// CompleteAction 完成一次公民行动：幂等，重复完成不再计分；
// 照片类验证方式要求附带证据。
func (s *CivicService) CompleteAction(ctx context.Context, userID, actionID, evidence string) error {
	action := s.Catalog.CivicByID(actionID)
	if action == nil {
		return util.ErrCivicActionNotFound
	}
	if action.VerificationMethod.RequiresEvidence() && evidence == "" {
		return util.ErrEvidenceRequired
	}

	s.Profiles.Lock()
	defer s.Profiles.Unlock()

	p, err := s.Profiles.getLocked(ctx, userID)
	if err != nil {
		return err
	}
	if p.CompletedCivicActions.Has(actionID) {
		return nil
	}

	p.CompletedCivicActions.Add(actionID)
	p.CivicScore += action.ImpactPoints

	if err := s.Repo.Create(&model.CivicLog{
		UserID:       userID,
		ActionID:     actionID,
		ImpactPoints: action.ImpactPoints,
		Evidence:     evidence,
	}); err != nil {
		logger.Log.Warn("civic log not written", zap.String("actionId", actionID), zap.Error(err))
	}

	if err := s.Profiles.saveLocked(ctx, p); err != nil {
		logger.Log.Warn("profile not saved, changes kept in memory",
			zap.String("userId", userID), zap.Error(err))
	}
	return nil
}

// History 行动流水与累计影响力
func (s *CivicService) History(ctx context.Context, userID string) ([]model.CivicLog, int, error) {
	logs, err := s.Repo.FindByUserID(userID)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.Repo.TotalImpact(userID)
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
