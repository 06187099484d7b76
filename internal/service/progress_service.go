package service

import (
	"context"
	"fmt"
	"time"

	"lifequest_backend/internal/catalog"
	"lifequest_backend/internal/model"
	"lifequest_backend/internal/util"
	"lifequest_backend/pkg/logger"
	"lifequest_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// ProgressService 进度对账引擎。
// 用户档案是唯一的可变共享资源，所有变更走这里的命令方法，
// 命令在入口处拿 ProfileService 的聚合锁保证单写者，
// 避免 completeTask、sync 和档案更新之间互相丢更新。
type ProgressService struct {
	Profiles        *ProfileService
	Personalization *PersonalizationService
	TaskGen         *TaskGenService
	Catalog         *catalog.Catalog
}

func NewProgressService(profiles *ProfileService, personalization *PersonalizationService, taskGen *TaskGenService, cat *catalog.Catalog) *ProgressService {
	return &ProgressService{
		Profiles:        profiles,
		Personalization: personalization,
		TaskGen:         taskGen,
		Catalog:         cat,
	}
}

// AchievementProgress 单个成就的进度视图
type AchievementProgress struct {
	AchievementID  string          `json:"achievementId"`
	Percent        int             `json:"percent"`
	TotalTasks     int             `json:"totalTasks"`
	CompletedTasks int             `json:"completedTasks"`
	NextTask       *model.TaskItem `json:"nextTask,omitempty"`
	DaysRemaining  int             `json:"daysRemaining"`
	TimeRemaining  string          `json:"timeRemaining"`
}

// Start 开始一个成就：容量上限 15，前置未完成时拒绝
func (s *ProgressService) Start(ctx context.Context, userID, achievementID string) error {
	s.Profiles.Lock()
	defer s.Profiles.Unlock()

	def := s.Catalog.ByID(achievementID)
	if def == nil {
		return util.ErrAchievementNotFound
	}

	p, err := s.Profiles.getLocked(ctx, userID)
	if err != nil {
		return err
	}

	if p.CompletedLifeAchievements.Has(achievementID) {
		return util.ErrAlreadyCompleted
	}
	if p.CurrentLifeAchievements.Has(achievementID) {
		return util.ErrAlreadyActive
	}
	if len(p.CurrentLifeAchievements) >= model.MaxActiveAchievements {
		return util.ErrCapacityReached
	}
	if s.Personalization.IsLocked(def, p.CompletedLifeAchievements) {
		return util.ErrAchievementLocked
	}

	p.CurrentLifeAchievements.Add(achievementID)
	p.AchievementStartDates[achievementID] = time.Now()
	for _, t := range s.TaskGen.Generate(achievementID, userID) {
		p.CurrentTasks.Add(t.ID)
	}

	s.save(ctx, p)
	return nil
}

// CompleteTask 标记任务完成。重复完成是幂等空操作；
// 照片类任务缺少证据材料时拒绝，状态不变。
func (s *ProgressService) CompleteTask(ctx context.Context, userID, taskID, evidence string) error {
	s.Profiles.Lock()
	defer s.Profiles.Unlock()

	p, err := s.Profiles.getLocked(ctx, userID)
	if err != nil {
		return err
	}

	if p.CompletedTasks.Has(taskID) {
		return nil
	}

	if task := s.findTask(p, taskID); task != nil {
		if task.VerificationMethod.RequiresEvidence() && evidence == "" {
			return util.ErrEvidenceRequired
		}
	}

	p.CompletedTasks.Add(taskID)
	p.CurrentTasks.Remove(taskID)
	monitoring.TasksCompleted.Inc()

	s.syncLocked(p)
	s.save(ctx, p)
	return nil
}

// Progress 重新生成任务序列并计算完成百分比（四舍五入），空序列为 0
func (s *ProgressService) Progress(ctx context.Context, userID, achievementID string) (AchievementProgress, error) {
	s.Profiles.Lock()
	defer s.Profiles.Unlock()

	p, err := s.Profiles.getLocked(ctx, userID)
	if err != nil {
		return AchievementProgress{}, err
	}
	return s.progressLocked(p, achievementID), nil
}

func (s *ProgressService) progressLocked(p *model.UserProfile, achievementID string) AchievementProgress {
	result := AchievementProgress{AchievementID: achievementID}

	tasks := s.TaskGen.Generate(achievementID, p.UserID)
	result.TotalTasks = len(tasks)
	if len(tasks) > 0 {
		for i := range tasks {
			if p.CompletedTasks.Has(tasks[i].ID) {
				tasks[i].IsCompleted = true
				result.CompletedTasks++
			} else if result.NextTask == nil {
				next := tasks[i]
				result.NextTask = &next
			}
		}
		result.Percent = int(float64(result.CompletedTasks)/float64(result.TotalTasks)*100 + 0.5)
	}

	result.DaysRemaining, result.TimeRemaining = s.timeRemainingLocked(p, achievementID)
	return result
}

// TimeRemaining 按难度的最短周期估算剩余天数
func (s *ProgressService) TimeRemaining(ctx context.Context, userID, achievementID string) (string, error) {
	s.Profiles.Lock()
	defer s.Profiles.Unlock()

	p, err := s.Profiles.getLocked(ctx, userID)
	if err != nil {
		return "", err
	}
	_, text := s.timeRemainingLocked(p, achievementID)
	return text, nil
}

func (s *ProgressService) timeRemainingLocked(p *model.UserProfile, achievementID string) (int, string) {
	def := s.Catalog.ByID(achievementID)
	if def == nil {
		return 0, ""
	}
	startedAt, ok := p.AchievementStartDates[achievementID]
	if !ok {
		return def.Difficulty.RequiredDays(), "Not started"
	}

	elapsed := int(time.Since(startedAt).Hours() / 24)
	remaining := def.Difficulty.RequiredDays() - elapsed
	if remaining <= 0 {
		return 0, "Ready to complete!"
	}
	if remaining == 1 {
		return 1, "1 day remaining"
	}
	return remaining, fmt.Sprintf("%d days remaining", remaining)
}

// Tasks 带完成标记的任务列表
func (s *ProgressService) Tasks(ctx context.Context, userID, achievementID string) ([]model.TaskItem, error) {
	s.Profiles.Lock()
	defer s.Profiles.Unlock()

	p, err := s.Profiles.getLocked(ctx, userID)
	if err != nil {
		return nil, err
	}

	tasks := s.TaskGen.Generate(achievementID, userID)
	for i := range tasks {
		tasks[i].IsCompleted = p.CompletedTasks.Has(tasks[i].ID)
	}
	monitoring.TasksGenerated.Add(float64(len(tasks)))
	return tasks, nil
}

// PeriodTasks 周期任务列表，完成标记同样来自 completedTasks 集合
func (s *ProgressService) PeriodTasks(ctx context.Context, userID, period string) ([]model.TaskItem, error) {
	s.Profiles.Lock()
	defer s.Profiles.Unlock()

	p, err := s.Profiles.getLocked(ctx, userID)
	if err != nil {
		return nil, err
	}

	tasks := s.TaskGen.GenerateForPeriod(period, userID)
	for i := range tasks {
		tasks[i].IsCompleted = p.CompletedTasks.Has(tasks[i].ID)
	}
	monitoring.TasksGenerated.Add(float64(len(tasks)))
	return tasks, nil
}

// Remove 放弃进行中的成就。破坏性操作，必须显式确认；
// 惩罚规则：等级减半。
func (s *ProgressService) Remove(ctx context.Context, userID, achievementID string, confirmed bool) error {
	if !confirmed {
		return util.ErrRemoveNotConfirmed
	}

	s.Profiles.Lock()
	defer s.Profiles.Unlock()

	p, err := s.Profiles.getLocked(ctx, userID)
	if err != nil {
		return err
	}
	if !p.CurrentLifeAchievements.Has(achievementID) {
		return util.ErrAchievementNotActive
	}

	p.CurrentLifeAchievements.Remove(achievementID)
	delete(p.AchievementStartDates, achievementID)
	for _, t := range s.TaskGen.Generate(achievementID, userID) {
		p.CurrentTasks.Remove(t.ID)
		p.CompletedTasks.Remove(t.ID)
	}
	// 等级减半的同时把经验值压回新等级的门槛，
	// 否则下一次发奖按 XP 推算等级会把惩罚抵消掉
	p.Level /= 2
	if floor := p.Level * 200; p.XP > floor {
		p.XP = floor
	}

	s.save(ctx, p)
	return nil
}

// Sync 显式触发一次对账，返回本次新完成的成就 ID
func (s *ProgressService) Sync(ctx context.Context, userID string) ([]string, error) {
	s.Profiles.Lock()
	defer s.Profiles.Unlock()

	p, err := s.Profiles.getLocked(ctx, userID)
	if err != nil {
		return nil, err
	}

	completed := s.syncLocked(p)
	s.save(ctx, p)
	return completed, nil
}

// syncLocked 对每个进行中的成就重新生成任务，全部任务 ID 都在
// completedTasks 里时把成就移入已完成集合。奖励只在进行中→已完成这一次
// 状态迁移时发放，重复 Sync 不会重复计分。
func (s *ProgressService) syncLocked(p *model.UserProfile) []string {
	var newlyCompleted []string

	for _, id := range p.CurrentLifeAchievements.Items() {
		tasks := s.TaskGen.Generate(id, p.UserID)
		if len(tasks) == 0 {
			continue
		}

		done := true
		for _, t := range tasks {
			if !p.CompletedTasks.Has(t.ID) {
				done = false
				break
			}
		}
		if !done {
			continue
		}

		p.CurrentLifeAchievements.Remove(id)
		p.CompletedLifeAchievements.Add(id)
		delete(p.AchievementStartDates, id)
		for _, t := range tasks {
			p.CurrentTasks.Remove(t.ID)
		}
		if def := s.Catalog.ByID(id); def != nil {
			p.ApplyRewards(def.Rewards)
		}
		monitoring.AchievementsCompleted.Inc()
		newlyCompleted = append(newlyCompleted, id)
	}

	return newlyCompleted
}

// findTask 在用户可达的任务列表里定位任务对象，用于完成时检查验证方式。
// 成就任务按进行中/已完成范围重建，周期任务和公民行动任务全量重建
// （同样是确定性生成，纯内存开销）。都找不到时按无需证据处理。
func (s *ProgressService) findTask(p *model.UserProfile, taskID string) *model.TaskItem {
	scopes := append(p.CurrentLifeAchievements.Items(), p.CompletedLifeAchievements.Items()...)
	for _, achievementID := range scopes {
		if task := matchTask(s.TaskGen.Generate(achievementID, p.UserID), taskID); task != nil {
			return task
		}
	}
	for _, period := range []model.Period{model.PeriodDaily, model.PeriodWeekly, model.PeriodMonthly} {
		if task := matchTask(s.TaskGen.GenerateForPeriod(string(period), p.UserID), taskID); task != nil {
			return task
		}
	}
	for _, action := range s.Catalog.CivicAll() {
		if task := matchTask(s.TaskGen.GenerateCivicTasks(action.ID, p.UserID), taskID); task != nil {
			return task
		}
	}
	return nil
}

func matchTask(tasks []model.TaskItem, taskID string) *model.TaskItem {
	for i := range tasks {
		if tasks[i].ID == taskID {
			task := tasks[i]
			return &task
		}
	}
	return nil
}

// save 写回档案；写失败时内存状态仍然有效，只记一条"未保存"警告
func (s *ProgressService) save(ctx context.Context, p *model.UserProfile) {
	if err := s.Profiles.saveLocked(ctx, p); err != nil {
		logger.Log.Warn("profile not saved, changes kept in memory",
			zap.String("userId", p.UserID), zap.Error(err))
	}
}
