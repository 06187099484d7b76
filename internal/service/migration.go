package service

import (
	"strings"

	"lifequest_backend/internal/model"
)

// MigrateProfile 一次性任务 ID 方案迁移。
// 旧方案的 ID 带时间戳后缀，永远匹配不上生成器的当前输出，
// 受影响的任务会显得永远未完成。这里按 {scopeId}-{taskRole}- 前缀
// 把旧 ID 映射到新 ID：范围覆盖进行中/已完成的成就、三个标准周期
// 和全部公民行动，映射不上的直接丢弃（它们无论如何无法对账）。
// 迁移幂等：完成后把档案的方案版本抬到当前值，之后不再执行。
func MigrateProfile(p *model.UserProfile, gen *TaskGenService) bool {
	if p.SchemeVersion >= model.TaskIDSchemeVersion {
		return false
	}

	valid := make(map[string]struct{})
	prefixToID := make(map[string]string)

	index := func(scopeID string, tasks []model.TaskItem) {
		tail := p.UserID + "-" + TaskSuffix(scopeID, p.UserID)
		for _, t := range tasks {
			valid[t.ID] = struct{}{}
			prefixToID[strings.TrimSuffix(t.ID, tail)] = t.ID
		}
	}

	scopes := append(p.CurrentLifeAchievements.Items(), p.CompletedLifeAchievements.Items()...)
	for _, achievementID := range scopes {
		index(achievementID, gen.Generate(achievementID, p.UserID))
	}
	for _, period := range []model.Period{model.PeriodDaily, model.PeriodWeekly, model.PeriodMonthly} {
		index(string(period), gen.GenerateForPeriod(string(period), p.UserID))
	}
	for _, action := range gen.Catalog.CivicAll() {
		index(action.ID, gen.GenerateCivicTasks(action.ID, p.UserID))
	}

	remap := func(set model.StringSet) {
		for _, old := range set.Items() {
			if _, ok := valid[old]; ok {
				continue
			}
			set.Remove(old)

			// 取最长命中前缀，避免 milestone-1 误吸收 milestone-10 之类的歧义
			best := ""
			for prefix := range prefixToID {
				if strings.HasPrefix(old, prefix) && len(prefix) > len(best) {
					best = prefix
				}
			}
			if best != "" {
				set.Add(prefixToID[best])
			}
		}
	}

	remap(p.CompletedTasks)
	remap(p.CurrentTasks)

	p.SchemeVersion = model.TaskIDSchemeVersion
	return true
}
