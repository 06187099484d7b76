package service

import (
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"lifequest_backend/internal/catalog"
	"lifequest_backend/internal/model"
)

// TaskGenService 确定性任务生成器。
// 同一 (achievementId, userId) 的两次调用必须产出字节一致的任务 ID 序列，
// 进度对账全靠这一点把持久化的 ID 匹配回重新生成的任务对象。
type TaskGenService struct {
	Catalog *catalog.Catalog
}

func NewTaskGenService(cat *catalog.Catalog) *TaskGenService {
	return &TaskGenService{Catalog: cat}
}

// taskTemplate 单个任务的生成模板
type taskTemplate struct {
	Role          string
	Title         string
	Description   string
	EstimatedTime string
	Experience    int
	Priority      model.TaskPriority
	// 为 true 时沿用成就本身的验证方式（执行类/冲刺类任务）
	InheritVerification bool
	Verification        model.VerificationMethod
}

// baseTemplates 按难度分层的基础任务模板，工作量和奖励随位置递增
var baseTemplates = map[model.Difficulty][]taskTemplate{
	model.DifficultyEasy: {
		{Role: "research", Title: "Research: %s", Description: "Learn what it takes to achieve \"%s\" and note three key steps.", EstimatedTime: "30 minutes", Experience: 20, Priority: model.PriorityLow, Verification: model.VerifySelfReport},
		{Role: "plan", Title: "Plan: %s", Description: "Write a simple plan with dates for \"%s\".", EstimatedTime: "30 minutes", Experience: 30, Priority: model.PriorityMedium, Verification: model.VerifySelfReport},
		{Role: "execute", Title: "Do it: %s", Description: "Carry out your plan and finish \"%s\".", EstimatedTime: "2 hours", Experience: 50, Priority: model.PriorityHigh, InheritVerification: true},
	},
	model.DifficultyMedium: {
		{Role: "research", Title: "Research: %s", Description: "Gather the information you need for \"%s\".", EstimatedTime: "1 hour", Experience: 20, Priority: model.PriorityLow, Verification: model.VerifySelfReport},
		{Role: "plan", Title: "Plan: %s", Description: "Break \"%s\" into concrete steps with deadlines.", EstimatedTime: "1 hour", Experience: 30, Priority: model.PriorityMedium, Verification: model.VerifySelfReport},
		{Role: "prepare", Title: "Prepare: %s", Description: "Get the tools, budget or people you need for \"%s\".", EstimatedTime: "2 hours", Experience: 30, Priority: model.PriorityMedium, Verification: model.VerifySelfReport},
		{Role: "execute-1", Title: "First half: %s", Description: "Complete the first half of your plan for \"%s\".", EstimatedTime: "4 hours", Experience: 50, Priority: model.PriorityHigh, InheritVerification: true},
		{Role: "execute-2", Title: "Finish: %s", Description: "Complete the remaining steps and finish \"%s\".", EstimatedTime: "4 hours", Experience: 60, Priority: model.PriorityHigh, InheritVerification: true},
	},
	model.DifficultyHard: {
		{Role: "research", Title: "Deep research: %s", Description: "Study how others achieved \"%s\" and what went wrong for them.", EstimatedTime: "2 hours", Experience: 30, Priority: model.PriorityLow, Verification: model.VerifySelfReport},
		{Role: "strategic-plan", Title: "Strategic plan: %s", Description: "Draft a multi-week strategy for \"%s\" with milestones.", EstimatedTime: "2 hours", Experience: 40, Priority: model.PriorityMedium, Verification: model.VerifyDocument},
		{Role: "resources", Title: "Secure resources: %s", Description: "Line up the money, equipment and support \"%s\" requires.", EstimatedTime: "3 hours", Experience: 40, Priority: model.PriorityMedium, Verification: model.VerifySelfReport},
		{Role: "milestone-1", Title: "Milestone 1: %s", Description: "Hit the first milestone on the way to \"%s\".", EstimatedTime: "1 day", Experience: 60, Priority: model.PriorityHigh, InheritVerification: true},
		{Role: "milestone-2", Title: "Milestone 2: %s", Description: "Hit the second milestone on the way to \"%s\".", EstimatedTime: "1 day", Experience: 60, Priority: model.PriorityHigh, InheritVerification: true},
		{Role: "milestone-3", Title: "Milestone 3: %s", Description: "Hit the third milestone on the way to \"%s\".", EstimatedTime: "1 day", Experience: 60, Priority: model.PriorityHigh, InheritVerification: true},
		{Role: "final-challenge", Title: "Final challenge: %s", Description: "Push through the last stretch and complete \"%s\".", EstimatedTime: "2 days", Experience: 100, Priority: model.PriorityUrgent, InheritVerification: true},
	},
	model.DifficultyLegendary: {
		{Role: "deep-research", Title: "Master the domain: %s", Description: "Build deep knowledge of everything \"%s\" demands.", EstimatedTime: "1 week", Experience: 40, Priority: model.PriorityLow, Verification: model.VerifySelfReport},
		{Role: "master-plan", Title: "Master plan: %s", Description: "Write a long-term master plan for \"%s\" covering months, not days.", EstimatedTime: "3 hours", Experience: 50, Priority: model.PriorityMedium, Verification: model.VerifyDocument},
		{Role: "resources", Title: "Assemble resources: %s", Description: "Assemble every resource and ally \"%s\" will need.", EstimatedTime: "1 week", Experience: 50, Priority: model.PriorityMedium, Verification: model.VerifySelfReport},
		{Role: "phase-1", Title: "Phase 1: %s", Description: "Complete the first phase of \"%s\".", EstimatedTime: "2 weeks", Experience: 70, Priority: model.PriorityHigh, InheritVerification: true},
		{Role: "phase-2", Title: "Phase 2: %s", Description: "Complete the second phase of \"%s\".", EstimatedTime: "2 weeks", Experience: 70, Priority: model.PriorityHigh, InheritVerification: true},
		{Role: "phase-3", Title: "Phase 3: %s", Description: "Complete the third phase of \"%s\".", EstimatedTime: "2 weeks", Experience: 70, Priority: model.PriorityHigh, InheritVerification: true},
		{Role: "epic-challenge-1", Title: "Epic challenge 1: %s", Description: "Face the first great obstacle between you and \"%s\".", EstimatedTime: "1 week", Experience: 90, Priority: model.PriorityUrgent, InheritVerification: true},
		{Role: "epic-challenge-2", Title: "Epic challenge 2: %s", Description: "Face the second great obstacle between you and \"%s\".", EstimatedTime: "1 week", Experience: 90, Priority: model.PriorityUrgent, InheritVerification: true},
		{Role: "final-challenge", Title: "Final challenge: %s", Description: "Everything comes together: finish \"%s\".", EstimatedTime: "2 weeks", Experience: 120, Priority: model.PriorityUrgent, InheritVerification: true},
		{Role: "mastery", Title: "Mastery: %s", Description: "Consolidate what you achieved in \"%s\" so it lasts.", EstimatedTime: "1 week", Experience: 150, Priority: model.PriorityHigh, Verification: model.VerifySelfReport},
	},
}

// categoryBonusTemplates 类目附加任务：健康类记录指标，事业类沉淀记录，公民类记录影响
var categoryBonusTemplates = map[model.Category]taskTemplate{
	model.CategoryHealth:           {Role: "metrics", Title: "Track your metrics: %s", Description: "Record the health metrics that show progress on \"%s\".", EstimatedTime: "15 minutes daily", Experience: 25, Priority: model.PriorityMedium, Verification: model.VerifyMetric},
	model.CategoryFitness:          {Role: "metrics", Title: "Track your metrics: %s", Description: "Record the fitness metrics that show progress on \"%s\".", EstimatedTime: "15 minutes daily", Experience: 25, Priority: model.PriorityMedium, Verification: model.VerifyMetric},
	model.CategoryNutrition:        {Role: "metrics", Title: "Track your metrics: %s", Description: "Log what you eat while working on \"%s\".", EstimatedTime: "15 minutes daily", Experience: 25, Priority: model.PriorityMedium, Verification: model.VerifyMetric},
	model.CategoryCareer:           {Role: "documentation", Title: "Document your progress: %s", Description: "Keep a written record of your progress toward \"%s\".", EstimatedTime: "20 minutes weekly", Experience: 25, Priority: model.PriorityMedium, Verification: model.VerifyDocument},
	model.CategoryEntrepreneurship: {Role: "documentation", Title: "Document your progress: %s", Description: "Keep a written record of your progress toward \"%s\".", EstimatedTime: "20 minutes weekly", Experience: 25, Priority: model.PriorityMedium, Verification: model.VerifyDocument},
	model.CategoryLeadership:       {Role: "documentation", Title: "Document your progress: %s", Description: "Keep a written record of your progress toward \"%s\".", EstimatedTime: "20 minutes weekly", Experience: 25, Priority: model.PriorityMedium, Verification: model.VerifyDocument},
	model.CategoryCivic:            {Role: "impact", Title: "Document your impact: %s", Description: "Capture the impact \"%s\" had on your community.", EstimatedTime: "30 minutes", Experience: 25, Priority: model.PriorityMedium, Verification: model.VerifyPhoto},
}

// reflectionTemplate 每个成就末尾固定追加的复盘任务
var reflectionTemplate = taskTemplate{
	Role: "reflection", Title: "Reflect: %s",
	Description:   "Write down what \"%s\" taught you and what you would do differently.",
	EstimatedTime: "30 minutes", Experience: 15, Priority: model.PriorityLow,
	Verification: model.VerifySelfReport,
}

// TaskSuffix 稳定哈希后缀，ID 方案的核心：与墙钟无关
func TaskSuffix(scopeID, userID string) string {
	h := fnv.New32a()
	h.Write([]byte(scopeID + ":" + userID))
	return fmt.Sprintf("%08x", h.Sum32())
}

// TaskIDPrefix 迁移时按 {scopeId}-{role}- 前缀对齐新旧 ID
func TaskIDPrefix(scopeID, role string) string {
	return scopeID + "-" + role + "-"
}

func buildTask(scopeID, userID, suffix string, tpl taskTemplate, name string, cat model.Category, diff model.Difficulty, verify model.VerificationMethod, tags []string, now time.Time) model.TaskItem {
	v := tpl.Verification
	if tpl.InheritVerification {
		v = verify
	}
	return model.TaskItem{
		ID:                  TaskIDPrefix(scopeID, tpl.Role) + userID + "-" + suffix,
		Title:               fmtTemplate(tpl.Title, name),
		Description:         fmtTemplate(tpl.Description, name),
		Category:            cat,
		Difficulty:          diff,
		EstimatedTime:       tpl.EstimatedTime,
		Rewards:             model.Rewards{Experience: tpl.Experience},
		VerificationMethod:  v,
		VerificationPrompt:  verificationPrompt(v),
		LinkedAchievementID: scopeID,
		Tags:                tags,
		Priority:            tpl.Priority,
		CreatedAt:           now,
	}
}

// fmtTemplate 周期模板没有占位符，原样返回
func fmtTemplate(tpl, name string) string {
	if strings.Contains(tpl, "%s") {
		return fmt.Sprintf(tpl, name)
	}
	return tpl
}

func verificationPrompt(v model.VerificationMethod) string {
	switch v {
	case model.VerifyPhoto:
		return "Take a photo that proves you completed this task."
	case model.VerifySelfie:
		return "Take a selfie at the moment of completion."
	case model.VerifyDocument:
		return "Attach a document or screenshot as proof."
	case model.VerifyLocation:
		return "Check in at the location where this happened."
	case model.VerifyMetric:
		return "Record the numbers that show your progress."
	default:
		return "Confirm honestly that you completed this task."
	}
}

// Generate 从成就定义推导有序任务列表。未知成就返回空列表，不报错。
func (s *TaskGenService) Generate(achievementID, userID string) []model.TaskItem {
	def := s.Catalog.ByID(achievementID)
	if def == nil {
		return nil
	}

	suffix := TaskSuffix(achievementID, userID)
	now := time.Now()
	templates := baseTemplates[def.Difficulty]

	tasks := make([]model.TaskItem, 0, len(templates)+2)
	for _, tpl := range templates {
		tasks = append(tasks, buildTask(def.ID, userID, suffix, tpl, def.Name, def.Category, def.Difficulty, def.VerificationMethod, def.Tags, now))
	}

	if bonus, ok := categoryBonusTemplates[def.Category]; ok {
		tasks = append(tasks, buildTask(def.ID, userID, suffix, bonus, def.Name, def.Category, def.Difficulty, def.VerificationMethod, def.Tags, now))
	}

	tasks = append(tasks, buildTask(def.ID, userID, suffix, reflectionTemplate, def.Name, def.Category, def.Difficulty, def.VerificationMethod, def.Tags, now))
	return tasks
}

// periodTemplates 周期任务模板，按 (period, userId) 走同一套哈希后缀规则
var periodTemplates = map[model.Period][]taskTemplate{
	model.PeriodDaily: {
		{Role: "daily-move", Title: "Move your body", Description: "Get at least 30 minutes of physical activity today.", EstimatedTime: "30 minutes", Experience: 10, Priority: model.PriorityMedium, Verification: model.VerifySelfReport},
		{Role: "daily-learn", Title: "Learn something new", Description: "Spend 20 minutes learning toward one of your goals.", EstimatedTime: "20 minutes", Experience: 10, Priority: model.PriorityMedium, Verification: model.VerifySelfReport},
		{Role: "daily-connect", Title: "Reach out to someone", Description: "Have a real conversation with a friend or family member.", EstimatedTime: "15 minutes", Experience: 10, Priority: model.PriorityLow, Verification: model.VerifySelfReport},
	},
	model.PeriodWeekly: {
		{Role: "weekly-review", Title: "Review your week", Description: "Look back at the week and note wins and misses.", EstimatedTime: "30 minutes", Experience: 20, Priority: model.PriorityMedium, Verification: model.VerifySelfReport},
		{Role: "weekly-plan", Title: "Plan the coming week", Description: "Schedule your achievement work for the next seven days.", EstimatedTime: "30 minutes", Experience: 20, Priority: model.PriorityMedium, Verification: model.VerifySelfReport},
		{Role: "weekly-push", Title: "Push one achievement forward", Description: "Complete at least one task on an active achievement.", EstimatedTime: "2 hours", Experience: 30, Priority: model.PriorityHigh, Verification: model.VerifySelfReport},
		{Role: "weekly-care", Title: "Do something for your health", Description: "One deliberate act of self-care this week.", EstimatedTime: "1 hour", Experience: 20, Priority: model.PriorityLow, Verification: model.VerifySelfReport},
	},
	model.PeriodMonthly: {
		{Role: "monthly-retro", Title: "Monthly retrospective", Description: "Review the month against your yearly goals.", EstimatedTime: "1 hour", Experience: 40, Priority: model.PriorityMedium, Verification: model.VerifyDocument},
		{Role: "monthly-goal", Title: "Set next month's focus", Description: "Pick the one achievement that gets priority next month.", EstimatedTime: "30 minutes", Experience: 30, Priority: model.PriorityMedium, Verification: model.VerifySelfReport},
		{Role: "monthly-skill", Title: "Practice a skill", Description: "Invest five hours into one skill this month.", EstimatedTime: "5 hours", Experience: 50, Priority: model.PriorityHigh, Verification: model.VerifySelfReport},
		{Role: "monthly-social", Title: "Organize a meetup", Description: "Bring people together at least once this month.", EstimatedTime: "3 hours", Experience: 40, Priority: model.PriorityLow, Verification: model.VerifyPhoto},
		{Role: "monthly-stretch", Title: "Do one thing that scares you", Description: "Step outside your comfort zone once this month.", EstimatedTime: "varies", Experience: 50, Priority: model.PriorityHigh, Verification: model.VerifySelfReport},
	},
}

// categoryScopedTemplates 非周期关键字时按类目生成的通用任务组
var categoryScopedTemplates = []taskTemplate{
	{Role: "explore", Title: "Explore %s", Description: "Spend an hour exploring the \"%s\" area of your life.", EstimatedTime: "1 hour", Experience: 15, Priority: model.PriorityLow, Verification: model.VerifySelfReport},
	{Role: "practice", Title: "Practice %s", Description: "Do one concrete activity in the \"%s\" area.", EstimatedTime: "2 hours", Experience: 25, Priority: model.PriorityMedium, Verification: model.VerifySelfReport},
	{Role: "commit", Title: "Commit to %s", Description: "Pick a \"%s\" achievement and schedule its first task.", EstimatedTime: "30 minutes", Experience: 20, Priority: model.PriorityHigh, Verification: model.VerifySelfReport},
}

// GenerateForPeriod 生成周期（daily/weekly/monthly）或类目范围的任务组。
// scope 不是已知周期时按类目处理。
func (s *TaskGenService) GenerateForPeriod(scope string, userID string) []model.TaskItem {
	suffix := TaskSuffix(scope, userID)
	now := time.Now()

	if templates, ok := periodTemplates[model.Period(scope)]; ok {
		tasks := make([]model.TaskItem, 0, len(templates))
		for _, tpl := range templates {
			tasks = append(tasks, buildTask(scope, userID, suffix, tpl, "", "", "", model.VerifySelfReport, nil, now))
		}
		return tasks
	}

	tasks := make([]model.TaskItem, 0, len(categoryScopedTemplates))
	for _, tpl := range categoryScopedTemplates {
		tasks = append(tasks, buildTask(scope, userID, suffix, tpl, scope, model.Category(scope), "", model.VerifySelfReport, nil, now))
	}
	return tasks
}

// civicTemplates 公民行动任务模板
var civicTemplates = []taskTemplate{
	{Role: "prepare", Title: "Prepare: %s", Description: "Find out when and where you can do \"%s\" and sign up.", EstimatedTime: "30 minutes", Experience: 10, Priority: model.PriorityMedium, Verification: model.VerifySelfReport},
	{Role: "perform", Title: "Do it: %s", Description: "Carry out \"%s\".", EstimatedTime: "varies", Experience: 30, Priority: model.PriorityHigh, InheritVerification: true},
	{Role: "impact", Title: "Document your impact: %s", Description: "Capture what \"%s\" changed for the people involved.", EstimatedTime: "20 minutes", Experience: 10, Priority: model.PriorityLow, Verification: model.VerifyPhoto},
}

// GenerateCivicTasks 公民行动的任务分解，未知行动返回空列表
func (s *TaskGenService) GenerateCivicTasks(actionID, userID string) []model.TaskItem {
	action := s.Catalog.CivicByID(actionID)
	if action == nil {
		return nil
	}

	suffix := TaskSuffix(actionID, userID)
	now := time.Now()

	tasks := make([]model.TaskItem, 0, len(civicTemplates)+1)
	for _, tpl := range civicTemplates {
		t := buildTask(actionID, userID, suffix, tpl, action.Name, model.CategoryCivic, model.DifficultyEasy, action.VerificationMethod, action.Tags, now)
		if tpl.Role == "perform" {
			t.Rewards.CivicScore = action.ImpactPoints
		}
		tasks = append(tasks, t)
	}
	tasks = append(tasks, buildTask(actionID, userID, suffix, reflectionTemplate, action.Name, model.CategoryCivic, model.DifficultyEasy, action.VerificationMethod, action.Tags, now))
	return tasks
}
