package model

import "time"

// TaskPriority 任务优先级
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

// Period 周期任务的时间范围
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// TaskItem 由生成器按需重建的任务项。
// 任务对象本身不持久化，只有 ID 会进入用户档案的 completedTasks/currentTasks 集合，
// 因此同一 (achievementId, userId) 必须永远生成相同的 ID 序列。
type TaskItem struct {
	ID                  string             `json:"id"`
	Title               string             `json:"title"`
	Description         string             `json:"description"`
	Category            Category           `json:"category"`
	Difficulty          Difficulty         `json:"difficulty"`
	EstimatedTime       string             `json:"estimatedTime"`
	Rewards             Rewards            `json:"rewards"`
	VerificationMethod  VerificationMethod `json:"verificationMethod"`
	VerificationPrompt  string             `json:"verificationPrompt"`
	IsCompleted         bool               `json:"isCompleted"`
	LinkedAchievementID string             `json:"linkedAchievementId,omitempty"`
	Tags                []string           `json:"tags"`
	Priority            TaskPriority       `json:"priority"`
	CreatedAt           time.Time          `json:"createdAt"`
}
