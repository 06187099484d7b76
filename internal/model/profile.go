package model

import (
	"encoding/json"
	"sort"
	"time"
)

// TaskIDSchemeVersion 当前任务 ID 方案版本。
// 版本 1 的 ID 带有时间戳后缀，无法与生成器输出对齐；
// 版本 2 起使用稳定哈希后缀，低于该版本的档案在加载时做一次性迁移。
const TaskIDSchemeVersion = 2

// MaxActiveAchievements 同时进行中的成就上限
const MaxActiveAchievements = 15

// StringSet JSON 序列化为有序数组的字符串集合
type StringSet map[string]struct{}

func NewStringSet(items ...string) StringSet {
	s := make(StringSet, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

func (s StringSet) Has(item string) bool {
	_, ok := s[item]
	return ok
}

func (s StringSet) Add(item string) {
	s[item] = struct{}{}
}

func (s StringSet) Remove(item string) {
	delete(s, item)
}

// Items 返回排序后的元素列表
func (s StringSet) Items() []string {
	items := make([]string, 0, len(s))
	for item := range s {
		items = append(items, item)
	}
	sort.Strings(items)
	return items
}

func (s StringSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Items())
}

func (s *StringSet) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*s = NewStringSet(items...)
	return nil
}

// HealthProfile 健康子档案
type HealthProfile struct {
	FitnessGoals []string `json:"fitnessGoals,omitempty"`
}

// CareerProfile 职业子档案
type CareerProfile struct {
	CurrentRole     string   `json:"currentRole,omitempty"`
	YearsExperience int      `json:"yearsExperience,omitempty"`
	CareerGoals     []string `json:"careerGoals,omitempty"`
}

// UserProfile 用户聚合根。
// 成就/任务集合只通过 service 层的命令方法修改，UI 不直接写字段。
type UserProfile struct {
	UserID    string    `json:"userId"`
	Name      string    `json:"name,omitempty"`
	Age       int       `json:"age"`
	Interests []string  `json:"interests,omitempty"`
	Goals     []string  `json:"goals,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// 人格特质打分 0-10，键为特质名（risk_tolerance 等）
	Personality map[string]int `json:"personality,omitempty"`
	Health      HealthProfile  `json:"healthProfile"`
	Career      CareerProfile  `json:"careerProfile"`

	Level       int `json:"level"`
	XP          int `json:"xp"`
	LifeScore   int `json:"lifeScore"`
	HealthScore int `json:"healthScore"`
	CareerScore int `json:"careerScore"`
	CivicScore  int `json:"civicScore"`

	CurrentLifeAchievements   StringSet            `json:"currentLifeAchievements"`
	CompletedLifeAchievements StringSet            `json:"completedLifeAchievements"`
	AchievementStartDates     map[string]time.Time `json:"achievementStartDates"`
	CompletedTasks            StringSet            `json:"completedTasks"`
	CurrentTasks              StringSet            `json:"currentTasks"`
	CompletedCivicActions     StringSet            `json:"completedCivicActions"`

	Titles []string `json:"titles,omitempty"`
	Badges []string `json:"badges,omitempty"`

	// 推荐缓存失效用的修订号，档案每次保存时递增
	Revision int64 `json:"revision"`

	SchemeVersion int `json:"taskIdSchemeVersion"`
}

// NewUserProfile 带默认集合的空档案
func NewUserProfile(userID string) *UserProfile {
	now := time.Now()
	return &UserProfile{
		UserID:                    userID,
		CreatedAt:                 now,
		UpdatedAt:                 now,
		Personality:               make(map[string]int),
		CurrentLifeAchievements:   NewStringSet(),
		CompletedLifeAchievements: NewStringSet(),
		AchievementStartDates:     make(map[string]time.Time),
		CompletedTasks:            NewStringSet(),
		CurrentTasks:              NewStringSet(),
		CompletedCivicActions:     NewStringSet(),
		SchemeVersion:             TaskIDSchemeVersion,
	}
}

// EnsureDefaults 反序列化后补齐 nil 集合，避免旧档案缺字段
func (p *UserProfile) EnsureDefaults() {
	if p.Personality == nil {
		p.Personality = make(map[string]int)
	}
	if p.CurrentLifeAchievements == nil {
		p.CurrentLifeAchievements = NewStringSet()
	}
	if p.CompletedLifeAchievements == nil {
		p.CompletedLifeAchievements = NewStringSet()
	}
	if p.AchievementStartDates == nil {
		p.AchievementStartDates = make(map[string]time.Time)
	}
	if p.CompletedTasks == nil {
		p.CompletedTasks = NewStringSet()
	}
	if p.CurrentTasks == nil {
		p.CurrentTasks = NewStringSet()
	}
	if p.CompletedCivicActions == nil {
		p.CompletedCivicActions = NewStringSet()
	}
}

// ApplyRewards 把成就奖励累加到档案分数上。
// 调用方负责保证只在成就从进行中转为已完成时调用一次。
func (p *UserProfile) ApplyRewards(r Rewards) {
	p.XP += r.Experience
	p.LifeScore += r.LifeScore
	p.HealthScore += r.HealthScore
	p.CareerScore += r.CareerScore
	p.CivicScore += r.CivicScore
	if r.Title != "" {
		p.Titles = append(p.Titles, r.Title)
	}
	if r.Badge != "" {
		p.Badges = append(p.Badges, r.Badge)
	}
	if level := p.XP / 200; level > p.Level {
		p.Level = level
	}
}
