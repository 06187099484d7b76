package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"lifequest_backend/internal/catalog"
	"lifequest_backend/internal/model"
	"lifequest_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const recommendationCacheTTL = 10 * time.Minute

// PersonalizationService 按用户画像筛选并排序成就目录
type PersonalizationService struct {
	Catalog *catalog.Catalog
	Redis   *redis.Client // 可为 nil，此时不走缓存
}

func NewPersonalizationService(cat *catalog.Catalog, rdb *redis.Client) *PersonalizationService {
	return &PersonalizationService{Catalog: cat, Redis: rdb}
}

// DetectProfession 自由文本职位 → 职业标签，未命中返回空串
func (s *PersonalizationService) DetectProfession(roleText string) string {
	return catalog.DetectProfession(roleText)
}

// GetPersonalized 推荐列表，按档案修订号走 Redis 缓存
func (s *PersonalizationService) GetPersonalized(ctx context.Context, p *model.UserProfile) []model.AchievementDefinition {
	if s.Redis == nil {
		return s.Personalized(p)
	}

	key := fmt.Sprintf("lifequest:recs:%s:%d", p.UserID, p.Revision)
	if raw, err := s.Redis.Get(ctx, key).Result(); err == nil {
		var cached []model.AchievementDefinition
		if json.Unmarshal([]byte(raw), &cached) == nil {
			return cached
		}
	}

	recs := s.Personalized(p)
	if data, err := json.Marshal(recs); err == nil {
		if err := s.Redis.Set(ctx, key, data, recommendationCacheTTL).Err(); err != nil {
			logger.Log.Warn("recommendation cache write failed", zap.Error(err))
		}
	}
	return recs
}

// Personalized 纯计算版本：年龄窗口内的条目并上职业专属条目，
// 再按兴趣/人格/目标等规则做或运算筛选，最后按最优年龄距离升序稳定排序。
func (s *PersonalizationService) Personalized(p *model.UserProfile) []model.AchievementDefinition {
	detected := catalog.DetectProfession(p.Career.CurrentRole)
	roleLower := strings.ToLower(p.Career.CurrentRole)

	var out []model.AchievementDefinition
	for _, def := range s.Catalog.All() {
		if def.Profession != "" {
			// 职业专属条目只对检测出的职业开放，高难度还要求年资
			if detected == "" || detected != def.Profession {
				continue
			}
			if def.Difficulty == model.DifficultyHard && p.Career.YearsExperience < 2 {
				continue
			}
			if def.Difficulty == model.DifficultyLegendary && p.Career.YearsExperience < 5 {
				continue
			}
		} else if !def.AgeRange.Contains(p.Age) {
			continue
		}

		if s.matches(&def, p, roleLower) {
			out = append(out, def)
		}
	}

	age := p.Age
	sort.SliceStable(out, func(i, j int) bool {
		return absInt(out[i].AgeRange.Optimal-age) < absInt(out[j].AgeRange.Optimal-age)
	})
	return out
}

// matches 任一规则命中即入选（或，不是与）
func (s *PersonalizationService) matches(def *model.AchievementDefinition, p *model.UserProfile, roleLower string) bool {
	if intersects(def.Tags, p.Interests) {
		return true
	}
	if catalog.MatchesPersonality(def.Tags, p.Personality) {
		return true
	}
	if intersects(def.Tags, p.Goals) || containsString(p.Goals, string(def.Category)) {
		return true
	}
	if isHealthCategory(def.Category) && intersects(def.Tags, p.Health.FitnessGoals) {
		return true
	}
	if isCareerCategory(def.Category) && intersects(def.Tags, p.Career.CareerGoals) {
		return true
	}
	if def.Profession != "" && roleLower != "" && strings.Contains(roleLower, def.Profession) {
		return true
	}
	return false
}

// IsLocked 前置成就未全部完成时返回 true
func (s *PersonalizationService) IsLocked(def *model.AchievementDefinition, completed model.StringSet) bool {
	for _, prereq := range def.Prerequisites {
		if !completed.Has(prereq) {
			return true
		}
	}
	return false
}

func isHealthCategory(c model.Category) bool {
	return c == model.CategoryHealth || c == model.CategoryFitness || c == model.CategoryNutrition
}

func isCareerCategory(c model.Category) bool {
	return c == model.CategoryCareer || c == model.CategoryEntrepreneurship || c == model.CategoryLeadership
}

func intersects(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(a))
	for _, s := range a {
		set[s] = struct{}{}
	}
	for _, s := range b {
		if _, ok := set[s]; ok {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
