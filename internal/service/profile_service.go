package service

import (
	"context"
	"sync"
	"time"

	"lifequest_backend/internal/model"
	"lifequest_backend/internal/repository"
	"lifequest_backend/pkg/logger"

	"go.uber.org/zap"
)

// ProfileService 档案读写入口，加载时顺带做 ID 方案迁移。
// 仓库缓存对同一用户始终返回同一个 *UserProfile，所以这里持有
// 整个档案聚合的单写者锁：所有读改写和 JSON 序列化都必须在锁内，
// 进度、公民行动、备份服务通过 Lock/Unlock 接入同一锁域。
type ProfileService struct {
	mu sync.Mutex

	Repo    *repository.ProfileRepository
	TaskGen *TaskGenService
}

func NewProfileService(repo *repository.ProfileRepository, taskGen *TaskGenService) *ProfileService {
	return &ProfileService{Repo: repo, TaskGen: taskGen}
}

// Lock / Unlock 档案聚合锁。其他服务的命令方法在入口处加锁，
// 之后只能调用 getLocked/saveLocked 这类不再加锁的变体。
func (s *ProfileService) Lock()   { s.mu.Lock() }
func (s *ProfileService) Unlock() { s.mu.Unlock() }

// Get 返回用户档案；旧方案档案在这里完成一次性迁移
func (s *ProfileService) Get(ctx context.Context, userID string) (*model.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLocked(ctx, userID)
}

func (s *ProfileService) getLocked(ctx context.Context, userID string) (*model.UserProfile, error) {
	p, err := s.Repo.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	if MigrateProfile(p, s.TaskGen) {
		logger.Log.Info("task id scheme migrated",
			zap.String("userId", userID), zap.Int("version", p.SchemeVersion))
		if err := s.saveLocked(ctx, p); err != nil {
			logger.Log.Warn("migrated profile not saved", zap.Error(err))
		}
	}
	return p, nil
}

// Save 统一的写回路径：递增修订号（推荐缓存失效）并更新时间戳
func (s *ProfileService) Save(ctx context.Context, p *model.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(ctx, p)
}

func (s *ProfileService) saveLocked(ctx context.Context, p *model.UserProfile) error {
	p.Revision++
	p.UpdatedAt = time.Now()
	return s.Repo.Save(ctx, p)
}

// UpdateProfileRequest 可更新的画像字段，nil 表示不动
type UpdateProfileRequest struct {
	Name        *string              `json:"name"`
	Age         *int                 `json:"age"`
	Interests   []string             `json:"interests"`
	Goals       []string             `json:"goals"`
	Personality map[string]int       `json:"personality"`
	Health      *model.HealthProfile `json:"healthProfile"`
	Career      *model.CareerProfile `json:"careerProfile"`
}

func (s *ProfileService) Update(ctx context.Context, userID string, req UpdateProfileRequest) (*model.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.getLocked(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Age != nil {
		p.Age = *req.Age
	}
	if req.Interests != nil {
		p.Interests = req.Interests
	}
	if req.Goals != nil {
		p.Goals = req.Goals
	}
	if req.Personality != nil {
		p.Personality = req.Personality
	}
	if req.Health != nil {
		p.Health = *req.Health
	}
	if req.Career != nil {
		p.Career = *req.Career
	}

	if err := s.saveLocked(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ProfileOverview 档案总览：等级、经验和各项分数
type ProfileOverview struct {
	Profile      *model.UserProfile `json:"profile"`
	CurrentLevel int                `json:"currentLevel"`
	NextLevelXP  int                `json:"nextLevelXp"`
	ActiveCount  int                `json:"activeCount"`
	DoneCount    int                `json:"doneCount"`
}

func (s *ProfileService) Overview(ctx context.Context, userID string) (*ProfileOverview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.getLocked(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 等级以档案存储值为准（放弃成就的减半惩罚会让它低于 XP 推算值）
	_, nextLevelXP := calculateLevel(p.Level * 200)
	return &ProfileOverview{
		Profile:      p,
		CurrentLevel: p.Level,
		NextLevelXP:  nextLevelXP,
		ActiveCount:  len(p.CurrentLifeAchievements),
		DoneCount:    len(p.CompletedLifeAchievements),
	}, nil
}

// Settings / SaveSettings 应用设置块透传
func (s *ProfileService) Settings(ctx context.Context, userID string) (model.AppSettings, error) {
	return s.Repo.Settings(ctx, userID)
}

func (s *ProfileService) SaveSettings(ctx context.Context, userID string, settings model.AppSettings) error {
	return s.Repo.SaveSettings(ctx, userID, settings)
}

// calculateLevel 每 200 XP 升一级
func calculateLevel(xp int) (int, int) {
	level := xp / 200
	nextLevelXP := (level + 1) * 200
	return level, nextLevelXP
}
