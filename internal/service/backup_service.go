package service

import (
	"context"
	"encoding/json"
	"time"

	"lifequest_backend/internal/model"
	"lifequest_backend/internal/util"

	"github.com/google/uuid"
)

// BackupVersion 备份快照格式版本，向前迁移的依据
const BackupVersion = 2

// BackupSnapshot 全量档案快照
type BackupSnapshot struct {
	Version    int                `json:"version"`
	SnapshotID string             `json:"snapshotId"`
	ExportedAt time.Time          `json:"exportedAt"`
	Profile    *model.UserProfile `json:"userProfile,omitempty"`
	Signs      []model.UserSign   `json:"userSigns,omitempty"`
	Settings   *model.AppSettings `json:"settings,omitempty"`
}

// BackupService 备份导出/恢复。
// 导出读档案、恢复整体替换档案，都在 ProfileService 的聚合锁内进行。
type BackupService struct {
	Profiles *ProfileService
	TaskGen  *TaskGenService
}

func NewBackupService(profiles *ProfileService, taskGen *TaskGenService) *BackupService {
	return &BackupService{Profiles: profiles, TaskGen: taskGen}
}

// Export 导出当前用户的全量快照
func (s *BackupService) Export(ctx context.Context, userID string) (*BackupSnapshot, error) {
	s.Profiles.Lock()
	defer s.Profiles.Unlock()

	repo := s.Profiles.Repo
	profile, err := repo.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	signs, err := repo.Signs(ctx, userID)
	if err != nil {
		return nil, err
	}
	settings, err := repo.Settings(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &BackupSnapshot{
		Version:    BackupVersion,
		SnapshotID: uuid.New().String(),
		ExportedAt: time.Now(),
		Profile:    profile,
		Signs:      signs,
		Settings:   &settings,
	}, nil
}

// Restore 从快照恢复。userProfile 和 userSigns 都缺失的快照直接拒绝。
// 旧版本快照里的档案走与加载路径相同的 ID 方案迁移。
func (s *BackupService) Restore(ctx context.Context, userID string, raw []byte) error {
	var snap BackupSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return util.ErrInvalidBackup
	}
	if snap.Profile == nil && snap.Signs == nil {
		return util.ErrInvalidBackup
	}

	s.Profiles.Lock()
	defer s.Profiles.Unlock()

	repo := s.Profiles.Repo
	if snap.Profile != nil {
		snap.Profile.UserID = userID
		snap.Profile.EnsureDefaults()
		MigrateProfile(snap.Profile, s.TaskGen)
		if err := repo.Replace(ctx, snap.Profile); err != nil {
			return err
		}
	}
	if snap.Signs != nil {
		if err := repo.SaveSigns(ctx, userID, snap.Signs); err != nil {
			return err
		}
	}
	if snap.Settings != nil {
		if err := repo.SaveSettings(ctx, userID, *snap.Settings); err != nil {
			return err
		}
	}
	return nil
}
