package service

import (
	"context"
	"encoding/json"
	"testing"

	"lifequest_backend/internal/model"
	"lifequest_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.progress.Start(ctx, "alice", "run-first-5k"))
	completeAll(t, env, "alice", "run-first-5k")

	snap, err := env.backup.Export(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, BackupVersion, snap.Version)
	assert.NotEmpty(t, snap.SnapshotID)
	require.NotNil(t, snap.Profile)
	assert.True(t, snap.Profile.CompletedLifeAchievements.Has("run-first-5k"))

	raw, err := json.Marshal(snap)
	require.NoError(t, err)

	// 恢复到另一套干净环境
	fresh := newTestEnv(t)
	require.NoError(t, fresh.backup.Restore(ctx, "alice", raw))

	p, err := fresh.profiles.Get(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, p.CompletedLifeAchievements.Has("run-first-5k"))
	assert.Equal(t, snap.Profile.XP, p.XP)
}

func TestRestoreRejectsInvalidPayload(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	assert.ErrorIs(t, env.backup.Restore(ctx, "alice", []byte("not json")), util.ErrInvalidBackup)

	// 结构合法但既无档案也无标识，同样拒绝
	empty, err := json.Marshal(BackupSnapshot{Version: BackupVersion})
	require.NoError(t, err)
	assert.ErrorIs(t, env.backup.Restore(ctx, "alice", empty), util.ErrInvalidBackup)
}

func TestRestoreMigratesLegacyProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	legacy := model.NewUserProfile("someone-else")
	legacy.SchemeVersion = 1
	legacy.CurrentLifeAchievements.Add("run-first-5k")
	legacy.CompletedTasks.Add("run-first-5k-research-alice-1716999999")

	raw, err := json.Marshal(BackupSnapshot{
		Version: 1,
		Profile: legacy,
	})
	require.NoError(t, err)

	require.NoError(t, env.backup.Restore(ctx, "alice", raw))

	p, err := env.profiles.Get(ctx, "alice")
	require.NoError(t, err)
	// 档案归属恢复到当前用户，旧 ID 已迁到当前方案
	assert.Equal(t, "alice", p.UserID)
	suffix := TaskSuffix("run-first-5k", "alice")
	assert.True(t, p.CompletedTasks.Has("run-first-5k-research-alice-"+suffix))
	assert.Equal(t, model.TaskIDSchemeVersion, p.SchemeVersion)
}

func TestBackupIncludesSettings(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.profiles.SaveSettings(ctx, "alice", model.AppSettings{Language: "de", NotificationsOn: false}))

	snap, err := env.backup.Export(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, snap.Settings)
	assert.Equal(t, "de", snap.Settings.Language)

	raw, err := json.Marshal(snap)
	require.NoError(t, err)

	fresh := newTestEnv(t)
	require.NoError(t, fresh.backup.Restore(ctx, "alice", raw))
	settings, err := fresh.profiles.Settings(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "de", settings.Language)
}
