package service

import (
	"context"
	"testing"

	"lifequest_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileUpdatePartial(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	name := "Alice"
	age := 28
	p, err := env.profiles.Update(ctx, "alice", UpdateProfileRequest{
		Name:      &name,
		Age:       &age,
		Interests: []string{"fitness"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", p.Name)
	assert.Equal(t, 28, p.Age)

	// 缺省字段保持原值
	newAge := 29
	p, err = env.profiles.Update(ctx, "alice", UpdateProfileRequest{Age: &newAge})
	require.NoError(t, err)
	assert.Equal(t, "Alice", p.Name)
	assert.Equal(t, 29, p.Age)
	assert.Equal(t, []string{"fitness"}, p.Interests)
}

func TestProfileRevisionIncrements(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.profiles.Get(ctx, "alice")
	require.NoError(t, err)
	before := p.Revision

	require.NoError(t, env.profiles.Save(ctx, p))
	assert.Equal(t, before+1, p.Revision)
}

func TestProfileOverviewUsesStoredLevel(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.profiles.Get(ctx, "alice")
	require.NoError(t, err)
	p.XP = 1000
	p.Level = 2 // 惩罚后低于 XP 推算值
	require.NoError(t, env.profiles.Save(ctx, p))

	overview, err := env.profiles.Overview(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, overview.CurrentLevel)
	assert.Equal(t, 600, overview.NextLevelXP)
}

func TestSettingsDefaults(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	settings, err := env.profiles.Settings(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "en", settings.Language)
	assert.True(t, settings.NotificationsOn)

	require.NoError(t, env.profiles.SaveSettings(ctx, "alice", model.AppSettings{Language: "fr"}))
	settings, err = env.profiles.Settings(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "fr", settings.Language)
	assert.False(t, settings.NotificationsOn)
}

func TestProfilePersistsAcrossRepositories(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.progress.Start(ctx, "alice", "run-first-5k"))

	// 同一个存储换一套仓库，模拟进程重启
	restarted := newTestEnvWithStore(t, env.store)

	p, err := restarted.profiles.Get(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, p.CurrentLifeAchievements.Has("run-first-5k"))
}
