package service

import (
	"testing"

	"lifequest_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateProfileRemapsLegacyIDs(t *testing.T) {
	env := newTestEnv(t)

	p := model.NewUserProfile("alice")
	p.SchemeVersion = 1
	p.CurrentLifeAchievements.Add("run-first-5k")

	// 旧方案 ID 带时间戳后缀
	p.CompletedTasks.Add("run-first-5k-research-alice-1716999999")
	p.CurrentTasks.Add("run-first-5k-plan-alice-1716999999")
	// 来源不明的 ID 无法对齐，应被丢弃
	p.CompletedTasks.Add("some-removed-achievement-execute-alice-1716999999")

	require.True(t, MigrateProfile(p, env.taskGen))
	assert.Equal(t, model.TaskIDSchemeVersion, p.SchemeVersion)

	suffix := TaskSuffix("run-first-5k", "alice")
	assert.True(t, p.CompletedTasks.Has("run-first-5k-research-alice-"+suffix))
	assert.True(t, p.CurrentTasks.Has("run-first-5k-plan-alice-"+suffix))
	assert.False(t, p.CompletedTasks.Has("some-removed-achievement-execute-alice-1716999999"))
	assert.Len(t, p.CompletedTasks, 1)
}

func TestMigrateProfileIdempotent(t *testing.T) {
	env := newTestEnv(t)

	p := model.NewUserProfile("alice")
	assert.False(t, MigrateProfile(p, env.taskGen), "current-scheme profiles must not migrate")

	p.SchemeVersion = 1
	assert.True(t, MigrateProfile(p, env.taskGen))
	assert.False(t, MigrateProfile(p, env.taskGen), "second migration must be a no-op")
}

func TestMigrateProfileKeepsValidIDs(t *testing.T) {
	env := newTestEnv(t)

	p := model.NewUserProfile("alice")
	p.SchemeVersion = 1
	p.CurrentLifeAchievements.Add("run-first-5k")

	valid := env.taskGen.Generate("run-first-5k", "alice")[0].ID
	p.CompletedTasks.Add(valid)

	require.True(t, MigrateProfile(p, env.taskGen))
	assert.True(t, p.CompletedTasks.Has(valid))
	assert.Len(t, p.CompletedTasks, 1)
}

func TestMigrateProfileRemapsPeriodAndCivicIDs(t *testing.T) {
	env := newTestEnv(t)

	p := model.NewUserProfile("alice")
	p.SchemeVersion = 1
	p.CompletedTasks.Add("monthly-monthly-social-alice-1716999999")
	p.CompletedTasks.Add("blood-donation-perform-alice-1716999999")

	require.True(t, MigrateProfile(p, env.taskGen))

	assert.True(t, p.CompletedTasks.Has("monthly-monthly-social-alice-"+TaskSuffix("monthly", "alice")))
	assert.True(t, p.CompletedTasks.Has("blood-donation-perform-alice-"+TaskSuffix("blood-donation", "alice")))
	assert.Len(t, p.CompletedTasks, 2)
}
