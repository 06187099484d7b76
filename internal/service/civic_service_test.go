package service

import (
	"context"
	"testing"

	"lifequest_backend/internal/model"
	"lifequest_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memCivicLog 内存版行动流水
type memCivicLog struct {
	logs []model.CivicLog
}

func (s *memCivicLog) Create(log *model.CivicLog) error {
	s.logs = append(s.logs, *log)
	return nil
}

func (s *memCivicLog) FindByUserID(userID string) ([]model.CivicLog, error) {
	var out []model.CivicLog
	for _, l := range s.logs {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *memCivicLog) TotalImpact(userID string) (int, error) {
	total := 0
	for _, l := range s.logs {
		if l.UserID == userID {
			total += l.ImpactPoints
		}
	}
	return total, nil
}

func newCivicEnv(t *testing.T) (*testEnv, *CivicService, *memCivicLog) {
	t.Helper()
	env := newTestEnv(t)
	logs := &memCivicLog{}
	civic := NewCivicService(env.catalog, env.taskGen, env.profiles, logs)
	return env, civic, logs
}

func TestCompleteCivicAction(t *testing.T) {
	env, civic, logs := newCivicEnv(t)
	ctx := context.Background()

	// attend-town-hall 自述验证，无需证据
	require.NoError(t, civic.CompleteAction(ctx, "alice", "attend-town-hall", ""))

	p, err := env.profiles.Get(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, p.CompletedCivicActions.Has("attend-town-hall"))

	action := env.catalog.CivicByID("attend-town-hall")
	require.NotNil(t, action)
	assert.Equal(t, action.ImpactPoints, p.CivicScore)
	assert.Len(t, logs.logs, 1)
}

func TestCompleteCivicActionIdempotent(t *testing.T) {
	env, civic, logs := newCivicEnv(t)
	ctx := context.Background()

	require.NoError(t, civic.CompleteAction(ctx, "alice", "attend-town-hall", ""))
	require.NoError(t, civic.CompleteAction(ctx, "alice", "attend-town-hall", ""))

	p, err := env.profiles.Get(ctx, "alice")
	require.NoError(t, err)
	action := env.catalog.CivicByID("attend-town-hall")
	assert.Equal(t, action.ImpactPoints, p.CivicScore, "repeat completion must not double-count")
	assert.Len(t, logs.logs, 1)
}

func TestCompleteCivicActionEvidence(t *testing.T) {
	_, civic, _ := newCivicEnv(t)
	ctx := context.Background()

	// blood-donation 需要自拍证据
	assert.ErrorIs(t, civic.CompleteAction(ctx, "alice", "blood-donation", ""), util.ErrEvidenceRequired)
	assert.NoError(t, civic.CompleteAction(ctx, "alice", "blood-donation", "selfie.jpg"))

	assert.ErrorIs(t, civic.CompleteAction(ctx, "alice", "no-such-action", ""), util.ErrCivicActionNotFound)
}

func TestCivicTasksAndHistory(t *testing.T) {
	env, civic, _ := newCivicEnv(t)
	ctx := context.Background()

	tasks, err := civic.Tasks(ctx, "alice", "park-cleanup")
	require.NoError(t, err)
	require.Len(t, tasks, 4)

	// 任务完成标记来自同一个 completedTasks 集合
	p, err := env.profiles.Get(ctx, "alice")
	require.NoError(t, err)
	p.CompletedTasks.Add(tasks[0].ID)

	tasks, err = civic.Tasks(ctx, "alice", "park-cleanup")
	require.NoError(t, err)
	assert.True(t, tasks[0].IsCompleted)

	require.NoError(t, civic.CompleteAction(ctx, "alice", "park-cleanup", "before-after.jpg"))
	require.NoError(t, civic.CompleteAction(ctx, "alice", "attend-town-hall", ""))

	logs, total, err := civic.History(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, logs, 2)
	cleanup := env.catalog.CivicByID("park-cleanup")
	townHall := env.catalog.CivicByID("attend-town-hall")
	assert.Equal(t, cleanup.ImpactPoints+townHall.ImpactPoints, total)
}
