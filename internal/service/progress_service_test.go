package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"lifequest_backend/internal/model"
	"lifequest_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeAll(t *testing.T, env *testEnv, userID, achievementID string) {
	t.Helper()
	for _, task := range env.taskGen.Generate(achievementID, userID) {
		evidence := ""
		if task.VerificationMethod.RequiresEvidence() {
			evidence = "photo.jpg"
		}
		require.NoError(t, env.progress.CompleteTask(context.Background(), userID, task.ID, evidence))
	}
}

func TestStartAchievement(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.progress.Start(ctx, "alice", "run-first-5k"))

	p, err := env.profiles.Get(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, p.CurrentLifeAchievements.Has("run-first-5k"))
	assert.Contains(t, p.AchievementStartDates, "run-first-5k")
	assert.NotEmpty(t, p.CurrentTasks)

	// 重复开始与未知成就
	assert.ErrorIs(t, env.progress.Start(ctx, "alice", "run-first-5k"), util.ErrAlreadyActive)
	assert.ErrorIs(t, env.progress.Start(ctx, "alice", "no-such"), util.ErrAchievementNotFound)
}

func TestStartLockedAchievement(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// promotion 的前置是 first-job-offer
	assert.ErrorIs(t, env.progress.Start(ctx, "alice", "promotion"), util.ErrAchievementLocked)

	p, err := env.profiles.Get(ctx, "alice")
	require.NoError(t, err)
	p.CompletedLifeAchievements.Add("first-job-offer")
	require.NoError(t, env.profiles.Save(ctx, p))

	assert.NoError(t, env.progress.Start(ctx, "alice", "promotion"))
}

func TestStartCapacity(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.profiles.Get(ctx, "alice")
	require.NoError(t, err)
	for i := 0; i < model.MaxActiveAchievements; i++ {
		p.CurrentLifeAchievements.Add(fmt.Sprintf("filler-%d", i))
	}
	require.NoError(t, env.profiles.Save(ctx, p))

	assert.ErrorIs(t, env.progress.Start(ctx, "alice", "run-first-5k"), util.ErrCapacityReached)
}

func TestStartCompletedAchievement(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.profiles.Get(ctx, "alice")
	require.NoError(t, err)
	p.CompletedLifeAchievements.Add("run-first-5k")
	require.NoError(t, env.profiles.Save(ctx, p))

	assert.ErrorIs(t, env.progress.Start(ctx, "alice", "run-first-5k"), util.ErrAlreadyCompleted)
}

func TestCompleteTaskEvidence(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.progress.Start(ctx, "alice", "run-first-5k"))

	tasks := env.taskGen.Generate("run-first-5k", "alice")
	var selfie model.TaskItem
	for _, task := range tasks {
		if task.VerificationMethod.RequiresEvidence() {
			selfie = task
			break
		}
	}
	require.NotEmpty(t, selfie.ID, "expected a selfie-verified task")

	assert.ErrorIs(t, env.progress.CompleteTask(ctx, "alice", selfie.ID, ""), util.ErrEvidenceRequired)
	assert.NoError(t, env.progress.CompleteTask(ctx, "alice", selfie.ID, "selfie.jpg"))

	// 重复完成是幂等空操作
	assert.NoError(t, env.progress.CompleteTask(ctx, "alice", selfie.ID, ""))
}

func TestProgressPercent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.progress.Start(ctx, "alice", "run-first-5k"))

	prog, err := env.progress.Progress(ctx, "alice", "run-first-5k")
	require.NoError(t, err)
	assert.Equal(t, 0, prog.Percent)
	assert.NotNil(t, prog.NextTask)

	tasks := env.taskGen.Generate("run-first-5k", "alice")
	require.NoError(t, env.progress.CompleteTask(ctx, "alice", tasks[0].ID, ""))

	prog, err = env.progress.Progress(ctx, "alice", "run-first-5k")
	require.NoError(t, err)
	assert.Equal(t, 1, prog.CompletedTasks)
	assert.Equal(t, len(tasks), prog.TotalTasks)
	assert.Equal(t, int(float64(1)/float64(len(tasks))*100+0.5), prog.Percent)
	require.NotNil(t, prog.NextTask)
	assert.Equal(t, tasks[1].ID, prog.NextTask.ID)
}

func TestSyncCompletesAchievementOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.progress.Start(ctx, "alice", "run-first-5k"))
	completeAll(t, env, "alice", "run-first-5k")

	p, err := env.profiles.Get(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, p.CompletedLifeAchievements.Has("run-first-5k"))
	assert.False(t, p.CurrentLifeAchievements.Has("run-first-5k"))
	assert.NotContains(t, p.AchievementStartDates, "run-first-5k")

	def := env.catalog.ByID("run-first-5k")
	require.NotNil(t, def)
	xpAfter := p.XP
	healthAfter := p.HealthScore
	assert.GreaterOrEqual(t, xpAfter, def.Rewards.Experience)
	assert.Equal(t, def.Rewards.HealthScore, healthAfter)

	// 再次显式对账不得重复发放奖励
	completed, err := env.progress.Sync(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, completed)
	assert.Equal(t, xpAfter, p.XP)
	assert.Equal(t, healthAfter, p.HealthScore)
}

func TestSyncPartialProgress(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.progress.Start(ctx, "alice", "run-first-5k"))
	tasks := env.taskGen.Generate("run-first-5k", "alice")
	require.NoError(t, env.progress.CompleteTask(ctx, "alice", tasks[0].ID, ""))

	completed, err := env.progress.Sync(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, completed)

	p, err := env.profiles.Get(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, p.CurrentLifeAchievements.Has("run-first-5k"))
}

func TestRemoveAchievement(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.progress.Start(ctx, "alice", "run-first-5k"))

	// 必须显式确认
	assert.ErrorIs(t, env.progress.Remove(ctx, "alice", "run-first-5k", false), util.ErrRemoveNotConfirmed)

	p, err := env.profiles.Get(ctx, "alice")
	require.NoError(t, err)
	p.Level = 8
	require.NoError(t, env.profiles.Save(ctx, p))

	require.NoError(t, env.progress.Remove(ctx, "alice", "run-first-5k", true))
	assert.False(t, p.CurrentLifeAchievements.Has("run-first-5k"))
	assert.Empty(t, p.CurrentTasks)
	assert.Equal(t, 4, p.Level) // 等级减半惩罚

	// 未进行中的成就不可移除
	assert.ErrorIs(t, env.progress.Remove(ctx, "alice", "run-first-5k", true), util.ErrAchievementNotActive)
}

func TestTimeRemaining(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// 未开始
	text, err := env.progress.TimeRemaining(ctx, "alice", "first-job-offer")
	require.NoError(t, err)
	assert.Equal(t, "Not started", text)

	p, err := env.profiles.Get(ctx, "alice")
	require.NoError(t, err)

	// medium 需要 3 天，开始 2 天后剩 1 天
	p.AchievementStartDates["first-job-offer"] = time.Now().Add(-48 * time.Hour)
	text, err = env.progress.TimeRemaining(ctx, "alice", "first-job-offer")
	require.NoError(t, err)
	assert.Equal(t, "1 day remaining", text)

	// 周期已满
	p.AchievementStartDates["first-job-offer"] = time.Now().Add(-96 * time.Hour)
	text, err = env.progress.TimeRemaining(ctx, "alice", "first-job-offer")
	require.NoError(t, err)
	assert.Equal(t, "Ready to complete!", text)

	// hard 需要 7 天
	p.AchievementStartDates["promotion"] = time.Now().Add(-24 * time.Hour)
	text, err = env.progress.TimeRemaining(ctx, "alice", "promotion")
	require.NoError(t, err)
	assert.Equal(t, "6 days remaining", text)
}

func TestStorageFailureKeepsMemoryState(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.store.failWrites = true
	require.NoError(t, env.progress.Start(ctx, "alice", "run-first-5k"))

	// 写失败不阻断命令，内存状态仍然生效
	p, err := env.profiles.Get(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, p.CurrentLifeAchievements.Has("run-first-5k"))

	// 存储恢复后下一次写把全量状态带下去
	env.store.failWrites = false
	tasks := env.taskGen.Generate("run-first-5k", "alice")
	require.NoError(t, env.progress.CompleteTask(ctx, "alice", tasks[0].ID, ""))
	_, ok, err := env.store.Get(ctx, "lifequest:profile:alice")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPeriodTasksCompletionFlags(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tasks, err := env.progress.PeriodTasks(ctx, "alice", "daily")
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	for _, task := range tasks {
		assert.False(t, task.IsCompleted)
	}

	require.NoError(t, env.progress.CompleteTask(ctx, "alice", tasks[0].ID, ""))

	tasks, err = env.progress.PeriodTasks(ctx, "alice", "daily")
	require.NoError(t, err)
	assert.True(t, tasks[0].IsCompleted)
	assert.False(t, tasks[1].IsCompleted)
}

func TestCompleteTaskPeriodEvidence(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// monthly-social 是照片验证的周期任务
	var photoTask *model.TaskItem
	for _, task := range env.taskGen.GenerateForPeriod("monthly", "alice") {
		if task.VerificationMethod.RequiresEvidence() {
			task := task
			photoTask = &task
			break
		}
	}
	require.NotNil(t, photoTask)

	assert.ErrorIs(t, env.progress.CompleteTask(ctx, "alice", photoTask.ID, ""), util.ErrEvidenceRequired)

	// 拒绝时状态不变
	p, err := env.profiles.Get(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, p.CompletedTasks.Has(photoTask.ID))

	require.NoError(t, env.progress.CompleteTask(ctx, "alice", photoTask.ID, "meetup.jpg"))
	assert.True(t, p.CompletedTasks.Has(photoTask.ID))
}

func TestCompleteTaskCivicEvidence(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// blood-donation 自拍验证，perform 任务继承该验证方式
	var performTask *model.TaskItem
	for _, task := range env.taskGen.GenerateCivicTasks("blood-donation", "alice") {
		if task.VerificationMethod.RequiresEvidence() {
			task := task
			performTask = &task
			break
		}
	}
	require.NotNil(t, performTask)

	assert.ErrorIs(t, env.progress.CompleteTask(ctx, "alice", performTask.ID, ""), util.ErrEvidenceRequired)

	p, err := env.profiles.Get(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, p.CompletedTasks.Has(performTask.ID))

	require.NoError(t, env.progress.CompleteTask(ctx, "alice", performTask.ID, "selfie.jpg"))
	assert.True(t, p.CompletedTasks.Has(performTask.ID))
}

func TestRemovePenaltyOutlastsRewards(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.profiles.Get(ctx, "alice")
	require.NoError(t, err)
	p.XP = 1600
	p.Level = 8
	require.NoError(t, env.profiles.Save(ctx, p))

	require.NoError(t, env.progress.Start(ctx, "alice", "run-first-5k"))
	require.NoError(t, env.progress.Remove(ctx, "alice", "run-first-5k", true))
	assert.Equal(t, 4, p.Level)
	assert.Equal(t, 800, p.XP)

	// 后续发奖按回收后的经验值推算等级，惩罚不会被抵消
	p.ApplyRewards(model.Rewards{Experience: 100})
	assert.Equal(t, 4, p.Level)
	assert.Equal(t, 900, p.XP)
}

func TestConcurrentCommandsSingleWriter(t *testing.T) {
	env := newTestEnv(t)
	civic := NewCivicService(env.catalog, env.taskGen, env.profiles, &memCivicLog{})
	ctx := context.Background()

	require.NoError(t, env.progress.Start(ctx, "alice", "run-first-5k"))
	tasks := env.taskGen.Generate("run-first-5k", "alice")

	var wg sync.WaitGroup
	for _, task := range tasks {
		task := task
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, env.progress.CompleteTask(ctx, "alice", task.ID, "photo.jpg"))
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, civic.CompleteAction(ctx, "alice", "attend-town-hall", ""))
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		name := "Alice"
		_, err := env.profiles.Update(ctx, "alice", UpdateProfileRequest{Name: &name})
		assert.NoError(t, err)
	}()
	wg.Wait()

	p, err := env.profiles.Get(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, p.CompletedLifeAchievements.Has("run-first-5k"))
	assert.True(t, p.CompletedCivicActions.Has("attend-town-hall"))
	assert.Equal(t, "Alice", p.Name)
}
