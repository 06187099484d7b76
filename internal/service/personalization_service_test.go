package service

import (
	"testing"

	"lifequest_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile(userID string, age int) *model.UserProfile {
	p := model.NewUserProfile(userID)
	p.Age = age
	return p
}

func recommendedIDs(recs []model.AchievementDefinition) []string {
	ids := make([]string, len(recs))
	for i, def := range recs {
		ids[i] = def.ID
	}
	return ids
}

func TestPersonalizedAgeWindow(t *testing.T) {
	env := newTestEnv(t)

	p := testProfile("alice", 16)
	p.Interests = []string{"career"}

	recs := env.personalization.Personalized(p)
	ids := recommendedIDs(recs)
	assert.Contains(t, ids, "first-paycheck")

	// 窗口外的同类成就不入选
	assert.NotContains(t, ids, "promotion")

	// 40 岁早已超出 first-paycheck 的 15-18 窗口
	older := testProfile("bob", 40)
	older.Interests = []string{"career"}
	assert.NotContains(t, recommendedIDs(env.personalization.Personalized(older)), "first-paycheck")
}

func TestPersonalizedSortedByOptimalAgeDistance(t *testing.T) {
	env := newTestEnv(t)

	p := testProfile("alice", 16)
	p.Interests = []string{"career", "fitness", "education", "health"}

	recs := env.personalization.Personalized(p)
	require.NotEmpty(t, recs)

	for i := 1; i < len(recs); i++ {
		prev := absInt(recs[i-1].AgeRange.Optimal - p.Age)
		cur := absInt(recs[i].AgeRange.Optimal - p.Age)
		assert.LessOrEqual(t, prev, cur, "recommendations must be sorted by distance to optimal age")
	}
}

func TestPersonalizedInterestFilter(t *testing.T) {
	env := newTestEnv(t)

	// 没有任何画像信号时不推荐任何条目
	blank := testProfile("alice", 25)
	assert.Empty(t, env.personalization.Personalized(blank))

	withInterest := testProfile("bob", 25)
	withInterest.Interests = []string{"fitness"}
	ids := recommendedIDs(env.personalization.Personalized(withInterest))
	assert.Contains(t, ids, "run-first-5k")
}

func TestPersonalizedPersonalityPredicate(t *testing.T) {
	env := newTestEnv(t)

	p := testProfile("alice", 22)
	p.Personality = map[string]int{"ambition": 9}

	ids := recommendedIDs(env.personalization.Personalized(p))
	assert.Contains(t, ids, "first-job-offer") // 带 ambitious 标签

	// 低于阈值不命中
	timid := testProfile("bob", 22)
	timid.Personality = map[string]int{"ambition": 3}
	assert.NotContains(t, recommendedIDs(env.personalization.Personalized(timid)), "first-job-offer")
}

func TestPersonalizedProfessionEntries(t *testing.T) {
	env := newTestEnv(t)

	dev := testProfile("alice", 30)
	dev.Career = model.CareerProfile{CurrentRole: "Senior Software Developer", YearsExperience: 6}

	ids := recommendedIDs(env.personalization.Personalized(dev))
	assert.Contains(t, ids, "ship-major-feature")
	assert.Contains(t, ids, "tech-conference-talk")

	// 其他职业的专属条目不可见
	assert.NotContains(t, ids, "save-a-life")

	// 高难度职业条目要求年资
	junior := testProfile("bob", 30)
	junior.Career = model.CareerProfile{CurrentRole: "software developer", YearsExperience: 1}
	juniorIDs := recommendedIDs(env.personalization.Personalized(junior))
	assert.Contains(t, juniorIDs, "ship-major-feature")
	assert.NotContains(t, juniorIDs, "tech-conference-talk")

	// 无职业画像时看不到任何专属条目
	civilian := testProfile("carol", 30)
	civilian.Interests = []string{"career"}
	assert.NotContains(t, recommendedIDs(env.personalization.Personalized(civilian)), "ship-major-feature")
}

func TestDetectProfession(t *testing.T) {
	env := newTestEnv(t)

	cases := map[string]string{
		"Senior Software Developer": "software developer",
		"software engineer":         "software developer",
		"ER Physician":              "doctor",
		"High School Teacher":       "teacher",
		"Research Scientist":        "scientist",
		"Random Job":                "",
		"":                          "",
	}
	for role, want := range cases {
		assert.Equal(t, want, env.personalization.DetectProfession(role), role)
	}
}

func TestIsLocked(t *testing.T) {
	env := newTestEnv(t)

	promotion := env.catalog.ByID("promotion")
	require.NotNil(t, promotion)

	assert.True(t, env.personalization.IsLocked(promotion, model.NewStringSet()))
	assert.False(t, env.personalization.IsLocked(promotion, model.NewStringSet("first-job-offer")))

	noPrereq := env.catalog.ByID("run-first-5k")
	require.NotNil(t, noPrereq)
	assert.False(t, env.personalization.IsLocked(noPrereq, model.NewStringSet()))
}
