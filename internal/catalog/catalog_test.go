package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogIntegrity(t *testing.T) {
	c := New()

	seen := make(map[string]bool)
	for _, def := range c.All() {
		assert.NotEmpty(t, def.ID)
		assert.False(t, seen[def.ID], "duplicate achievement id %s", def.ID)
		seen[def.ID] = true

		assert.NotEmpty(t, def.Name, def.ID)
		assert.NotEmpty(t, def.Category, def.ID)
		assert.NotEmpty(t, def.Difficulty, def.ID)

		if def.Profession == "" {
			assert.LessOrEqual(t, def.AgeRange.Min, def.AgeRange.Optimal, def.ID)
			assert.LessOrEqual(t, def.AgeRange.Optimal, def.AgeRange.Max, def.ID)
		}
	}
	require.NotEmpty(t, seen)
}

func TestCatalogPrerequisitesExist(t *testing.T) {
	c := New()

	for _, def := range c.All() {
		for _, prereq := range def.Prerequisites {
			assert.NotNil(t, c.ByID(prereq), "%s references missing prerequisite %s", def.ID, prereq)
			assert.NotEqual(t, def.ID, prereq, "%s cannot be its own prerequisite", def.ID)
		}
	}
}

func TestCatalogByID(t *testing.T) {
	c := New()

	def := c.ByID("run-first-5k")
	require.NotNil(t, def)
	assert.Equal(t, "run-first-5k", def.ID)

	assert.Nil(t, c.ByID("no-such-achievement"))
}

func TestCivicCatalog(t *testing.T) {
	c := New()

	seen := make(map[string]bool)
	for _, action := range c.CivicAll() {
		assert.NotEmpty(t, action.ID)
		assert.False(t, seen[action.ID], "duplicate civic action id %s", action.ID)
		seen[action.ID] = true
		assert.Positive(t, action.ImpactPoints, action.ID)
	}
	require.NotEmpty(t, seen)

	require.NotNil(t, c.CivicByID("blood-donation"))
	assert.Nil(t, c.CivicByID("no-such-action"))
}

func TestDetectProfessionPriority(t *testing.T) {
	// 多职业同时命中时按表顺序取第一个：software developer 先于泛化的 engineer
	assert.Equal(t, "software developer", DetectProfession("Software Engineer"))
	assert.Equal(t, "engineer", DetectProfession("Civil Engineer"))

	assert.Equal(t, "doctor", DetectProfession("  chief PHYSICIAN  "))
	assert.Equal(t, "", DetectProfession("Random Job"))
	assert.Equal(t, "", DetectProfession(""))
}

func TestMatchesPersonality(t *testing.T) {
	tags := []string{"career", "risk-tolerant"}

	assert.True(t, MatchesPersonality(tags, map[string]int{TraitRiskTolerance: 8}))
	// 阈值是严格大于
	assert.False(t, MatchesPersonality(tags, map[string]int{TraitRiskTolerance: 7}))
	assert.False(t, MatchesPersonality(tags, map[string]int{TraitCreativity: 10}))
	assert.False(t, MatchesPersonality(tags, nil))
	assert.False(t, MatchesPersonality(nil, map[string]int{TraitRiskTolerance: 8}))
}
