package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringSetJSONStableOrder(t *testing.T) {
	s := NewStringSet("charlie", "alice", "bob")

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `["alice","bob","charlie"]`, string(data))

	var decoded StringSet
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Has("bob"))
	assert.Len(t, decoded, 3)
}

func TestApplyRewards(t *testing.T) {
	p := NewUserProfile("alice")

	p.ApplyRewards(Rewards{Experience: 150, LifeScore: 10, Badge: "runner"})
	assert.Equal(t, 150, p.XP)
	assert.Equal(t, 10, p.LifeScore)
	assert.Equal(t, 0, p.Level)
	assert.Equal(t, []string{"runner"}, p.Badges)

	p.ApplyRewards(Rewards{Experience: 300, Title: "Achiever"})
	assert.Equal(t, 450, p.XP)
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, []string{"Achiever"}, p.Titles)
}

func TestApplyRewardsNeverLowersLevel(t *testing.T) {
	p := NewUserProfile("alice")
	p.Level = 5 // 高于 XP 推算值也不回退

	p.ApplyRewards(Rewards{Experience: 200})
	assert.Equal(t, 5, p.Level)
}

func TestDifficultyRequiredDays(t *testing.T) {
	assert.Equal(t, 1, DifficultyEasy.RequiredDays())
	assert.Equal(t, 3, DifficultyMedium.RequiredDays())
	assert.Equal(t, 7, DifficultyHard.RequiredDays())
	assert.Equal(t, 14, DifficultyLegendary.RequiredDays())
}

func TestVerificationRequiresEvidence(t *testing.T) {
	assert.True(t, VerifyPhoto.RequiresEvidence())
	assert.True(t, VerifySelfie.RequiresEvidence())
	assert.False(t, VerifySelfReport.RequiresEvidence())
	assert.False(t, VerifyDocument.RequiresEvidence())
}
