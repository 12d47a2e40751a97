package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnboardingState_CompleteIsIdempotent(t *testing.T) {
	o := &OnboardingState{}

	assert.True(t, o.Complete("welcome", "ok"))
	assert.False(t, o.Complete("welcome", ""))
	assert.Len(t, o.CompletedSteps, 1)
	assert.Equal(t, 13, o.Progress(8))
	assert.Equal(t, "ok", o.Notes["welcome"])
}

func TestOnboardingState_Progress(t *testing.T) {
	o := &OnboardingState{CompletedSteps: []string{"a", "b", "c", "d", "e", "f", "g", "h"}}
	assert.Equal(t, 100, o.Progress(8))
	assert.Equal(t, 0, o.Progress(0))
}

func TestNpsCategory(t *testing.T) {
	assert.Equal(t, NpsPromoter, NpsCategory(10))
	assert.Equal(t, NpsPromoter, NpsCategory(9))
	assert.Equal(t, NpsPassive, NpsCategory(8))
	assert.Equal(t, NpsPassive, NpsCategory(7))
	assert.Equal(t, NpsDetractor, NpsCategory(6))
	assert.Equal(t, NpsDetractor, NpsCategory(0))
}

func TestNpsHistory_LastActivity(t *testing.T) {
	var h NpsHistory
	_, ok := h.LastActivity()
	assert.False(t, ok)

	answered := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	h.Add(9, "ótimo", answered)
	last, ok := h.LastActivity()
	require.True(t, ok)
	assert.Equal(t, answered, last)

	surveyed := answered.Add(48 * time.Hour)
	h.LastSurveyAt = &surveyed
	last, _ = h.LastActivity()
	assert.Equal(t, surveyed, last)
}

func TestLeadMetadata_JSONRoundTripKeepsSubRecords(t *testing.T) {
	m := LeadMetadata{}
	m.Normalize()
	m.EnsureOnboarding(time.Unix(0, 0).UTC()).Complete("welcome", "")
	m.EnsureSuccess().TipsSentCount = 2

	raw, err := json.Marshal(m)
	require.NoError(t, err)

	var back LeadMetadata
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, MetadataVersion, back.Version)
	assert.Equal(t, []string{"welcome"}, back.Onboarding.CompletedSteps)
	assert.Equal(t, 2, back.Success.TipsSentCount)
	assert.Nil(t, back.Payment)
}
