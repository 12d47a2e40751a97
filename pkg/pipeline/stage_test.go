package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentFor(t *testing.T) {
	tests := []struct {
		stage Stage
		want  Role
	}{
		{StageNew, RoleHunter},
		{StageContacted, RoleHunter},
		{StageQualifying, RoleHunter},
		{StageScraped, RoleHunter},
		{StageNurturing, RoleHunter},
		{StageQualified, RoleCloser},
		{StagePresenting, RoleCloser},
		{StageNegotiating, RoleCloser},
		{StageWon, RoleOnboarding},
		{StageActive, RoleCS},
		{StageLost, RoleHunter},
		{Stage("bogus"), RoleHunter},
	}

	for _, tt := range tests {
		t.Run(string(tt.stage), func(t *testing.T) {
			assert.Equal(t, tt.want, AgentFor(tt.stage))
		})
	}
}

func TestCanTransition(t *testing.T) {
	allowed := [][2]Stage{
		{StageScraped, StageContacted},
		{StageNew, StageQualifying},
		{StageQualifying, StageQualified},
		{StageNew, StageQualified},
		{StageQualified, StagePresenting},
		{StagePresenting, StageNegotiating},
		{StageNegotiating, StageWon},
		{StageNegotiating, StageLost},
		{StageQualifying, StageNurturing},
		{StageNurturing, StageLost},
		{StageNurturing, StageQualifying},
		{StageWon, StageActive},
		{StageActive, StageChurned},
		{StageActive, StageActive},
	}
	for _, tr := range allowed {
		assert.True(t, CanTransition(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}

	denied := [][2]Stage{
		{StageQualified, StageNew},
		{StageLost, StageNew},
		{StageChurned, StageActive},
		{StageWon, StageNegotiating},
		{StageActive, StageNurturing},
		{StageNew, StageActive},
		{StageNew, Stage("bogus")},
	}
	for _, tr := range denied {
		assert.False(t, CanTransition(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}
}

func TestParseStage(t *testing.T) {
	s, err := ParseStage("negotiating")
	require.NoError(t, err)
	assert.Equal(t, StageNegotiating, s)

	_, err = ParseStage("closing")
	assert.Error(t, err)
	assert.Len(t, Stage("").Values(), len(Stages()))
}
