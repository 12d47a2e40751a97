package jobs

import (
	"testing"
	"time"

	"github.com/jordanlanch/salesagent/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCronManager_NextRuns(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	cm := NewCronManager(setup(t).runner, loc, logger.Nop())
	require.NoError(t, cm.SetupJobs(DefaultSchedules))

	// Saturday afternoon.
	now := time.Date(2026, 5, 9, 15, 0, 0, 0, loc)
	next := cm.NextRuns(now)
	require.Len(t, next, len(Names()))

	assert.Equal(t, time.Date(2026, 5, 11, 9, 0, 0, 0, loc), next[JobCS])
	assert.Equal(t, time.Date(2026, 5, 11, 10, 0, 0, 0, loc), next[JobOutbound])
	assert.Equal(t, time.Date(2026, 5, 12, 10, 30, 0, 0, loc), next[JobNurture])
	assert.Equal(t, time.Date(2026, 5, 10, 8, 0, 0, 0, loc), next[JobScraper])
	assert.Equal(t, time.Date(2026, 5, 9, 23, 55, 0, 0, loc), next[JobMetrics])
}

func TestCronManager_InvalidSpec(t *testing.T) {
	cm := NewCronManager(setup(t).runner, nil, logger.Nop())
	err := cm.SetupJobs([]Schedule{{Job: JobOutbound, Spec: "every day"}})
	assert.Error(t, err)
}
