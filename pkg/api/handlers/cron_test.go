package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/jordanlanch/salesagent/pkg/jobs"
	"github.com/jordanlanch/salesagent/pkg/pipeline"
	"github.com/jordanlanch/salesagent/pkg/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCron_RunsJob(t *testing.T) {
	f := setup(t)
	l := testdata.NewLead(t, f.client,
		testdata.WithStage(pipeline.StageScraped),
		testdata.WithNextFollowup(time.Now().Add(-time.Hour)))

	rec := f.do(http.MethodPost, "/api/v1/cron/outbound", "", map[string]string{"Authorization": "Bearer " + cronSecret})
	require.Equal(t, http.StatusOK, rec.Code)

	var rep jobs.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rep))
	assert.Equal(t, "outbound", rep.Job)
	assert.Equal(t, 1, rep.Processed)

	contacted, err := f.store.Get(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, pipeline.StageContacted, contacted.Stage)
	assert.Len(t, f.sender.Messages(), 1)
}

func TestCron_RejectsWrongSecret(t *testing.T) {
	f := setup(t)
	testdata.NewLead(t, f.client,
		testdata.WithStage(pipeline.StageScraped),
		testdata.WithNextFollowup(time.Now().Add(-time.Hour)))

	rec := f.do(http.MethodPost, "/api/v1/cron/outbound", "", map[string]string{"Authorization": "Bearer nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, f.sender.Messages())
}

func TestCron_UnknownJob(t *testing.T) {
	f := setup(t)
	rec := f.do(http.MethodPost, "/api/v1/cron/reindex", "", map[string]string{"Authorization": "Bearer " + cronSecret})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown_job")
}

func TestCron_JobAlreadyRunning(t *testing.T) {
	f := setup(t)
	require.NoError(t, f.mr.Set("job:followup", "1"))

	rec := f.do(http.MethodPost, "/api/v1/cron/followup", "", map[string]string{"Authorization": "Bearer " + cronSecret})
	assert.Equal(t, http.StatusConflict, rec.Code)
}
