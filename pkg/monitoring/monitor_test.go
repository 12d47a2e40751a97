package monitoring

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jordanlanch/salesagent/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAndSnapshot(t *testing.T) {
	m := New(logger.Nop())
	m.Record("closer.process", 100*time.Millisecond, false)
	m.Record("closer.process", 300*time.Millisecond, true)
	m.Record("closer.process", 200*time.Millisecond, false)
	m.Record("hunter.process", 50*time.Millisecond, false)

	snap := m.Snapshot()
	require.Len(t, snap, 2)
	closer := snap["closer.process"]
	assert.Equal(t, 3, closer.Count)
	assert.Equal(t, int64(200), closer.AvgMs)
	assert.Equal(t, int64(100), closer.MinMs)
	assert.Equal(t, int64(300), closer.MaxMs)
	assert.Equal(t, 33.33, closer.ErrorRate)

	m.Reset()
	assert.Empty(t, m.Snapshot())
}

func TestTrack(t *testing.T) {
	m := New(logger.Nop())
	boom := errors.New("boom")

	assert.NoError(t, m.Track("op", func() error { return nil }))
	assert.ErrorIs(t, m.Track("op", func() error { return boom }), boom)

	assert.Equal(t, 50.0, m.Snapshot()["op"].ErrorRate)
}

func TestTrack_Concurrent(t *testing.T) {
	m := New(logger.Nop())
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Record("op", time.Millisecond, false)
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, m.Snapshot()["op"].Count)
}

func TestCheckAlerts(t *testing.T) {
	m := New(logger.Nop())

	tests := []struct {
		name   string
		values map[string]float64
		want   []string
	}{
		{"fast", map[string]float64{MetricResponseTime: 800}, nil},
		{"slow", map[string]float64{MetricResponseTime: 6000}, []string{"warning"}},
		{"very slow", map[string]float64{MetricResponseTime: 12000}, []string{"critical", "warning"}},
		{"escalations", map[string]float64{MetricEscalationRate: 20, MetricAICostPerConversation: 2}, []string{"warning"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, a := range m.CheckAlerts(tt.values) {
				got = append(got, a.Severity)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHealth(t *testing.T) {
	m := New(logger.Nop())
	start := time.Date(2026, 5, 11, 12, 0, 0, 0, time.UTC)
	m.started = start
	m.now = func() time.Time { return start.Add(90 * time.Second) }
	m.Record("cs.process", time.Second, false)

	h := m.Health([]string{"hunter", "closer", "onboarding", "cs"})
	assert.Equal(t, "healthy", h.Status)
	assert.Equal(t, Version, h.Version)
	assert.Equal(t, []string{"closer", "cs", "hunter", "onboarding"}, h.Agents)
	assert.Equal(t, 90.0, h.Uptime)
	assert.Contains(t, h.Metrics, "cs.process")
}

func TestNilMonitor(t *testing.T) {
	var m *Monitor
	m.Record("op", time.Second, true)
	assert.Empty(t, m.Snapshot())
	assert.Equal(t, "healthy", m.Health(nil).Status)
}
