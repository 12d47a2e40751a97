// Package monitoring keeps in-process latency and error statistics per
// operation and builds the health payload.
package monitoring

import (
	"math"
	"sort"
	"sync"
	"time"

	"github.com/jordanlanch/salesagent/pkg/logger"
)

// Version is reported by the health endpoints.
const Version = "2.0.0"

// Alert metric names.
const (
	MetricResponseTime          = "response_time"
	MetricEscalationRate        = "escalation_rate"
	MetricAICostPerConversation = "ai_cost_per_conversation"
)

// slowOperation triggers an alert check on a single call.
const slowOperation = 10 * time.Second

// Threshold is an alert rule.
type Threshold struct {
	Metric   string  `json:"metric"`
	Above    bool    `json:"above"`
	Value    float64 `json:"value"`
	Severity string  `json:"severity"`
	Message  string  `json:"message"`
}

// DefaultThresholds: response time in ms, rates in percent, cost in cents.
var DefaultThresholds = []Threshold{
	{MetricResponseTime, true, 10000, "critical", "Tempo de resposta acima de 10s"},
	{MetricResponseTime, true, 5000, "warning", "Tempo de resposta acima de 5s"},
	{MetricEscalationRate, true, 15, "warning", "Taxa de escalacao acima de 15%"},
	{MetricAICostPerConversation, true, 5, "warning", "Custo IA por conversa acima de R$ 0,05"},
}

// OperationStats summarizes one operation.
type OperationStats struct {
	Count     int     `json:"count"`
	AvgMs     int64   `json:"avg_ms"`
	MinMs     int64   `json:"min_ms"`
	MaxMs     int64   `json:"max_ms"`
	ErrorRate float64 `json:"error_rate"`
}

type stat struct {
	count  int
	total  time.Duration
	min    time.Duration
	max    time.Duration
	errors int
}

// Health is the /health payload.
type Health struct {
	Status    string                    `json:"status"`
	Timestamp time.Time                 `json:"timestamp"`
	Version   string                    `json:"version"`
	Agents    []string                  `json:"agents"`
	Metrics   map[string]OperationStats `json:"metrics"`
	Uptime    float64                   `json:"uptime"`
}

// Monitor is safe for concurrent use. A nil Monitor records nothing.
type Monitor struct {
	mu         sync.Mutex
	stats      map[string]*stat
	thresholds []Threshold
	log        logger.Logger
	started    time.Time
	now        func() time.Time
}

// New creates a monitor with the default thresholds.
func New(log logger.Logger) *Monitor {
	return &Monitor{
		stats:      make(map[string]*stat),
		thresholds: DefaultThresholds,
		log:        log,
		started:    time.Now(),
		now:        time.Now,
	}
}

// Record adds one observation of name.
func (m *Monitor) Record(name string, d time.Duration, failed bool) {
	if m == nil {
		return
	}
	m.mu.Lock()
	s, ok := m.stats[name]
	if !ok {
		s = &stat{min: time.Duration(math.MaxInt64)}
		m.stats[name] = s
	}
	s.count++
	s.total += d
	s.min = min(s.min, d)
	s.max = max(s.max, d)
	if failed {
		s.errors++
	}
	m.mu.Unlock()

	if d > slowOperation {
		m.CheckAlerts(map[string]float64{MetricResponseTime: float64(d.Milliseconds())})
	}
}

// Track runs fn and records its duration and outcome under name.
func (m *Monitor) Track(name string, fn func() error) error {
	start := time.Now()
	err := fn()
	m.Record(name, time.Since(start), err != nil)
	return err
}

// Snapshot returns the statistics of every operation.
func (m *Monitor) Snapshot() map[string]OperationStats {
	out := map[string]OperationStats{}
	if m == nil {
		return out
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for name, s := range m.stats {
		o := OperationStats{Count: s.count, MaxMs: s.max.Milliseconds()}
		if s.count > 0 {
			o.AvgMs = (s.total / time.Duration(s.count)).Milliseconds()
			o.MinMs = s.min.Milliseconds()
			o.ErrorRate = math.Round(float64(s.errors)/float64(s.count)*10000) / 100
		}
		out[name] = o
	}
	return out
}

// Reset drops all statistics.
func (m *Monitor) Reset() {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.stats = make(map[string]*stat)
	m.mu.Unlock()
}

// CheckAlerts returns the thresholds crossed by values and logs each one.
func (m *Monitor) CheckAlerts(values map[string]float64) []Threshold {
	if m == nil {
		return nil
	}
	var triggered []Threshold
	for _, t := range m.thresholds {
		v, ok := values[t.Metric]
		if !ok {
			continue
		}
		if (t.Above && v > t.Value) || (!t.Above && v < t.Value) {
			triggered = append(triggered, t)
			m.log.Warn("🚨 ALERT "+t.Severity+": "+t.Message, "metric", t.Metric, "value", v, "threshold", t.Value)
		}
	}
	return triggered
}

// Health builds the health payload.
func (m *Monitor) Health(agents []string) Health {
	sorted := append([]string(nil), agents...)
	sort.Strings(sorted)
	h := Health{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   Version,
		Agents:    sorted,
		Metrics:   m.Snapshot(),
	}
	if m != nil {
		h.Timestamp = m.now().UTC()
		h.Uptime = m.now().Sub(m.started).Seconds()
	}
	return h
}
