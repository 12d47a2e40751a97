// Package jobs runs the scheduled sales batches: first contact, follow-up,
// nurture drip, customer success, scraping, metrics rollup and backup.
package jobs

import (
	"context"
	"time"

	"github.com/jordanlanch/salesagent/pkg/logger"
	"github.com/robfig/cron/v3"
)

// Schedule maps a job to its cron expression, in America/Sao_Paulo time.
type Schedule struct {
	Job  string
	Spec string
}

// DefaultSchedules is the in-process timetable.
var DefaultSchedules = []Schedule{
	{JobCS, "0 9 * * 1-5"},
	{JobOutbound, "0 10,14 * * 1-5"},
	{JobFollowup, "0 11,16 * * 1-5"},
	{JobNurture, "30 10 * * 2,4"},
	{JobScraper, "0 8 * * 0"},
	{JobMetrics, "55 23 * * *"},
	{JobBackup, "0 3 * * *"},
}

// CronManager manages scheduled jobs
type CronManager struct {
	cron    *cron.Cron
	runner  *Runner
	logger  logger.Logger
	timeout time.Duration
	entries map[string]cron.EntryID
}

// NewCronManager creates a new cron manager
func NewCronManager(runner *Runner, loc *time.Location, log logger.Logger) *CronManager {
	if loc == nil {
		loc = time.UTC
	}
	cl := cronLogger{log}
	return &CronManager{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		runner:  runner,
		logger:  log,
		timeout: DefaultTimeout,
		entries: make(map[string]cron.EntryID),
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs(schedules []Schedule) error {
	cm.logger.Info("Setting up cron jobs...")

	for _, s := range schedules {
		job := s.Job
		id, err := cm.cron.AddFunc(s.Spec, func() { cm.run(job) })
		if err != nil {
			return err
		}
		cm.entries[job] = id
		cm.logger.Info("  - scheduled", "job", job, "schedule", s.Spec)
	}

	cm.logger.Info("✅ Cron jobs configured successfully", "count", len(schedules))
	return nil
}

func (cm *CronManager) run(job string) {
	ctx, cancel := context.WithTimeout(context.Background(), cm.timeout)
	defer cancel()

	// Run logs its own outcome.
	_, _ = cm.runner.Run(ctx, job, Options{})
}

// NextRuns reports the next activation of every scheduled job.
func (cm *CronManager) NextRuns(now time.Time) map[string]time.Time {
	out := make(map[string]time.Time, len(cm.entries))
	for job, id := range cm.entries {
		out[job] = cm.cron.Entry(id).Schedule.Next(now)
	}
	return out
}

// Start starts the cron scheduler
func (cm *CronManager) Start() {
	cm.logger.Info("🚀 Starting cron scheduler...")
	cm.cron.Start()
}

// Stop stops the cron scheduler and waits for running jobs.
func (cm *CronManager) Stop() {
	cm.logger.Info("🛑 Stopping cron scheduler...")
	<-cm.cron.Stop().Done()
}

// cronLogger adapts logger.Logger to cron.Logger.
type cronLogger struct {
	log logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
