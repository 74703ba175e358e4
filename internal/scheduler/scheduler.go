// Package scheduler drives periodic refresh runs: flush every cache,
// re-aggregate, record, and log the result. Cache invalidation lives
// here, never inside the cached components themselves.
package scheduler

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"BourseDash/internal/aggregator"
	"BourseDash/internal/constituents"
	"BourseDash/internal/marketdata"
	"BourseDash/internal/news"
	"BourseDash/internal/recorder"
	"BourseDash/internal/report"
)

// Scheduler manages the cron-driven refresh task.
type Scheduler struct {
	Cron         *cron.Cron
	Aggregator   *aggregator.Aggregator
	Constituents *constituents.Provider
	Prices       *marketdata.CachedSource
	News         *news.Client
	Recorder     recorder.Recorder
	Indices      []string
	LookbackDays int
}

// New creates a Scheduler around the assembled pipeline.
func New(agg *aggregator.Aggregator, cp *constituents.Provider, prices *marketdata.CachedSource,
	nc *news.Client, rec recorder.Recorder, indices []string, lookbackDays int) *Scheduler {
	return &Scheduler{
		Cron:         cron.New(cron.WithSeconds()),
		Aggregator:   agg,
		Constituents: cp,
		Prices:       prices,
		News:         nc,
		Recorder:     rec,
		Indices:      indices,
		LookbackDays: lookbackDays,
	}
}

// Register wires the refresh task to its cron expression.
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes a refresh immediately (start-up / manual trigger).
func (s *Scheduler) RunNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	log.Println("[INFO] running market refresh")
	s.Constituents.Refresh()
	s.Prices.Flush()
	s.News.Flush()

	at := time.Now()
	rows := s.Aggregator.Aggregate(s.Indices, s.LookbackDays)
	if len(rows) == 0 {
		log.Println("[WARN] refresh produced no data, nothing recorded")
		return
	}
	sum := aggregator.Summarize(rows)

	if err := s.Recorder.RecordSnapshot(at, rows, sum); err != nil {
		log.Printf("[ERROR] record snapshot: %v", err)
	}
	log.Println("[INFO] " + report.FormatSummary(sum))
}
