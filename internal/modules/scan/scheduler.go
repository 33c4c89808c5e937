package scan

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Scheduler drives the market scan job: once immediately at startup,
// then on a fixed interval until its context is cancelled.
type Scheduler struct {
	job      *Job
	interval time.Duration
	log      *logrus.Logger
}

func NewScheduler(job *Job, interval time.Duration, log *logrus.Logger) *Scheduler {
	return &Scheduler{job: job, interval: interval, log: log}
}

// Start blocks until ctx is cancelled. The caller must wg.Add(1)
// before spawning it and wg.Wait() during shutdown so no cycle is
// left orphaned after process exit.
func (s *Scheduler) Start(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	s.log.WithField("interval", s.interval).Info("market scan scheduler started")

	// First scan right away so the feed is never empty.
	s.job.Run(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("market scan scheduler stopping")
			return
		case <-ticker.C:
			s.job.Run(ctx)
		}
	}
}
