package ui

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler fires on a cron schedule, by default at midnight so that the
// calendar follows the day change.
type Scheduler struct {
	cron  *cron.Cron
	ticks chan time.Time
}

// NewScheduler parses spec, a standard five field cron expression or a
// descriptor such as "@midnight" or "@every 1h", and starts the schedule.
func NewScheduler(spec string) (*Scheduler, error) {
	s := &Scheduler{
		cron:  cron.New(),
		ticks: make(chan time.Time, 1),
	}

	_, err := s.cron.AddFunc(spec, func() {
		select {
		case s.ticks <- time.Now():
		default:
			// A redraw is already pending.
		}
	})
	if err != nil {
		return nil, fmt.Errorf("redraw schedule %q: %w", spec, err)
	}

	s.cron.Start()
	return s, nil
}

// Ticks delivers the time of every run.
func (s *Scheduler) Ticks() <-chan time.Time {
	return s.ticks
}

// Stop stops the schedule and waits for a running job.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
