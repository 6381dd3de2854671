package ingest

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
)

// defaultSchedule runs ingestion daily at 02:00 UTC.
const defaultSchedule = "0 2 * * *"

// Scheduler triggers ingestion runs on a crontab schedule.
type Scheduler struct {
	cron    *cron.Cron
	service Service
}

func NewScheduler(service Service) *Scheduler {
	return &Scheduler{cron: cron.New(), service: service}
}

// Start registers the ingestion job under schedule. A malformed expression
// falls back to defaultSchedule instead of failing startup.
func (s *Scheduler) Start(schedule string) {
	if schedule == "" {
		schedule = defaultSchedule
	}
	if _, err := s.cron.AddFunc(schedule, s.runOnce); err != nil {
		log.Printf("scheduler: invalid cron schedule %q: %v; using %q", schedule, err, defaultSchedule)
		schedule = defaultSchedule
		if _, err := s.cron.AddFunc(schedule, s.runOnce); err != nil {
			log.Printf("scheduler: default schedule rejected: %v", err)
			return
		}
	}
	s.cron.Start()
	log.Printf("scheduler: document ingestion scheduled at %q", schedule)
}

func (s *Scheduler) runOnce() {
	count, err := s.service.Run(context.Background())
	if err != nil {
		log.Printf("scheduler: scheduled ingestion failed: %v", err)
		return
	}
	log.Printf("scheduler: scheduled ingestion processed %d documents", count)
}

// Stop waits for a running job to finish before returning.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
