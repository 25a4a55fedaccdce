package scheduler

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/fake-weather/internal/weather"
)

// UsageSource is satisfied by *weather.Service.
type UsageSource interface {
	Usage() []weather.CityUsage
}

// Scheduler periodically logs how many readings were served per city.
type Scheduler struct {
	scheduler *gocron.Scheduler
	source    UsageSource
	interval  time.Duration
}

// New creates a new Scheduler.
func New(interval time.Duration, source UsageSource) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		source:    source,
		interval:  interval,
	}
}

// Start schedules the report job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		log.Println("scheduler: usage report disabled")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).WaitForSchedule().Do(func() {
		log.Printf("scheduler: %s", Summary(s.source.Usage()))
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

// Summary formats usage as a single log line.
func Summary(usage []weather.CityUsage) string {
	if len(usage) == 0 {
		return "no readings served yet"
	}

	var total uint64
	parts := make([]string, 0, len(usage))
	for _, u := range usage {
		total += u.Served
		parts = append(parts, fmt.Sprintf("%s=%d", u.City, u.Served))
	}
	return fmt.Sprintf("served %d readings (%s)", total, strings.Join(parts, ", "))
}
