// Package cron sends Bot API requests on cron schedules.
package cron

import (
	"context"

	"github.com/robfig/cron/v3"
)

// Job is a task run on a schedule.
type Job interface {
	// Name identifies the job in logs and must be unique per Scheduler.
	Name() string

	// Schedule is a five-field cron expression or a descriptor such as
	// "@hourly" or "@every 10m".
	Schedule() string

	Run(ctx context.Context) error
}

var parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// ParseSchedule checks a schedule expression the way the Scheduler does.
func ParseSchedule(expr string) (cron.Schedule, error) {
	return parser.Parse(expr)
}
