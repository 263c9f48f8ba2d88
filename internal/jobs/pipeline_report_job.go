// Package jobs contains the scheduled background work of the service.
package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"supplychain/internal/core/application/usecases/queries"
)

// DefaultReportSchedule runs the pipeline report once a minute.
const DefaultReportSchedule = "@every 1m"

// PipelineReportJob periodically logs how many orders sit in each lifecycle
// stage, giving operators a heartbeat view of the pipeline without hitting
// the HTTP surface.
type PipelineReportJob struct {
	handler  queries.GetPipelineStatsQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPipelineReportJob creates the report job. An empty schedule falls back
// to DefaultReportSchedule.
func NewPipelineReportJob(
	handler queries.GetPipelineStatsQueryHandler,
	schedule string,
	logger *slog.Logger,
) *PipelineReportJob {
	if schedule == "" {
		schedule = DefaultReportSchedule
	}

	return &PipelineReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "pipeline_report_job"),
	}
}

// Start schedules the report.
func (j *PipelineReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		stats, err := j.handler.Handle(ctx, queries.NewGetPipelineStatsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Pipeline report failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Pipeline report",
			"total", stats.Total,
			"counts", stats.Counts,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pipeline report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the report job.
func (j *PipelineReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pipeline report job stopped")
}
