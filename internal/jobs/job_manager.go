package jobs

import (
	"fmt"
	"log/slog"

	"supplychain/internal/core/application/usecases/queries"
)

// JobManager coordinates the scheduled jobs of the service.
type JobManager struct {
	pipelineReportJob *PipelineReportJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	statsHandler queries.GetPipelineStatsQueryHandler,
	reportSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		pipelineReportJob: NewPipelineReportJob(statsHandler, reportSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.pipelineReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start pipeline report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pipelineReportJob.Stop()
}
