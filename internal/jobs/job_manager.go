// Package jobs provides scheduled background tasks for the postal service,
// built on github.com/robfig/cron/v3. The only job today is the periodic
// statistics report; JobManager keeps the start/stop surface uniform so
// further jobs slot in without touching main.
package jobs

import (
	"fmt"
	"log/slog"

	"postal/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	statisticsReportJob *StatisticsReportJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	statisticsHandler queries.ParcelStatisticsQueryHandler,
	reportSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		statisticsReportJob: NewStatisticsReportJob(statisticsHandler, reportSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.statisticsReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start statistics report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statisticsReportJob.Stop()
}
