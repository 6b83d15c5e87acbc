package jobs

import (
	"context"
	"log/slog"

	"postal/internal/core/application/usecases/queries"
	"postal/internal/core/domain/model/parcel"

	"github.com/robfig/cron/v3"
)

// StatisticsReportJob periodically logs the global parcel statistics.
// The report gives operators a heartbeat of the system without touching any
// state: the job runs the same query the statistics endpoint serves, over an
// empty filter.
type StatisticsReportJob struct {
	handler  queries.ParcelStatisticsQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStatisticsReportJob creates the report job with the given cron
// schedule.
func NewStatisticsReportJob(
	handler queries.ParcelStatisticsQueryHandler,
	schedule string,
	logger *slog.Logger,
) *StatisticsReportJob {
	return &StatisticsReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "statistics_report_job"),
	}
}

// Start schedules the report job.
func (j *StatisticsReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		query, queryErr := queries.NewParcelStatisticsQuery(parcel.Filter{})
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Statistics report job failed", "error", queryErr)
			return
		}

		stats, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Statistics report job failed", "error", handleErr)
			return
		}

		j.logger.InfoContext(ctx, "Parcel statistics report",
			"totalParcels", stats.TotalParcels,
			"averageWeight", stats.AverageWeight,
			"averagePrice", stats.AveragePrice,
			"created", stats.CountByStatus[parcel.Created],
			"inTransit", stats.CountByStatus[parcel.InTransit],
			"delivered", stats.CountByStatus[parcel.Delivered],
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Statistics report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the report job.
func (j *StatisticsReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Statistics report job stopped")
}
