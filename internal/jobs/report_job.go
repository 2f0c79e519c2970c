package jobs

import (
	"context"
	"log/slog"

	"restaurant/internal/core/domain/model/restaurant"

	"github.com/robfig/cron/v3"
)

// DefaultReportSchedule logs the running report at the top of every hour.
const DefaultReportSchedule = "0 0 * * * *"

// ReportSource is satisfied by *restaurant.Restaurant.
type ReportSource interface {
	Report() restaurant.Report
}

// ReportJob periodically writes the day's figures to the log.
type ReportJob struct {
	source   ReportSource
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewReportJob(source ReportSource, schedule string, logger *slog.Logger) *ReportJob {
	if schedule == "" {
		schedule = DefaultReportSchedule
	}
	return &ReportJob{
		source:   source,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "report_job"),
	}
}

func (j *ReportJob) Run(ctx context.Context) {
	report := j.source.Report()

	top := make([]string, 0, len(report.TopItems))
	for _, item := range report.TopItems {
		top = append(top, item.Name)
	}
	j.logger.InfoContext(ctx, "Restaurant report",
		"restaurant", report.Restaurant,
		"orders_processed", report.OrdersProcessed,
		"orders_delivered", report.OrdersDelivered,
		"total_revenue", report.TotalRevenue.String(),
		"top_items", top,
	)
}

func (j *ReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Report job started", "schedule", j.schedule)
	return nil
}

func (j *ReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Report job stopped")
}
