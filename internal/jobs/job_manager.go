package jobs

import (
	"fmt"
	"log/slog"
)

// Schedules holds the cron expressions (with seconds) for each job.
// Empty fields fall back to the job's default.
type Schedules struct {
	KitchenDispatch string
	Report          string
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	kitchenDispatchJob *KitchenDispatchJob
	reportJob          *ReportJob
}

func NewJobManager(
	dispatcher KitchenDispatcher,
	reports ReportSource,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		kitchenDispatchJob: NewKitchenDispatchJob(dispatcher, schedules.KitchenDispatch, logger),
		reportJob:          NewReportJob(reports, schedules.Report, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.kitchenDispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start kitchen dispatch job: %w", err)
	}

	if err := jm.reportJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.kitchenDispatchJob.Stop()
		return fmt.Errorf("failed to start report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.reportJob.Stop()
	jm.kitchenDispatchJob.Stop()
}
