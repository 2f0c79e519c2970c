package jobs

import (
	"context"
	"log/slog"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// DefaultKitchenDispatchSchedule runs the dispatcher every second.
const DefaultKitchenDispatchSchedule = "* * * * * *"

// KitchenDispatcher is satisfied by commands.ProcessKitchenQueueCommandHandler.
type KitchenDispatcher interface {
	Handle(ctx context.Context, cmd commands.ProcessKitchenQueueCommand) ([]*order.Order, error)
}

// KitchenDispatchJob hands queued orders to free chefs on a schedule.
type KitchenDispatchJob struct {
	handler  KitchenDispatcher
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewKitchenDispatchJob(handler KitchenDispatcher, schedule string, logger *slog.Logger) *KitchenDispatchJob {
	if schedule == "" {
		schedule = DefaultKitchenDispatchSchedule
	}
	return &KitchenDispatchJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "kitchen_dispatch_job"),
	}
}

// Run performs one dispatch pass.
func (j *KitchenDispatchJob) Run(ctx context.Context) {
	started, err := j.handler.Handle(ctx, commands.NewProcessKitchenQueueCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Kitchen dispatch failed", "error", err)
		return
	}
	if len(started) > 0 {
		j.logger.DebugContext(ctx, "Kitchen dispatch started orders", "count", len(started))
	}
}

func (j *KitchenDispatchJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Kitchen dispatch job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running pass to finish.
func (j *KitchenDispatchJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Kitchen dispatch job stopped")
}
