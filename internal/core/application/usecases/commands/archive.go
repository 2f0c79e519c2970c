package commands

import (
	"context"
	"log/slog"

	"restaurant/internal/core/domain/model/order"
)

// archiver writes orders that reached a final status. Without a factory it does nothing,
// so the engine runs fully in memory.
type archiver struct {
	factory ArchiveUoWFactory
	logger  *slog.Logger
}

// store persists the order in its own transaction.
// Errors are logged: the in-memory transition already happened and stays authoritative.
func (a archiver) store(ctx context.Context, o *order.Order) {
	if a.factory == nil || o == nil {
		return
	}
	if err := a.tryStore(ctx, o); err != nil {
		a.logger.ErrorContext(ctx, "failed to archive order",
			"order_id", o.ID(),
			"status", o.Status().String(),
			"error", err,
		)
	}
}

func (a archiver) tryStore(ctx context.Context, o *order.Order) (err error) {
	uow := a.factory.Create()

	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		if err != nil {
			_ = uow.Rollback(ctx)
		}
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
