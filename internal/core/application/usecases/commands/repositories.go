// Package commands contains the operations that change restaurant state.
// Every command follows the same pattern: constructor validation, a call into the
// restaurant coordinator, then publication of the resulting order status events.
// Commands that touch persistence do so through a unit of work.
package commands

import (
	"context"

	"restaurant/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order archive within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// MenuRepoFactory provides access to the menu repository within a transaction.
	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	// StaffRepoFactory provides access to the staff repository within a transaction.
	StaffRepoFactory interface {
		StaffRepository() ports.StaffRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// ArchiveUoW writes finished orders.
	ArchiveUoW interface {
		TxManager
		OrderRepoFactory
	}

	// ArchiveUoWFactory creates new archive unit of work instances.
	ArchiveUoWFactory interface {
		Create() ArchiveUoW
	}

	// SeedUoW reads everything a restaurant is seeded with in one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   items, err := uow.MenuRepository().GetAll(ctx)
	//   chefs, err := uow.StaffRepository().GetAllChefs(ctx)
	//   // ... register into the coordinator
	//
	//   err = uow.Commit(ctx)
	SeedUoW interface {
		TxManager
		MenuRepoFactory
		StaffRepoFactory
		CustomerRepoFactory
	}

	// SeedUoWFactory creates new seed unit of work instances.
	SeedUoWFactory interface {
		Create() SeedUoW
	}
)
