package ports

import (
	"context"

	"restaurant/internal/core/domain/model/staff"
)

// StaffRepository stores chefs and couriers. Ids are unique across both roles.
type StaffRepository interface {
	// Add persists a chef or courier under its role.
	Add(ctx context.Context, member staff.Member) error

	// GetAllChefs retrieves every chef ordered by id.
	GetAllChefs(ctx context.Context) ([]*staff.Chef, error)

	// GetAllCouriers retrieves every courier ordered by id.
	GetAllCouriers(ctx context.Context) ([]*staff.Courier, error)
}
