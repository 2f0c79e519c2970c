// Package queries contains read operations over the order archive.
// Queries bypass the domain model and read the tables directly with raw SQL,
// returning flat read models for a single use case.
package queries

import (
	"errors"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
		"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
	)
	// ErrArchiveIsNotConfigured is returned by handlers built without a database.
	ErrArchiveIsNotConfigured = errors.New("order archive is not configured")
)

// GetOrderHistoryQuery lists a customer's archived orders, newest first.
//
// Example:
//
//	query, err := NewGetOrderHistoryQuery(42, 20)
//	if err != nil {
//	    return err
//	}
//	history, err := handler.Handle(ctx, query)
type GetOrderHistoryQuery struct {
	customerID int64
	limit      int

	guard guard.ConstructorGuard
}

// MaxHistoryLimit caps how many orders one query returns.
const MaxHistoryLimit = 100

// NewGetOrderHistoryQuery validates the customer id. A limit of 0 means MaxHistoryLimit.
func NewGetOrderHistoryQuery(customerID int64, limit int) (GetOrderHistoryQuery, error) {
	if customerID <= 0 {
		return GetOrderHistoryQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"customer id", fmt.Errorf("%d is not greater than 0", customerID))
	}
	if limit == 0 {
		limit = MaxHistoryLimit
	}
	if limit < 1 || limit > MaxHistoryLimit {
		return GetOrderHistoryQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxHistoryLimit)
	}

	return GetOrderHistoryQuery{
		customerID: customerID,
		limit:      limit,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

func (q GetOrderHistoryQuery) CustomerID() int64 {
	return q.customerID
}

func (q GetOrderHistoryQuery) Limit() int {
	return q.limit
}

// GetOrderHistoryQueryResponse is one archived order.
type GetOrderHistoryQueryResponse struct {
	ID        int64
	Status    string
	Total     kernel.Money
	ItemCount int
	CourierID string
	CreatedAt time.Time
}
