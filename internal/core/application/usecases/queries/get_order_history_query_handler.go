package queries

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler reads the archive with one aggregate query per call.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler accepts a nil db; Handle then reports
// ErrArchiveIsNotConfigured.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if h.db == nil {
		return nil, ErrArchiveIsNotConfigured
	}

	history := make([]GetOrderHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.total,
			COALESCE(SUM(l.quantity), 0) AS item_count,
			o.courier_id,
			o.created_at
		FROM orders o
		LEFT JOIN order_lines l ON l.order_id = o.id
		WHERE o.customer_id = ?
		GROUP BY o.id
		ORDER BY o.created_at DESC, o.id DESC
		LIMIT ?
	`, query.CustomerID(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp      GetOrderHistoryQueryResponse
			status    int
			total     decimal.Decimal
			courierID *string
			createdAt time.Time
		)

		if err = rows.Scan(&resp.ID, &status, &total, &resp.ItemCount, &courierID, &createdAt); err != nil {
			return nil, err
		}

		money, moneyErr := kernel.NewMoney(total)
		if moneyErr != nil {
			return nil, moneyErr
		}
		resp.Total = money
		resp.Status = order.Status(status).String()
		resp.CreatedAt = createdAt.UTC()
		if courierID != nil {
			resp.CourierID = *courierID
		}

		history = append(history, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
