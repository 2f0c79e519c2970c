package queries

import (
	"context"

	"restaurant/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetPopularItemsQueryHandler struct {
	db *gorm.DB
}

func NewGetPopularItemsQueryHandler(db *gorm.DB) GetPopularItemsQueryHandler {
	return GetPopularItemsQueryHandler{db: db}
}

// Handle ranks by quantity, then by name so ties are stable.
func (h GetPopularItemsQueryHandler) Handle(
	ctx context.Context,
	query GetPopularItemsQuery,
) ([]GetPopularItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if h.db == nil {
		return nil, ErrArchiveIsNotConfigured
	}

	items := make([]GetPopularItemsQueryResponse, 0, query.Top())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.item_name,
			SUM(l.quantity) AS quantity,
			COUNT(DISTINCT l.order_id) AS orders
		FROM order_lines l
		JOIN orders o ON o.id = l.order_id
		WHERE o.status = ?
		GROUP BY l.item_name
		ORDER BY quantity DESC, l.item_name
		LIMIT ?
	`, int(order.Delivered), query.Top()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetPopularItemsQueryResponse
		if err = rows.Scan(&item.ItemName, &item.Quantity, &item.Orders); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
