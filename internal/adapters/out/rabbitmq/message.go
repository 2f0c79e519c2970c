package rabbitmq

import (
	"time"

	"restaurant/internal/core/domain/model/order"
)

// Message is the JSON body of a status event. Money is a decimal string.
type Message struct {
	EventID    string    `json:"event_id"`
	OrderID    int64     `json:"order_id"`
	CustomerID int64     `json:"customer_id"`
	From       string    `json:"from"`
	Status     string    `json:"status"`
	StaffID    string    `json:"staff_id,omitempty"`
	Total      string    `json:"total"`
	OccurredAt time.Time `json:"occurred_at"`
}

func newMessage(e order.StatusChanged) Message {
	return Message{
		EventID:    e.EventID.String(),
		OrderID:    e.OrderID,
		CustomerID: e.CustomerID,
		From:       e.From.String(),
		Status:     e.To.String(),
		StaffID:    e.StaffID,
		Total:      e.Total.String(),
		OccurredAt: e.OccurredAt.UTC(),
	}
}
