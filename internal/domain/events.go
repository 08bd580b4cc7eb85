package domain

import "time"

type OrderPlacedEvent struct {
	EventType   string    `json:"event_type"`
	OrderID     string    `json:"order_id"`
	Total       float64   `json:"total"`
	ItemCount   int       `json:"item_count"`
	Pickup      bool      `json:"pickup"`
	TableNumber *string   `json:"table_number,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

const (
	EventOrderPlaced = "order.placed"
)
