package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderAudit struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID   string             `bson:"order_id" json:"order_id"`
	EventType string             `bson:"event_type" json:"event_type"`
	Total     float64            `bson:"total" json:"total"`
	ItemCount int                `bson:"item_count" json:"item_count"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
