package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses. Only OrderStatusPending is ever written by the API.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

type Customer struct {
	Name  string  `bson:"name" json:"name"`
	Email *string `bson:"email" json:"email"`
	Phone *string `bson:"phone" json:"phone"`
}

// OrderItem keeps a snapshot of the menu item name and price at order time.
type OrderItem struct {
	MenuItemID string  `bson:"menu_item_id" json:"menu_item_id"`
	Name       string  `bson:"name" json:"name"`
	UnitPrice  float64 `bson:"unit_price" json:"unit_price"`
	Quantity   int     `bson:"quantity" json:"quantity"`
	Notes      *string `bson:"notes" json:"notes"`
}

type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Customer    Customer           `bson:"customer" json:"customer"`
	Items       []OrderItem        `bson:"items" json:"items"`
	Subtotal    float64            `bson:"subtotal" json:"subtotal"`
	Tax         float64            `bson:"tax" json:"tax"`
	Total       float64            `bson:"total" json:"total"`
	Status      string             `bson:"status" json:"status"`
	TableNumber *string            `bson:"table_number" json:"table_number"`
	Pickup      bool               `bson:"pickup" json:"pickup"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
