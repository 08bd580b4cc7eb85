package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/Beka01247/restaurant-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type OrderAuditRepository struct {
	collection *mongo.Collection
}

func NewOrderAuditRepository(db *mongo.Database) *OrderAuditRepository {
	return &OrderAuditRepository{
		collection: collection(db, CollectionOrderAudit),
	}
}

func (r *OrderAuditRepository) Create(ctx context.Context, audit *domain.OrderAudit) error {
	if r.collection == nil {
		return ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if audit.ID.IsZero() {
		audit.ID = primitive.NewObjectID()
	}
	if audit.Timestamp.IsZero() {
		audit.Timestamp = time.Now().UTC()
	}

	_, err := r.collection.InsertOne(ctx, audit)
	if err != nil {
		return fmt.Errorf("failed to create order audit: %w", err)
	}

	return nil
}
