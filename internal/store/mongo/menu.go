package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Beka01247/restaurant-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MenuRepository struct {
	collection *mongo.Collection
}

func NewMenuRepository(db *mongo.Database) *MenuRepository {
	return &MenuRepository{
		collection: collection(db, CollectionMenuItems),
	}
}

// menuItemRecord mirrors a stored menu document. Documents are not schema
// enforced, so fields that may be absent are pointers.
type menuItemRecord struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description *string            `bson:"description"`
	Price       *float64           `bson:"price"`
	Category    *string            `bson:"category"`
	ImageURL    *string            `bson:"image_url"`
	IsAvailable *bool              `bson:"is_available"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (rec menuItemRecord) toDomain() domain.MenuItem {
	item := domain.MenuItem{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		Category:    domain.DefaultCategory,
		ImageURL:    rec.ImageURL,
		IsAvailable: true,
		CreatedAt:   rec.CreatedAt,
	}
	if rec.Price != nil {
		item.Price = *rec.Price
	}
	if rec.Category != nil {
		item.Category = *rec.Category
	}
	if rec.IsAvailable != nil {
		item.IsAvailable = *rec.IsAvailable
	}

	return item
}

func (r *MenuRepository) Create(ctx context.Context, item *domain.MenuItem) error {
	if r.collection == nil {
		return ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	item.CreatedAt = time.Now().UTC()

	_, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}

	return nil
}

// CreateMany inserts items in order and reports how many were written. A
// failure part way leaves the earlier items in place and the count covers only
// those.
func (r *MenuRepository) CreateMany(ctx context.Context, items []domain.MenuItem) (int, error) {
	if r.collection == nil {
		return 0, ErrNotConfigured
	}
	if len(items) == 0 {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(items))
	for i := range items {
		if items[i].ID.IsZero() {
			items[i].ID = primitive.NewObjectID()
		}
		items[i].CreatedAt = now
		docs = append(docs, items[i])
	}

	result, err := r.collection.InsertMany(ctx, docs)
	if err != nil {
		return insertedBeforeFailure(err), fmt.Errorf("failed to create menu items: %w", err)
	}

	return len(result.InsertedIDs), nil
}

// insertedBeforeFailure counts the documents an ordered InsertMany wrote
// before it stopped. InsertedIDs on a failed insert also lists the documents
// that were attempted and rejected, so the count comes from the first write
// error instead. Anything else is reported as nothing written.
func insertedBeforeFailure(err error) int {
	var bwe mongo.BulkWriteException
	if !errors.As(err, &bwe) || len(bwe.WriteErrors) == 0 {
		return 0
	}

	first := bwe.WriteErrors[0].Index
	for _, we := range bwe.WriteErrors[1:] {
		if we.Index < first {
			first = we.Index
		}
	}

	return first
}

func (r *MenuRepository) List(ctx context.Context) ([]domain.MenuItem, error) {
	if r.collection == nil {
		return nil, ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	defer cursor.Close(ctx)

	var records []menuItemRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode menu items: %w", err)
	}

	items := make([]domain.MenuItem, 0, len(records))
	for _, rec := range records {
		items = append(items, rec.toDomain())
	}

	return items, nil
}

func (r *MenuRepository) Count(ctx context.Context) (int64, error) {
	if r.collection == nil {
		return 0, ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count menu items: %w", err)
	}

	return count, nil
}
