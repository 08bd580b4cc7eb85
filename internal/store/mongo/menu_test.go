package mongo

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Beka01247/restaurant-api/internal/domain"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestMenuItemRecordDefaults(t *testing.T) {
	rec := menuItemRecord{Name: "Soup"}

	item := rec.toDomain()

	if item.Price != 0 {
		t.Errorf("price = %v, want 0", item.Price)
	}
	if item.Category != domain.DefaultCategory {
		t.Errorf("category = %q, want %q", item.Category, domain.DefaultCategory)
	}
	if !item.IsAvailable {
		t.Error("is_available should default to true")
	}
}

func TestMenuItemRecordKeepsStoredValues(t *testing.T) {
	price := 4.5
	category := "Drinks"
	available := false
	rec := menuItemRecord{Name: "Tea", Price: &price, Category: &category, IsAvailable: &available}

	item := rec.toDomain()

	if item.Price != 4.5 || item.Category != "Drinks" || item.IsAvailable {
		t.Errorf("unexpected item: %+v", item)
	}
}

func TestRepositoriesWithoutDatabase(t *testing.T) {
	ctx := context.Background()

	if _, err := NewMenuRepository(nil).List(ctx); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("menu list error = %v, want ErrNotConfigured", err)
	}
	if _, err := NewMenuRepository(nil).Count(ctx); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("menu count error = %v, want ErrNotConfigured", err)
	}
	if err := NewOrderRepository(nil).Create(ctx, &domain.Order{}); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("order create error = %v, want ErrNotConfigured", err)
	}
	if err := NewOrderAuditRepository(nil).Create(ctx, &domain.OrderAudit{}); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("audit create error = %v, want ErrNotConfigured", err)
	}

	var storage *Storage
	if storage.Database() != nil {
		t.Error("nil storage should have no database")
	}
}

func TestInsertedBeforeFailure(t *testing.T) {
	duplicateAt := func(indexes ...int) mongo.BulkWriteException {
		bwe := mongo.BulkWriteException{}
		for _, idx := range indexes {
			bwe.WriteErrors = append(bwe.WriteErrors, mongo.BulkWriteError{
				WriteError: mongo.WriteError{Index: idx, Code: 11000, Message: "E11000 duplicate key error"},
			})
		}
		return bwe
	}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "first document rejected", err: duplicateAt(0), want: 0},
		{name: "rejected part way", err: duplicateAt(3), want: 3},
		{name: "wrapped exception", err: fmt.Errorf("insert: %w", duplicateAt(2)), want: 2},
		{name: "lowest index wins", err: duplicateAt(4, 1), want: 1},
		{name: "write concern only", err: mongo.BulkWriteException{WriteConcernError: &mongo.WriteConcernError{Code: 64}}, want: 0},
		{name: "network error", err: errors.New("connection reset by peer"), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := insertedBeforeFailure(tt.err); got != tt.want {
				t.Errorf("insertedBeforeFailure() = %d, want %d", got, tt.want)
			}
		})
	}
}
