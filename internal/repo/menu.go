package repo

import (
	"context"

	"github.com/Beka01247/restaurant-api/internal/domain"
)

type MenuRepository interface {
	Create(ctx context.Context, item *domain.MenuItem) error
	CreateMany(ctx context.Context, items []domain.MenuItem) (int, error)
	List(ctx context.Context) ([]domain.MenuItem, error)
	Count(ctx context.Context) (int64, error)
}
