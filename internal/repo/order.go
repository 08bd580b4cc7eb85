package repo

import (
	"context"

	"github.com/Beka01247/restaurant-api/internal/domain"
)

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	List(ctx context.Context, limit int) ([]domain.Order, error)
}
