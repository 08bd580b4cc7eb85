package repo

import (
	"context"

	"github.com/Beka01247/restaurant-api/internal/domain"
)

type OrderAuditRepository interface {
	Create(ctx context.Context, audit *domain.OrderAudit) error
}
