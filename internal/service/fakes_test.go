package service

import (
	"context"
	"errors"
	"sync"

	"github.com/Beka01247/restaurant-api/internal/domain"
	"github.com/Beka01247/restaurant-api/internal/queue"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errStoreDown = errors.New("connection refused")

type fakeMenuRepo struct {
	items []domain.MenuItem
	err   error
}

func (r *fakeMenuRepo) Create(ctx context.Context, item *domain.MenuItem) error {
	if r.err != nil {
		return r.err
	}
	item.ID = primitive.NewObjectID()
	r.items = append(r.items, *item)
	return nil
}

func (r *fakeMenuRepo) CreateMany(ctx context.Context, items []domain.MenuItem) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	for i := range items {
		items[i].ID = primitive.NewObjectID()
		r.items = append(r.items, items[i])
	}
	return len(items), nil
}

func (r *fakeMenuRepo) List(ctx context.Context) ([]domain.MenuItem, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.items, nil
}

func (r *fakeMenuRepo) Count(ctx context.Context) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.items)), nil
}

type fakeOrderRepo struct {
	orders    []domain.Order
	lastLimit int
	err       error
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *domain.Order) error {
	if r.err != nil {
		return r.err
	}
	order.ID = primitive.NewObjectID()
	r.orders = append(r.orders, *order)
	return nil
}

func (r *fakeOrderRepo) List(ctx context.Context, limit int) ([]domain.Order, error) {
	r.lastLimit = limit
	if r.err != nil {
		return nil, r.err
	}
	if len(r.orders) > limit {
		return r.orders[:limit], nil
	}
	return r.orders, nil
}

type fakeAuditRepo struct {
	audits []domain.OrderAudit
	err    error
}

func (r *fakeAuditRepo) Create(ctx context.Context, audit *domain.OrderAudit) error {
	if r.err != nil {
		return r.err
	}
	r.audits = append(r.audits, *audit)
	return nil
}

type published struct {
	name    string
	message []byte
}

type fakeBroker struct {
	mu        sync.Mutex
	published []published
	err       error
}

func (b *fakeBroker) Publish(ctx context.Context, queueName string, message []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return b.err
	}
	b.published = append(b.published, published{name: queueName, message: message})
	return nil
}

func (b *fakeBroker) Subscribe(ctx context.Context, queueName string, handler queue.MessageHandler) error {
	return nil
}

func (b *fakeBroker) Close() error { return nil }

type fakeMenuSource struct {
	items   []domain.MenuItem
	skipped int
	err     error
}

func (s *fakeMenuSource) ParseMenu(ctx context.Context, spreadsheetID, readRange string) ([]domain.MenuItem, int, error) {
	return s.items, s.skipped, s.err
}
