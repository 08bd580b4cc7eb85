package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Beka01247/restaurant-api/internal/domain"
	"github.com/Beka01247/restaurant-api/internal/ratelimiter"
	"github.com/Beka01247/restaurant-api/internal/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var errStoreDown = errors.New("server selection error: context deadline exceeded")

type memMenuRepo struct {
	items []domain.MenuItem
	calls int
	err   error
}

func (r *memMenuRepo) Create(ctx context.Context, item *domain.MenuItem) error {
	r.calls++
	if r.err != nil {
		return r.err
	}
	item.ID = primitive.NewObjectID()
	r.items = append(r.items, *item)
	return nil
}

func (r *memMenuRepo) CreateMany(ctx context.Context, items []domain.MenuItem) (int, error) {
	r.calls++
	if r.err != nil {
		return 0, r.err
	}
	for i := range items {
		items[i].ID = primitive.NewObjectID()
		r.items = append(r.items, items[i])
	}
	return len(items), nil
}

func (r *memMenuRepo) List(ctx context.Context) ([]domain.MenuItem, error) {
	if r.err != nil {
		return nil, r.err
	}
	return append([]domain.MenuItem{}, r.items...), nil
}

func (r *memMenuRepo) Count(ctx context.Context) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.items)), nil
}

type memOrderRepo struct {
	orders    []domain.Order
	calls     int
	lastLimit int
	err       error
}

func (r *memOrderRepo) Create(ctx context.Context, order *domain.Order) error {
	r.calls++
	if r.err != nil {
		return r.err
	}
	order.ID = primitive.NewObjectID()
	r.orders = append(r.orders, *order)
	return nil
}

func (r *memOrderRepo) List(ctx context.Context, limit int) ([]domain.Order, error) {
	r.lastLimit = limit
	if r.err != nil {
		return nil, r.err
	}
	if len(r.orders) > limit {
		return r.orders[:limit], nil
	}
	return r.orders, nil
}

type memAuditRepo struct{}

func (memAuditRepo) Create(ctx context.Context, audit *domain.OrderAudit) error { return nil }

type fakeStore struct {
	names []string
	err   error
}

func (s *fakeStore) ListCollectionNames(ctx context.Context, limit int) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	if len(s.names) > limit {
		return s.names[:limit], nil
	}
	return s.names, nil
}

func (s *fakeStore) Close(ctx context.Context) error { return nil }

type testApp struct {
	*application
	menuRepo  *memMenuRepo
	orderRepo *memOrderRepo
	handler   http.Handler
}

func newTestApplication(t *testing.T, cfg config) *testApp {
	t.Helper()

	logger := zap.NewNop().Sugar()
	menuRepo := &memMenuRepo{}
	orderRepo := &memOrderRepo{}

	app := &application{
		config:         cfg,
		logger:         logger,
		rateLimiter:    ratelimiter.NewFixedWindowLimiter(cfg.rateLimiter.RequestsPerTimeFrame, time.Minute),
		catalogService: service.NewCatalogService(menuRepo, nil, logger),
		orderService:   service.NewOrderService(orderRepo, memAuditRepo{}, nil, logger),
	}

	return &testApp{
		application: app,
		menuRepo:    menuRepo,
		orderRepo:   orderRepo,
		handler:     app.mount(),
	}
}

func (ta *testApp) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	ta.handler.ServeHTTP(rr, req)

	return rr
}

func checkResponseCode(t *testing.T, expected, actual int) {
	t.Helper()

	if expected != actual {
		t.Errorf("expected response code %d, got %d", expected, actual)
	}
}
