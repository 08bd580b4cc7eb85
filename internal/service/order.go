package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Beka01247/restaurant-api/internal/domain"
	"github.com/Beka01247/restaurant-api/internal/queue"
	"github.com/Beka01247/restaurant-api/internal/repo"
	"go.uber.org/zap"
)

const DefaultOrderListLimit = 50

type PlaceOrderInput struct {
	Customer    domain.Customer
	Items       []domain.OrderItem
	TableNumber *string
	Pickup      bool
}

type OrderService struct {
	orderRepo repo.OrderRepository
	auditRepo repo.OrderAuditRepository
	broker    queue.Broker
	logger    *zap.SugaredLogger
}

// NewOrderService builds the service. broker may be nil, in which case no
// order events are published.
func NewOrderService(
	orderRepo repo.OrderRepository,
	auditRepo repo.OrderAuditRepository,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		auditRepo: auditRepo,
		broker:    broker,
		logger:    logger,
	}
}

// CreateOrder prices and persists a new pending order. Orders whose totals
// overflow a float64 are rejected with ErrTotalsOutOfRange.
func (s *OrderService) CreateOrder(ctx context.Context, in PlaceOrderInput) (*domain.Order, error) {
	totals := ComputeTotals(in.Items)
	if !totals.Finite() {
		return nil, ErrTotalsOutOfRange
	}

	items := in.Items
	if items == nil {
		items = []domain.OrderItem{}
	}

	order := &domain.Order{
		Customer:    in.Customer,
		Items:       items,
		Subtotal:    totals.Subtotal,
		Tax:         totals.Tax,
		Total:       totals.Total,
		Status:      domain.OrderStatusPending,
		TableNumber: in.TableNumber,
		Pickup:      in.Pickup,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Infow("order created", "order_id", order.ID.Hex(), "total", order.Total, "items", len(order.Items))

	s.publishOrderPlaced(ctx, order)

	return order, nil
}

// publishOrderPlaced is best effort: the order is already stored.
func (s *OrderService) publishOrderPlaced(ctx context.Context, order *domain.Order) {
	if s.broker == nil {
		return
	}

	event := domain.OrderPlacedEvent{
		EventType:   domain.EventOrderPlaced,
		OrderID:     order.ID.Hex(),
		Total:       order.Total,
		ItemCount:   len(order.Items),
		Pickup:      order.Pickup,
		TableNumber: order.TableNumber,
		Timestamp:   order.CreatedAt,
	}

	eventBytes, err := json.Marshal(event)
	if err != nil {
		s.logger.Errorw("failed to marshal order event", "order_id", event.OrderID, "error", err)
		return
	}

	if err := s.broker.Publish(ctx, queue.QueueOrderPlaced, eventBytes); err != nil {
		s.logger.Errorw("failed to publish order event", "order_id", event.OrderID, "error", err)
	}
}

func (s *OrderService) ListOrders(ctx context.Context, limit int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = DefaultOrderListLimit
	}

	orders, err := s.orderRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

func (s *OrderService) ProcessOrderPlacedEvent(ctx context.Context, event domain.OrderPlacedEvent) error {
	audit := &domain.OrderAudit{
		OrderID:   event.OrderID,
		EventType: event.EventType,
		Total:     event.Total,
		ItemCount: event.ItemCount,
		Timestamp: event.Timestamp,
	}

	if err := s.auditRepo.Create(ctx, audit); err != nil {
		s.logger.Errorw("failed to create order audit", "order_id", event.OrderID, "error", err)
		return fmt.Errorf("failed to create order audit: %w", err)
	}

	s.logger.Infow("order audit created", "order_id", event.OrderID, "event_type", event.EventType)

	return nil
}
