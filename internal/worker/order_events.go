package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Beka01247/restaurant-api/internal/domain"
	"github.com/Beka01247/restaurant-api/internal/queue"
	"go.uber.org/zap"
)

type OrderEventProcessor interface {
	ProcessOrderPlacedEvent(ctx context.Context, event domain.OrderPlacedEvent) error
}

type OrderEventWorker struct {
	processor OrderEventProcessor
	broker    queue.Broker
	logger    *zap.SugaredLogger
	ctx       context.Context
	cancel    context.CancelFunc
}

func NewOrderEventWorker(
	processor OrderEventProcessor,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *OrderEventWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &OrderEventWorker{
		processor: processor,
		broker:    broker,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
	}
}

func (w *OrderEventWorker) Start() error {
	w.logger.Info("starting order event worker")

	return w.broker.Subscribe(w.ctx, queue.QueueOrderPlaced, w.handleMessage)
}

func (w *OrderEventWorker) Stop() {
	w.logger.Info("stopping order event worker")
	w.cancel()
}

func (w *OrderEventWorker) handleMessage(ctx context.Context, message []byte) error {
	var event domain.OrderPlacedEvent
	if err := json.Unmarshal(message, &event); err != nil {
		w.logger.Errorw("failed to unmarshal order event", "error", err)
		return fmt.Errorf("failed to unmarshal order event: %w", err)
	}

	if event.OrderID == "" {
		return errors.New("order event without order_id")
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	w.logger.Infow("processing order event", "order_id", event.OrderID, "event_type", event.EventType)

	if err := w.processor.ProcessOrderPlacedEvent(ctx, event); err != nil {
		w.logger.Errorw("failed to process order event", "order_id", event.OrderID, "error", err)
		return err
	}

	return nil
}
