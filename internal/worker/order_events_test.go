package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/Beka01247/restaurant-api/internal/domain"
	"github.com/Beka01247/restaurant-api/internal/queue"
	"go.uber.org/zap"
)

type recordingProcessor struct {
	events []domain.OrderPlacedEvent
	err    error
}

func (p *recordingProcessor) ProcessOrderPlacedEvent(ctx context.Context, event domain.OrderPlacedEvent) error {
	p.events = append(p.events, event)
	return p.err
}

type stubBroker struct {
	subscribed string
	handler    queue.MessageHandler
}

func (b *stubBroker) Publish(ctx context.Context, queueName string, message []byte) error {
	return nil
}

func (b *stubBroker) Subscribe(ctx context.Context, queueName string, handler queue.MessageHandler) error {
	b.subscribed = queueName
	b.handler = handler
	return nil
}

func (b *stubBroker) Close() error { return nil }

func TestOrderEventWorker(t *testing.T) {
	processor := &recordingProcessor{}
	broker := &stubBroker{}
	w := NewOrderEventWorker(processor, broker, zap.NewNop().Sugar())

	if err := w.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer w.Stop()

	if broker.subscribed != queue.QueueOrderPlaced {
		t.Fatalf("subscribed to %q, want %q", broker.subscribed, queue.QueueOrderPlaced)
	}

	msg := []byte(`{"event_type":"order.placed","order_id":"65f0c0ffee","total":27.79,"item_count":2}`)
	if err := broker.handler(context.Background(), msg); err != nil {
		t.Fatalf("handler error = %v", err)
	}

	if len(processor.events) != 1 {
		t.Fatalf("processed %d events, want 1", len(processor.events))
	}
	got := processor.events[0]
	if got.OrderID != "65f0c0ffee" || got.Total != 27.79 || got.Timestamp.IsZero() {
		t.Errorf("event = %+v", got)
	}
}

func TestOrderEventWorkerRejectsBadMessages(t *testing.T) {
	tests := []struct {
		name    string
		message string
		procErr error
	}{
		{name: "not json", message: `{`},
		{name: "missing order id", message: `{"event_type":"order.placed"}`},
		{name: "processor failure", message: `{"order_id":"x"}`, procErr: errors.New("store down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewOrderEventWorker(&recordingProcessor{err: tt.procErr}, &stubBroker{}, zap.NewNop().Sugar())
			if err := w.handleMessage(context.Background(), []byte(tt.message)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
