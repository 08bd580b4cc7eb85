package queue

import (
	"context"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const headerRetryCount = "x-retry-count"

// amqpChannel is the part of *amqp.Channel the broker uses.
type amqpChannel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Close() error
}

type RabbitMQBroker struct {
	conn       *amqp.Connection
	channel    amqpChannel
	maxRetries int
	retryDelay time.Duration
	logger     *zap.SugaredLogger
	mu         sync.RWMutex
}

type Config struct {
	URL           string
	MaxRetries    int
	RetryDelay    time.Duration
	PrefetchCount int
	Logger        *zap.SugaredLogger
}

func NewRabbitMQBroker(cfg Config) (*RabbitMQBroker, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := channel.Qos(cfg.PrefetchCount, 0, false); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	broker := &RabbitMQBroker{
		conn:       conn,
		channel:    channel,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		logger:     logger,
	}

	for _, queueName := range []string{QueueOrderPlaced, QueueOrderPlacedDLQ} {
		if err := broker.declareQueue(queueName); err != nil {
			broker.Close()
			return nil, err
		}
	}

	return broker, nil
}

func (b *RabbitMQBroker) declareQueue(queueName string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	_, err := b.channel.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", queueName, err)
	}

	return nil
}

func (b *RabbitMQBroker) Publish(ctx context.Context, queueName string, message []byte) error {
	return b.publish(ctx, queueName, message, nil)
}

func (b *RabbitMQBroker) publish(ctx context.Context, queueName string, body []byte, headers amqp.Table) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	err := b.channel.PublishWithContext(
		ctx,
		"",        // exchange
		queueName, // routing key
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Headers:      headers,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

func (b *RabbitMQBroker) Subscribe(ctx context.Context, queueName string, handler MessageHandler) error {
	b.mu.RLock()
	msgs, err := b.channel.Consume(
		queueName, // queue
		"",        // consumer
		false,     // auto-ack
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	b.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				b.handleMessage(ctx, msg, handler, queueName)
			}
		}
	}()

	return nil
}

// handleMessage acks a delivery once it is handled or handed on. Failed
// messages are republished with an incremented retry header and exponential
// delay, then moved to the DLQ once maxRetries is reached. When the republish
// itself fails the delivery is nacked and requeued so the message is kept.
func (b *RabbitMQBroker) handleMessage(ctx context.Context, msg amqp.Delivery, handler MessageHandler, queueName string) {
	err := handler(ctx, msg.Body)
	if err == nil {
		b.settle(msg, queueName, msg.Ack(false))
		return
	}

	retryCount := retryCountOf(msg.Headers)

	target := queueName
	headers := amqp.Table{headerRetryCount: int32(retryCount + 1)}
	if retryCount < b.maxRetries {
		time.Sleep(backoff(b.retryDelay, retryCount))
	} else {
		target = queueName + dlqSuffix
		headers = amqp.Table{
			"x-original-queue": queueName,
			headerRetryCount:   int32(retryCount),
			"x-error":          err.Error(),
		}
	}

	if pubErr := b.publish(ctx, target, msg.Body, headers); pubErr != nil {
		b.logger.Errorw("failed to republish message, requeueing",
			"queue", queueName, "target", target, "retry_count", retryCount, "handler_error", err, "error", pubErr)
		b.settle(msg, queueName, msg.Nack(false, true))
		return
	}

	if target != queueName {
		b.logger.Warnw("message moved to dead letter queue", "queue", queueName, "retry_count", retryCount, "error", err)
	}

	b.settle(msg, queueName, msg.Ack(false))
}

func (b *RabbitMQBroker) settle(msg amqp.Delivery, queueName string, err error) {
	if err != nil {
		b.logger.Errorw("failed to settle delivery", "queue", queueName, "delivery_tag", msg.DeliveryTag, "error", err)
	}
}

func retryCountOf(headers amqp.Table) int {
	if headers == nil {
		return 0
	}
	if count, ok := headers[headerRetryCount].(int32); ok {
		return int(count)
	}
	return 0
}

// backoff doubles base for every previous attempt.
func backoff(base time.Duration, attempt int) time.Duration {
	return base * time.Duration(1<<attempt)
}

func (b *RabbitMQBroker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.channel != nil {
		b.channel.Close()
	}
	if b.conn != nil {
		return b.conn.Close()
	}
	return nil
}
