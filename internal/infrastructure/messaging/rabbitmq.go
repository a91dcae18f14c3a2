package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"hvac_service/internal/domain/events"
	"hvac_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	DefaultExchange         = "hvac.events"
	QuoteApprovedRoutingKey = "quote.approved.v1"
	StockDepletedRoutingKey = "stock.depleted.v1"
	producerName            = "hvac-service"
	publishTimeout          = 3 * time.Second
)

// Envelope wraps every payload published on the events exchange.
type Envelope struct {
	EventName    string    `json:"eventName"`
	EventVersion int       `json:"eventVersion"`
	EventID      string    `json:"eventId"`
	Producer     string    `json:"producer"`
	PartitionKey string    `json:"partitionKey"`
	OccurredAt   time.Time `json:"occurredAt"`
	Payload      any       `json:"payload"`
}

// amqpChannel is the subset of *amqp.Channel the publisher uses.
type amqpChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitPublisher publishes domain events as persistent JSON messages on a topic exchange.
type RabbitPublisher struct {
	mu       sync.Mutex
	ch       amqpChannel
	exchange string
	log      *zap.Logger
}

var _ interfaces.IEventPublisher = (*RabbitPublisher)(nil)

func Dial(url string) (*amqp.Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}
	return conn, nil
}

func NewRabbitPublisher(conn *amqp.Connection, exchange string, logger *zap.Logger) (*RabbitPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	p, err := newRabbitPublisher(ch, exchange, logger)
	if err != nil {
		_ = ch.Close()
		return nil, err
	}
	return p, nil
}

func newRabbitPublisher(ch amqpChannel, exchange string, logger *zap.Logger) (*RabbitPublisher, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare events exchange: %w", err)
	}
	return &RabbitPublisher{ch: ch, exchange: exchange, log: logger.Named("messaging")}, nil
}

func (p *RabbitPublisher) Close() error {
	return p.ch.Close()
}

func (p *RabbitPublisher) PublishQuoteApproved(ctx context.Context, ev events.QuoteApproved) error {
	env := newEnvelope(events.EventTypeQuoteApproved, strconv.FormatInt(ev.QuoteID, 10), ev.OccurredAt, ev)
	return p.publish(ctx, QuoteApprovedRoutingKey, env)
}

func (p *RabbitPublisher) PublishStockDepleted(ctx context.Context, ev events.StockDepleted) error {
	env := newEnvelope(events.EventTypeStockDepleted, strconv.FormatInt(ev.InventoryItemID, 10), ev.OccurredAt, ev)
	return p.publish(ctx, StockDepletedRoutingKey, env)
}

func (p *RabbitPublisher) publish(ctx context.Context, routingKey string, env Envelope) error {
	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", env.EventName, err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.ch.PublishWithContext(pubCtx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    env.EventID,
		Timestamp:    env.OccurredAt,
		Type:         env.EventName,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", env.EventName, err)
	}
	p.log.Debug("event published", zap.String("event", env.EventName), zap.String("routing_key", routingKey), zap.String("event_id", env.EventID))
	return nil
}

func newEnvelope(name, partitionKey string, occurredAt time.Time, payload any) Envelope {
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}
	return Envelope{
		EventName:    name,
		EventVersion: 1,
		EventID:      uuid.NewString(),
		Producer:     producerName,
		PartitionKey: partitionKey,
		OccurredAt:   occurredAt,
		Payload:      payload,
	}
}
