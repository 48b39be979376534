package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"mentionwatch/internal/domain"
)

const (
	EventRankingComputed   = "ranking.computed"
	EventMentionsCollected = "mentions.collected"
)

type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		cfg.RoutingKey,
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}, nil
}

// Event is the envelope for every message the service emits.
type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Month     string    `json:"month"`
	Payload   any       `json:"payload"`
	Timestamp time.Time `json:"timestamp"`
}

type rankingPayload struct {
	Companies int                    `json:"companies"`
	Available map[domain.Source]bool `json:"sources_available"`
	TopRanked []domain.RankingEntry  `json:"top_ranked"`
}

func (r *RabbitMQ) PublishRankingComputed(ctx context.Context, result *domain.RankingResult) error {
	top := result.Entries
	if len(top) > 10 {
		top = top[:10]
	}

	return r.publish(ctx, Event{
		ID:    uuid.NewString(),
		Type:  EventRankingComputed,
		Month: result.Month.String(),
		Payload: rankingPayload{
			Companies: len(result.Entries),
			Available: result.Available,
			TopRanked: top,
		},
		Timestamp: time.Now().UTC(),
	})
}

func (r *RabbitMQ) PublishMentionsCollected(ctx context.Context, month domain.Month, stats []domain.CollectStats) error {
	return r.publish(ctx, Event{
		ID:        uuid.NewString(),
		Type:      EventMentionsCollected,
		Month:     month.String(),
		Payload:   stats,
		Timestamp: time.Now().UTC(),
	})
}

func (r *RabbitMQ) publish(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    event.ID,
			Type:         event.Type,
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	r.logger.Debug("published event",
		"type", event.Type,
		"month", event.Month,
		"id", event.ID,
	)

	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
