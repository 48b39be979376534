//go:build integration

package publisher

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"mentionwatch/internal/domain"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *slog.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

func (s *RabbitMQIntegrationSuite) TestPublisher_Connection() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange",
		RoutingKey: "test-routing-key",
		QueueName:  "test-queue",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.NoError(err)
	s.NotNil(pub)

	err = pub.Close()
	s.NoError(err)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_RankingComputed() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-ranking",
		RoutingKey: "test-routing-key-ranking",
		QueueName:  "test-queue-ranking",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	result := &domain.RankingResult{
		Month: domain.Month{Year: 2026, Month: time.July},
		Available: map[domain.Source]bool{
			domain.SourceGDELT:   true,
			domain.SourceNewsAPI: false,
		},
		Entries: []domain.RankingEntry{
			{CompanyID: 1, CompanyName: "alpha ai", CombinedScore: 2, FinalRank: 1},
			{CompanyID: 2, CompanyName: "beta labs", CombinedScore: 4, FinalRank: 2},
		},
	}

	err = pub.PublishRankingComputed(s.ctx, result)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.NotNil(msg)
	s.Equal("application/json", msg.ContentType)
	s.Equal(EventRankingComputed, msg.Type)
	s.Equal(uint8(amqp.Persistent), msg.DeliveryMode)

	var event Event
	err = json.Unmarshal(msg.Body, &event)
	s.NoError(err)
	s.Equal(EventRankingComputed, event.Type)
	s.Equal("2026-07", event.Month)
	s.NotEmpty(event.ID)
	s.Equal(msg.MessageId, event.ID)
	s.False(event.Timestamp.IsZero())
}

func (s *RabbitMQIntegrationSuite) TestPublisher_MentionsCollected() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-collect",
		RoutingKey: "test-routing-key-collect",
		QueueName:  "test-queue-collect",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	month := domain.Month{Year: 2026, Month: time.July}
	stats := []domain.CollectStats{
		{Source: domain.SourceGDELT, Month: month.String(), Fetched: 10, Absent: 2},
		{Source: domain.SourceNewsAPI, Month: month.String(), Fetched: 8, Errors: 4},
	}

	err = pub.PublishMentionsCollected(s.ctx, month, stats)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.NotNil(msg)
	s.Equal(EventMentionsCollected, msg.Type)

	var event Event
	err = json.Unmarshal(msg.Body, &event)
	s.NoError(err)
	s.Equal(EventMentionsCollected, event.Type)
	s.Equal("2026-07", event.Month)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_TruncatesTopRanked() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-top",
		RoutingKey: "test-routing-key-top",
		QueueName:  "test-queue-top",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	entries := make([]domain.RankingEntry, 25)
	for i := range entries {
		entries[i] = domain.RankingEntry{CompanyID: int64(i + 1), FinalRank: i + 1}
	}

	result := &domain.RankingResult{
		Month:     domain.Month{Year: 2026, Month: time.July},
		Available: map[domain.Source]bool{domain.SourceGDELT: true, domain.SourceNewsAPI: true},
		Entries:   entries,
	}

	err = pub.PublishRankingComputed(s.ctx, result)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.NotNil(msg)

	var event struct {
		Payload struct {
			Companies int                   `json:"companies"`
			TopRanked []domain.RankingEntry `json:"top_ranked"`
		} `json:"payload"`
	}
	err = json.Unmarshal(msg.Body, &event)
	s.NoError(err)
	s.Equal(25, event.Payload.Companies)
	s.Len(event.Payload.TopRanked, 10)
}

func (s *RabbitMQIntegrationSuite) consumeMessage(cfg Config) *amqp.Delivery {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	msgs, err := ch.Consume(cfg.QueueName, "", true, false, false, false, nil)
	s.Require().NoError(err)

	select {
	case msg := <-msgs:
		return &msg
	case <-time.After(5 * time.Second):
		s.Fail("Timeout waiting for message")
		return nil
	}
}
