package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/polkiloo/panganku/internal/domain/model"
	"github.com/polkiloo/panganku/internal/server/http/dto"
)

// Topic receives every committed order and notification event.
const Topic = "panganku.order.events"

// Writer is the subset of kafka.Writer used by Publisher.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Envelope is the JSON value of a published message.
type Envelope struct {
	Event        string            `json:"event"`
	OrderID      string            `json:"orderId,omitempty"`
	UserID       string            `json:"userId,omitempty"`
	Status       string            `json:"status,omitempty"`
	Notification *dto.Notification `json:"notification,omitempty"`
	OccurredAt   time.Time         `json:"occurredAt"`
}

// Publisher writes committed events to Kafka, keyed by order id so one order stays on one partition.
type Publisher struct {
	writer Writer
	now    func() time.Time
}

// NewPublisher wraps an existing writer.
func NewPublisher(w Writer) *Publisher {
	return &Publisher{writer: w, now: time.Now}
}

// NewKafkaWriter builds the writer for the events topic.
func NewKafkaWriter(brokers []string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
}

// Name implements worker.Sink.
func (p *Publisher) Name() string { return "kafka" }

// Deliver publishes one event.
func (p *Publisher) Deliver(ctx context.Context, event model.Event) error {
	env := Envelope{
		Event:      string(event.Kind),
		OrderID:    event.OrderID,
		UserID:     event.UserID,
		Status:     string(event.Status),
		OccurredAt: p.now().UTC(),
	}
	if event.Notification != nil {
		n := dto.NewNotification(*event.Notification)
		env.Notification = &n
	}
	value, err := json.Marshal(env)
	if err != nil {
		return err
	}

	key := event.OrderID
	if key == "" {
		key = event.UserID
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  env.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(env.Event)},
		},
	})
}

// Close flushes and closes the writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
