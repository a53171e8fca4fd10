package messaging

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"print3d_quote/internal/domain/entities"
	"print3d_quote/internal/infrastructure/config"
	"print3d_quote/internal/usecase/interfaces"

	"github.com/segmentio/kafka-go"
)

const eventHeader = "event"

// MessageWriter is the part of *kafka.Writer the notifier needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotifier publishes quote notifications as JSON records keyed by quote id.
type KafkaNotifier struct {
	writer MessageWriter
	topic  string
}

var _ interfaces.INotificationPublisher = (*KafkaNotifier)(nil)

func NewKafkaNotifier(cfg config.KafkaConfig) *KafkaNotifier {
	return NewKafkaNotifierWithWriter(&kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}, cfg.Topic)
}

func NewKafkaNotifierWithWriter(w MessageWriter, topic string) *KafkaNotifier {
	return &KafkaNotifier{writer: w, topic: topic}
}

func (n *KafkaNotifier) Publish(ctx context.Context, event entities.QuoteNotification) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	key := event.QuoteID
	if key == "" {
		key = event.RemoteID
	}
	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(key),
		Value:   data,
		Time:    time.Now().UTC(),
		Headers: []kafka.Header{{Key: eventHeader, Value: []byte(event.Event)}},
	})
	if err != nil {
		return err
	}
	log.Printf("[quote][notify] published topic=%s event=%s quote_id=%s", n.topic, event.Event, key)
	return nil
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}

// LogNotifier only logs. It stands in when no broker is configured.
type LogNotifier struct{}

var _ interfaces.INotificationPublisher = LogNotifier{}

func (LogNotifier) Publish(_ context.Context, event entities.QuoteNotification) error {
	log.Printf("[quote][notify] event=%s quote_id=%s remote_id=%s email=%s files=%d amount=%s",
		event.Event, event.QuoteID, event.RemoteID, event.CustomerEmail, len(event.Files), event.Amount)
	return nil
}
