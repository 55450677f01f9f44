// Package feed публикует ленту изменений инцидентов в Kafka.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/shenikar/traffiscan/internal/config"
	"github.com/shenikar/traffiscan/internal/models"
	"github.com/shenikar/traffiscan/internal/observability"
	"github.com/sirupsen/logrus"
)

// Writer реализует service.IncidentFeed поверх kafka-go
type Writer struct {
	writer  *kafkago.Writer
	logger  *logrus.Logger
	metrics *observability.Metrics
}

// NewWriter создает продюсер для топика ленты инцидентов
func NewWriter(cfg *config.Config, logger *logrus.Logger, metrics *observability.Metrics) *Writer {
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaIncidentTopic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
	}
	return &Writer{writer: w, logger: logger, metrics: metrics}
}

// Publish отправляет одно событие; ключ сообщения - id инцидента, чтобы события
// одного инцидента попадали в одну партицию
func (w *Writer) Publish(ctx context.Context, event models.IncidentEvent) error {
	msg, err := serializeToMessage(event)
	if err != nil {
		w.metrics.FeedMessages.WithLabelValues("error").Inc()
		return err
	}
	if err := w.writer.WriteMessages(ctx, msg); err != nil {
		w.metrics.FeedMessages.WithLabelValues("error").Inc()
		return fmt.Errorf("feed: write incident event: %w", err)
	}

	w.metrics.FeedMessages.WithLabelValues("published").Inc()
	w.logger.WithFields(logrus.Fields{
		"event_type":  event.Type,
		"incident_id": event.Incident.ID,
	}).Debug("Incident event published")
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// Noop - лента-заглушка, когда брокеры Kafka не настроены
type Noop struct{}

func (Noop) Publish(context.Context, models.IncidentEvent) error { return nil }

func (Noop) Close() error { return nil }

func serializeToMessage(event models.IncidentEvent) (kafkago.Message, error) {
	if event.Incident == nil {
		return kafkago.Message{}, fmt.Errorf("feed: incident event %q without incident", event.Type)
	}
	data, err := json.Marshal(event)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("feed: serialize incident event: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(event.Incident.ID.String()),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.Type)},
			{Key: "occurred_at", Value: []byte(event.OccurredAt.Format(time.RFC3339))},
		},
	}, nil
}
