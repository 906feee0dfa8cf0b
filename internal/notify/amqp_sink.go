package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/pusula-app/backend/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPSink, bildirimleri RabbitMQ üzerindeki bildirim kuyruğuna yazar.
type AMQPSink struct {
	channel        *amqp.Channel
	publishTimeout time.Duration
}

func NewAMQPSink(channel *amqp.Channel, publishTimeout time.Duration) *AMQPSink {
	return &AMQPSink{
		channel:        channel,
		publishTimeout: publishTimeout,
	}
}

func (s *AMQPSink) Notify(message string, severity domain.Severity, title string) {
	notification := domain.NotificationMessage{
		Type:     "toast",
		Title:    title,
		Message:  message,
		Severity: severity,
	}

	body, err := json.Marshal(notification)
	if err != nil {
		slog.Error("bildirim serileştirilemedi", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.publishTimeout)
	defer cancel()

	if err := s.channel.PublishWithContext(
		ctx,
		"",
		QueueName,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	); err != nil {
		slog.Error("bildirim kuyruğa yazılamadı", "error", err)
	}
}
