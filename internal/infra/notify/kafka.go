package notify

import (
	"context"
	"encoding/json"
	"time"

	"appointment-scheduler/internal/pkg/config"
	"appointment-scheduler/internal/pkg/errs"
	"appointment-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// AppointmentEvent is published for downstream mailers when an appointment
// leaves the schedule.
type AppointmentEvent struct {
	Type          string    `json:"type"`
	AppointmentID uuid.UUID `json:"appointment_id"`
	OwnerEmail    string    `json:"owner_email"`
	OwnerName     string    `json:"owner_name"`
	ServiceName   string    `json:"service_name"`
	StartAt       time.Time `json:"start_at"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Subject       string    `json:"subject"`
	Body          string    `json:"body"`
}

type KafkaNotifier struct {
	writer messageWriter
}

func NewKafkaNotifier(cfg config.NotifyConfig) *KafkaNotifier {
	return newKafkaNotifier(&kafka.Writer{
		Addr:         kafka.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
	})
}

func newKafkaNotifier(w messageWriter) *KafkaNotifier {
	return &KafkaNotifier{writer: w}
}

func (k *KafkaNotifier) Notify(ctx context.Context, n shared.Notice) error {
	event := AppointmentEvent{
		Type:          "appointment." + n.Outcome.String(),
		AppointmentID: n.AppointmentID,
		OwnerEmail:    n.OwnerEmail,
		OwnerName:     n.OwnerName,
		ServiceName:   n.ServiceName,
		StartAt:       n.StartAt,
		Date:          n.Date,
		Time:          n.Time,
		Subject:       Subject(n),
		Body:          Body(n),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "notify: marshal event")
	}

	msg := kafka.Message{
		Key:   []byte(n.AppointmentID.String()),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}
	if err := k.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrap(err, "notify: kafka publish failed")
	}
	return nil
}

func (k *KafkaNotifier) Close() error {
	return k.writer.Close()
}
