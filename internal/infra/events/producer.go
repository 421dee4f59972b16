package events

import (
	"context"
	"encoding/json"
	"time"

	"holiday-booker/internal/domain/booking"
	"holiday-booker/internal/pkg/config"
	"holiday-booker/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

const (
	TypeBookingCreated   = "booking_created"
	TypeBookingCancelled = "booking_cancelled"
)

type BookingEvent struct {
	Type        string  `json:"type"`
	BookingID   string  `json:"bookingId"`
	PackageID   string  `json:"packageId"`
	UserID      string  `json:"userId"`
	Travelers   int     `json:"travelers"`
	TotalPrice  float64 `json:"totalPrice"`
	Status      string  `json:"status"`
	BookingDate string  `json:"bookingDate"`
}

// Producer publishes booking lifecycle events. It is an optional
// collaborator: NewProducer returns nil when no brokers are configured,
// and callers tolerate a nil producer.
type Producer struct {
	writer *kafka.Writer
	topic  string
}

func NewProducer(cfg config.KafkaConfig) *Producer {
	if len(cfg.Brokers) == 0 || (len(cfg.Brokers) == 1 && cfg.Brokers[0] == "") {
		return nil
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
	return &Producer{writer: writer, topic: cfg.BookingTopic}
}

func (p *Producer) Publish(ctx context.Context, eventType string, b *booking.Booking) error {
	event := BookingEvent{
		Type:        eventType,
		BookingID:   b.ID,
		PackageID:   b.PackageID,
		UserID:      b.UserID,
		Travelers:   b.Travelers,
		TotalPrice:  b.TotalPrice,
		Status:      b.Status.String(),
		BookingDate: b.BookingDate,
	}
	data, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to marshal booking event")
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: p.topic,
		Key:   []byte(b.ID),
		Value: data,
		Time:  time.Now(),
	})
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
