package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"paypal_checkout/internal/config"
	"paypal_checkout/internal/domain/entities"
	"paypal_checkout/internal/usecase/interfaces"

	"github.com/segmentio/kafka-go"
)

const EventPaymentRecorded = "payment.recorded"

const (
	publishBatchTimeout = 5 * time.Millisecond
	publishWriteTimeout = 2 * time.Second
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// PaymentRecordedEvent is the message value written for every stored record.
type PaymentRecordedEvent struct {
	Type             string    `json:"type"`
	RecordID         string    `json:"record_id"`
	PaypalPaymentID  string    `json:"paypal_payment_id"`
	TransactionID    string    `json:"transaction_id"`
	PayerID          string    `json:"payer_id"`
	PayerEmail       string    `json:"payer_email,omitempty"`
	Currency         string    `json:"currency"`
	TotalAmount      string    `json:"total_amount"`
	TransactionFee   string    `json:"transaction_fee"`
	TransactionState string    `json:"transaction_state"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// KafkaPublisher announces stored payment records on a Kafka topic, keyed by
// record id.
type KafkaPublisher struct {
	writer messageWriter
	topic  string
	now    func() time.Time
}

var _ interfaces.IEventPublisher = (*KafkaPublisher)(nil)

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
		// One event per confirm: flush right away instead of waiting for a batch.
		BatchSize:    1,
		BatchTimeout: publishBatchTimeout,
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: publishWriteTimeout,
	}
	log.Printf("[payment][events] kafka publisher initialized brokers=%v topic=%s", brokers, topic)
	return &KafkaPublisher{writer: w, topic: topic, now: time.Now}
}

func (p *KafkaPublisher) PublishPaymentRecorded(ctx context.Context, r entities.PaymentRecord) error {
	evt := PaymentRecordedEvent{
		Type:             EventPaymentRecorded,
		RecordID:         r.ID,
		PaypalPaymentID:  r.PaypalPaymentID,
		TransactionID:    r.TransactionID,
		PayerID:          r.PayerID,
		PayerEmail:       r.PayerEmail,
		Currency:         r.Currency,
		TotalAmount:      r.TotalAmount.StringFixed(2),
		TransactionFee:   r.TransactionFee.StringFixed(2),
		TransactionState: r.TransactionState,
		OccurredAt:       p.now().UTC(),
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(r.ID), Value: payload}); err != nil {
		log.Printf("[payment][events] publish failed topic=%s record_id=%s err=%v", p.topic, r.ID, err)
		return err
	}
	log.Printf("[payment][events] published topic=%s record_id=%s", p.topic, r.ID)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher drops events. Used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishPaymentRecorded(context.Context, entities.PaymentRecord) error {
	return nil
}

// NewPublisher returns a Kafka publisher when brokers are configured.
func NewPublisher(cfg *config.Config) interfaces.IEventPublisher {
	if len(cfg.KafkaBrokers) == 0 {
		log.Printf("[payment][events] no kafka brokers configured, events disabled")
		return NoopPublisher{}
	}
	return NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
}
