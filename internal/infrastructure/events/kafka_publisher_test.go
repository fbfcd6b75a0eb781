package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"paypal_checkout/internal/config"
	"paypal_checkout/internal/domain/entities"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisher_PublishPaymentRecorded(t *testing.T) {
	w := &recordingWriter{}
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	p := &KafkaPublisher{writer: w, topic: "payments.recorded", now: func() time.Time { return fixed }}

	err := p.PublishPaymentRecorded(context.Background(), entities.PaymentRecord{
		ID:              "rec-1",
		PaypalPaymentID: "PAY-1",
		TransactionID:   "SALE-1",
		PayerID:         "PAYER-1",
		Currency:        "USD",
		TotalAmount:     decimal.RequireFromString("19.9"),
		TransactionFee:  decimal.RequireFromString("0.88"),
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "rec-1", string(w.msgs[0].Key))

	var evt PaymentRecordedEvent
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &evt))
	assert.Equal(t, EventPaymentRecorded, evt.Type)
	assert.Equal(t, "PAY-1", evt.PaypalPaymentID)
	assert.Equal(t, "19.90", evt.TotalAmount)
	assert.Equal(t, "0.88", evt.TransactionFee)
	assert.True(t, evt.OccurredAt.Equal(fixed))

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	boom := errors.New("broker down")
	p := &KafkaPublisher{writer: &recordingWriter{err: boom}, now: time.Now}

	err := p.PublishPaymentRecorded(context.Background(), entities.PaymentRecord{ID: "rec-1"})
	assert.ErrorIs(t, err, boom)
}

func TestNewPublisher(t *testing.T) {
	assert.IsType(t, NoopPublisher{}, NewPublisher(&config.Config{}))

	p := NewPublisher(&config.Config{KafkaBrokers: []string{"localhost:9092"}, KafkaTopic: "t"})
	kp, ok := p.(*KafkaPublisher)
	require.True(t, ok)
	assert.Equal(t, "t", kp.topic)

	w, ok := kp.writer.(*kafka.Writer)
	require.True(t, ok)
	assert.Equal(t, 1, w.BatchSize)
	assert.LessOrEqual(t, w.BatchTimeout, 10*time.Millisecond)
	assert.Equal(t, kafka.RequireOne, w.RequiredAcks)
	assert.False(t, w.Async)
	require.NoError(t, kp.Close())
	assert.NoError(t, NoopPublisher{}.PublishPaymentRecorded(context.Background(), entities.PaymentRecord{}))
}
