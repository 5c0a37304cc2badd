package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"bluedock/config"
	"bluedock/models"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	out    []published
	err    error
	closed bool
}

func (c *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if c.err != nil {
		return c.err
	}
	c.out = append(c.out, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func (c *fakeChannel) Close() error {
	c.closed = true
	return nil
}

func sampleEvent() models.StatusNotification {
	return models.StatusNotification{
		CustomerPhone:   strPtr("11 99999-0000"),
		CustomerName:    "Bruno",
		CustomerEmail:   strPtr("bruno@example.com"),
		ReceiptNumber:   "2026-000042",
		ItemDescription: "Carretilha",
		Status:          models.StatusReady,
		ChangedAt:       time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC),
	}
}

func TestNewPublisher(t *testing.T) {
	p, err := NewPublisher(config.EventsConfig{Driver: "none"})
	require.NoError(t, err)
	assert.IsType(t, NopPublisher{}, p)
	assert.NoError(t, p.Publish(context.Background(), sampleEvent()))
	assert.NoError(t, p.Close())

	p, err = NewPublisher(config.EventsConfig{Driver: "kafka", Brokers: []string{"localhost:9092"}, Topic: "t"})
	require.NoError(t, err)
	assert.IsType(t, &KafkaPublisher{}, p)

	_, err = NewPublisher(config.EventsConfig{Driver: "kafka"})
	assert.Error(t, err)

	_, err = NewPublisher(config.EventsConfig{Driver: "nats"})
	assert.Error(t, err)
}

func TestKafkaPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := NewKafkaPublisher(w)

	require.NoError(t, p.Publish(context.Background(), sampleEvent()))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "2026-000042", string(msg.Key))
	assert.Contains(t, msg.Headers, kafka.Header{Key: "status", Value: []byte("Pronto")})

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(msg.Value, &body))
	assert.Equal(t, "Bruno", body["customer_name"])
	assert.Equal(t, "11 99999-0000", body["customer_phone"])
	assert.Equal(t, "Pronto", body["status"])
	assert.NotContains(t, body, "customer_email")

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	boom := errors.New("leader not available")
	p := NewKafkaPublisher(&fakeWriter{err: boom})
	assert.ErrorIs(t, p.Publish(context.Background(), sampleEvent()), boom)
}

func TestRabbitPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}
	p := NewRabbitPublisher(ch, "bluedock.service-status")

	require.NoError(t, p.Publish(context.Background(), sampleEvent()))
	require.Len(t, ch.out, 1)

	out := ch.out[0]
	assert.Equal(t, "bluedock.service-status", out.exchange)
	assert.Equal(t, "2026-000042", out.key)
	assert.Equal(t, "application/json", out.msg.ContentType)
	assert.Equal(t, amqp.Persistent, out.msg.DeliveryMode)
	assert.Contains(t, string(out.msg.Body), `"receipt_number":"2026-000042"`)

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

func TestRabbitPublisher_PublishError(t *testing.T) {
	boom := errors.New("channel closed")
	p := NewRabbitPublisher(&fakeChannel{err: boom}, "x")
	assert.ErrorIs(t, p.Publish(context.Background(), sampleEvent()), boom)
}
