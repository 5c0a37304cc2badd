package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"bluedock/config"
	"bluedock/models"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/segmentio/kafka-go"
)

// Publisher emits status-change events to a broker
type Publisher interface {
	Publish(ctx context.Context, n models.StatusNotification) error
	Close() error
}

// NewPublisher builds the publisher selected by cfg.Driver
func NewPublisher(cfg config.EventsConfig) (Publisher, error) {
	switch cfg.Driver {
	case "", "none":
		return NopPublisher{}, nil
	case "kafka":
		if len(cfg.Brokers) == 0 {
			return nil, fmt.Errorf("events: kafka driver needs at least one broker")
		}
		return NewKafkaPublisher(&kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		}), nil
	case "rabbitmq":
		return DialRabbitPublisher(cfg.RabbitMQURL, cfg.Exchange)
	default:
		return nil, fmt.Errorf("events: unsupported driver %q", cfg.Driver)
	}
}

// NopPublisher drops every event
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, models.StatusNotification) error { return nil }

func (NopPublisher) Close() error { return nil }

// messageWriter the part of *kafka.Writer used here
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes events keyed by receipt number, so every event of one
// order lands on the same partition
type KafkaPublisher struct {
	w messageWriter
}

// NewKafkaPublisher wraps a kafka writer
func NewKafkaPublisher(w messageWriter) *KafkaPublisher {
	return &KafkaPublisher{w: w}
}

func (p *KafkaPublisher) Publish(ctx context.Context, n models.StatusNotification) error {
	val, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(n.ReceiptNumber),
		Value: val,
		Time:  n.ChangedAt,
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
			{Key: "status", Value: []byte(n.Status)},
		},
	})
	if err != nil {
		return fmt.Errorf("kafka write: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.w.Close()
}

// amqpChannel the part of *amqp.Channel used here
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitPublisher publishes persistent messages to a fanout exchange
type RabbitPublisher struct {
	conn     *amqp.Connection
	ch       amqpChannel
	exchange string
}

// DialRabbitPublisher connects, opens a channel and declares the exchange
func DialRabbitPublisher(url, exchange string) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}
	if err := ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeFanout,
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("rabbitmq declare exchange %s: %w", exchange, err)
	}
	log.Printf("rabbitmq publisher ready (exchange %s)", exchange)

	p := NewRabbitPublisher(ch, exchange)
	p.conn = conn
	return p, nil
}

// NewRabbitPublisher wraps an already open channel
func NewRabbitPublisher(ch amqpChannel, exchange string) *RabbitPublisher {
	return &RabbitPublisher{ch: ch, exchange: exchange}
}

func (p *RabbitPublisher) Publish(ctx context.Context, n models.StatusNotification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	err = p.ch.PublishWithContext(ctx,
		p.exchange,
		n.ReceiptNumber,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			MessageId:    fmt.Sprintf("%s-%d", n.ReceiptNumber, n.ChangedAt.UnixMilli()),
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    n.ChangedAt,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("rabbitmq publish: %w", err)
	}
	return nil
}

func (p *RabbitPublisher) Close() error {
	err := p.ch.Close()
	if p.conn != nil {
		if cerr := p.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// publishTimeout bounds a single broker write
const publishTimeout = 5 * time.Second
