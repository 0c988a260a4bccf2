package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/phrazzld/taskq-api/internal/config"
	kafkago "github.com/segmentio/kafka-go"
)

// DefaultTopic is the downstream log topic tasks are forwarded to.
const DefaultTopic = "request_logs"

// ErrEmptyValue is returned when Publish is called without a message value.
var ErrEmptyValue = errors.New("kafka: message value cannot be empty")

// messageWriter is the subset of *kafkago.Writer used by Producer.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Producer writes messages to a single topic.
type Producer struct {
	writer       messageWriter
	topic        string
	writeTimeout time.Duration
}

// NewProducer builds a Producer backed by a kafka-go Writer. The writer
// connects lazily on the first publish.
func NewProducer(cfg config.KafkaConfig) *Producer {
	topic := cfg.Topic
	if topic == "" {
		topic = DefaultTopic
	}

	writer := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.Brokers...),
		Topic:        topic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
		// One synchronous write per task; batching would delay the ack.
		BatchSize:              1,
		AllowAutoTopicCreation: true,
	}

	return newProducer(writer, topic, time.Duration(cfg.WriteTimeoutMS)*time.Millisecond)
}

func newProducer(writer messageWriter, topic string, writeTimeout time.Duration) *Producer {
	if writeTimeout <= 0 {
		writeTimeout = 5 * time.Second
	}
	return &Producer{
		writer:       writer,
		topic:        topic,
		writeTimeout: writeTimeout,
	}
}

// Topic returns the topic messages are written to.
func (p *Producer) Topic() string {
	return p.topic
}

// Publish writes one message and waits for the broker acknowledgement.
// key selects the partition, so messages with the same key stay ordered.
func (p *Producer) Publish(ctx context.Context, key, value []byte) error {
	if len(value) == 0 {
		return ErrEmptyValue
	}

	ctx, cancel := context.WithTimeout(ctx, p.writeTimeout)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, kafkago.Message{Key: key, Value: value}); err != nil {
		return fmt.Errorf("failed to write message to topic %s: %w", p.topic, err)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}
