package events

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/segmentio/kafka-go"
)

// Broker is a thin wrapper over kafka-go: one lazily created writer per topic
// plus reader construction for consumers.
type Broker struct {
	addr string

	mu      sync.Mutex
	writers map[string]*kafka.Writer
}

func New(addr string) (*Broker, error) {
	conn, err := kafka.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	conn.Close()

	return &Broker{
		addr:    addr,
		writers: make(map[string]*kafka.Writer),
	}, nil
}

func (b *Broker) PublishJSON(ctx context.Context, topic string, payload interface{}) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return b.writer(topic).WriteMessages(ctx, kafka.Message{Value: value})
}

func (b *Broker) writer(topic string) *kafka.Writer {
	b.mu.Lock()
	defer b.mu.Unlock()

	w, ok := b.writers[topic]
	if !ok {
		w = &kafka.Writer{
			Addr:     kafka.TCP(b.addr),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		}
		b.writers[topic] = w
	}

	return w
}

func (b *Broker) Reader(topic string, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  []string{b.addr},
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
}

func (b *Broker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	var firstErr error
	for _, w := range b.writers {
		if err := w.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
