package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Astemirdum/catalog-service/pkg/circuit_breaker"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
	Topic string   `envconfig:"CATALOG_TOPIC" default:"catalog-events"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Timeout = 5 * time.Second

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

// Publisher sends JSON messages to one topic. Sends go through the
// circuit breaker so a dead broker fails fast.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	cb       circuit_breaker.CircuitBreaker
}

func NewPublisher(producer sarama.SyncProducer, topic string, cb circuit_breaker.CircuitBreaker) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
		cb:       cb,
	}
}

func (p *Publisher) Publish(_ context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "json.Marshal")
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(data),
	}
	return p.cb.Call(func() error {
		_, _, err := p.producer.SendMessage(msg)
		return err
	})
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}
