package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Astemirdum/catalog-service/pkg/circuit_breaker"
	"github.com/Astemirdum/catalog-service/pkg/kafka"
	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/require"
)

func TestPublisher_Publish(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != "catalog-events" {
			return errors.New("wrong topic " + msg.Topic)
		}
		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}
		if string(key) != "book:1" {
			return errors.New("wrong key " + string(key))
		}
		val, err := msg.Value.Encode()
		if err != nil {
			return err
		}
		var got map[string]any
		if err := json.Unmarshal(val, &got); err != nil {
			return err
		}
		if got["action"] != "create" {
			return errors.New("wrong payload")
		}
		return nil
	})

	p := kafka.NewPublisher(producer, "catalog-events", circuit_breaker.New(5, time.Second, 0.5, 1))
	require.NoError(t, p.Publish(context.Background(), "book:1", map[string]any{"action": "create"}))
	require.NoError(t, p.Close())
}

func TestPublisher_BreakerOpens(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	errBroker := errors.New("broker down")
	producer.ExpectSendMessageAndFail(errBroker)

	p := kafka.NewPublisher(producer, "catalog-events", circuit_breaker.New(1, time.Hour, 1, 1))
	require.ErrorIs(t, p.Publish(context.Background(), "k", "v"), errBroker)
	// no further expectation: the open breaker must not reach the producer
	require.ErrorIs(t, p.Publish(context.Background(), "k", "v"), circuit_breaker.ErrOpenCB)
	require.NoError(t, p.Close())
}

func TestConfig_Enabled(t *testing.T) {
	require.False(t, kafka.Config{}.Enabled())
	require.True(t, kafka.Config{Addrs: []string{"localhost:9092"}}.Enabled())
}
