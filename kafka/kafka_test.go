package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishCartUpdated(t *testing.T) {
	producer := mocks.NewSyncProducer(t, NewProducerConfig())
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != TopicCartUpdated {
			return errors.New("unexpected topic " + msg.Topic)
		}

		value, err := msg.Value.Encode()
		if err != nil {
			return err
		}
		var event CartUpdatedEvent
		if err := json.Unmarshal(value, &event); err != nil {
			return err
		}
		if event.EventType != EventTypeCartUpdated || event.EventID == "" || event.Owner != "session:abc" {
			return errors.New("unexpected event payload")
		}
		return nil
	})

	publisher := NewPublisherWithProducer(producer, nil)
	err := publisher.PublishCartUpdated(context.Background(), CartUpdatedEvent{
		Owner:      "session:abc",
		Action:     CartActionAdd,
		ProductID:  "1",
		Quantity:   2,
		TotalItems: 2,
	})
	require.NoError(t, err)
	require.NoError(t, publisher.Close())
}

func TestPublishFailureIsReturned(t *testing.T) {
	producer := mocks.NewSyncProducer(t, NewProducerConfig())
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	publisher := NewPublisherWithProducer(producer, nil)
	err := publisher.PublishCatalogUpdated(context.Background(), CatalogUpdatedEvent{})
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, publisher.Close())
}

func TestConsumerDispatchesByEventType(t *testing.T) {
	c := newConsumer(nil, "test", []string{TopicCatalogUpdated})

	var received CatalogUpdatedEvent
	c.RegisterHandler(EventTypeCatalogUpdated, CatalogUpdatedHandler(func(_ context.Context, event CatalogUpdatedEvent) error {
		received = event
		return nil
	}))

	payload, err := json.Marshal(CatalogUpdatedEvent{EventID: "e1", ProductIDs: []string{"1", "2"}})
	require.NoError(t, err)

	err = c.handleMessage(context.Background(), &sarama.ConsumerMessage{
		Topic: TopicCatalogUpdated,
		Value: payload,
		Headers: []*sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(EventTypeCatalogUpdated)},
			{Key: []byte("event_id"), Value: []byte("e1")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, received.ProductIDs)
}

func TestConsumerRejectsUnroutableMessages(t *testing.T) {
	c := newConsumer(nil, "test", nil)
	ctx := context.Background()

	err := c.handleMessage(ctx, &sarama.ConsumerMessage{Value: []byte(`{}`)})
	assert.ErrorIs(t, err, ErrMissingEventType)

	err = c.handleMessage(ctx, &sarama.ConsumerMessage{
		Value:   []byte(`{}`),
		Headers: []*sarama.RecordHeader{{Key: []byte("event_type"), Value: []byte("unknown")}},
	})
	assert.ErrorIs(t, err, ErrNoHandler)

	c.RegisterHandler(EventTypeCatalogUpdated, CatalogUpdatedHandler(func(context.Context, CatalogUpdatedEvent) error {
		return nil
	}))
	err = c.handleMessage(ctx, &sarama.ConsumerMessage{
		Value:   []byte(`not json`),
		Headers: []*sarama.RecordHeader{{Key: []byte("event_type"), Value: []byte(EventTypeCatalogUpdated)}},
	})
	assert.Error(t, err)
}
