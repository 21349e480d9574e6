package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/Sir-Wagyu/e-commerce-app/internal/config"
	"github.com/Sir-Wagyu/e-commerce-app/pkg/logger"
)

// StatusUpdater is the slice of the transaction service the consumer
// drives: fulfillment messages move transactions out of pending.
type StatusUpdater interface {
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type fulfillmentMessage struct {
	TransactionID int64  `json:"transaction_id"`
	Status        string `json:"status"`
}

// FulfillmentConsumer applies status updates published by downstream
// fulfillment systems.
type FulfillmentConsumer struct {
	reader  *kafkago.Reader
	handler StatusUpdater
	log     logger.Logger
}

func NewFulfillmentConsumer(cfg config.KafkaConfig, handler StatusUpdater, log logger.Logger) *FulfillmentConsumer {
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.ConsumerGroup,
		Topic:    cfg.FulfillmentTopic,
		MinBytes: 1e3,
		MaxBytes: 1e6,
	})

	return &FulfillmentConsumer{
		reader:  reader,
		handler: handler,
		log:     log,
	}
}

// Start consumes until ctx is cancelled or the reader fails. Bad messages
// are logged and skipped; one malformed event must not stall fulfillment.
func (c *FulfillmentConsumer) Start(ctx context.Context) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return fmt.Errorf("read fulfillment message: %w", err)
		}

		var m fulfillmentMessage
		if err := json.Unmarshal(msg.Value, &m); err != nil {
			c.log.Warn("skipping malformed fulfillment message", logger.Error(err))
			continue
		}

		if err := c.handler.UpdateStatus(ctx, m.TransactionID, m.Status); err != nil {
			c.log.Warn("fulfillment update failed",
				logger.Int64("transaction_id", m.TransactionID),
				logger.String("status", m.Status),
				logger.Error(err),
			)
		}
	}
}

func (c *FulfillmentConsumer) Close() {
	_ = c.reader.Close()
}
