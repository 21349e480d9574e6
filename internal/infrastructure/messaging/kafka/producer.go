package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/Sir-Wagyu/e-commerce-app/internal/config"
	"github.com/Sir-Wagyu/e-commerce-app/internal/domain/transaction"
	"github.com/Sir-Wagyu/e-commerce-app/internal/infrastructure/encoding/avro"
	"github.com/Sir-Wagyu/e-commerce-app/pkg/logger"
)

// PlacedProducer publishes Avro-encoded placed-transaction events.
type PlacedProducer struct {
	client  *kgo.Client
	encoder *avro.Encoder
	topic   string
	log     logger.Logger
}

func NewPlacedProducer(cfg config.KafkaConfig, log logger.Logger) (*PlacedProducer, error) {
	encoder, err := avro.NewEncoder(avro.TransactionPlacedSchema)
	if err != nil {
		return nil, err
	}

	opts := []kgo.Opt{
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.PlacedTopic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
	}

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	log.Info("kafka producer ready",
		logger.Any("brokers", cfg.Brokers),
		logger.String("topic", cfg.PlacedTopic),
	)

	return &PlacedProducer{
		client:  client,
		encoder: encoder,
		topic:   cfg.PlacedTopic,
		log:     log,
	}, nil
}

func (p *PlacedProducer) PublishPlaced(ctx context.Context, t *transaction.Transaction) error {
	payload, err := p.encoder.EncodeNative(avro.TransactionPlacedNative(t))
	if err != nil {
		return fmt.Errorf("encode placed transaction %d: %w", t.ID, err)
	}

	rec := &kgo.Record{
		Topic:     p.topic,
		Key:       []byte(uuid.NewString()),
		Value:     payload,
		Timestamp: time.Now().UTC(),
	}

	results := p.client.ProduceSync(ctx, rec)
	if err := results.FirstErr(); err != nil {
		return fmt.Errorf("publish to kafka topic %s: %w", p.topic, err)
	}

	return nil
}

func (p *PlacedProducer) Close(ctx context.Context) error {
	p.log.Info("closing kafka producer", logger.String("topic", p.topic))
	p.client.Close()
	return nil
}
