// Package events publishes submission outcomes to Kafka for downstream consumers.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/payouts7000-backend/internal/model"
	"github.com/goodnatureofminers/payouts7000-backend/pkg/batcher"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(messages int, err error, started time.Time)
	}

	messageWriter interface {
		WriteMessages(ctx context.Context, msgs ...kafka.Message) error
		Close() error
	}
)

// Config controls the Kafka writer and local buffering.
type Config struct {
	Brokers       []string
	Topic         string
	FlushSize     int
	FlushInterval time.Duration
	WriteTimeout  time.Duration
}

// SubmissionEvent is the JSON payload of one published message.
type SubmissionEvent struct {
	TransactionID int64     `json:"transaction_id"`
	TxHash        string    `json:"tx_hash"`
	Sequence      uint32    `json:"sequence"`
	Category      string    `json:"category"`
	Result        string    `json:"result"`
	Code          int       `json:"code"`
	Resolution    string    `json:"resolution"`
	AttemptedAt   time.Time `json:"attempted_at"`
}

// Publisher writes one message per submission attempt, keyed by transaction id
// so every attempt for a payment lands on the same partition.
type Publisher struct {
	writer  messageWriter
	batcher *batcher.Batcher[model.SubmissionAttempt]
	timeout time.Duration
	metrics Metrics
	logger  *zap.Logger
}

func NewPublisher(cfg Config, metrics Metrics, logger *zap.Logger) (*Publisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka brokers are required")
	}
	if cfg.Topic == "" {
		return nil, errors.New("kafka topic is required")
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
	return newPublisher(writer, cfg, metrics, logger)
}

func newPublisher(writer messageWriter, cfg Config, metrics Metrics, logger *zap.Logger) (*Publisher, error) {
	if metrics == nil {
		return nil, errors.New("events metrics is required")
	}
	if cfg.FlushSize <= 0 {
		cfg.FlushSize = 100
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 10 * time.Second
	}
	p := &Publisher{
		writer:  writer,
		timeout: cfg.WriteTimeout,
		metrics: metrics,
		logger:  logger.Named("events").With(zap.String("topic", cfg.Topic)),
	}
	p.batcher = batcher.New(p.logger, p.publish, cfg.FlushSize, cfg.FlushInterval, 0)
	return p, nil
}

func (p *Publisher) Start(ctx context.Context) {
	p.batcher.Start(ctx)
}

// Stop flushes buffered events and closes the writer.
func (p *Publisher) Stop() error {
	p.batcher.Stop()
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("close kafka writer: %w", err)
	}
	return nil
}

func (p *Publisher) RecordSubmission(_ context.Context, attempt model.SubmissionAttempt) {
	if !p.batcher.TryAdd(attempt) {
		p.logger.Warn("submission event dropped", zap.Int64("transaction_id", attempt.TransactionID))
	}
}

func (p *Publisher) publish(ctx context.Context, attempts []model.SubmissionAttempt) error {
	started := time.Now()
	var err error
	defer func() {
		p.metrics.Observe(len(attempts), err, started)
	}()

	msgs := make([]kafka.Message, 0, len(attempts))
	for _, attempt := range attempts {
		var value []byte
		value, err = json.Marshal(newSubmissionEvent(attempt))
		if err != nil {
			return fmt.Errorf("marshal submission event %d: %w", attempt.TransactionID, err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(strconv.FormatInt(attempt.TransactionID, 10)),
			Value: value,
			Time:  attempt.AttemptedAt,
		})
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()
	if err = p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write submission events: %w", err)
	}
	return nil
}

func newSubmissionEvent(a model.SubmissionAttempt) SubmissionEvent {
	return SubmissionEvent{
		TransactionID: a.TransactionID,
		TxHash:        a.TxHash,
		Sequence:      a.Sequence,
		Category:      a.Category,
		Result:        a.Result,
		Code:          a.Code,
		Resolution:    a.Resolution,
		AttemptedAt:   a.AttemptedAt.UTC(),
	}
}
