// Package audit persists every submission attempt to the analytics store.
package audit

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/payouts7000-backend/internal/model"
	"github.com/goodnatureofminers/payouts7000-backend/pkg/batcher"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		InsertSubmissionAttempts(ctx context.Context, attempts []model.SubmissionAttempt) error
	}
)

// Config controls audit batching.
type Config struct {
	FlushSize     int
	FlushInterval time.Duration
	RPS           int
}

// Recorder buffers submission attempts and writes them in batches.
// Recording never blocks the payment cycle: attempts are dropped with a
// warning when the buffer is full.
type Recorder struct {
	batcher *batcher.Batcher[model.SubmissionAttempt]
	logger  *zap.Logger
}

func NewRecorder(repo Repository, cfg Config, logger *zap.Logger) *Recorder {
	if cfg.FlushSize <= 0 {
		cfg.FlushSize = 100
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = 5 * time.Second
	}
	logger = logger.Named("audit")
	return &Recorder{
		batcher: batcher.New(logger, repo.InsertSubmissionAttempts, cfg.FlushSize, cfg.FlushInterval, cfg.RPS),
		logger:  logger,
	}
}

// Start launches the flush loop. Pending rows are flushed by Stop, so ctx
// should outlive the payment processor.
func (r *Recorder) Start(ctx context.Context) {
	r.batcher.Start(ctx)
}

func (r *Recorder) Stop() {
	r.batcher.Stop()
}

func (r *Recorder) RecordSubmission(_ context.Context, attempt model.SubmissionAttempt) {
	if !r.batcher.TryAdd(attempt) {
		r.logger.Warn("submission attempt dropped",
			zap.Int64("transaction_id", attempt.TransactionID),
			zap.String("category", attempt.Category),
		)
	}
}
