package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/payouts7000-backend/internal/model"
	"github.com/goodnatureofminers/payouts7000-backend/pkg/safe"
)

// InsertSubmissionAttempts stores one audit row per submission attempt.
func (r *Repository) InsertSubmissionAttempts(ctx context.Context, attempts []model.SubmissionAttempt) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_submission_attempts", len(attempts), err, start)
	}()

	if len(attempts) == 0 {
		return nil
	}

	const query = `
INSERT INTO submission_attempts (
	transaction_id,
	tx_hash,
	sequence,
	category,
	result,
	code,
	resolution,
	attempted_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare submission attempts batch: %w", err)
	}

	for _, attempt := range attempts {
		var code int32
		if code, err = safe.Int32(attempt.Code); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("submission attempt %d code: %w", attempt.TransactionID, err)
		}
		if err = batch.Append(
			attempt.TransactionID,
			attempt.TxHash,
			attempt.Sequence,
			attempt.Category,
			attempt.Result,
			code,
			attempt.Resolution,
			attempt.AttemptedAt.UTC(),
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append submission attempt %d: %w", attempt.TransactionID, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert submission attempts: %w", err)
	}
	return nil
}
