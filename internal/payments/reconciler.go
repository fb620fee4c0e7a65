package payments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/payouts7000-backend/internal/model"
	"go.uber.org/zap"
)

// Outcomes reported for each classified submission.
const (
	OutcomeSubmitted     = "submitted"
	OutcomeIgnored       = "ignored"
	OutcomeConfirmed     = "confirmed"
	OutcomeFeeClaimed    = "fee_claimed"
	OutcomeIndeterminate = "indeterminate"
	OutcomeResign        = "resign"
	OutcomeAbsorbed      = "absorbed"
	OutcomePropagated    = "propagated"
	OutcomeConflict      = "conflict"
)

// Reconciler submits signed rows in sequence order and resolves each result.
type Reconciler struct {
	store    Store
	ledger   LedgerClient
	recorder SubmissionRecorder
	metrics  Metrics
	logger   *zap.Logger
}

// NewReconciler builds a Reconciler.
func NewReconciler(store Store, client LedgerClient, recorder SubmissionRecorder, metrics Metrics, logger *zap.Logger) *Reconciler {
	if recorder == nil {
		recorder = newRecorders()
	}
	return &Reconciler{
		store:    store,
		ledger:   client,
		recorder: recorder,
		metrics:  metrics,
		logger:   logger,
	}
}

// SubmitTransactions submits every signed unconfirmed row. A row that needs
// resigning does not stop the batch; the lowest such row is returned as a
// ResignRequiredError once the batch is done.
func (r *Reconciler) SubmitTransactions(ctx context.Context) error {
	txs, err := r.store.SignedUnconfirmedTransactions(ctx)
	if err != nil {
		return fmt.Errorf("query signed unconfirmed transactions: %w", err)
	}

	var resign *model.Transaction
	for _, tx := range txs {
		if err = ctx.Err(); err != nil {
			break
		}
		var needsResign bool
		needsResign, err = r.reconcile(ctx, tx, resign)
		if err != nil {
			break
		}
		if needsResign && resign == nil {
			row := tx
			resign = &row
		}
	}

	var conflict *SequenceConflictError
	switch {
	case resign == nil:
		return err
	case errors.As(err, &conflict):
		return err
	default:
		return &ResignRequiredError{Transaction: *resign, Err: err}
	}
}

func (r *Reconciler) reconcile(ctx context.Context, tx model.Transaction, resign *model.Transaction) (bool, error) {
	logger := r.logger.With(
		zap.Int64("transaction_id", tx.ID),
		zap.Uint32("sequence", tx.SequenceValue()),
		zap.String("tx_hash", tx.TxHash),
	)

	res, err := r.ledger.SubmitTransaction(ctx, tx.TxBlob)
	if err != nil {
		return false, &TransactionError{Transaction: tx, Err: fmt.Errorf("submit: %w", err)}
	}

	category := Classify(res.EngineResult, res.Code)
	submitErr := &SubmitError{
		Category:    category,
		Result:      res.EngineResult,
		Code:        res.Code,
		Message:     res.Message,
		Transaction: tx,
	}
	record := func(outcome string) {
		r.metrics.ObserveSubmission(category.String(), outcome)
		r.recorder.RecordSubmission(ctx, model.SubmissionAttempt{
			TransactionID: tx.ID,
			TxHash:        tx.TxHash,
			Sequence:      tx.SequenceValue(),
			Category:      category.String(),
			Result:        res.EngineResult,
			Code:          res.Code,
			Resolution:    outcome,
			AttemptedAt:   time.Now().UTC(),
		})
	}
	logger.Debug("transaction submitted", zap.String("result", res.EngineResult), zap.Int("code", res.Code))

	switch category.Resolution() {
	case ResolutionMarkSubmitted:
		if resign != nil {
			record(OutcomeConflict)
			return false, &SequenceConflictError{Transaction: tx, Resign: *resign}
		}
		if err := r.store.MarkTransactionSubmitted(ctx, tx.ID); err != nil {
			return false, &TransactionError{Transaction: tx, Err: fmt.Errorf("mark submitted: %w", err)}
		}
		record(OutcomeSubmitted)
		return false, nil

	case ResolutionIgnore:
		if resign != nil {
			record(OutcomeConflict)
			return false, &SequenceConflictError{Transaction: tx, Resign: *resign}
		}
		record(OutcomeIgnored)
		return false, nil

	case ResolutionCheckConfirmation:
		outcome, err := r.confirm(ctx, logger, tx, submitErr, resign)
		record(outcome)
		return false, err

	case ResolutionResign:
		logger.Warn("transaction rejected, resign required", zap.Error(submitErr))
		if err := r.store.MarkTransactionError(ctx, tx.ID, submitErr.Error()); err != nil {
			return false, &TransactionError{Transaction: tx, Err: fmt.Errorf("mark error: %w", err)}
		}
		record(OutcomeResign)
		return true, nil

	case ResolutionClaimFee:
		if resign != nil {
			record(OutcomeConflict)
			return false, &SequenceConflictError{Transaction: tx, Resign: *resign}
		}
		logger.Warn("transaction claimed fee without applying", zap.Error(submitErr))
		if err := r.markFeeClaimed(ctx, tx, submitErr.Error()); err != nil {
			return false, err
		}
		record(OutcomeFeeClaimed)
		return false, nil

	default:
		if category == CategoryPreSequence && resign != nil {
			record(OutcomeAbsorbed)
			return false, nil
		}
		record(OutcomePropagated)
		return false, submitErr
	}
}

// confirm resolves a past sequence result by looking the transaction up.
func (r *Reconciler) confirm(ctx context.Context, logger *zap.Logger, tx model.Transaction, submitErr *SubmitError, resign *model.Transaction) (string, error) {
	status, err := r.ledger.Transaction(ctx, tx.TxHash)
	if err != nil {
		return OutcomePropagated, &TransactionError{Transaction: tx, Err: fmt.Errorf("lookup transaction: %w", err)}
	}

	switch {
	case !status.Found:
		return OutcomePropagated, submitErr

	case !status.HasMeta || status.Result == "" || (status.Result == ResultSuccess && !status.InLedger):
		logger.Info("transaction outcome not final yet, skipping", zap.Error(ErrIndeterminate))
		return OutcomeIndeterminate, nil

	case resign != nil:
		return OutcomeConflict, &SequenceConflictError{Transaction: tx, Resign: *resign}

	case status.Result == ResultSuccess:
		if err := r.store.MarkTransactionConfirmed(ctx, tx.ID); err != nil {
			return OutcomePropagated, &TransactionError{Transaction: tx, Err: fmt.Errorf("mark confirmed: %w", err)}
		}
		logger.Info("transaction confirmed")
		return OutcomeConfirmed, nil

	default:
		logger.Warn("transaction applied with failure", zap.String("result", status.Result))
		if err := r.markFeeClaimed(ctx, tx, status.Result); err != nil {
			return OutcomePropagated, err
		}
		return OutcomeFeeClaimed, nil
	}
}

func (r *Reconciler) markFeeClaimed(ctx context.Context, tx model.Transaction, message string) error {
	if err := r.store.MarkTransactionSubmitted(ctx, tx.ID); err != nil {
		return &TransactionError{Transaction: tx, Err: fmt.Errorf("mark submitted: %w", err)}
	}
	if err := r.store.MarkTransactionError(ctx, tx.ID, message); err != nil {
		return &TransactionError{Transaction: tx, Err: fmt.Errorf("mark error: %w", err)}
	}
	return nil
}
