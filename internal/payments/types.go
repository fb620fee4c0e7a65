// Package payments signs, submits and reconciles payout transactions while
// keeping the local sequence counter consistent with the ledger.
package payments

import (
	"context"
	"time"

	"github.com/goodnatureofminers/payouts7000-backend/internal/ledger"
	"github.com/goodnatureofminers/payouts7000-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Store interface {
		UnsignedTransactions(ctx context.Context, limit int) ([]model.Transaction, error)
		SignedUnconfirmedTransactions(ctx context.Context) ([]model.Transaction, error)
		SubmittedUnconfirmedTransactions(ctx context.Context) ([]model.Transaction, error)
		StoreSignedTransaction(ctx context.Context, tx model.Transaction) error
		MarkTransactionSubmitted(ctx context.Context, id int64) error
		MarkTransactionConfirmed(ctx context.Context, id int64) error
		MarkTransactionError(ctx context.Context, id int64, message string) error
		HighestSequence(ctx context.Context) (uint32, bool, error)
		ClearSignedTransactionsFromSequence(ctx context.Context, sequence uint32) (int64, error)
		IsAborted(ctx context.Context, id int64) (bool, error)
	}
	LedgerClient interface {
		SignPayment(ctx context.Context, req ledger.PaymentRequest) (ledger.SignedTransaction, error)
		SubmitTransaction(ctx context.Context, blob string) (ledger.SubmitResult, error)
		Transaction(ctx context.Context, hash string) (ledger.TransactionStatus, error)
		AccountSequence(ctx context.Context, address string) (uint32, error)
	}
	TransactionSigner interface {
		SignTransactions(ctx context.Context, limit int) error
	}
	TransactionSubmitter interface {
		SubmitTransactions(ctx context.Context) error
	}
	// Lease guards against two processes paying from the same account.
	// Acquire reports whether the lease is held and whether it was newly taken.
	Lease interface {
		Acquire(ctx context.Context) (held bool, fresh bool, err error)
		Release(ctx context.Context) error
	}
	SubmissionRecorder interface {
		RecordSubmission(ctx context.Context, attempt model.SubmissionAttempt)
	}
	Metrics interface {
		ObserveCycle(status string, started time.Time)
		ObserveSign(err error, started time.Time)
		ObserveSubmission(category, resolution string)
		ObserveRollback(cleared int64)
		SetSequence(sequence uint32)
		SetFatal(latched bool)
	}
)
