package payments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/payouts7000-backend/internal/ledger"
	"github.com/goodnatureofminers/payouts7000-backend/internal/model"
	"go.uber.org/zap"
)

var errCounterNotInitialized = errors.New("sequence counter not initialized")

// Account identifies the paying account and how its payments are signed.
type Account struct {
	Address string
	Secret  string
	Fee     int64
}

// Signer assigns sequence numbers to unsigned rows and signs them one by one.
type Signer struct {
	store   Store
	ledger  LedgerClient
	counter *SequenceCounter
	account Account
	metrics Metrics
	logger  *zap.Logger
}

// NewSigner builds a Signer that advances counter on every signed row.
func NewSigner(store Store, client LedgerClient, counter *SequenceCounter, account Account, metrics Metrics, logger *zap.Logger) *Signer {
	return &Signer{
		store:   store,
		ledger:  client,
		counter: counter,
		account: account,
		metrics: metrics,
		logger:  logger,
	}
}

// SignTransactions signs up to limit unsigned rows in store order. Rows the
// node refuses to sign are marked errored and skipped without consuming a
// sequence.
func (s *Signer) SignTransactions(ctx context.Context, limit int) error {
	if limit <= 0 {
		return nil
	}

	txs, err := s.store.UnsignedTransactions(ctx, limit)
	if err != nil {
		return fmt.Errorf("query unsigned transactions: %w", err)
	}
	if len(txs) > 0 {
		s.logger.Debug("signing transactions", zap.Int("count", len(txs)), zap.Int("limit", limit))
	}

	for _, tx := range txs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.sign(ctx, tx); err != nil {
			return err
		}
	}
	return nil
}

func (s *Signer) sign(ctx context.Context, tx model.Transaction) error {
	sequence, ok := s.counter.Get()
	if !ok {
		return &TransactionError{Transaction: tx, Err: errCounterNotInitialized}
	}
	logger := s.logger.With(zap.Int64("transaction_id", tx.ID), zap.Uint32("sequence", sequence))

	amount, err := s.paymentAmount(tx.Amount)
	if err != nil {
		return s.reject(ctx, logger, tx, err)
	}

	started := time.Now()
	signed, err := s.ledger.SignPayment(ctx, ledger.PaymentRequest{
		Account:     s.account.Address,
		Secret:      s.account.Secret,
		Destination: tx.Address,
		Amount:      amount,
		Sequence:    sequence,
		Fee:         s.account.Fee,
	})
	s.metrics.ObserveSign(err, started)
	if err != nil {
		if isSigningFailure(err) {
			return s.reject(ctx, logger, tx, err)
		}
		return &TransactionError{Transaction: tx, Err: fmt.Errorf("sign: %w", err)}
	}

	now := time.Now().UTC()
	tx.TxBlob = signed.Blob
	tx.TxHash = signed.Hash
	tx.Sequence = &sequence
	tx.SignedAt = &now
	if err := s.store.StoreSignedTransaction(ctx, tx); err != nil {
		return &TransactionError{Transaction: tx, Err: fmt.Errorf("store signed transaction: %w", err)}
	}

	s.counter.Increment()
	s.metrics.SetSequence(sequence + 1)
	logger.Info("transaction signed", zap.String("tx_hash", signed.Hash))
	return nil
}

func (s *Signer) reject(ctx context.Context, logger *zap.Logger, tx model.Transaction, cause error) error {
	logger.Warn("transaction could not be signed", zap.Error(cause))
	if err := s.store.MarkTransactionError(ctx, tx.ID, cause.Error()); err != nil {
		return &TransactionError{Transaction: tx, Err: fmt.Errorf("mark sign error: %w", err)}
	}
	return nil
}

func (s *Signer) paymentAmount(amount model.Amount) (ledger.PaymentAmount, error) {
	if amount.IsNative() {
		units, err := amount.NativeUnits()
		if err != nil {
			return ledger.PaymentAmount{}, err
		}
		return ledger.NativePaymentAmount(units), nil
	}
	if !amount.Value.IsPositive() {
		return ledger.PaymentAmount{}, fmt.Errorf("amount %s must be positive", amount.Value)
	}
	issuer := amount.Issuer
	if issuer == "" {
		issuer = s.account.Address
	}
	return ledger.IssuedPaymentAmount(amount.Value.String(), amount.Currency, issuer), nil
}

// isSigningFailure reports whether the node rejected the payment itself, as
// opposed to the node being unreachable.
func isSigningFailure(err error) bool {
	var rpcErr *ledger.RPCError
	return errors.As(err, &rpcErr) && !errors.Is(err, ledger.ErrNetwork)
}
