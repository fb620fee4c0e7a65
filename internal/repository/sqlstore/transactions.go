package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/payouts7000-backend/internal/model"
	"github.com/goodnatureofminers/payouts7000-backend/pkg/safe"
)

const transactionColumns = `id, address, amount, currency, issuer, memo, tx_blob, tx_hash, sequence, error,
	created_at, signed_at, submitted_at, confirmed_at, aborted_at`

// InsertTransaction adds a new unsigned payout and returns its id.
func (s *Store) InsertTransaction(ctx context.Context, tx model.Transaction) (id int64, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("insert_transaction", err, started)
	}()

	createdAt := tx.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.now()
	}
	const q = `INSERT INTO transactions (address, amount, currency, issuer, memo, created_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err = s.db.QueryRowContext(ctx, q,
		tx.Address, tx.Amount.Value.String(), tx.Amount.Currency, tx.Amount.Issuer, tx.Memo, createdAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert transaction: %w", err)
	}
	return id, nil
}

// Transaction returns a single row by id.
func (s *Store) Transaction(ctx context.Context, id int64) (tx model.Transaction, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("transaction", err, started)
	}()

	row := s.db.QueryRowContext(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id)
	tx, err = scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Transaction{}, fmt.Errorf("transaction %d: %w", id, ErrNotFound)
	}
	return tx, err
}

// UnsignedTransactions returns up to limit rows awaiting a signature, oldest first.
func (s *Store) UnsignedTransactions(ctx context.Context, limit int) (txs []model.Transaction, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("unsigned_transactions", err, started)
	}()

	const q = `SELECT ` + transactionColumns + ` FROM transactions
		WHERE tx_blob IS NULL AND submitted_at IS NULL AND aborted_at IS NULL AND error IS NULL
		ORDER BY id
		LIMIT $1`
	return s.query(ctx, q, limit)
}

// SignedUnconfirmedTransactions returns signed rows not yet confirmed, by sequence.
func (s *Store) SignedUnconfirmedTransactions(ctx context.Context) (txs []model.Transaction, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("signed_unconfirmed_transactions", err, started)
	}()

	const q = `SELECT ` + transactionColumns + ` FROM transactions
		WHERE tx_blob IS NOT NULL AND confirmed_at IS NULL AND aborted_at IS NULL AND error IS NULL
		ORDER BY sequence, id`
	return s.query(ctx, q)
}

// SubmittedUnconfirmedTransactions returns rows in flight on the ledger.
func (s *Store) SubmittedUnconfirmedTransactions(ctx context.Context) (txs []model.Transaction, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("submitted_unconfirmed_transactions", err, started)
	}()

	const q = `SELECT ` + transactionColumns + ` FROM transactions
		WHERE tx_blob IS NOT NULL AND submitted_at IS NOT NULL AND confirmed_at IS NULL
			AND aborted_at IS NULL AND error IS NULL
		ORDER BY sequence, id`
	return s.query(ctx, q)
}

// StoreSignedTransaction persists blob, hash and sequence of a signed row.
func (s *Store) StoreSignedTransaction(ctx context.Context, tx model.Transaction) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("store_signed_transaction", err, started)
	}()

	if tx.Sequence == nil || tx.TxBlob == "" {
		return fmt.Errorf("transaction %d: blob and sequence are required", tx.ID)
	}
	signedAt := s.now()
	if tx.SignedAt != nil {
		signedAt = *tx.SignedAt
	}
	const q = `UPDATE transactions SET tx_blob = $1, tx_hash = $2, sequence = $3, signed_at = $4 WHERE id = $5`
	return s.exec(ctx, q, tx.TxBlob, tx.TxHash, int64(*tx.Sequence), signedAt, tx.ID)
}

// MarkTransactionSubmitted stamps submitted_at.
func (s *Store) MarkTransactionSubmitted(ctx context.Context, id int64) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("mark_transaction_submitted", err, started)
	}()

	return s.exec(ctx, `UPDATE transactions SET submitted_at = $1 WHERE id = $2`, s.now(), id)
}

// MarkTransactionConfirmed stamps confirmed_at, and submitted_at when it was never recorded.
func (s *Store) MarkTransactionConfirmed(ctx context.Context, id int64) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("mark_transaction_confirmed", err, started)
	}()

	const q = `UPDATE transactions SET confirmed_at = $1, submitted_at = COALESCE(submitted_at, $1) WHERE id = $2`
	return s.exec(ctx, q, s.now(), id)
}

// MarkTransactionError records a failure message on the row.
func (s *Store) MarkTransactionError(ctx context.Context, id int64, message string) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("mark_transaction_error", err, started)
	}()

	return s.exec(ctx, `UPDATE transactions SET error = $1 WHERE id = $2`, message, id)
}

// AbortTransaction stamps aborted_at. It is an operator action.
func (s *Store) AbortTransaction(ctx context.Context, id int64) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("abort_transaction", err, started)
	}()

	res, err := s.db.ExecContext(ctx, `UPDATE transactions SET aborted_at = COALESCE(aborted_at, $1) WHERE id = $2`, s.now(), id)
	if err != nil {
		return fmt.Errorf("abort transaction %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("abort transaction %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("abort transaction %d: %w", id, ErrNotFound)
	}
	return nil
}

// HighestSequence returns the highest sequence any row was signed with.
func (s *Store) HighestSequence(ctx context.Context) (sequence uint32, found bool, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("highest_sequence", err, started)
	}()

	var highest sql.NullInt64
	if err = s.db.QueryRowContext(ctx, `SELECT MAX(sequence) FROM transactions`).Scan(&highest); err != nil {
		return 0, false, fmt.Errorf("query highest sequence: %w", err)
	}
	if !highest.Valid {
		return 0, false, nil
	}
	sequence, err = safe.Uint32(highest.Int64)
	if err != nil {
		return 0, false, fmt.Errorf("highest sequence: %w", err)
	}
	return sequence, true, nil
}

// ClearSignedTransactionsFromSequence drops the signature of every unconfirmed
// row signed at or after sequence. Rows that already consumed their sequence
// on the ledger (submitted and errored) keep it. Error messages are kept.
func (s *Store) ClearSignedTransactionsFromSequence(ctx context.Context, sequence uint32) (cleared int64, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("clear_signed_transactions", err, started)
	}()

	const q = `UPDATE transactions
		SET tx_blob = NULL, tx_hash = NULL, sequence = NULL, signed_at = NULL, submitted_at = NULL
		WHERE sequence >= $1 AND confirmed_at IS NULL AND (error IS NULL OR submitted_at IS NULL)`
	res, err := s.db.ExecContext(ctx, q, int64(sequence))
	if err != nil {
		return 0, fmt.Errorf("clear signed transactions: %w", err)
	}
	cleared, err = res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clear signed transactions: %w", err)
	}
	return cleared, nil
}

// IsAborted reports whether an operator aborted the row.
func (s *Store) IsAborted(ctx context.Context, id int64) (aborted bool, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("is_aborted", err, started)
	}()

	var abortedAt sql.NullTime
	err = s.db.QueryRowContext(ctx, `SELECT aborted_at FROM transactions WHERE id = $1`, id).Scan(&abortedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("transaction %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return false, fmt.Errorf("query aborted: %w", err)
	}
	return abortedAt.Valid, nil
}

func (s *Store) query(ctx context.Context, q string, args ...any) ([]model.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var txs []model.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return txs, nil
}

func (s *Store) exec(ctx context.Context, q string, args ...any) error {
	if _, err := s.db.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row scanner) (model.Transaction, error) {
	var (
		tx                                            model.Transaction
		blob, hash, txErr                             sql.NullString
		sequence                                      sql.NullInt64
		signedAt, submittedAt, confirmedAt, abortedAt sql.NullTime
	)
	err := row.Scan(
		&tx.ID, &tx.Address, &tx.Amount.Value, &tx.Amount.Currency, &tx.Amount.Issuer, &tx.Memo,
		&blob, &hash, &sequence, &txErr,
		&tx.CreatedAt, &signedAt, &submittedAt, &confirmedAt, &abortedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Transaction{}, err
		}
		return model.Transaction{}, fmt.Errorf("scan transaction: %w", err)
	}

	tx.TxBlob = blob.String
	tx.TxHash = hash.String
	if sequence.Valid {
		seq, err := safe.Uint32(sequence.Int64)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("transaction %d sequence: %w", tx.ID, err)
		}
		tx.Sequence = &seq
	}
	if txErr.Valid {
		msg := txErr.String
		tx.Error = &msg
	}
	tx.SignedAt = nullTime(signedAt)
	tx.SubmittedAt = nullTime(submittedAt)
	tx.ConfirmedAt = nullTime(confirmedAt)
	tx.AbortedAt = nullTime(abortedAt)
	return tx, nil
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
