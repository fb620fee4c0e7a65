package model

import "time"

// Transaction is a payout row owned by the transaction store.
type Transaction struct {
	ID          int64
	Address     string
	Amount      Amount
	Memo        string
	TxBlob      string
	TxHash      string
	Sequence    *uint32
	Error       *string
	CreatedAt   time.Time
	SignedAt    *time.Time
	SubmittedAt *time.Time
	ConfirmedAt *time.Time
	AbortedAt   *time.Time
}

// IsSigned reports whether the row carries a signed blob.
func (t Transaction) IsSigned() bool {
	return t.TxBlob != "" && t.Sequence != nil
}

// SequenceValue returns the assigned sequence or zero when unsigned.
func (t Transaction) SequenceValue() uint32 {
	if t.Sequence == nil {
		return 0
	}
	return *t.Sequence
}

// SubmissionAttempt records one classified submission of a signed transaction.
type SubmissionAttempt struct {
	TransactionID int64
	TxHash        string
	Sequence      uint32
	Category      string
	Result        string
	Code          int
	Resolution    string
	AttemptedAt   time.Time
}
