// Package ledger describes the ledger node API consumed by the payout pipeline.
package ledger

import (
	"encoding/json"
	"strconv"
)

// PaymentAmount is the wire form of a payment amount. Native amounts are
// encoded as a string of indivisible units, issued currencies as an object.
type PaymentAmount struct {
	NativeUnits int64
	Value       string
	Currency    string
	Issuer      string
}

// NativePaymentAmount builds a native amount from indivisible units.
func NativePaymentAmount(units int64) PaymentAmount {
	return PaymentAmount{NativeUnits: units}
}

// IssuedPaymentAmount builds an issued currency amount.
func IssuedPaymentAmount(value, currency, issuer string) PaymentAmount {
	return PaymentAmount{Value: value, Currency: currency, Issuer: issuer}
}

// IsNative reports whether the amount is in the native asset.
func (a PaymentAmount) IsNative() bool {
	return a.Currency == ""
}

// MarshalJSON implements json.Marshaler.
func (a PaymentAmount) MarshalJSON() ([]byte, error) {
	if a.IsNative() {
		return json.Marshal(strconv.FormatInt(a.NativeUnits, 10))
	}
	return json.Marshal(struct {
		Value    string `json:"value"`
		Currency string `json:"currency"`
		Issuer   string `json:"issuer"`
	}{a.Value, a.Currency, a.Issuer})
}

func (a PaymentAmount) String() string {
	if a.IsNative() {
		return strconv.FormatInt(a.NativeUnits, 10)
	}
	return a.Value + "/" + a.Currency + "/" + a.Issuer
}

// PaymentRequest carries everything the node needs to sign a payment.
type PaymentRequest struct {
	Account     string
	Secret      string
	Destination string
	Amount      PaymentAmount
	Sequence    uint32
	Fee         int64
}

// SignedTransaction is a signed, serialized transaction.
type SignedTransaction struct {
	Blob string
	Hash string
}

// SubmitResult is the node's preliminary verdict on a submitted blob.
type SubmitResult struct {
	EngineResult string
	Code         int
	Message      string
}

// TransactionStatus is the node's view of a transaction looked up by hash.
type TransactionStatus struct {
	Found    bool
	HasMeta  bool
	Result   string
	InLedger bool
}
