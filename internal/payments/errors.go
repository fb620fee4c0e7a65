package payments

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/payouts7000-backend/internal/model"
)

// Engine results with a dedicated category.
const (
	ResultSuccess              = "tesSUCCESS"
	ResultAlready              = "tefALREADY"
	ResultPastSequence         = "tefPAST_SEQ"
	ResultPreSequence          = "terPRE_SEQ"
	ResultUnfundedPayment      = "tecUNFUNDED_PAYMENT"
	ResultDestinationTagNeeded = "tefDST_TAG_NEEDED"
)

// Category classifies a submission result.
type Category int

const (
	CategoryUnknown Category = iota
	CategorySuccess
	CategoryApplyingTransaction
	CategoryPastSequence
	CategoryPreSequence
	CategoryUnfunded
	CategoryDestinationTagNeeded
	CategoryLocal
	CategoryMalformed
	CategoryFail
	CategoryRetry
	CategoryClaimFee
)

var categoryNames = map[Category]string{
	CategoryUnknown:              "unknown",
	CategorySuccess:              "success",
	CategoryApplyingTransaction:  "applying_transaction",
	CategoryPastSequence:         "past_sequence",
	CategoryPreSequence:          "pre_sequence",
	CategoryUnfunded:             "unfunded",
	CategoryDestinationTagNeeded: "destination_tag_needed",
	CategoryLocal:                "local",
	CategoryMalformed:            "malformed",
	CategoryFail:                 "fail",
	CategoryRetry:                "retry",
	CategoryClaimFee:             "claim_fee",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

type codeRange struct {
	min, max int
	category Category
}

var codeRanges = []codeRange{
	{min: -399, max: -300, category: CategoryLocal},
	{min: -299, max: -200, category: CategoryMalformed},
	{min: -199, max: -100, category: CategoryFail},
	{min: -99, max: -1, category: CategoryRetry},
	{min: 100, max: 159, category: CategoryClaimFee},
}

// Classify maps an engine result to its category. Named results take
// precedence over code ranges.
func Classify(result string, code int) Category {
	switch result {
	case ResultSuccess:
		return CategorySuccess
	case ResultAlready:
		return CategoryApplyingTransaction
	case ResultPastSequence:
		return CategoryPastSequence
	case ResultPreSequence:
		return CategoryPreSequence
	case ResultUnfundedPayment:
		return CategoryUnfunded
	case ResultDestinationTagNeeded:
		return CategoryDestinationTagNeeded
	}
	for _, r := range codeRanges {
		if code >= r.min && code <= r.max {
			return r.category
		}
	}
	return CategoryUnknown
}

// Resolution is the action the reconciler takes for a category.
type Resolution int

const (
	// ResolutionPropagate stops the batch with the error.
	ResolutionPropagate Resolution = iota
	// ResolutionMarkSubmitted records the submission.
	ResolutionMarkSubmitted
	// ResolutionIgnore leaves the row untouched.
	ResolutionIgnore
	// ResolutionCheckConfirmation looks the transaction up by hash.
	ResolutionCheckConfirmation
	// ResolutionResign marks the row errored and requests a rollback.
	ResolutionResign
	// ResolutionClaimFee marks the row submitted and errored.
	ResolutionClaimFee
)

// Resolution returns the policy for the category.
func (c Category) Resolution() Resolution {
	switch c {
	case CategorySuccess:
		return ResolutionMarkSubmitted
	case CategoryApplyingTransaction:
		return ResolutionIgnore
	case CategoryPastSequence:
		return ResolutionCheckConfirmation
	case CategoryLocal, CategoryMalformed, CategoryFail, CategoryRetry:
		return ResolutionResign
	case CategoryClaimFee:
		return ResolutionClaimFee
	default:
		return ResolutionPropagate
	}
}

// ErrIndeterminate means the ledger knows the transaction but has not
// reported a final outcome yet.
var ErrIndeterminate = errors.New("transaction outcome indeterminate")

// SubmitError is a classified submission failure.
type SubmitError struct {
	Category    Category
	Result      string
	Code        int
	Message     string
	Transaction model.Transaction
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("transaction %d sequence %d: %s: %s (%d) %s",
		e.Transaction.ID, e.Transaction.SequenceValue(), e.Category, e.Result, e.Code, e.Message)
}

// ResignRequiredError asks the orchestrator to roll back every unconfirmed
// row signed at or after the offending transaction's sequence. Err carries a
// failure that stopped the batch after the resign was requested.
type ResignRequiredError struct {
	Transaction model.Transaction
	Err         error
}

func (e *ResignRequiredError) Error() string {
	msg := fmt.Sprintf("resign required from transaction %d sequence %d",
		e.Transaction.ID, e.Transaction.SequenceValue())
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// SequenceConflictError is returned when the ledger accepts a transaction
// signed after one that must be resigned.
type SequenceConflictError struct {
	Transaction model.Transaction
	Resign      model.Transaction
}

func (e *SequenceConflictError) Error() string {
	return fmt.Sprintf("transaction %d sequence %d accepted while transaction %d sequence %d awaits resign",
		e.Transaction.ID, e.Transaction.SequenceValue(), e.Resign.ID, e.Resign.SequenceValue())
}

// TransactionError attaches the row being processed to an unclassified failure.
type TransactionError struct {
	Transaction model.Transaction
	Err         error
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("transaction %d: %v", e.Transaction.ID, e.Err)
}

func (e *TransactionError) Unwrap() error {
	return e.Err
}

// FatalError is the latched cause that blocks further payment cycles.
type FatalError struct {
	Err         error
	Transaction *model.Transaction
}

func (e *FatalError) Error() string {
	if e.Transaction == nil {
		return "fatal payment error: " + e.Err.Error()
	}
	return fmt.Sprintf("fatal payment error on transaction %d: %v", e.Transaction.ID, e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// offendingTransaction returns the row an error is attributed to, if any.
func offendingTransaction(err error) *model.Transaction {
	var (
		submitErr   *SubmitError
		conflictErr *SequenceConflictError
		txErr       *TransactionError
	)
	switch {
	case errors.As(err, &submitErr):
		tx := submitErr.Transaction
		return &tx
	case errors.As(err, &conflictErr):
		tx := conflictErr.Transaction
		return &tx
	case errors.As(err, &txErr):
		tx := txErr.Transaction
		return &tx
	default:
		return nil
	}
}
