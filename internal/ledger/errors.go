package ledger

import (
	"errors"
	"fmt"
)

// ErrNetwork marks transport failures and node replies meaning the node is not
// connected to the network. Callers must not treat them as per-transaction errors.
var ErrNetwork = errors.New("ledger network unavailable")

// Node error codes with special handling.
const (
	CodeTransactionNotFound = "txnNotFound"
	CodeNoNetwork           = "noNetwork"
	CodeNoCurrent           = "noCurrent"
	CodeTooBusy             = "tooBusy"
	CodeSlowDown            = "slowDown"
)

// RPCError is an error reply returned by the node.
type RPCError struct {
	Method  string
	Code    string
	Message string
}

func (e *RPCError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %s", e.Method, e.Code)
	}
	return fmt.Sprintf("%s: %s: %s", e.Method, e.Code, e.Message)
}

// Unwrap exposes ErrNetwork for replies that mean the node cannot serve requests right now.
func (e *RPCError) Unwrap() error {
	if IsNetworkCode(e.Code) {
		return ErrNetwork
	}
	return nil
}

// IsNetworkCode reports whether a node error code means the node is offline
// or is shedding load.
func IsNetworkCode(code string) bool {
	switch code {
	case CodeNoNetwork, CodeNoCurrent, CodeTooBusy, CodeSlowDown:
		return true
	default:
		return false
	}
}
