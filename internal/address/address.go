// Package address validates ledger account ids.
package address

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/mr-tron/base58"
)

// Alphabet is the base58 alphabet used by the ledger for encoded ids.
const Alphabet = "gsphnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCr65jkm8oFqi1tuvAxyz"

const (
	accountVersion = 0
	payloadSize    = 20
	checksumSize   = 4
)

var alphabet = base58.NewAlphabet(Alphabet)

var (
	ErrEmpty    = errors.New("address is empty")
	ErrChecksum = errors.New("address checksum mismatch")
)

// Validate reports whether s is a well formed account id.
func Validate(s string) error {
	if s == "" {
		return ErrEmpty
	}
	raw, err := base58.DecodeAlphabet(s, alphabet)
	if err != nil {
		return fmt.Errorf("decode address %q: %w", s, err)
	}
	if len(raw) != 1+payloadSize+checksumSize {
		return fmt.Errorf("address %q has length %d", s, len(raw))
	}
	if raw[0] != accountVersion {
		return fmt.Errorf("address %q has version %d", s, raw[0])
	}

	body, sum := raw[:1+payloadSize], raw[1+payloadSize:]
	if !bytes.Equal(checksum(body), sum) {
		return ErrChecksum
	}
	return nil
}

// Encode builds an account id from a 20 byte account hash.
func Encode(accountID []byte) (string, error) {
	if len(accountID) != payloadSize {
		return "", fmt.Errorf("account id must be %d bytes, got %d", payloadSize, len(accountID))
	}
	body := append([]byte{accountVersion}, accountID...)
	return base58.EncodeAlphabet(append(body, checksum(body)...), alphabet), nil
}

func checksum(body []byte) []byte {
	return chainhash.DoubleHashB(body)[:checksumSize]
}
