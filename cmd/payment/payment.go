package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/goodnatureofminers/payouts7000-backend/internal/address"
	"github.com/goodnatureofminers/payouts7000-backend/internal/model"
)

var requiredColumns = []string{"address", "amount"}

// newPayment validates operator input and builds an unsigned transaction row.
func newPayment(dest, amount, currency, issuer, memo string) (model.Transaction, error) {
	dest = strings.TrimSpace(dest)
	if err := address.Validate(dest); err != nil {
		return model.Transaction{}, fmt.Errorf("address %q: %w", dest, err)
	}
	value, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("amount %q: %w", amount, err)
	}
	amt := model.Amount{
		Value:    value,
		Currency: strings.ToUpper(strings.TrimSpace(currency)),
		Issuer:   strings.TrimSpace(issuer),
	}
	if amt.Issuer != "" {
		if err := address.Validate(amt.Issuer); err != nil {
			return model.Transaction{}, fmt.Errorf("issuer %q: %w", amt.Issuer, err)
		}
	}
	if err := amt.Validate(); err != nil {
		return model.Transaction{}, fmt.Errorf("amount %q: %w", amount, err)
	}
	return model.Transaction{Address: dest, Amount: amt, Memo: memo}, nil
}

// readPayments parses a CSV with a header row. address and amount are
// required columns; currency, issuer and memo are optional. Every row is
// validated before any is returned.
func readPayments(r io.Reader) ([]model.Transaction, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty payments file")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	index := map[string]int{}
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range requiredColumns {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("missing %q column", required)
		}
	}

	var (
		txs  []model.Transaction
		errs []error
	)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}
		field := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(record) {
				return ""
			}
			return record[i]
		}
		tx, err := newPayment(field("address"), field("amount"), field("currency"), field("issuer"), field("memo"))
		if err != nil {
			errs = append(errs, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		txs = append(txs, tx)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if len(txs) == 0 {
		return nil, errors.New("no payments in file")
	}
	return txs, nil
}
