package model

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// NativeUnitsPerCoin is the number of indivisible units in one native coin.
const NativeUnitsPerCoin = 1_000_000

var (
	nativeScale    = decimal.NewFromInt(NativeUnitsPerCoin)
	maxNativeUnits = decimal.NewFromInt(math.MaxInt64)
)

// Amount is a payout value; an empty Currency denotes the native asset.
type Amount struct {
	Value    decimal.Decimal
	Currency string
	Issuer   string
}

// NativeAmount builds a native asset amount.
func NativeAmount(value decimal.Decimal) Amount {
	return Amount{Value: value}
}

// IsNative reports whether the amount is denominated in the native asset.
func (a Amount) IsNative() bool {
	return a.Currency == ""
}

// NativeUnits converts a native amount to an integer count of indivisible units.
func (a Amount) NativeUnits() (int64, error) {
	if !a.IsNative() {
		return 0, fmt.Errorf("amount in %s is not native", a.Currency)
	}
	units := a.Value.Mul(nativeScale)
	if !units.Equal(units.Truncate(0)) {
		return 0, fmt.Errorf("amount %s exceeds native precision", a.Value)
	}
	if !units.IsPositive() {
		return 0, fmt.Errorf("amount %s must be positive", a.Value)
	}
	if units.GreaterThan(maxNativeUnits) {
		return 0, fmt.Errorf("amount %s exceeds the native maximum", a.Value)
	}
	return units.IntPart(), nil
}

// Validate checks that the amount can be paid out.
func (a Amount) Validate() error {
	if !a.Value.IsPositive() {
		return errors.New("amount must be positive")
	}
	if a.IsNative() {
		if a.Issuer != "" {
			return errors.New("native amount cannot have an issuer")
		}
		_, err := a.NativeUnits()
		return err
	}
	if len(a.Currency) != 3 {
		return fmt.Errorf("currency %q must be a 3-letter code", a.Currency)
	}
	return nil
}

func (a Amount) String() string {
	if a.IsNative() {
		return a.Value.String()
	}
	if a.Issuer == "" {
		return a.Value.String() + " " + a.Currency
	}
	return a.Value.String() + " " + a.Currency + "/" + a.Issuer
}
