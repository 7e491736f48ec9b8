// Package units converts between wei and decimal ETH strings. Arithmetic on
// amounts happens on wei; decimal strings only exist at the edges.
package units

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

const EtherDecimals = 18

var (
	ErrNegativeAmount = errors.New("amount must not be negative")
	ErrTooPrecise     = errors.New("amount has more than 18 decimals")
)

// ParseEther converts a decimal ETH string such as "0.001" to wei.
func ParseEther(amount string) (*big.Int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return nil, fmt.Errorf("invalid ether amount %q: %w", amount, err)
	}
	if d.IsNegative() {
		return nil, fmt.Errorf("invalid ether amount %q: %w", amount, ErrNegativeAmount)
	}

	wei := d.Shift(EtherDecimals)
	if !wei.Equal(wei.Truncate(0)) {
		return nil, fmt.Errorf("invalid ether amount %q: %w", amount, ErrTooPrecise)
	}
	return wei.BigInt(), nil
}

// FormatEther renders wei as a decimal ETH string without trailing zeros.
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	return decimal.NewFromBigInt(wei, -EtherDecimals).String()
}

// FormatEtherFixed renders wei with a fixed number of decimals, for logs
// and terminal output.
func FormatEtherFixed(wei *big.Int, places int32) string {
	if wei == nil {
		wei = new(big.Int)
	}
	return decimal.NewFromBigInt(wei, -EtherDecimals).StringFixed(places)
}

// MulUint returns amount*n.
func MulUint(amount *big.Int, n uint64) *big.Int {
	if amount == nil {
		return new(big.Int)
	}
	return new(big.Int).Mul(amount, new(big.Int).SetUint64(n))
}

// NetOfFee returns amount minus feePercent percent of it, rounding the fee
// down.
func NetOfFee(amount *big.Int, feePercent uint64) *big.Int {
	if amount == nil {
		return new(big.Int)
	}
	if feePercent >= 100 {
		return new(big.Int)
	}

	fee := new(big.Int).Mul(amount, new(big.Int).SetUint64(feePercent))
	fee.Quo(fee, big.NewInt(100))
	return new(big.Int).Sub(amount, fee)
}
