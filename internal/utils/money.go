package utils

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ParseToCents converts a decimal amount string ("150", "150.5", "150.50")
// into minor units. Amounts with more than two fractional digits are
// rejected rather than truncated.
func ParseToCents(amountStr string) (int64, error) {
	d, err := decimal.NewFromString(amountStr)
	if err != nil {
		return 0, fmt.Errorf("invalid amount format: %s", amountStr)
	}

	cents := d.Shift(2)
	if !cents.IsInteger() {
		return 0, fmt.Errorf("amount %s has more than two decimal places", amountStr)
	}
	if !cents.BigInt().IsInt64() {
		return 0, fmt.Errorf("amount %s is too large", amountStr)
	}

	return cents.IntPart(), nil
}

// FormatFromCents renders minor units as a fixed two-decimal string.
func FormatFromCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
