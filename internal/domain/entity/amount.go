package entity

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/velabs/govlock/internal/domain/error"
)

// Token amounts are carried as int64 base units with 8 decimal places of
// precision. String codecs at the edges keep JSON clients away from floating
// point entirely.

// AmountDecimals is the number of decimal places in a token amount
const AmountDecimals = 8

// ParseAmount validates and converts a decimal string to base units.
// "1.5" becomes 150000000; more than 8 fractional digits is rejected rather
// than silently rounded.
func ParseAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if strings.HasPrefix(amount, "-") {
		return 0, errs.ErrNegativeAmount
	}

	parts := strings.Split(amount, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}

	whole := parts[0]
	frac := ""
	if len(parts) == 2 {
		frac = parts[1]
	}
	if whole == "" && frac == "" {
		return 0, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}
	if whole == "" {
		whole = "0"
	}

	if len(frac) > AmountDecimals {
		return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, AmountDecimals)
	}
	frac += strings.Repeat("0", AmountDecimals-len(frac))

	value, err := strconv.ParseInt(whole+frac, 10, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return 0, errs.ErrAmountOverflow
		}
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	return value, nil
}

// FormatAmount converts base units back to a decimal string with the full 8
// fractional digits, e.g. 150000000 becomes "1.50000000".
func FormatAmount(baseUnits int64) string {
	negative := baseUnits < 0
	if negative {
		baseUnits = -baseUnits
	}

	digits := strconv.FormatInt(baseUnits, 10)
	for len(digits) < AmountDecimals+1 {
		digits = "0" + digits
	}

	split := len(digits) - AmountDecimals
	out := digits[:split] + "." + digits[split:]
	if negative {
		return "-" + out
	}
	return out
}

// AddAmounts adds two base-unit amounts, failing instead of wrapping on
// int64 overflow.
func AddAmounts(a, b int64) (int64, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, errs.ErrAmountOverflow
	}
	return sum, nil
}
