package entity

import (
	"math"
	"testing"

	errs "github.com/velabs/govlock/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected int64
		}{
			{"1", 100000000},
			{"1.5", 150000000},
			{"0.00000001", 1},
			{"100.00000000", 10000000000},
			{"0", 0},
			{"0.0", 0},
			{".5", 50000000},
			{"12345.6789", 1234567890000},
			{"  2.5  ", 250000000},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				baseUnits, err := ParseAmount(tc.input)
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, baseUnits)
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []struct {
			input       string
			errorType   error
			description string
		}{
			{"", errs.ErrInvalidAmount, "Empty string"},
			{"   ", errs.ErrInvalidAmount, "Whitespace only"},
			{"-1.0", errs.ErrNegativeAmount, "Negative amount"},
			{"0.000000001", errs.ErrInvalidAmount, "Too many decimal places"},
			{"abc", errs.ErrInvalidAmount, "Non-numeric"},
			{"1.0.0", errs.ErrInvalidAmount, "Multiple decimal points"},
			{".", errs.ErrInvalidAmount, "Bare decimal point"},
			{"1,000", errs.ErrInvalidAmount, "Comma separator"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, err := ParseAmount(tc.input)
				assert.Error(t, err)
				assert.ErrorIs(t, err, tc.errorType)
			})
		}
	})

	t.Run("Overflow", func(t *testing.T) {
		// Beyond int64 range once scaled to base units
		_, err := ParseAmount("99999999999999999999")
		assert.ErrorIs(t, err, errs.ErrAmountOverflow)
	})
}

func TestFormatAmount(t *testing.T) {
	testCases := []struct {
		baseUnits int64
		expected  string
	}{
		{100000000, "1.00000000"},
		{150000000, "1.50000000"},
		{1, "0.00000001"},
		{0, "0.00000000"},
		{10000000000, "100.00000000"},
		{-100000000, "-1.00000000"},
		{-1, "-0.00000001"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatAmount(tc.baseUnits))
		})
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	inputs := []string{"1.00000000", "0.00000001", "12345.67890000", "0.00000000"}
	for _, input := range inputs {
		baseUnits, err := ParseAmount(input)
		assert.NoError(t, err)
		assert.Equal(t, input, FormatAmount(baseUnits))
	}
}

func TestAddAmounts(t *testing.T) {
	t.Run("Normal addition", func(t *testing.T) {
		sum, err := AddAmounts(100000000, 50000000)
		assert.NoError(t, err)
		assert.Equal(t, int64(150000000), sum)
	})

	t.Run("Overflow is rejected", func(t *testing.T) {
		_, err := AddAmounts(math.MaxInt64, 1)
		assert.ErrorIs(t, err, errs.ErrAmountOverflow)
	})

	t.Run("Negative addend", func(t *testing.T) {
		sum, err := AddAmounts(100, -40)
		assert.NoError(t, err)
		assert.Equal(t, int64(60), sum)
	})
}
