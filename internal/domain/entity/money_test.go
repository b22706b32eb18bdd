package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/family-ledger/internal/domain/error"
)

func TestValidateAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []string{
			"100.00",
			"0.01",
			"0.10",
			"1",
			"1.5",
			"1234567.89",
			"0.00",
			"0",
			"1.250", // trailing zero beyond 2 places is still exactly 1.25
		}

		for _, tc := range testCases {
			t.Run(tc, func(t *testing.T) {
				amount, err := decimal.NewFromString(tc)
				require.NoError(t, err)
				assert.NoError(t, ValidateAmount(amount))
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []struct {
			input       string
			description string
		}{
			{"-1.00", "Negative amount"},
			{"-0.01", "Negative cent"},
			{"1.234", "Too many decimal places"},
			{"0.001", "Sub-cent amount"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				amount, err := decimal.NewFromString(tc.input)
				require.NoError(t, err)
				err = ValidateAmount(amount)
				assert.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrInvalidAmount)
			})
		}
	})
}

func TestParseAmount(t *testing.T) {
	t.Run("Valid string", func(t *testing.T) {
		amount, err := ParseAmount("42.50")
		require.NoError(t, err)
		assert.Equal(t, "42.50", FormatAmount(amount))
	})

	t.Run("Non-numeric string", func(t *testing.T) {
		_, err := ParseAmount("abc")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Negative string", func(t *testing.T) {
		_, err := ParseAmount("-5")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestFormatAmount(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"100", "100.00"},
		{"1.5", "1.50"},
		{"0", "0.00"},
		{"1234567.89", "1234567.89"},
		{"-100.5", "-100.50"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			amount, err := decimal.NewFromString(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, FormatAmount(amount))
		})
	}
}

func TestSummary(t *testing.T) {
	tp := &stubTimeProvider{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	date := time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)

	mustTransaction := func(txType, amount string) *Transaction {
		d, err := decimal.NewFromString(amount)
		require.NoError(t, err)
		tx, err := NewTransaction(1, txType, d, "groceries", "", date, tp)
		require.NoError(t, err)
		return tx
	}

	t.Run("Decimal accumulation stays exact", func(t *testing.T) {
		// 0.1+0.2+0.3 drifts in binary floating point; the summary must not
		var summary Summary
		summary.Add(mustTransaction("income", "0.10"))
		summary.Add(mustTransaction("income", "0.20"))
		summary.Add(mustTransaction("income", "0.30"))

		assert.Equal(t, "0.60", FormatAmount(summary.Income))
		assert.Equal(t, "0.00", FormatAmount(summary.Expense))
		assert.Equal(t, "0.60", FormatAmount(summary.Balance()))
	})

	t.Run("Balance can be negative", func(t *testing.T) {
		var summary Summary
		summary.Add(mustTransaction("income", "100.00"))
		summary.Add(mustTransaction("expense", "200.50"))

		assert.Equal(t, "100.00", FormatAmount(summary.Income))
		assert.Equal(t, "200.50", FormatAmount(summary.Expense))
		assert.Equal(t, "-100.50", FormatAmount(summary.Balance()))
	})

	t.Run("Empty summary renders zeros", func(t *testing.T) {
		var summary Summary
		assert.Equal(t, "0.00", FormatAmount(summary.Income))
		assert.Equal(t, "0.00", FormatAmount(summary.Expense))
		assert.Equal(t, "0.00", FormatAmount(summary.Balance()))
	})
}
