package entity

import (
	"fmt"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/family-ledger/internal/domain/error"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// ValidateAmount checks that a monetary amount is non-negative and carries at
// most two decimal places. Summaries accumulate these values with exact
// decimal arithmetic, so a bad amount must be rejected before it is stored.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: amount cannot be negative", errs.ErrInvalidAmount)
	}
	if amount.Exponent() < -MaxDecimalPlaces && !amount.Equal(amount.Round(MaxDecimalPlaces)) {
		return fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}
	return nil
}

// ParseAmount parses a string amount and validates it
func ParseAmount(amount string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}
	if err := ValidateAmount(d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

// FormatAmount renders a monetary value with exactly two decimal places
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(MaxDecimalPlaces)
}

// Summary aggregates a set of transactions into income, expense and balance
// totals. Accumulation uses decimal arithmetic end to end; float64 would drift
// at cent level over many rows.
type Summary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Add accumulates one transaction into the summary
func (s *Summary) Add(t *Transaction) {
	switch t.Type {
	case TypeIncome:
		s.Income = s.Income.Add(t.Amount)
	case TypeExpense:
		s.Expense = s.Expense.Add(t.Amount)
	}
}

// Balance returns income minus expense
func (s *Summary) Balance() decimal.Decimal {
	return s.Income.Sub(s.Expense)
}
