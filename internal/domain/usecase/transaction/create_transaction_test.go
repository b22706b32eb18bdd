package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/family-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/family-ledger/internal/domain/error"
)

func amount(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(value)
	require.NoError(t, err)
	return d
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Personal transaction is owned and paid by the requester", func(t *testing.T) {
		h := newTestHarness()

		tx, err := h.service.Create(ctx, CreateInput{
			Type:     "expense",
			Amount:   amount(t, "42.50"),
			Category: "groceries",
			Date:     date,
		}, 7)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), tx.ID)
		assert.Equal(t, uint64(7), tx.UserID)
		require.NotNil(t, tx.PayerID)
		assert.Equal(t, uint64(7), *tx.PayerID)
		assert.False(t, tx.IsFamilyBill)
		assert.Nil(t, tx.FamilyID)
	})

	t.Run("Personal transaction keeps a free-text payer", func(t *testing.T) {
		h := newTestHarness()

		tx, err := h.service.Create(ctx, CreateInput{
			Type:      "expense",
			Amount:    amount(t, "10"),
			Category:  "utilities",
			Date:      date,
			PayerName: "Grandma",
		}, 7)
		require.NoError(t, err)
		assert.Equal(t, "Grandma", tx.PayerName)
	})

	t.Run("Family bill requires an active membership", func(t *testing.T) {
		h := newTestHarness()

		_, err := h.service.Create(ctx, CreateInput{
			Type:         "expense",
			Amount:       amount(t, "100"),
			Category:     "rent",
			Date:         date,
			IsFamilyBill: true,
		}, 7)
		assert.ErrorIs(t, err, errs.ErrNotInFamily)
		assert.Empty(t, h.transactionRepo.rows)
	})

	t.Run("Family bill is attributed to the family", func(t *testing.T) {
		h := newTestHarness()
		h.membershipRepo.addActive(7, 3, entity.RoleMember)

		tx, err := h.service.Create(ctx, CreateInput{
			Type:         "expense",
			Amount:       amount(t, "100"),
			Category:     "rent",
			Date:         date,
			IsFamilyBill: true,
		}, 7)
		require.NoError(t, err)
		assert.True(t, tx.IsFamilyBill)
		require.NotNil(t, tx.FamilyID)
		assert.Equal(t, uint64(3), *tx.FamilyID)
		require.NotNil(t, tx.PayerID)
		assert.Equal(t, uint64(7), *tx.PayerID)
	})

	t.Run("Explicit payer must be in the same family", func(t *testing.T) {
		h := newTestHarness()
		h.membershipRepo.addActive(7, 3, entity.RoleMember)
		h.membershipRepo.addActive(8, 4, entity.RoleMember)

		payer := uint64(8)
		_, err := h.service.Create(ctx, CreateInput{
			Type:         "expense",
			Amount:       amount(t, "100"),
			Category:     "rent",
			Date:         date,
			IsFamilyBill: true,
			PayerID:      &payer,
		}, 7)
		assert.ErrorIs(t, err, errs.ErrInvalidPayer)
	})

	t.Run("Explicit payer from the same family is accepted", func(t *testing.T) {
		h := newTestHarness()
		h.membershipRepo.addActive(7, 3, entity.RoleMember)
		h.membershipRepo.addActive(8, 3, entity.RoleAdmin)

		payer := uint64(8)
		tx, err := h.service.Create(ctx, CreateInput{
			Type:         "income",
			Amount:       amount(t, "250.75"),
			Category:     "refund",
			Date:         date,
			IsFamilyBill: true,
			PayerID:      &payer,
		}, 7)
		require.NoError(t, err)
		require.NotNil(t, tx.PayerID)
		assert.Equal(t, uint64(8), *tx.PayerID)
		assert.Equal(t, uint64(7), tx.UserID)
	})

	t.Run("Validation failures", func(t *testing.T) {
		h := newTestHarness()

		testCases := []struct {
			name     string
			input    CreateInput
			expected error
		}{
			{
				"Unknown type",
				CreateInput{Type: "transfer", Amount: amount(t, "10"), Category: "misc", Date: date},
				errs.ErrValidation,
			},
			{
				"Negative amount",
				CreateInput{Type: "expense", Amount: amount(t, "-5"), Category: "misc", Date: date},
				errs.ErrInvalidAmount,
			},
			{
				"Too many decimal places",
				CreateInput{Type: "expense", Amount: amount(t, "1.234"), Category: "misc", Date: date},
				errs.ErrInvalidAmount,
			},
			{
				"Empty category",
				CreateInput{Type: "expense", Amount: amount(t, "10"), Date: date},
				errs.ErrValidation,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := h.service.Create(ctx, tc.input, 7)
				assert.ErrorIs(t, err, tc.expected)
			})
		}
	})
}
