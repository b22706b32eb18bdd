package transaction

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/family-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/family-ledger/internal/domain/error"
)

// UpdatePatch carries the fields of a partial transaction update. Nil fields
// are left untouched.
type UpdatePatch struct {
	Type        *string
	Amount      *decimal.Decimal
	Category    *string
	Description *string
	Date        *time.Time
	PayerName   *string
}

// Update applies a shallow patch to a transaction owned by the requester and
// re-validates the result before persisting.
func (s *Service) Update(ctx context.Context, id uint64, patch UpdatePatch, userID uint64) (*entity.Transaction, error) {
	transaction, err := s.FindOne(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if patch.Type != nil {
		if !entity.IsValidTransactionType(*patch.Type) {
			return nil, errs.NewValidationError(map[string]string{
				"type": "must be one of: income, expense",
			})
		}
		transaction.Type = entity.TransactionType(*patch.Type)
	}
	if patch.Amount != nil {
		if err := entity.ValidateAmount(*patch.Amount); err != nil {
			return nil, err
		}
		transaction.Amount = *patch.Amount
	}
	if patch.Category != nil {
		transaction.Category = *patch.Category
	}
	if patch.Description != nil {
		transaction.Description = *patch.Description
	}
	if patch.Date != nil {
		transaction.Date = *patch.Date
	}
	if patch.PayerName != nil && !transaction.IsFamilyBill {
		transaction.PayerName = *patch.PayerName
	}
	transaction.UpdatedAt = s.timeProvider.Now()

	if err := s.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, err
	}

	s.logger.Info("Transaction updated", map[string]any{
		"transaction_id": id,
		"user_id":        userID,
	})

	return transaction, nil
}
