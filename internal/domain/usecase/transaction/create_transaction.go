package transaction

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/family-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/family-ledger/internal/domain/error"
)

// CreateInput carries the input for a new transaction
type CreateInput struct {
	Type         string
	Amount       decimal.Decimal
	Category     string
	Description  string
	Date         time.Time
	IsFamilyBill bool
	// PayerID names who actually paid a family bill; must be an active
	// member of the same family. Defaults to the requester.
	PayerID *uint64
	// PayerName is a free-text payer label for personal bills, allowing a
	// non-member payer without a user record.
	PayerName string
}

// Create records a new transaction owned by userID. Family bills require an
// active membership; an explicit payer must belong to the same family.
func (s *Service) Create(ctx context.Context, input CreateInput, userID uint64) (*entity.Transaction, error) {
	transaction, err := entity.NewTransaction(
		userID,
		input.Type,
		input.Amount,
		input.Category,
		input.Description,
		input.Date,
		s.timeProvider,
	)
	if err != nil {
		return nil, err
	}

	if input.IsFamilyBill {
		membership, err := s.membershipRepo.GetActiveByUser(ctx, userID)
		if err != nil {
			if errors.Is(err, errs.ErrMembershipNotFound) {
				return nil, errs.ErrNotInFamily
			}
			return nil, err
		}

		payerID := userID
		if input.PayerID != nil {
			if _, err := s.membershipRepo.GetActiveByUserAndFamily(ctx, *input.PayerID, membership.FamilyID); err != nil {
				if errors.Is(err, errs.ErrMembershipNotFound) {
					return nil, errs.ErrInvalidPayer
				}
				return nil, err
			}
			payerID = *input.PayerID
		}

		transaction.AttributeToFamily(membership.FamilyID, payerID)
	} else if input.PayerName != "" {
		transaction.PayerName = input.PayerName
	}

	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		s.logger.Error("Failed to create transaction", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Transaction created", map[string]any{
		"transaction_id": transaction.ID,
		"user_id":        userID,
		"type":           transaction.Type,
		"amount":         entity.FormatAmount(transaction.Amount),
		"family_bill":    transaction.IsFamilyBill,
	})

	return transaction, nil
}
