package transaction

import (
	"context"

	"github.com/amirhossein-jamali/family-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/family-ledger/internal/domain/port/persistence"
)

// FindAll lists transactions visible to the user, newest first.
//
// With no filter the result is the union of the user's personal transactions
// and every transaction of the user's family. FilterPersonal keeps only the
// former; FilterFamily only the latter, yielding an empty slice rather than
// an error when the user has no family.
func (s *Service) FindAll(ctx context.Context, userID uint64, filter persistence.BillFilter) ([]entity.Transaction, error) {
	familyID, err := s.activeFamilyID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if filter == persistence.FilterFamily && familyID == nil {
		return []entity.Transaction{}, nil
	}

	return s.transactionRepo.ListVisible(ctx, userID, familyID, filter)
}

// SummaryResult carries fixed-precision income/expense/balance totals
type SummaryResult struct {
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Balance string `json:"balance"`
}

// GetSummary totals every transaction visible to the user. Accumulation is
// exact decimal arithmetic; each figure is rendered with two decimal places.
func (s *Service) GetSummary(ctx context.Context, userID uint64) (*SummaryResult, error) {
	transactions, err := s.FindAll(ctx, userID, persistence.FilterNone)
	if err != nil {
		return nil, err
	}

	var summary entity.Summary
	for i := range transactions {
		summary.Add(&transactions[i])
	}

	return &SummaryResult{
		Income:  entity.FormatAmount(summary.Income),
		Expense: entity.FormatAmount(summary.Expense),
		Balance: entity.FormatAmount(summary.Balance()),
	}, nil
}
