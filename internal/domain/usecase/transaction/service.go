package transaction

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/family-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/family-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/family-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/family-ledger/internal/domain/port/persistence"
)

// Service handles transaction business logic. Membership data is consulted
// read-only to attribute family bills and scope visibility.
type Service struct {
	transactionRepo persistence.TransactionRepository
	membershipRepo  persistence.MembershipRepository
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
}

// NewService creates a new transaction service instance
func NewService(
	transactionRepo persistence.TransactionRepository,
	membershipRepo persistence.MembershipRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		transactionRepo: transactionRepo,
		membershipRepo:  membershipRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// activeFamilyID resolves the user's current family, or nil when the user
// has no active membership
func (s *Service) activeFamilyID(ctx context.Context, userID uint64) (*uint64, error) {
	membership, err := s.membershipRepo.GetActiveByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrMembershipNotFound) {
			return nil, nil
		}
		return nil, err
	}
	familyID := membership.FamilyID
	return &familyID, nil
}

// FindOne retrieves a transaction by ID. Only the owner can fetch a
// transaction directly; anyone else sees ErrTransactionNotFound.
func (s *Service) FindOne(ctx context.Context, id, userID uint64) (*entity.Transaction, error) {
	return s.transactionRepo.GetByIDAndOwner(ctx, id, userID)
}

// Remove deletes a transaction owned by the requester
func (s *Service) Remove(ctx context.Context, id, userID uint64) error {
	transaction, err := s.FindOne(ctx, id, userID)
	if err != nil {
		return err
	}
	if err := s.transactionRepo.Delete(ctx, transaction.ID); err != nil {
		return err
	}

	s.logger.Info("Transaction removed", map[string]any{
		"transaction_id": id,
		"user_id":        userID,
	})
	return nil
}
