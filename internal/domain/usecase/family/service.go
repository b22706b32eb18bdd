package family

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/family-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/family-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/family-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/family-ledger/internal/domain/port/persistence"
)

// Service handles family lifecycle and membership business rules
type Service struct {
	familyRepo     persistence.FamilyRepository
	membershipRepo persistence.MembershipRepository
	uow            persistence.UnitOfWork
	timeProvider   coreport.TimeProvider
	logger         coreport.Logger
}

// NewService creates a new family service instance
func NewService(
	familyRepo persistence.FamilyRepository,
	membershipRepo persistence.MembershipRepository,
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		familyRepo:     familyRepo,
		membershipRepo: membershipRepo,
		uow:            uow,
		timeProvider:   timeProvider,
		logger:         logger,
	}
}

// GetUserFamily returns the family of the user's active membership, or nil
// when the user has not joined one
func (s *Service) GetUserFamily(ctx context.Context, userID uint64) (*entity.Family, error) {
	membership, err := s.membershipRepo.GetActiveByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrMembershipNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return s.familyRepo.GetByID(ctx, membership.FamilyID)
}

// GetFamilyMembers lists every active member of a family with their role.
// The requester must hold an active membership in that exact family.
func (s *Service) GetFamilyMembers(ctx context.Context, familyID, userID uint64) ([]entity.FamilyMemberProfile, error) {
	if _, err := s.membershipRepo.GetActiveByUserAndFamily(ctx, userID, familyID); err != nil {
		if errors.Is(err, errs.ErrMembershipNotFound) {
			return nil, errs.ErrNotAMember
		}
		return nil, err
	}
	return s.membershipRepo.ListActiveByFamily(ctx, familyID)
}

// GetInvitationCode returns the family's invitation code. Only an active
// admin of that family may read it; the code is never regenerated here.
func (s *Service) GetInvitationCode(ctx context.Context, familyID, userID uint64) (string, error) {
	membership, err := s.membershipRepo.GetActiveByUserAndFamily(ctx, userID, familyID)
	if err != nil {
		if errors.Is(err, errs.ErrMembershipNotFound) {
			return "", errs.ErrNotAdmin
		}
		return "", err
	}
	if !membership.IsAdmin() {
		return "", errs.ErrNotAdmin
	}

	family, err := s.familyRepo.GetByID(ctx, familyID)
	if err != nil {
		return "", err
	}
	return family.InvitationCode, nil
}
