package family

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/family-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/family-ledger/internal/domain/error"
)

// JoinFamily adds the requester to the family identified by the invitation
// code. A previously left membership of the same family is reactivated
// instead of inserting a second row; an active membership anywhere else
// blocks the join.
func (s *Service) JoinFamily(ctx context.Context, invitationCode string, userID uint64) (*entity.Family, error) {
	family, err := s.familyRepo.GetByInvitationCode(ctx, invitationCode)
	if err != nil {
		return nil, err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	membershipRepo := s.uow.GetMembershipRepository(txCtx)

	existing, err := membershipRepo.GetByUserAndFamily(txCtx, userID, family.ID)
	if err == nil {
		if existing.IsActive {
			_ = s.uow.Rollback(txCtx)
			return nil, errs.ErrAlreadyMember
		}
		existing.Reactivate(s.timeProvider)
		if err := membershipRepo.Update(txCtx, existing); err != nil {
			_ = s.uow.Rollback(txCtx)
			return nil, err
		}
		if err := s.uow.Commit(txCtx); err != nil {
			return nil, err
		}
		s.logger.Info("Membership reactivated", map[string]any{
			"family_id": family.ID,
			"user_id":   userID,
		})
		return family, nil
	}
	if !errors.Is(err, errs.ErrMembershipNotFound) {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}

	if _, err := membershipRepo.GetActiveByUser(txCtx, userID); err == nil {
		_ = s.uow.Rollback(txCtx)
		return nil, errs.ErrAlreadyInFamily
	} else if !errors.Is(err, errs.ErrMembershipNotFound) {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}

	membership := entity.NewMembership(userID, family.ID, entity.RoleMember, s.timeProvider)
	if err := membershipRepo.Create(txCtx, membership); err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("User joined family", map[string]any{
		"family_id": family.ID,
		"user_id":   userID,
	})

	return family, nil
}
