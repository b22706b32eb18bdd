package family

import (
	"context"
	"errors"

	errs "github.com/amirhossein-jamali/family-ledger/internal/domain/error"
)

// LeaveFamily deactivates the requester's active membership. The last active
// admin of a family cannot leave; the family must be deleted (or the role
// transferred) first.
func (s *Service) LeaveFamily(ctx context.Context, userID uint64) error {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}
	membershipRepo := s.uow.GetMembershipRepository(txCtx)

	membership, err := membershipRepo.GetActiveByUser(txCtx, userID)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		if errors.Is(err, errs.ErrMembershipNotFound) {
			return errs.ErrNotInFamily
		}
		return err
	}

	if membership.IsAdmin() {
		admins, err := membershipRepo.CountActiveAdmins(txCtx, membership.FamilyID)
		if err != nil {
			_ = s.uow.Rollback(txCtx)
			return err
		}
		if admins == 1 {
			_ = s.uow.Rollback(txCtx)
			return errs.ErrSoleAdmin
		}
	}

	membership.Deactivate(s.timeProvider)
	if err := membershipRepo.Update(txCtx, membership); err != nil {
		_ = s.uow.Rollback(txCtx)
		return err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return err
	}

	s.logger.Info("User left family", map[string]any{
		"family_id": membership.FamilyID,
		"user_id":   userID,
	})

	return nil
}
