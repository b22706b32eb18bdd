package family

import (
	"context"
	"errors"

	errs "github.com/amirhossein-jamali/family-ledger/internal/domain/error"
)

// DeleteFamily destroys the requester's family. Admin-only and irreversible:
// membership rows are removed first to satisfy the foreign key, then the
// family row itself, all in one unit of work.
func (s *Service) DeleteFamily(ctx context.Context, userID uint64) error {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}
	familyRepo := s.uow.GetFamilyRepository(txCtx)
	membershipRepo := s.uow.GetMembershipRepository(txCtx)

	membership, err := membershipRepo.GetActiveByUser(txCtx, userID)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		if errors.Is(err, errs.ErrMembershipNotFound) {
			return errs.ErrNotInFamily
		}
		return err
	}

	if !membership.IsAdmin() {
		_ = s.uow.Rollback(txCtx)
		return errs.ErrNotAdmin
	}

	familyID := membership.FamilyID

	if err := membershipRepo.DeleteByFamily(txCtx, familyID); err != nil {
		_ = s.uow.Rollback(txCtx)
		return err
	}
	if err := familyRepo.Delete(txCtx, familyID); err != nil {
		_ = s.uow.Rollback(txCtx)
		return err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return err
	}

	s.logger.Info("Family deleted", map[string]any{
		"family_id": familyID,
		"admin_id":  userID,
	})

	return nil
}
