package family

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/family-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/family-ledger/internal/domain/error"
)

// invitationCodeRetries bounds regeneration attempts when the unique index
// on invitation_code reports a collision.
const invitationCodeRetries = 5

// invitationCodeSavepoint guards each insert attempt; a unique violation
// aborts the whole transaction on postgres, so the retry must first restore
// it to this savepoint.
const invitationCodeSavepoint = "family_insert"

// CreateFamily creates a family and installs the requester as its first
// admin. The membership check, family insert and admin membership insert run
// inside one unit of work so two concurrent calls from the same user cannot
// both succeed.
func (s *Service) CreateFamily(ctx context.Context, name, description string, userID uint64) (*entity.Family, error) {
	family, err := entity.NewFamily(name, description, s.timeProvider)
	if err != nil {
		return nil, err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	familyRepo := s.uow.GetFamilyRepository(txCtx)
	membershipRepo := s.uow.GetMembershipRepository(txCtx)

	if _, err := membershipRepo.GetActiveByUser(txCtx, userID); err == nil {
		_ = s.uow.Rollback(txCtx)
		return nil, errs.ErrAlreadyInFamily
	} else if !errors.Is(err, errs.ErrMembershipNotFound) {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}

	// The code is random; a collision only surfaces as a unique-index
	// violation on insert, so regenerate and retry a bounded number of times.
	// Each attempt runs inside a savepoint: the failed insert leaves the
	// transaction aborted until rolled back to it.
	created := false
	for attempt := 0; attempt < invitationCodeRetries; attempt++ {
		if err = s.uow.SavePoint(txCtx, invitationCodeSavepoint); err != nil {
			_ = s.uow.Rollback(txCtx)
			return nil, err
		}
		err = familyRepo.Create(txCtx, family)
		if err == nil {
			created = true
			break
		}
		if !errors.Is(err, errs.ErrConstraintViolation) {
			_ = s.uow.Rollback(txCtx)
			return nil, err
		}
		if rbErr := s.uow.RollbackTo(txCtx, invitationCodeSavepoint); rbErr != nil {
			_ = s.uow.Rollback(txCtx)
			return nil, rbErr
		}
		s.logger.Warn("Invitation code collision, regenerating", map[string]any{
			"attempt": attempt + 1,
		})
		if regenErr := family.RegenerateInvitationCode(); regenErr != nil {
			_ = s.uow.Rollback(txCtx)
			return nil, regenErr
		}
	}
	if !created {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}

	membership := entity.NewMembership(userID, family.ID, entity.RoleAdmin, s.timeProvider)
	if err := membershipRepo.Create(txCtx, membership); err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("Family created", map[string]any{
		"family_id": family.ID,
		"admin_id":  userID,
	})

	return family, nil
}
