package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/family-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/family-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/family-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/family-ledger/internal/infrastructure/adapter/model"
)

// MembershipRepository implements persistence.MembershipRepository using GORM
type MembershipRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewMembershipRepository creates a new MembershipRepository instance
func NewMembershipRepository(db *gorm.DB, logger coreport.Logger) *MembershipRepository {
	return &MembershipRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a membership model to an entity
func membershipModelToEntity(m *model.FamilyMember) *entity.Membership {
	return &entity.Membership{
		ID:        m.ID,
		UserID:    m.UserID,
		FamilyID:  m.FamilyID,
		Role:      entity.FamilyRole(m.Role),
		IsActive:  m.IsActive,
		JoinedAt:  m.JoinedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *MembershipRepository) handleDatabaseError(operation string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrMembershipNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})

	// The partial unique index on (user_id) WHERE is_active rejects a second
	// active membership; surface it as the business conflict it guards.
	if r.errorClassifier.IsDuplicateKeyOn(err, "one_active") {
		return errs.ErrAlreadyInFamily
	}
	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrConstraintViolation
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetActiveByUser retrieves the user's single active membership
func (r *MembershipRepository) GetActiveByUser(ctx context.Context, userID uint64) (*entity.Membership, error) {
	var memberModel model.FamilyMember
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		First(&memberModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting active membership", result.Error)
	}
	return membershipModelToEntity(&memberModel), nil
}

// GetByUserAndFamily retrieves the membership row for a (user, family) pair
// regardless of its active flag
func (r *MembershipRepository) GetByUserAndFamily(ctx context.Context, userID, familyID uint64) (*entity.Membership, error) {
	var memberModel model.FamilyMember
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND family_id = ?", userID, familyID).
		First(&memberModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting membership by user and family", result.Error)
	}
	return membershipModelToEntity(&memberModel), nil
}

// GetActiveByUserAndFamily retrieves the active membership for a
// (user, family) pair
func (r *MembershipRepository) GetActiveByUserAndFamily(ctx context.Context, userID, familyID uint64) (*entity.Membership, error) {
	var memberModel model.FamilyMember
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND family_id = ? AND is_active = ?", userID, familyID, true).
		First(&memberModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting active membership by user and family", result.Error)
	}
	return membershipModelToEntity(&memberModel), nil
}

// ListActiveByFamily returns every active member profile of a family
func (r *MembershipRepository) ListActiveByFamily(ctx context.Context, familyID uint64) ([]entity.FamilyMemberProfile, error) {
	var memberModels []model.FamilyMember
	result := r.db.WithContext(ctx).
		Preload("User").
		Where("family_id = ? AND is_active = ?", familyID, true).
		Order("joined_at asc").
		Find(&memberModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing family members", result.Error)
	}

	profiles := make([]entity.FamilyMemberProfile, 0, len(memberModels))
	for _, m := range memberModels {
		profiles = append(profiles, entity.FamilyMemberProfile{
			PublicProfile: entity.PublicProfile{
				ID:       m.User.ID,
				Username: m.User.Username,
				Email:    m.User.Email,
			},
			IsAdmin:        m.Role == string(entity.RoleAdmin),
			FamilyMemberID: m.ID,
		})
	}
	return profiles, nil
}

// CountActiveAdmins counts active admin memberships of a family
func (r *MembershipRepository) CountActiveAdmins(ctx context.Context, familyID uint64) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.FamilyMember{}).
		Where("family_id = ? AND role = ? AND is_active = ?", familyID, string(entity.RoleAdmin), true).
		Count(&count)
	if result.Error != nil {
		return 0, r.handleDatabaseError("counting active admins", result.Error)
	}
	return count, nil
}

// Create creates a new membership row
func (r *MembershipRepository) Create(ctx context.Context, membership *entity.Membership) error {
	memberModel := model.FamilyMember{
		UserID:    membership.UserID,
		FamilyID:  membership.FamilyID,
		Role:      string(membership.Role),
		IsActive:  membership.IsActive,
		JoinedAt:  membership.JoinedAt,
		UpdatedAt: membership.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&memberModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating membership", result.Error)
	}

	membership.ID = memberModel.ID

	r.logger.Info("Membership created", map[string]any{
		"membership_id": membership.ID,
		"user_id":       membership.UserID,
		"family_id":     membership.FamilyID,
		"role":          membership.Role,
	})
	return nil
}

// Update persists changes to an existing membership row
func (r *MembershipRepository) Update(ctx context.Context, membership *entity.Membership) error {
	result := r.db.WithContext(ctx).
		Model(&model.FamilyMember{}).
		Where("id = ?", membership.ID).
		Updates(map[string]any{
			"role":       string(membership.Role),
			"is_active":  membership.IsActive,
			"updated_at": membership.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating membership", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrMembershipNotFound
	}
	return nil
}

// DeleteByFamily removes every membership row of a family
func (r *MembershipRepository) DeleteByFamily(ctx context.Context, familyID uint64) error {
	result := r.db.WithContext(ctx).
		Where("family_id = ?", familyID).
		Delete(&model.FamilyMember{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting family memberships", result.Error)
	}

	r.logger.Info("Family memberships removed", map[string]any{
		"family_id": familyID,
		"rows":      result.RowsAffected,
	})
	return nil
}
