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

// FamilyRepository implements persistence.FamilyRepository using GORM
type FamilyRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewFamilyRepository creates a new FamilyRepository instance
func NewFamilyRepository(db *gorm.DB, logger coreport.Logger) *FamilyRepository {
	return &FamilyRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a family model to an entity
func familyModelToEntity(m *model.Family) *entity.Family {
	return &entity.Family{
		ID:             m.ID,
		Name:           m.Name,
		Description:    m.Description,
		InvitationCode: m.InvitationCode,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *FamilyRepository) handleDatabaseError(operation string, err error, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrConstraintViolation
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves a family by ID
func (r *FamilyRepository) GetByID(ctx context.Context, id uint64) (*entity.Family, error) {
	var familyModel model.Family
	result := r.db.WithContext(ctx).First(&familyModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting family", result.Error, errs.ErrFamilyNotFound)
	}
	return familyModelToEntity(&familyModel), nil
}

// GetByInvitationCode retrieves a family by its invitation code
func (r *FamilyRepository) GetByInvitationCode(ctx context.Context, code string) (*entity.Family, error) {
	var familyModel model.Family
	result := r.db.WithContext(ctx).Where("invitation_code = ?", code).First(&familyModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting family by invitation code", result.Error, errs.ErrInvitationNotFound)
	}
	return familyModelToEntity(&familyModel), nil
}

// Create creates a new family
func (r *FamilyRepository) Create(ctx context.Context, family *entity.Family) error {
	r.logger.Debug("Creating new family", map[string]any{
		"name": family.Name,
	})

	familyModel := model.Family{
		Name:           family.Name,
		Description:    family.Description,
		InvitationCode: family.InvitationCode,
		CreatedAt:      family.CreatedAt,
		UpdatedAt:      family.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&familyModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating family", result.Error, errs.ErrFamilyNotFound)
	}

	family.ID = familyModel.ID

	r.logger.Info("Family created successfully", map[string]any{
		"family_id": family.ID,
		"name":      family.Name,
	})
	return nil
}

// Delete removes a family row
func (r *FamilyRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Family{}, id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting family", result.Error, errs.ErrFamilyNotFound)
	}
	if result.RowsAffected == 0 {
		return errs.ErrFamilyNotFound
	}

	r.logger.Info("Family deleted", map[string]any{
		"family_id": id,
	})
	return nil
}
