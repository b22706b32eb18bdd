package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/family-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/family-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/family-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/family-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/family-ledger/internal/infrastructure/adapter/model"
)

// TransactionRepository implements persistence.TransactionRepository using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a transaction model to an entity
func transactionModelToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:           m.ID,
		Type:         entity.TransactionType(m.Type),
		Amount:       m.Amount,
		Category:     m.Category,
		Description:  m.Description,
		Date:         m.Date,
		IsFamilyBill: m.IsFamilyBill,
		UserID:       m.UserID,
		FamilyID:     m.FamilyID,
		PayerID:      m.PayerID,
		PayerName:    m.PayerName,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// entityToModel converts a transaction entity to a model
func transactionEntityToModel(t *entity.Transaction) model.Transaction {
	return model.Transaction{
		ID:           t.ID,
		Type:         string(t.Type),
		Amount:       t.Amount,
		Category:     t.Category,
		Description:  t.Description,
		Date:         t.Date,
		IsFamilyBill: t.IsFamilyBill,
		UserID:       t.UserID,
		FamilyID:     t.FamilyID,
		PayerID:      t.PayerID,
		PayerName:    t.PayerName,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *TransactionRepository) handleDatabaseError(operation string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrTransactionNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})

	if r.errorClassifier.IsConstraintError(err) {
		return errs.ErrConstraintViolation
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByIDAndOwner retrieves a transaction by ID scoped to its owner
func (r *TransactionRepository) GetByIDAndOwner(ctx context.Context, id, ownerID uint64) (*entity.Transaction, error) {
	var txModel model.Transaction
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&txModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting transaction", result.Error)
	}
	return transactionModelToEntity(&txModel), nil
}

// ListVisible returns transactions visible to the user, newest first
func (r *TransactionRepository) ListVisible(ctx context.Context, userID uint64, familyID *uint64, filter persistence.BillFilter) ([]entity.Transaction, error) {
	query := r.db.WithContext(ctx).Model(&model.Transaction{})

	switch filter {
	case persistence.FilterPersonal:
		query = query.Where("user_id = ? AND is_family_bill = ?", userID, false)
	case persistence.FilterFamily:
		if familyID == nil {
			return []entity.Transaction{}, nil
		}
		query = query.Where("family_id = ?", *familyID)
	default:
		if familyID != nil {
			query = query.Where("(user_id = ? AND is_family_bill = ?) OR family_id = ?", userID, false, *familyID)
		} else {
			query = query.Where("user_id = ? AND is_family_bill = ?", userID, false)
		}
	}

	var txModels []model.Transaction
	result := query.Order("date DESC, id DESC").Find(&txModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing transactions", result.Error)
	}

	transactions := make([]entity.Transaction, 0, len(txModels))
	for i := range txModels {
		transactions = append(transactions, *transactionModelToEntity(&txModels[i]))
	}
	return transactions, nil
}

// Create persists a new transaction
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	txModel := transactionEntityToModel(transaction)
	txModel.ID = 0

	result := r.db.WithContext(ctx).Create(&txModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating transaction", result.Error)
	}

	transaction.ID = txModel.ID

	r.logger.Info("Transaction created", map[string]any{
		"transaction_id": transaction.ID,
		"user_id":        transaction.UserID,
		"type":           transaction.Type,
		"is_family_bill": transaction.IsFamilyBill,
	})
	return nil
}

// Update persists changes to an existing transaction
func (r *TransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	result := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Where("id = ?", transaction.ID).
		Updates(map[string]any{
			"type":        string(transaction.Type),
			"amount":      transaction.Amount,
			"category":    transaction.Category,
			"description": transaction.Description,
			"date":        transaction.Date,
			"payer_name":  transaction.PayerName,
			"updated_at":  transaction.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating transaction", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}
	return nil
}

// Delete removes a transaction row
func (r *TransactionRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Transaction{}, id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting transaction", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}

	r.logger.Info("Transaction deleted", map[string]any{
		"transaction_id": id,
	})
	return nil
}
