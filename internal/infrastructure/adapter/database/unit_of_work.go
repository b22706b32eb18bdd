package database

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/family-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/family-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/family-ledger/internal/infrastructure/adapter/repository"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Context keys
const txKey contextKey = "tx"

// UnitOfWork implements the unit of work pattern for database transactions
type UnitOfWork struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger) persistence.UnitOfWork {
	return &UnitOfWork{
		db:     db,
		logger: logger,
	}
}

// Begin starts a new database transaction
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	u.logger.Debug("Beginning database transaction", nil)

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	u.logger.Debug("Committing database transaction", nil)
	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Rollback rolls back the current transaction
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	u.logger.Debug("Rolling back database transaction", nil)

	err := tx.Rollback().Error

	// A rollback after a successful commit is a no-op, not a failure
	if err != nil && strings.Contains(err.Error(), "already been committed or rolled back") {
		u.logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	}

	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	return nil
}

// SavePoint marks a savepoint inside the current transaction
func (u *UnitOfWork) SavePoint(ctx context.Context, name string) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	if err := tx.SavePoint(name).Error; err != nil {
		u.logger.Error("Failed to create savepoint", map[string]any{
			"savepoint": name,
			"error":     err.Error(),
		})
		return fmt.Errorf("failed to create savepoint %s: %w", name, err)
	}
	return nil
}

// RollbackTo rolls back to a savepoint and keeps the transaction open. On
// postgres a failed statement aborts the whole transaction; rolling back to a
// savepoint taken before that statement makes it usable again.
func (u *UnitOfWork) RollbackTo(ctx context.Context, name string) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	if err := tx.RollbackTo(name).Error; err != nil {
		u.logger.Error("Failed to rollback to savepoint", map[string]any{
			"savepoint": name,
			"error":     err.Error(),
		})
		return fmt.Errorf("failed to rollback to savepoint %s: %w", name, err)
	}
	return nil
}

// GetFamilyRepository returns a family repository in the current transaction
func (u *UnitOfWork) GetFamilyRepository(ctx context.Context) persistence.FamilyRepository {
	return repository.NewFamilyRepository(u.getDbFromContext(ctx), u.logger)
}

// GetMembershipRepository returns a membership repository in the current transaction
func (u *UnitOfWork) GetMembershipRepository(ctx context.Context) persistence.MembershipRepository {
	return repository.NewMembershipRepository(u.getDbFromContext(ctx), u.logger)
}

// getDbFromContext retrieves the database instance from context
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok && tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}
