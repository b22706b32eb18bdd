package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating writes across multiple
// repositories so that check-then-write sequences (membership invariants,
// family creation) stay atomic with respect to concurrent requests
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// SavePoint marks a savepoint inside the current transaction
	SavePoint(ctx context.Context, name string) error

	// RollbackTo discards work done after the named savepoint while keeping
	// the transaction usable
	RollbackTo(ctx context.Context, name string) error

	// GetFamilyRepository returns a family repository bound to the current transaction
	GetFamilyRepository(ctx context.Context) FamilyRepository

	// GetMembershipRepository returns a membership repository bound to the current transaction
	GetMembershipRepository(ctx context.Context) MembershipRepository
}
