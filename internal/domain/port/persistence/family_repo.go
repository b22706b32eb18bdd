package persistence

import (
	"context"

	"github.com/amirhossein-jamali/family-ledger/internal/domain/entity"
)

// FamilyRepository defines essential methods to interact with family data
type FamilyRepository interface {
	// GetByID retrieves a family by ID
	//
	// Possible errors:
	// - ErrFamilyNotFound: If no family with the ID exists
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Family, error)

	// GetByInvitationCode retrieves a family by its invitation code
	//
	// Possible errors:
	// - ErrInvitationNotFound: If no family has the code
	// - ErrDatabaseConnection: If database connection fails
	GetByInvitationCode(ctx context.Context, code string) (*entity.Family, error)

	// Create persists a new family and fills in its generated ID
	//
	// Possible errors:
	// - ErrConstraintViolation: On an invitation code collision; the caller
	//   regenerates the code and retries
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, family *entity.Family) error

	// Delete removes the family row. Membership rows must be removed first to
	// satisfy referential constraints.
	//
	// Possible errors:
	// - ErrFamilyNotFound: If no family with the ID exists
	// - ErrDatabaseConnection: If database connection fails
	Delete(ctx context.Context, id uint64) error
}
