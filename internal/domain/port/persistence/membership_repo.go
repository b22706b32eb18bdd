package persistence

import (
	"context"

	"github.com/amirhossein-jamali/family-ledger/internal/domain/entity"
)

// MembershipRepository defines essential methods to interact with membership
// rows. The "at most one active membership per user" invariant is additionally
// guarded by a partial unique index at the storage layer.
type MembershipRepository interface {
	// GetActiveByUser retrieves the user's single active membership
	//
	// Possible errors:
	// - ErrMembershipNotFound: If the user has no active membership
	// - ErrDatabaseConnection: If database connection fails
	GetActiveByUser(ctx context.Context, userID uint64) (*entity.Membership, error)

	// GetByUserAndFamily retrieves the membership row for a (user, family)
	// pair regardless of its active flag
	//
	// Possible errors:
	// - ErrMembershipNotFound: If no row exists for the pair
	// - ErrDatabaseConnection: If database connection fails
	GetByUserAndFamily(ctx context.Context, userID, familyID uint64) (*entity.Membership, error)

	// GetActiveByUserAndFamily retrieves the active membership for a
	// (user, family) pair; scoping by both IDs prevents cross-family leakage
	//
	// Possible errors:
	// - ErrMembershipNotFound: If the user is not an active member of the family
	// - ErrDatabaseConnection: If database connection fails
	GetActiveByUserAndFamily(ctx context.Context, userID, familyID uint64) (*entity.Membership, error)

	// ListActiveByFamily returns every active member profile of a family
	ListActiveByFamily(ctx context.Context, familyID uint64) ([]entity.FamilyMemberProfile, error)

	// CountActiveAdmins counts active admin memberships of a family
	CountActiveAdmins(ctx context.Context, familyID uint64) (int64, error)

	// Create persists a new membership row and fills in its generated ID
	//
	// Possible errors:
	// - ErrAlreadyInFamily: If the partial unique index rejects a second
	//   active membership for the user
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, membership *entity.Membership) error

	// Update persists changes to an existing membership row
	//
	// Possible errors:
	// - ErrMembershipNotFound: If the row no longer exists
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, membership *entity.Membership) error

	// DeleteByFamily removes every membership row of a family
	DeleteByFamily(ctx context.Context, familyID uint64) error
}
