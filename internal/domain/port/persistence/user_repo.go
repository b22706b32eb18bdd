package persistence

import (
	"context"

	"github.com/amirhossein-jamali/family-ledger/internal/domain/entity"
)

// UserRepository defines essential methods to interact with user data
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If no user with the ID exists
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByEmail retrieves a user by email
	//
	// Possible errors:
	// - ErrUserNotFound: If no user with the email exists
	// - ErrDatabaseConnection: If database connection fails
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// GetByUsername retrieves a user by username
	//
	// Possible errors:
	// - ErrUserNotFound: If no user with the username exists
	// - ErrDatabaseConnection: If database connection fails
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user and fills in its generated ID
	//
	// Possible errors:
	// - ErrDuplicateEmail / ErrDuplicateUsername: On unique constraint conflicts
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error
}
