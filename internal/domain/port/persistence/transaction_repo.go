package persistence

import (
	"context"

	"github.com/amirhossein-jamali/family-ledger/internal/domain/entity"
)

// BillFilter narrows a transaction listing to one visibility class
type BillFilter int

// Bill filters
const (
	// FilterNone returns the requester's personal transactions plus every
	// transaction of the requester's family
	FilterNone BillFilter = iota
	// FilterPersonal returns only the requester's own non-family transactions
	FilterPersonal
	// FilterFamily returns only the family's transactions
	FilterFamily
)

// TransactionRepository defines essential methods to interact with
// transaction data
type TransactionRepository interface {
	// GetByIDAndOwner retrieves a transaction by ID scoped to its owner.
	// Ownership is part of the lookup key: another user's transaction is
	// indistinguishable from a missing one.
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no transaction matches ID and owner
	// - ErrDatabaseConnection: If database connection fails
	GetByIDAndOwner(ctx context.Context, id, ownerID uint64) (*entity.Transaction, error)

	// ListVisible returns transactions visible to the user ordered by date
	// descending. familyID is nil when the user has no family; with
	// FilterFamily and no family the result is an empty slice.
	ListVisible(ctx context.Context, userID uint64, familyID *uint64, filter BillFilter) ([]entity.Transaction, error)

	// Create persists a new transaction and fills in its generated ID
	Create(ctx context.Context, transaction *entity.Transaction) error

	// Update persists changes to an existing transaction
	//
	// Possible errors:
	// - ErrTransactionNotFound: If the row no longer exists
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction row
	//
	// Possible errors:
	// - ErrTransactionNotFound: If the row no longer exists
	// - ErrDatabaseConnection: If database connection fails
	Delete(ctx context.Context, id uint64) error
}
