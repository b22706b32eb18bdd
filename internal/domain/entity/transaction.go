package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/family-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/family-ledger/internal/domain/port/core"
)

// TransactionType classifies a transaction as money in or money out
type TransactionType string

// Transaction types
const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Transaction represents a single financial record. Personal transactions
// belong to their owner only; family bills carry the family and a payer who
// must be an active member of that family.
type Transaction struct {
	ID           uint64          // Unique identifier for the transaction
	Type         TransactionType // income or expense
	Amount       decimal.Decimal // Non-negative, at most 2 decimal places
	Category     string          // Category label
	Description  string          // Optional free text
	Date         time.Time       // When the transaction occurred
	IsFamilyBill bool            // True when shared within a family
	UserID       uint64          // Owner (creator)
	FamilyID     *uint64         // Set only for family bills
	PayerID      *uint64         // Who actually paid; defaults to the owner
	PayerName    string          // Free-text payer label for personal bills
	CreatedAt    time.Time       // When the record was created
	UpdatedAt    time.Time       // When the record was last updated
}

// NewTransaction creates a personal transaction owned and paid by userID.
// Family attribution is applied by the usecase after membership checks.
func NewTransaction(
	userID uint64,
	txType string,
	amount decimal.Decimal,
	category string,
	description string,
	date time.Time,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	fields := map[string]string{}
	if !IsValidTransactionType(txType) {
		fields["type"] = "must be one of: income, expense"
	}
	if strings.TrimSpace(category) == "" {
		fields["category"] = "must not be empty"
	}
	if date.IsZero() {
		fields["date"] = "must be provided"
	}
	if len(fields) > 0 {
		return nil, errs.NewValidationError(fields)
	}
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	payerID := userID
	return &Transaction{
		Type:        TransactionType(txType),
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
		UserID:      userID,
		PayerID:     &payerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// AttributeToFamily marks the transaction as a family bill paid by payerID
func (t *Transaction) AttributeToFamily(familyID, payerID uint64) {
	t.IsFamilyBill = true
	t.FamilyID = &familyID
	t.PayerID = &payerID
	t.PayerName = ""
}

// IsIncome reports whether the transaction adds to the balance
func (t *Transaction) IsIncome() bool {
	return t.Type == TypeIncome
}

// IsExpense reports whether the transaction subtracts from the balance
func (t *Transaction) IsExpense() bool {
	return t.Type == TypeExpense
}

// IsValidTransactionType validates the type enum
func IsValidTransactionType(txType string) bool {
	return txType == string(TypeIncome) || txType == string(TypeExpense)
}
