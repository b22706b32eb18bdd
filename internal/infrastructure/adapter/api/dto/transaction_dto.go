package dto

import (
	"time"

	"github.com/amirhossein-jamali/family-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/family-ledger/internal/domain/error"
)

// Accepted layouts for transaction dates
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// CreateTransactionRequest is the payload for POST /transactions
type CreateTransactionRequest struct {
	Type         string  `json:"type" binding:"required"`
	Amount       string  `json:"amount" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	Description  string  `json:"description"`
	Date         string  `json:"date" binding:"required"`
	IsFamilyBill bool    `json:"isFamilyBill"`
	PayerID      *uint64 `json:"payerId"`
	PayerName    string  `json:"payerName"`
}

// UpdateTransactionRequest is the payload for PATCH /transactions/:id.
// Absent fields are left untouched
type UpdateTransactionRequest struct {
	Type        *string `json:"type"`
	Amount      *string `json:"amount"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	PayerName   *string `json:"payerName"`
}

// TransactionResponse is the public view of a transaction. Amounts are
// rendered as fixed two-decimal strings to avoid float drift on the wire
type TransactionResponse struct {
	ID           uint64    `json:"id"`
	Type         string    `json:"type"`
	Amount       string    `json:"amount"`
	Category     string    `json:"category"`
	Description  string    `json:"description,omitempty"`
	Date         time.Time `json:"date"`
	IsFamilyBill bool      `json:"isFamilyBill"`
	UserID       uint64    `json:"userId"`
	FamilyID     *uint64   `json:"familyId,omitempty"`
	PayerID      *uint64   `json:"payerId,omitempty"`
	PayerName    string    `json:"payerName,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ParseDate parses a transaction date in RFC3339 or YYYY-MM-DD form
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errs.NewValidationError(map[string]string{
		"date": "must be an RFC3339 timestamp or a YYYY-MM-DD date",
	})
}

// TransactionToResponse maps a transaction entity to its public view
func TransactionToResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           t.ID,
		Type:         string(t.Type),
		Amount:       entity.FormatAmount(t.Amount),
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

// TransactionsToResponse maps a slice of transaction entities
func TransactionsToResponse(transactions []entity.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, TransactionToResponse(&transactions[i]))
	}
	return responses
}
