package dto

import (
	"time"

	"github.com/amirhossein-jamali/family-ledger/internal/domain/entity"
)

// CreateFamilyRequest is the payload for POST /families
type CreateFamilyRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// JoinFamilyRequest is the payload for POST /families/join
type JoinFamilyRequest struct {
	InvitationCode string `json:"invitationCode" binding:"required"`
}

// FamilyResponse is the public view of a family.
// The invitation code is deliberately absent; it is exposed only to
// admins through its own endpoint
type FamilyResponse struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// InvitationCodeResponse carries a family's invitation code
type InvitationCodeResponse struct {
	InvitationCode string `json:"invitationCode"`
}

// FamilyToResponse maps a family entity to its public view
func FamilyToResponse(family *entity.Family) FamilyResponse {
	return FamilyResponse{
		ID:          family.ID,
		Name:        family.Name,
		Description: family.Description,
		CreatedAt:   family.CreatedAt,
		UpdatedAt:   family.UpdatedAt,
	}
}
