package entity

import (
	"time"

	coreport "github.com/amirhossein-jamali/family-ledger/internal/domain/port/core"
)

// FamilyRole is the role a member holds within a family
type FamilyRole string

// Family roles
const (
	RoleAdmin  FamilyRole = "admin"
	RoleMember FamilyRole = "member"
)

// Membership links a user to a family. A user holds at most one active
// membership at a time across all families; inactive rows are history from a
// past leave and are reactivated on re-join.
type Membership struct {
	ID        uint64     // Unique identifier for the membership row
	UserID    uint64     // Member user
	FamilyID  uint64     // Family joined
	Role      FamilyRole // admin or member
	IsActive  bool       // False after the member leaves
	JoinedAt  time.Time  // When the membership was first created
	UpdatedAt time.Time  // When the membership was last updated
}

// NewMembership creates an active membership with the given role
func NewMembership(userID, familyID uint64, role FamilyRole, timeProvider coreport.TimeProvider) *Membership {
	now := timeProvider.Now()
	return &Membership{
		UserID:    userID,
		FamilyID:  familyID,
		Role:      role,
		IsActive:  true,
		JoinedAt:  now,
		UpdatedAt: now,
	}
}

// IsAdmin reports whether the member holds the admin role
func (m *Membership) IsAdmin() bool {
	return m.Role == RoleAdmin
}

// Deactivate marks the membership as left
func (m *Membership) Deactivate(timeProvider coreport.TimeProvider) {
	m.IsActive = false
	m.UpdatedAt = timeProvider.Now()
}

// Reactivate restores a previously left membership
func (m *Membership) Reactivate(timeProvider coreport.TimeProvider) {
	m.IsActive = true
	m.UpdatedAt = timeProvider.Now()
}

// FamilyMemberProfile is a member's public profile plus their role within the
// family, as returned by the members listing.
type FamilyMemberProfile struct {
	PublicProfile
	IsAdmin        bool   `json:"isAdmin"`
	FamilyMemberID uint64 `json:"familyMemberId"`
}
