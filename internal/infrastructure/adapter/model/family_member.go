package model

import (
	"time"
)

// FamilyMember represents the database model for memberships. A partial
// unique index on (user_id) WHERE is_active, created by the migration
// manager, enforces the single-active-membership invariant at the storage
// layer.
type FamilyMember struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID    uint64    `gorm:"not null;index;uniqueIndex:idx_family_members_user_family"`
	FamilyID  uint64    `gorm:"not null;index;uniqueIndex:idx_family_members_user_family"`
	Role      string    `gorm:"not null;size:20;default:member"`
	IsActive  bool      `gorm:"not null;default:true"`
	JoinedAt  time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	// Define relationships
	User   User   `gorm:"foreignKey:UserID;references:ID"`
	Family Family `gorm:"foreignKey:FamilyID;references:ID"`
}

// TableName specifies the table name for FamilyMember
func (FamilyMember) TableName() string {
	return "family_members"
}
