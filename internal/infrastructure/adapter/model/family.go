package model

import (
	"time"
)

// Family represents the database model for families
type Family struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	Name           string    `gorm:"not null;size:100"`
	Description    string    `gorm:"size:500"`
	InvitationCode string    `gorm:"uniqueIndex;not null;size:12"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the table name for Family
func (Family) TableName() string {
	return "families"
}
