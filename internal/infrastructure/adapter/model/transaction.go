package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents the database model for transactions
type Transaction struct {
	ID           uint64          `gorm:"primaryKey;autoIncrement"`
	Type         string          `gorm:"not null;size:20"`
	Amount       decimal.Decimal `gorm:"not null;type:numeric(12,2)"`
	Category     string          `gorm:"not null;size:100"`
	Description  string          `gorm:"type:text"`
	Date         time.Time       `gorm:"not null;index"`
	IsFamilyBill bool            `gorm:"not null;default:false"`
	UserID       uint64          `gorm:"not null;index"`
	FamilyID     *uint64         `gorm:"index"`
	PayerID      *uint64         `gorm:"index"`
	PayerName    string          `gorm:"size:100"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`

	// Define relationships
	User   User    `gorm:"foreignKey:UserID;references:ID"`
	Family *Family `gorm:"foreignKey:FamilyID;references:ID"`
	Payer  *User   `gorm:"foreignKey:PayerID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
