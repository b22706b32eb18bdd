package entity

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/family-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/family-ledger/internal/domain/port/core"
)

// invitationCodeBytes is the entropy behind an invitation code; 6 random
// bytes hex-encode to a 12-character code.
const invitationCodeBytes = 6

// Family represents a household group that shares bills
type Family struct {
	ID             uint64    // Unique identifier for the family
	Name           string    // Display name
	Description    string    // Optional free-text description
	InvitationCode string    // Unique upper-hex code used to join
	CreatedAt      time.Time // When the family was created
	UpdatedAt      time.Time // When the family was last updated
}

// NewFamily creates a new family with a freshly generated invitation code
func NewFamily(name, description string, timeProvider coreport.TimeProvider) (*Family, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValidationError(map[string]string{"name": "must not be empty"})
	}

	code, err := GenerateInvitationCode()
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Family{
		Name:           name,
		Description:    description,
		InvitationCode: code,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// RegenerateInvitationCode replaces the invitation code. Used when the
// storage layer reports a uniqueness collision on insert.
func (f *Family) RegenerateInvitationCode() error {
	code, err := GenerateInvitationCode()
	if err != nil {
		return err
	}
	f.InvitationCode = code
	return nil
}

// GenerateInvitationCode produces a 12-character upper-case hex code
func GenerateInvitationCode() (string, error) {
	buf := make([]byte, invitationCodeBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(buf)), nil
}
