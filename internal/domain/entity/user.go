package entity

import (
	"regexp"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/family-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/family-ledger/internal/domain/port/core"
)

// emailPattern is the email-shape heuristic used to decide whether a login
// identifier is looked up by email or by username: local part, "@",
// dot-separated domain labels, TLD of 2-4 characters.
var emailPattern = regexp.MustCompile(`^[\w\-.]+@([\w\-]+\.)+[\w\-]{2,4}$`)

// User represents a registered account
type User struct {
	ID           uint64    // Unique identifier for the user
	Username     string    // Unique display name
	Email        string    // Unique email address
	PasswordHash string    // bcrypt hash; never serialized to API responses
	IsActive     bool      // Inactive users cannot authenticate
	CreatedAt    time.Time // When the user was created
	UpdatedAt    time.Time // When the user was last updated
}

// PublicProfile is the password-free view of a user returned by the API
type PublicProfile struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// NewUser creates a new user with basic validation. The password must already
// be hashed by the caller.
func NewUser(username, email, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	fields := map[string]string{}
	if strings.TrimSpace(username) == "" {
		fields["username"] = "must not be empty"
	}
	if !IsEmailShaped(email) {
		fields["email"] = "must be a valid email address"
	}
	if passwordHash == "" {
		fields["password"] = "must not be empty"
	}
	if len(fields) > 0 {
		return nil, errs.NewValidationError(fields)
	}

	now := timeProvider.Now()
	return &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// PublicProfile strips the credential material from the user
func (u *User) PublicProfile() PublicProfile {
	return PublicProfile{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

// IsEmailShaped reports whether an identifier looks like an email address
func IsEmailShaped(identifier string) bool {
	return emailPattern.MatchString(identifier)
}
