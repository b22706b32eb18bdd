package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/family-ledger/internal/domain/error"
)

func TestIsEmailShaped(t *testing.T) {
	t.Run("Email-shaped identifiers", func(t *testing.T) {
		testCases := []string{
			"user@example.com",
			"first.last@example.com",
			"user-name@sub.example.org",
			"user_name@example.io",
		}
		for _, tc := range testCases {
			t.Run(tc, func(t *testing.T) {
				assert.True(t, IsEmailShaped(tc))
			})
		}
	})

	t.Run("Username-shaped identifiers", func(t *testing.T) {
		testCases := []string{
			"username",
			"user name@example.com",
			"@example.com",
			"user@",
			"user@nodot",
			"",
		}
		for _, tc := range testCases {
			t.Run(tc, func(t *testing.T) {
				assert.False(t, IsEmailShaped(tc))
			})
		}
	})
}

func TestNewUser(t *testing.T) {
	tp := &stubTimeProvider{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}

	t.Run("Successful creation", func(t *testing.T) {
		user, err := NewUser("alice", "alice@example.com", "hash", tp)
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.True(t, user.IsActive)
		assert.Equal(t, tp.now, user.CreatedAt)
		assert.Equal(t, tp.now, user.UpdatedAt)
	})

	t.Run("Validation failures", func(t *testing.T) {
		testCases := []struct {
			name     string
			username string
			email    string
			hash     string
			field    string
		}{
			{"Empty username", "  ", "alice@example.com", "hash", "username"},
			{"Bad email", "alice", "not-an-email", "hash", "email"},
			{"Empty hash", "alice", "alice@example.com", "", "password"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := NewUser(tc.username, tc.email, tc.hash, tp)
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValidation)

				var vErr *errs.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Contains(t, vErr.Fields, tc.field)
			})
		}
	})
}

func TestPublicProfile(t *testing.T) {
	user := &User{
		ID:           7,
		Username:     "bob",
		Email:        "bob@example.com",
		PasswordHash: "secret-hash",
	}

	profile := user.PublicProfile()
	assert.Equal(t, uint64(7), profile.ID)
	assert.Equal(t, "bob", profile.Username)
	assert.Equal(t, "bob@example.com", profile.Email)
}
