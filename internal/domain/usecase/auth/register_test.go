package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/family-ledger/internal/domain/error"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()

	validRegistration := Registration{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret1",
	}

	t.Run("Successful registration", func(t *testing.T) {
		repo := &fakeUserRepo{}
		service := newTestService(repo)

		user, err := service.Register(ctx, validRegistration)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "hashed:secret1", user.PasswordHash)
		assert.True(t, user.IsActive)
	})

	t.Run("Validation failures", func(t *testing.T) {
		testCases := []struct {
			name  string
			reg   Registration
			field string
		}{
			{"Empty username", Registration{Username: " ", Email: "a@b.co", Password: "secret1"}, "username"},
			{"Bad email", Registration{Username: "alice", Email: "nope", Password: "secret1"}, "email"},
			{"Short password", Registration{Username: "alice", Email: "a@b.co", Password: "12345"}, "password"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				service := newTestService(&fakeUserRepo{})

				_, err := service.Register(ctx, tc.reg)
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValidation)

				var vErr *errs.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Contains(t, vErr.Fields, tc.field)
			})
		}
	})

	t.Run("Duplicate email", func(t *testing.T) {
		repo := &fakeUserRepo{}
		service := newTestService(repo)

		_, err := service.Register(ctx, validRegistration)
		require.NoError(t, err)

		_, err = service.Register(ctx, Registration{
			Username: "alice2",
			Email:    "alice@example.com",
			Password: "secret1",
		})
		assert.ErrorIs(t, err, errs.ErrDuplicateEmail)
	})

	t.Run("Duplicate username", func(t *testing.T) {
		repo := &fakeUserRepo{}
		service := newTestService(repo)

		_, err := service.Register(ctx, validRegistration)
		require.NoError(t, err)

		_, err = service.Register(ctx, Registration{
			Username: "alice",
			Email:    "other@example.com",
			Password: "secret1",
		})
		assert.ErrorIs(t, err, errs.ErrDuplicateUsername)
	})

	t.Run("Email conflict wins over username conflict", func(t *testing.T) {
		repo := &fakeUserRepo{}
		service := newTestService(repo)

		_, err := service.Register(ctx, validRegistration)
		require.NoError(t, err)

		_, err = service.Register(ctx, validRegistration)
		assert.ErrorIs(t, err, errs.ErrDuplicateEmail)
	})
}
