package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/amirhossein-jamali/family-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/family-ledger/internal/domain/error"
)

// Registration carries the input for a new account
type Registration struct {
	Username string
	Email    string
	Password string
}

// MinPasswordLength is the minimum accepted password length
const MinPasswordLength = 6

// Register creates a new user account. Duplicate email is checked before
// duplicate username; the two conflicts are reported as distinct errors.
func (s *Service) Register(ctx context.Context, reg Registration) (*entity.User, error) {
	fields := map[string]string{}
	if strings.TrimSpace(reg.Username) == "" {
		fields["username"] = "must not be empty"
	}
	if !entity.IsEmailShaped(reg.Email) {
		fields["email"] = "must be a valid email address"
	}
	if len(reg.Password) < MinPasswordLength {
		fields["password"] = "must be at least 6 characters"
	}
	if len(fields) > 0 {
		return nil, errs.NewValidationError(fields)
	}

	if _, err := s.userRepo.GetByEmail(ctx, reg.Email); err == nil {
		return nil, errs.ErrDuplicateEmail
	} else if !errors.Is(err, errs.ErrUserNotFound) {
		return nil, err
	}

	if _, err := s.userRepo.GetByUsername(ctx, reg.Username); err == nil {
		return nil, errs.ErrDuplicateUsername
	} else if !errors.Is(err, errs.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(reg.Password)
	if err != nil {
		s.logger.Error("Failed to hash password", map[string]any{
			"error": err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	user, err := entity.NewUser(reg.Username, reg.Email, hash, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create user", map[string]any{
			"username": reg.Username,
			"error":    err.Error(),
		})
		return nil, err
	}

	s.logger.Info("User registered", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	})

	return user, nil
}
