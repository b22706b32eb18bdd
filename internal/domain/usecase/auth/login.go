package auth

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/family-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/family-ledger/internal/domain/error"
)

// Authenticate validates an identifier/password pair and returns the matching
// user. The identifier is looked up by email when it is email-shaped, by
// username otherwise. Every failure collapses into ErrInvalidCredentials so a
// caller cannot probe which part was wrong.
func (s *Service) Authenticate(ctx context.Context, identifier, password string) (*entity.User, error) {
	var (
		user *entity.User
		err  error
	)

	if entity.IsEmailShaped(identifier) {
		user, err = s.userRepo.GetByEmail(ctx, identifier)
	} else {
		user, err = s.userRepo.GetByUsername(ctx, identifier)
	}

	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		s.logger.Warn("Login attempt for inactive user", map[string]any{
			"user_id": user.ID,
		})
		return nil, errs.ErrInvalidCredentials
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		return nil, errs.ErrInvalidCredentials
	}

	s.logger.Info("User authenticated", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	})

	return user, nil
}

// Login authenticates and issues a session in one step
func (s *Service) Login(ctx context.Context, identifier, password string) (*SessionResult, error) {
	user, err := s.Authenticate(ctx, identifier, password)
	if err != nil {
		return nil, err
	}
	return s.IssueSession(user)
}
