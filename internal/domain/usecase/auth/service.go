package auth

import (
	"github.com/amirhossein-jamali/family-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/family-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/family-ledger/internal/domain/port/persistence"
)

// Service handles credential validation, registration and session issuance
type Service struct {
	userRepo     persistence.UserRepository
	hasher       coreport.PasswordHasher
	tokens       coreport.TokenProvider
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new auth service instance
func NewService(
	userRepo persistence.UserRepository,
	hasher coreport.PasswordHasher,
	tokens coreport.TokenProvider,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		userRepo:     userRepo,
		hasher:       hasher,
		tokens:       tokens,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// SessionResult carries a signed token and the password-free user profile
type SessionResult struct {
	AccessToken string
	User        entity.PublicProfile
}

// IssueSession signs a session token for the given user
func (s *Service) IssueSession(user *entity.User) (*SessionResult, error) {
	token, err := s.tokens.Sign(coreport.TokenClaims{
		UserID:   user.ID,
		Username: user.Username,
	})
	if err != nil {
		s.logger.Error("Failed to sign session token", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return nil, err
	}

	return &SessionResult{
		AccessToken: token,
		User:        user.PublicProfile(),
	}, nil
}
