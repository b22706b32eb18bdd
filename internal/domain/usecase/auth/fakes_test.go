package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/amirhossein-jamali/family-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/family-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/family-ledger/internal/domain/port/core"
)

// Hand-rolled fakes for the auth service's ports.

type stubTimeProvider struct {
	now time.Time
}

func (s *stubTimeProvider) Now() time.Time                  { return s.now }
func (s *stubTimeProvider) Since(t time.Time) time.Duration { return s.now.Sub(t) }

type nopLogger struct {
	level coreport.LogLevel
}

func (l *nopLogger) SetLevel(level coreport.LogLevel)        { l.level = level }
func (l *nopLogger) GetLevel() coreport.LogLevel             { return l.level }
func (l *nopLogger) Debug(string, map[string]any)            {}
func (l *nopLogger) Info(string, map[string]any)             {}
func (l *nopLogger) Warn(string, map[string]any)             {}
func (l *nopLogger) Error(string, map[string]any)            {}
func (l *nopLogger) Flush() error                            { return nil }

type fakeUserRepo struct {
	users  []*entity.User
	nextID uint64
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint64) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, errs.ErrUserNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, errs.ErrUserNotFound
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, errs.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.nextID++
	user.ID = r.nextID
	copied := *user
	r.users = append(r.users, &copied)
	return nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Compare(hash, password string) bool {
	return hash == "hashed:"+password
}

type fakeTokens struct{}

func (fakeTokens) Sign(claims coreport.TokenClaims) (string, error) {
	return fmt.Sprintf("token-%d-%s", claims.UserID, claims.Username), nil
}

func (fakeTokens) Verify(token string) (*coreport.TokenClaims, error) {
	if !strings.HasPrefix(token, "token-") {
		return nil, errs.ErrInvalidToken
	}
	return &coreport.TokenClaims{}, nil
}

func newTestService(repo *fakeUserRepo) *Service {
	return NewService(
		repo,
		fakeHasher{},
		fakeTokens{},
		&stubTimeProvider{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
		&nopLogger{},
	)
}
