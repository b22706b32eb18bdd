package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	errs "github.com/amirhossein-jamali/family-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/family-ledger/internal/domain/port/core"
)

// sessionClaims is the JWT payload for an authenticated session
type sessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTProvider implements core.TokenProvider with HMAC-signed JWTs
type JWTProvider struct {
	secret       []byte
	tokenTTL     time.Duration
	allowExpired bool
	timeProvider coreport.TimeProvider
}

// NewJWTProvider creates a new JWTProvider instance
func NewJWTProvider(secret string, tokenTTL time.Duration, allowExpired bool, timeProvider coreport.TimeProvider) *JWTProvider {
	return &JWTProvider{
		secret:       []byte(secret),
		tokenTTL:     tokenTTL,
		allowExpired: allowExpired,
		timeProvider: timeProvider,
	}
}

// Sign issues a signed token for the given claims
func (p *JWTProvider) Sign(claims coreport.TokenClaims) (string, error) {
	now := p.timeProvider.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Username: claims.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(claims.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.tokenTTL)),
		},
	})

	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning its claims
func (p *JWTProvider) Verify(tokenString string) (*coreport.TokenClaims, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(p.timeProvider.Now),
	}
	if p.allowExpired {
		options = append(options, jwt.WithoutClaimsValidation())
	}

	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		return p.secret, nil
	}, options...)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errs.ErrTokenExpired
		}
		return nil, errs.ErrInvalidToken
	}
	if !token.Valid {
		return nil, errs.ErrInvalidToken
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, errs.ErrInvalidToken
	}

	return &coreport.TokenClaims{
		UserID:   userID,
		Username: claims.Username,
	}, nil
}
