package core

// TokenClaims carries the identity asserted by a session token.
type TokenClaims struct {
	UserID   uint64
	Username string
}

// TokenProvider signs and verifies session tokens. The wire format and
// signature algorithm are an infrastructure concern; the domain only relies
// on the claims contract.
type TokenProvider interface {
	// Sign issues a token asserting the given claims
	Sign(claims TokenClaims) (string, error)
	// Verify checks a token and returns the claims it asserts
	//
	// Possible errors:
	// - ErrInvalidToken: signature mismatch or structurally corrupt token
	// - ErrTokenExpired: token validity window has passed
	Verify(token string) (*TokenClaims, error)
}
