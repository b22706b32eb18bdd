package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/family-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/family-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/family-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/family-ledger/internal/infrastructure/adapter/logger"
)

// fakeTokenProvider accepts exactly one token string
type fakeTokenProvider struct {
	valid   string
	claims  coreport.TokenClaims
	failure error
}

func (f *fakeTokenProvider) Sign(coreport.TokenClaims) (string, error) {
	return f.valid, nil
}

func (f *fakeTokenProvider) Verify(token string) (*coreport.TokenClaims, error) {
	if token != f.valid {
		if f.failure != nil {
			return nil, f.failure
		}
		return nil, errs.ErrInvalidToken
	}
	claims := f.claims
	return &claims, nil
}

func setupAuthRouter(tokens coreport.TokenProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", RequireAuth(tokens, logger.NewNoopLogger()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": CurrentUserID(c)})
	})
	return router
}

func doRequest(t *testing.T, router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeError(t *testing.T, recorder *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func TestRequireAuth(t *testing.T) {
	tokens := &fakeTokenProvider{
		valid:  "good-token",
		claims: coreport.TokenClaims{UserID: 42, Username: "alice"},
	}

	t.Run("Missing header", func(t *testing.T) {
		recorder := doRequest(t, setupAuthRouter(tokens), "")

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		body := decodeError(t, recorder)
		assert.False(t, body.Success)
		assert.Equal(t, errs.CodeMissingToken, body.Code)
	})

	t.Run("Malformed header", func(t *testing.T) {
		router := setupAuthRouter(tokens)
		for _, header := range []string{"good-token", "Token good-token", "Bearer ", "Bearer a b"} {
			recorder := doRequest(t, router, header)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.Equal(t, errs.CodeMalformedToken, decodeError(t, recorder).Code)
		}
	})

	t.Run("Invalid token", func(t *testing.T) {
		recorder := doRequest(t, setupAuthRouter(tokens), "Bearer bad-token")

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Equal(t, errs.CodeInvalidToken, decodeError(t, recorder).Code)
	})

	t.Run("Expired token keeps its own code", func(t *testing.T) {
		expired := &fakeTokenProvider{valid: "good-token", failure: errs.ErrTokenExpired}
		recorder := doRequest(t, setupAuthRouter(expired), "Bearer stale-token")

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Equal(t, errs.CodeTokenExpired, decodeError(t, recorder).Code)
	})

	t.Run("Valid token exposes the identity", func(t *testing.T) {
		recorder := doRequest(t, setupAuthRouter(tokens), "Bearer good-token")

		assert.Equal(t, http.StatusOK, recorder.Code)
		var body map[string]uint64
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, uint64(42), body["userID"])
	})
}
