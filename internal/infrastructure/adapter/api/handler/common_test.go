package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/family-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/family-ledger/internal/infrastructure/adapter/api/dto"
)

func respond(t *testing.T, err error) (*httptest.ResponseRecorder, dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	respondError(c, err)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder, body
}

func TestRespondError(t *testing.T) {
	t.Run("Validation error lists every violated field", func(t *testing.T) {
		err := errs.NewValidationError(map[string]string{
			"email":    "must be a valid email address",
			"password": "must be at least 6 characters",
		})

		recorder, body := respond(t, err)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.False(t, body.Success)
		assert.Equal(t, errs.CodeValidation, body.Code)
		require.Len(t, body.Fields, 2)
		assert.Equal(t, "must be a valid email address", body.Fields["email"])
		assert.Equal(t, "must be at least 6 characters", body.Fields["password"])
	})

	t.Run("Wrapped validation error still exposes its fields", func(t *testing.T) {
		err := fmt.Errorf("creating transaction: %w", errs.NewValidationError(map[string]string{
			"type": "must be one of: income, expense",
		}))

		_, body := respond(t, err)
		assert.Equal(t, errs.CodeValidation, body.Code)
		assert.Equal(t, "must be one of: income, expense", body.Fields["type"])
	})

	t.Run("Sentinel error has no fields key", func(t *testing.T) {
		recorder, body := respond(t, errs.ErrNotAdmin)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Equal(t, errs.CodeNotAdmin, body.Code)
		assert.Nil(t, body.Fields)
		assert.NotContains(t, recorder.Body.String(), "fields")
	})
}
