package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/family-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/family-ledger/internal/infrastructure/adapter/api/dto"
)

// respondError writes a domain error as a standardized error response. A
// validation error additionally carries every violated field.
func respondError(c *gin.Context, err error) {
	response := dto.ErrorResponse{
		Success: false,
		Code:    domainerr.ErrorCode(err),
		Message: err.Error(),
	}

	var validationErr *domainerr.ValidationError
	if errors.As(err, &validationErr) {
		response.Fields = validationErr.Fields
	}

	c.JSON(domainerr.HTTPStatus(err), response)
}

// respondBindError writes a 400 for a malformed request body
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Success: false,
		Code:    domainerr.ErrorCode(domainerr.ErrValidation),
		Message: "Invalid request format: " + err.Error(),
	})
}
