package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/family-ledger/internal/domain/port/core"
	authUseCase "github.com/amirhossein-jamali/family-ledger/internal/domain/usecase/auth"
	"github.com/amirhossein-jamali/family-ledger/internal/infrastructure/adapter/api/dto"
)

// AuthHandler handles registration and login HTTP requests
type AuthHandler struct {
	authService *authUseCase.Service
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authService *authUseCase.Service, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register handles the POST /auth/register endpoint
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.authService.Register(c.Request.Context(), authUseCase.Registration{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	session, err := h.authService.IssueSession(user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OKWithMessage("Account created", dto.SessionResponse{
		AccessToken: session.AccessToken,
		User:        session.User,
	}))
}

// Login handles the POST /auth/login endpoint
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	session, err := h.authService.Login(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.SessionResponse{
		AccessToken: session.AccessToken,
		User:        session.User,
	}))
}
