package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/amirhossein-jamali/family-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/family-ledger/internal/domain/port/core"
	familyUseCase "github.com/amirhossein-jamali/family-ledger/internal/domain/usecase/family"
	"github.com/amirhossein-jamali/family-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/family-ledger/internal/infrastructure/adapter/api/middleware"
)

// FamilyHandler handles family-related HTTP requests
type FamilyHandler struct {
	familyService *familyUseCase.Service
	logger        coreport.Logger
}

// NewFamilyHandler creates a new family handler instance
func NewFamilyHandler(familyService *familyUseCase.Service, logger coreport.Logger) *FamilyHandler {
	return &FamilyHandler{
		familyService: familyService,
		logger:        logger,
	}
}

// Create handles the POST /families endpoint
func (h *FamilyHandler) Create(c *gin.Context) {
	var req dto.CreateFamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	userID := middleware.CurrentUserID(c)
	family, err := h.familyService.CreateFamily(c.Request.Context(), req.Name, req.Description, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OKWithMessage("Family created", dto.FamilyToResponse(family)))
}

// Join handles the POST /families/join endpoint
func (h *FamilyHandler) Join(c *gin.Context) {
	var req dto.JoinFamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	userID := middleware.CurrentUserID(c)
	family, err := h.familyService.JoinFamily(c.Request.Context(), req.InvitationCode, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKWithMessage("Joined family", dto.FamilyToResponse(family)))
}

// Current handles the GET /families/current endpoint. A user without a
// family gets a success envelope with null data rather than an error.
func (h *FamilyHandler) Current(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	family, err := h.familyService.GetUserFamily(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	if family == nil {
		c.JSON(http.StatusOK, dto.Response{Success: true})
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.FamilyToResponse(family)))
}

// Members handles the GET /families/members endpoint
func (h *FamilyHandler) Members(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	family, err := h.familyService.GetUserFamily(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if family == nil {
		respondError(c, errs.ErrNotInFamily)
		return
	}

	members, err := h.familyService.GetFamilyMembers(c.Request.Context(), family.ID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(members))
}

// InvitationCode handles the GET /families/invitation-code endpoint
func (h *FamilyHandler) InvitationCode(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	family, err := h.familyService.GetUserFamily(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if family == nil {
		respondError(c, errs.ErrNotInFamily)
		return
	}

	code, err := h.familyService.GetInvitationCode(c.Request.Context(), family.ID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.InvitationCodeResponse{InvitationCode: code}))
}

// Leave handles the POST /families/leave endpoint
func (h *FamilyHandler) Leave(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if err := h.familyService.LeaveFamily(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Response{Success: true, Message: "Left family"})
}

// Delete handles the DELETE /families endpoint
func (h *FamilyHandler) Delete(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if err := h.familyService.DeleteFamily(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Response{Success: true, Message: "Family deleted"})
}
