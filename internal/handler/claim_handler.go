package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"health-insurance-backend/internal/service"
	"health-insurance-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ClaimHandler struct {
	claimService *service.ClaimService
}

func NewClaimHandler(claimService *service.ClaimService) *ClaimHandler {
	return &ClaimHandler{
		claimService: claimService,
	}
}

// ListClaims retrieves claims scoped by the caller's role
func (h *ClaimHandler) ListClaims(c *gin.Context) {
	claims, err := h.claimService.List(callerIdentity(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"claims": claims,
		"count":  len(claims),
	})
}

// GetClaim retrieves a single claim with role scoping
func (h *ClaimHandler) GetClaim(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid claim ID")
		return
	}

	claim, err := h.claimService.Get(callerIdentity(c), uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, claim)
}

type SubmitClaimRequest struct {
	ClientID uint    `json:"client_id" binding:"required"`
	PolicyID uint    `json:"policy_id" binding:"required"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Notes    string  `json:"notes"`
	Document string  `json:"document"`
}

// SubmitClaim creates a new claim (hospital accounts only)
func (h *ClaimHandler) SubmitClaim(c *gin.Context) {
	var req SubmitClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	claim, err := h.claimService.Submit(callerIdentity(c), service.SubmitClaimRequest{
		ClientID: req.ClientID,
		PolicyID: req.PolicyID,
		Amount:   req.Amount,
		Notes:    req.Notes,
		Document: req.Document,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": fmt.Sprintf("Claim %s submitted successfully", claim.ClaimNumber),
		"claim":   claim,
	})
}

type UpdateClaimRequest struct {
	Amount *float64 `json:"amount" binding:"omitempty,gt=0"`
	Notes  *string  `json:"notes"`
	Status *string  `json:"status" binding:"omitempty,oneof=pending approved rejected reimbursed"`
}

// UpdateClaim edits a claim directly (admin / claim officer)
func (h *ClaimHandler) UpdateClaim(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid claim ID")
		return
	}

	var req UpdateClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	claim, err := h.claimService.Update(callerIdentity(c), uint(id), service.UpdateClaimRequest{
		Amount: req.Amount,
		Notes:  req.Notes,
		Status: req.Status,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": fmt.Sprintf("Claim %s updated", claim.ClaimNumber),
		"claim":   claim,
	})
}

// ApproveClaim moves a claim to approved
func (h *ClaimHandler) ApproveClaim(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid claim ID")
		return
	}

	claim, noop, err := h.claimService.Approve(callerIdentity(c), uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	message := fmt.Sprintf("Claim %s approved", claim.ClaimNumber)
	if noop {
		message = fmt.Sprintf("Claim %s is already approved", claim.ClaimNumber)
	}

	utils.SuccessResponse(c, gin.H{
		"message": message,
		"claim":   claim,
	})
}

// RejectClaim moves a claim to rejected
func (h *ClaimHandler) RejectClaim(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid claim ID")
		return
	}

	claim, noop, err := h.claimService.Reject(callerIdentity(c), uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	message := fmt.Sprintf("Claim %s rejected", claim.ClaimNumber)
	if noop {
		message = fmt.Sprintf("Claim %s is already rejected", claim.ClaimNumber)
	}

	utils.SuccessResponse(c, gin.H{
		"message": message,
		"claim":   claim,
	})
}

// ReimburseClaim marks an approved claim as reimbursed (admin only)
func (h *ClaimHandler) ReimburseClaim(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid claim ID")
		return
	}

	claim, err := h.claimService.Reimburse(callerIdentity(c), uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": fmt.Sprintf("Claim %s reimbursed", claim.ClaimNumber),
		"claim":   claim,
	})
}

// ClaimStats returns dashboard aggregates for a hospital. Hospital callers
// get their own hospital; privileged roles pass ?hospital_id=N.
func (h *ClaimHandler) ClaimStats(c *gin.Context) {
	var hospitalID uint
	if raw := c.Query("hospital_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
			return
		}
		hospitalID = uint(id)
	}

	stats, err := h.claimService.Stats(callerIdentity(c), hospitalID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, stats)
}
