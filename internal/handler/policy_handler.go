package handler

import (
	"net/http"
	"strconv"

	"health-insurance-backend/internal/service"
	"health-insurance-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PolicyHandler struct {
	policyService *service.PolicyService
}

func NewPolicyHandler(policyService *service.PolicyService) *PolicyHandler {
	return &PolicyHandler{
		policyService: policyService,
	}
}

// ListPolicies retrieves policies; ?active=true restricts to active rows
func (h *PolicyHandler) ListPolicies(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	policies, err := h.policyService.List(callerIdentity(c), activeOnly)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"policies": policies,
		"count":    len(policies),
	})
}

// GetPolicy retrieves a single policy
func (h *PolicyHandler) GetPolicy(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid policy ID")
		return
	}

	policy, err := h.policyService.Get(callerIdentity(c), uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, policy)
}

type CreatePolicyRequest struct {
	ClientID        uint    `json:"client_id" binding:"required"`
	PolicyNumber    string  `json:"policy_number"`
	PolicyType      string  `json:"policy_type" binding:"required,oneof=individual family employer ngo health"`
	CoverageDetails string  `json:"coverage_details"`
	Premium         float64 `json:"premium" binding:"required,gt=0"`
	StartDate       string  `json:"start_date" binding:"required"`
	ExpiryDate      string  `json:"expiry_date" binding:"required"`
	IsActive        *bool   `json:"is_active"`
	MaxClaimLimit   float64 `json:"max_claim_limit"`
	WaitingDays     uint    `json:"waiting_period_days"`
	Deductible      float64 `json:"deductible"`
}

// CreatePolicy issues a new policy. An omitted policy number is generated
// server-side and retried on collision.
func (h *PolicyHandler) CreatePolicy(c *gin.Context) {
	var req CreatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil || startDate == nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid start date, use YYYY-MM-DD")
		return
	}
	expiryDate, err := parseDate(req.ExpiryDate)
	if err != nil || expiryDate == nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid expiry date, use YYYY-MM-DD")
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	policy, err := h.policyService.Create(callerIdentity(c), service.CreatePolicyRequest{
		ClientID:        req.ClientID,
		PolicyNumber:    req.PolicyNumber,
		PolicyType:      req.PolicyType,
		CoverageDetails: req.CoverageDetails,
		Premium:         req.Premium,
		StartDate:       *startDate,
		ExpiryDate:      *expiryDate,
		IsActive:        active,
		MaxClaimLimit:   req.MaxClaimLimit,
		WaitingDays:     req.WaitingDays,
		Deductible:      req.Deductible,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": "Policy created successfully",
		"policy":  policy,
	})
}

type UpdatePolicyRequest struct {
	PolicyType      *string  `json:"policy_type" binding:"omitempty,oneof=individual family employer ngo health"`
	CoverageDetails *string  `json:"coverage_details"`
	Premium         *float64 `json:"premium" binding:"omitempty,gt=0"`
	StartDate       string   `json:"start_date"`
	ExpiryDate      string   `json:"expiry_date"`
	IsActive        *bool    `json:"is_active"`
	MaxClaimLimit   *float64 `json:"max_claim_limit"`
	WaitingDays     *uint    `json:"waiting_period_days"`
	Deductible      *float64 `json:"deductible"`
}

// UpdatePolicy edits an existing policy
func (h *PolicyHandler) UpdatePolicy(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid policy ID")
		return
	}

	var req UpdatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid start date, use YYYY-MM-DD")
		return
	}
	expiryDate, err := parseDate(req.ExpiryDate)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid expiry date, use YYYY-MM-DD")
		return
	}

	policy, err := h.policyService.Update(callerIdentity(c), uint(id), service.UpdatePolicyRequest{
		PolicyType:      req.PolicyType,
		CoverageDetails: req.CoverageDetails,
		Premium:         req.Premium,
		StartDate:       startDate,
		ExpiryDate:      expiryDate,
		IsActive:        req.IsActive,
		MaxClaimLimit:   req.MaxClaimLimit,
		WaitingDays:     req.WaitingDays,
		Deductible:      req.Deductible,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Policy updated successfully",
		"policy":  policy,
	})
}

// DeletePolicy removes a policy (admin only)
func (h *PolicyHandler) DeletePolicy(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid policy ID")
		return
	}

	if err := h.policyService.Delete(callerIdentity(c), uint(id)); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.MessageResponse(c, "Policy deleted successfully")
}
