package handler

import (
	"net/http"
	"strconv"

	"health-insurance-backend/internal/service"
	"health-insurance-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type HospitalHandler struct {
	hospitalService *service.HospitalService
}

func NewHospitalHandler(hospitalService *service.HospitalService) *HospitalHandler {
	return &HospitalHandler{
		hospitalService: hospitalService,
	}
}

// ListHospitals retrieves hospitals visible to the caller. Administrators
// and finance officers see all; other roles see only verified hospitals.
func (h *HospitalHandler) ListHospitals(c *gin.Context) {
	hospitals, err := h.hospitalService.List(callerIdentity(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"hospitals": hospitals,
		"count":     len(hospitals),
	})
}

// GetHospital retrieves a specific hospital by ID
func (h *HospitalHandler) GetHospital(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	hospital, err := h.hospitalService.Get(callerIdentity(c), uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, hospital)
}

// GetProfile retrieves the hospital profile bound to the caller's account
func (h *HospitalHandler) GetProfile(c *gin.Context) {
	hospital, err := h.hospitalService.Profile(callerIdentity(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, hospital)
}

type CreateHospitalRequest struct {
	Name           string `json:"name" binding:"required"`
	Language       string `json:"language"`
	OwnerFirstName string `json:"owner_first_name"`
	OwnerLastName  string `json:"owner_last_name"`
	Email          string `json:"email" binding:"required,email"`
	Currency       string `json:"currency"`
	Mobile         string `json:"mobile"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	City           string `json:"city"`
	Country        string `json:"country"`
	Image          string `json:"image"`
	Username       string `json:"username" binding:"required,min=3,max=150"`
	Password       string `json:"password" binding:"required,min=6"`
}

// CreateHospital provisions a hospital profile and its login account
func (h *HospitalHandler) CreateHospital(c *gin.Context) {
	var req CreateHospitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	hospital, err := h.hospitalService.Create(callerIdentity(c), service.CreateHospitalRequest{
		Name:           req.Name,
		Language:       req.Language,
		OwnerFirstName: req.OwnerFirstName,
		OwnerLastName:  req.OwnerLastName,
		Email:          req.Email,
		Currency:       req.Currency,
		Mobile:         req.Mobile,
		Phone:          req.Phone,
		Address:        req.Address,
		City:           req.City,
		Country:        req.Country,
		Image:          req.Image,
		Username:       req.Username,
		Password:       req.Password,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":  "Hospital created successfully",
		"hospital": hospital,
	})
}

type UpdateHospitalRequest struct {
	Name           *string `json:"name"`
	Language       *string `json:"language"`
	OwnerFirstName *string `json:"owner_first_name"`
	OwnerLastName  *string `json:"owner_last_name"`
	Email          *string `json:"email" binding:"omitempty,email"`
	Currency       *string `json:"currency"`
	Mobile         *string `json:"mobile"`
	Phone          *string `json:"phone"`
	Address        *string `json:"address"`
	City           *string `json:"city"`
	Country        *string `json:"country"`
	Image          *string `json:"image"`
}

// UpdateHospital edits an existing hospital. The login account is never
// re-provisioned on edit.
func (h *HospitalHandler) UpdateHospital(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	var req UpdateHospitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	hospital, err := h.hospitalService.Update(callerIdentity(c), uint(id), service.UpdateHospitalRequest{
		Name:           req.Name,
		Language:       req.Language,
		OwnerFirstName: req.OwnerFirstName,
		OwnerLastName:  req.OwnerLastName,
		Email:          req.Email,
		Currency:       req.Currency,
		Mobile:         req.Mobile,
		Phone:          req.Phone,
		Address:        req.Address,
		City:           req.City,
		Country:        req.Country,
		Image:          req.Image,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":  "Hospital updated successfully",
		"hospital": hospital,
	})
}

// VerifyHospital marks a hospital as verified (admin only)
func (h *HospitalHandler) VerifyHospital(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	hospital, err := h.hospitalService.Verify(callerIdentity(c), uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":  "Hospital verified",
		"hospital": hospital,
	})
}
