package handler

import (
	"net/http"
	"strconv"

	"health-insurance-backend/internal/service"
	"health-insurance-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	accountService *service.AccountService
}

func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// ListAccounts retrieves all user accounts (admin only)
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	users, err := h.accountService.List(callerIdentity(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"accounts": users,
		"count":    len(users),
	})
}

// GetAccount retrieves a single account (admin only)
func (h *AccountHandler) GetAccount(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid account ID")
		return
	}

	user, err := h.accountService.Get(callerIdentity(c), uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, user)
}

type CreateAccountRequest struct {
	Username string `json:"username" binding:"required,min=3,max=150"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=admin agent policyholder claim_officer finance_officer report_officer hospital"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Gender   string `json:"gender" binding:"omitempty,oneof=male female other"`
	Daamiin  string `json:"daamiin"`
	DOB      string `json:"dob"`
}

// CreateAccount provisions a new account (admin only)
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	dob, err := parseDate(req.DOB)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid date of birth, use YYYY-MM-DD")
		return
	}

	user, err := h.accountService.Create(callerIdentity(c), service.CreateAccountRequest{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Gender:   req.Gender,
		Daamiin:  req.Daamiin,
		DOB:      dob,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": "Account created successfully",
		"account": user,
	})
}

type UpdateAccountRequest struct {
	Role    *string `json:"role" binding:"omitempty,oneof=admin agent policyholder claim_officer finance_officer report_officer hospital"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Gender  *string `json:"gender" binding:"omitempty,oneof=male female other"`
	Daamiin *string `json:"daamiin"`
	DOB     string  `json:"dob"`
}

// UpdateAccount edits an account's profile and role (admin only)
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid account ID")
		return
	}

	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	dob, err := parseDate(req.DOB)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid date of birth, use YYYY-MM-DD")
		return
	}

	user, err := h.accountService.Update(callerIdentity(c), uint(id), service.UpdateAccountRequest{
		Role:    req.Role,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Gender:  req.Gender,
		Daamiin: req.Daamiin,
		DOB:     dob,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Account updated successfully",
		"account": user,
	})
}

// SuspendAccount blocks an account from logging in (admin only)
func (h *AccountHandler) SuspendAccount(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid account ID")
		return
	}

	user, err := h.accountService.Suspend(callerIdentity(c), uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Account suspended",
		"account": user,
	})
}

// ActivateAccount lifts an account's suspension (admin only)
func (h *AccountHandler) ActivateAccount(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid account ID")
		return
	}

	user, err := h.accountService.Activate(callerIdentity(c), uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Account activated",
		"account": user,
	})
}
