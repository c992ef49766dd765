package handler

import (
	"net/http"
	"strconv"

	"health-insurance-backend/internal/service"
	"health-insurance-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	clientService *service.ClientService
	policyService *service.PolicyService
}

func NewClientHandler(clientService *service.ClientService, policyService *service.PolicyService) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
		policyService: policyService,
	}
}

// ListClients retrieves clients scoped by the caller's role
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.clientService.List(callerIdentity(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"clients": clients,
		"count":   len(clients),
	})
}

// GetClient retrieves a single client
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid client ID")
		return
	}

	client, err := h.clientService.Get(callerIdentity(c), uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, client)
}

type CreateClientRequest struct {
	FirstName       string `json:"first_name" binding:"required"`
	LastName        string `json:"last_name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	Gender          string `json:"gender" binding:"omitempty,oneof=male female other"`
	DOB             string `json:"dob"`
	Photo           string `json:"photo"`
	AgentID         *uint  `json:"agent_id"`
	FingerprintData string `json:"fingerprint_data"`
	WithPolicy      bool   `json:"with_health_policy"`
}

// CreateClient registers a new client, optionally enrolling a fingerprint
// and attaching the default health policy
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	dob, err := parseDate(req.DOB)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid date of birth, use YYYY-MM-DD")
		return
	}

	caller := callerIdentity(c)
	client, err := h.clientService.Register(caller, service.RegisterClientRequest{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		Gender:         req.Gender,
		DOB:            dob,
		Photo:          req.Photo,
		AgentID:        req.AgentID,
		FingerprintB64: req.FingerprintData,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response := gin.H{
		"message": "Client registered successfully",
		"client":  client,
	}

	if req.WithPolicy {
		policy, err := h.policyService.CreateDefaultHealthPolicy(caller, client.ID)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		response["policy"] = policy
	}

	utils.CreatedResponse(c, response)
}

type UpdateClientRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	Gender    *string `json:"gender" binding:"omitempty,oneof=male female other"`
	DOB       string  `json:"dob"`
	Photo     *string `json:"photo"`
	AgentID   *uint   `json:"agent_id"`
}

// UpdateClient edits a client's profile
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid client ID")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	dob, err := parseDate(req.DOB)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid date of birth, use YYYY-MM-DD")
		return
	}

	client, err := h.clientService.Update(callerIdentity(c), uint(id), service.UpdateClientRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Gender:    req.Gender,
		DOB:       dob,
		Photo:     req.Photo,
		AgentID:   req.AgentID,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Client updated successfully",
		"client":  client,
	})
}

// DeleteClient removes a client (admin only)
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid client ID")
		return
	}

	if err := h.clientService.Delete(callerIdentity(c), uint(id)); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.MessageResponse(c, "Client deleted successfully")
}

type FingerprintRequest struct {
	FingerprintData string `json:"fingerprint_data" binding:"required"`
}

// AttachFingerprint enrolls a fingerprint template on an existing client
func (h *ClientHandler) AttachFingerprint(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid client ID")
		return
	}

	var req FingerprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	client, err := h.clientService.AttachFingerprint(callerIdentity(c), uint(id), req.FingerprintData)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"client_id": client.ID,
		"status":    client.Status,
		"verified":  client.FingerprintVerified,
	})
}

// VerifyFingerprint matches a fingerprint payload against stored templates
func (h *ClientHandler) VerifyFingerprint(c *gin.Context) {
	var req FingerprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	match, err := h.clientService.VerifyFingerprint(req.FingerprintData)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"matched":   true,
		"client_id": match.ClientID,
		"status":    match.Status,
	})
}
