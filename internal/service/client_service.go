package service

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"time"

	"health-insurance-backend/internal/models"
)

// ClientService manages policyholder records and fingerprint verification.
type ClientService struct {
	clientStore ClientStore
}

func NewClientService(clientStore ClientStore) *ClientService {
	return &ClientService{clientStore: clientStore}
}

// RegisterClientRequest carries the fields for a new client. FingerprintB64
// is the transport encoding of an optional biometric template.
type RegisterClientRequest struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Address        string
	Gender         string
	DOB            *time.Time
	Photo          string
	AgentID        *uint
	FingerprintB64 string
}

// Register creates a client with status pending. When a fingerprint payload
// is supplied and decodes, the template is stored and the client becomes
// verified. A decode failure leaves the client unchanged and is not an
// error to the caller.
func (s *ClientService) Register(caller Identity, req RegisterClientRequest) (*models.Client, error) {
	if !caller.HasRole(models.RoleAdmin, models.RoleAgent) {
		return nil, fmt.Errorf("%w: only administrators and agents can register clients", ErrAccessDenied)
	}
	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		return nil, fmt.Errorf("%w: first name, last name and email are required", ErrValidation)
	}

	callerID := caller.UserID
	client := &models.Client{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		Gender:      req.Gender,
		DOB:         req.DOB,
		Photo:       req.Photo,
		AgentID:     req.AgentID,
		CreatedByID: &callerID,
		Status:      models.ClientStatusPending,
	}

	// Agents always own the clients they register.
	if caller.Role == models.RoleAgent {
		client.AgentID = &callerID
	}

	if req.FingerprintB64 != "" {
		if template, err := base64.StdEncoding.DecodeString(req.FingerprintB64); err == nil {
			client.FingerprintData = template
			client.FingerprintVerified = true
			client.Status = models.ClientStatusVerified
		}
	}

	if err := s.clientStore.Create(client); err != nil {
		return nil, err
	}
	return client, nil
}

// AttachFingerprint stores a biometric template on an existing client. A
// payload that fails to decode leaves the client's prior state intact.
func (s *ClientService) AttachFingerprint(caller Identity, clientID uint, payloadB64 string) (*models.Client, error) {
	if !caller.HasRole(models.RoleAdmin, models.RoleAgent) {
		return nil, fmt.Errorf("%w: only administrators and agents can enroll fingerprints", ErrAccessDenied)
	}

	client, err := s.getScoped(caller, clientID)
	if err != nil {
		return nil, err
	}

	template, err := base64.StdEncoding.DecodeString(payloadB64)
	if err != nil {
		// Degrade to unchanged: no status flip, no stored template.
		return client, nil
	}

	client.FingerprintData = template
	client.FingerprintVerified = true
	client.Status = models.ClientStatusVerified

	if err := s.clientStore.Update(client); err != nil {
		return nil, err
	}
	return client, nil
}

// FingerprintMatch is the result of a verification lookup.
type FingerprintMatch struct {
	ClientID uint   `json:"client_id"`
	Status   string `json:"status"`
}

// VerifyFingerprint decodes the payload and matches it byte-for-byte against
// stored templates. The first exact match wins; there is no fuzzy matching.
func (s *ClientService) VerifyFingerprint(payloadB64 string) (*FingerprintMatch, error) {
	if payloadB64 == "" {
		return nil, fmt.Errorf("%w: fingerprint payload is required", ErrValidation)
	}
	template, err := base64.StdEncoding.DecodeString(payloadB64)
	if err != nil {
		return nil, fmt.Errorf("%w: fingerprint payload is not valid base64", ErrValidation)
	}

	clients, err := s.clientStore.ListWithFingerprints()
	if err != nil {
		return nil, err
	}

	for _, client := range clients {
		if bytes.Equal(client.FingerprintData, template) {
			return &FingerprintMatch{ClientID: client.ID, Status: client.Status}, nil
		}
	}
	return nil, fmt.Errorf("%w: no client matches the supplied fingerprint", ErrNotFound)
}

// List retrieves clients scoped by role: administrators see all, agents see
// only their own clients.
func (s *ClientService) List(caller Identity) ([]models.Client, error) {
	switch {
	case caller.IsAdmin():
		return s.clientStore.List()
	case caller.Role == models.RoleAgent:
		return s.clientStore.ListByAgent(caller.UserID)
	default:
		return nil, fmt.Errorf("%w: your role cannot view clients", ErrAccessDenied)
	}
}

// Get retrieves a single client with the same scoping as List.
func (s *ClientService) Get(caller Identity, id uint) (*models.Client, error) {
	if !caller.HasRole(models.RoleAdmin, models.RoleAgent) {
		return nil, fmt.Errorf("%w: your role cannot view clients", ErrAccessDenied)
	}
	return s.getScoped(caller, id)
}

// UpdateClientRequest carries the editable client fields.
type UpdateClientRequest struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Address   *string
	Gender    *string
	DOB       *time.Time
	Photo     *string
	AgentID   *uint
}

// Update edits a client's profile fields. Agents may only edit their own
// clients and cannot reassign them.
func (s *ClientService) Update(caller Identity, id uint, req UpdateClientRequest) (*models.Client, error) {
	if !caller.HasRole(models.RoleAdmin, models.RoleAgent) {
		return nil, fmt.Errorf("%w: your role cannot edit clients", ErrAccessDenied)
	}

	client, err := s.getScoped(caller, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		client.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		client.LastName = *req.LastName
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.Gender != nil {
		client.Gender = *req.Gender
	}
	if req.DOB != nil {
		client.DOB = req.DOB
	}
	if req.Photo != nil {
		client.Photo = *req.Photo
	}
	if req.AgentID != nil && caller.IsAdmin() {
		client.AgentID = req.AgentID
	}

	if err := s.clientStore.Update(client); err != nil {
		return nil, err
	}
	return client, nil
}

// Delete removes a client record (admin only)
func (s *ClientService) Delete(caller Identity, id uint) error {
	if !caller.IsAdmin() {
		return fmt.Errorf("%w: only administrators can delete clients", ErrAccessDenied)
	}
	return s.clientStore.Delete(id)
}

// getScoped fetches a client and enforces agent ownership. An agent probing
// another agent's client gets an authorization error, not a missing record.
func (s *ClientService) getScoped(caller Identity, id uint) (*models.Client, error) {
	client, err := s.clientStore.FindByID(id)
	if err != nil {
		return nil, err
	}
	if caller.Role == models.RoleAgent && !caller.IsSuperuser {
		if client.AgentID == nil || *client.AgentID != caller.UserID {
			return nil, fmt.Errorf("%w: this client is not assigned to you", ErrAccessDenied)
		}
	}
	return client, nil
}
