package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"health-insurance-backend/internal/models"

	"github.com/google/uuid"
)

// autoNumberAttempts bounds the retry loop for auto-generated policy numbers.
const autoNumberAttempts = 5

// PolicyService manages the policy ledger.
type PolicyService struct {
	policyStore PolicyStore
	clientStore ClientStore
}

func NewPolicyService(policyStore PolicyStore, clientStore ClientStore) *PolicyService {
	return &PolicyService{
		policyStore: policyStore,
		clientStore: clientStore,
	}
}

// GeneratePolicyNumber returns a fresh POL-prefixed number.
func GeneratePolicyNumber() string {
	return "POL-" + strings.ToUpper(uuid.New().String()[:8])
}

// CreatePolicyRequest carries the fields for a new policy. An empty
// PolicyNumber requests auto-generation.
type CreatePolicyRequest struct {
	ClientID        uint
	PolicyNumber    string
	PolicyType      string
	CoverageDetails string
	Premium         float64
	StartDate       time.Time
	ExpiryDate      time.Time
	IsActive        bool
	MaxClaimLimit   float64
	WaitingDays     uint
	Deductible      float64
}

// Create validates and stores a new policy. Auto-generated numbers retry on
// a storage conflict; caller-supplied numbers surface the conflict.
func (s *PolicyService) Create(caller Identity, req CreatePolicyRequest) (*models.Policy, error) {
	if !caller.HasRole(models.RoleAdmin, models.RoleFinanceOfficer) {
		return nil, fmt.Errorf("%w: only administrators and finance officers can create policies", ErrAccessDenied)
	}
	if req.ClientID == 0 || req.PolicyType == "" || req.StartDate.IsZero() || req.ExpiryDate.IsZero() || req.Premium == 0 {
		return nil, fmt.Errorf("%w: client, policy type, start date, expiry date and premium are required", ErrValidation)
	}
	if !models.IsValidPolicyType(req.PolicyType) {
		return nil, fmt.Errorf("%w: unknown policy type %q", ErrValidation, req.PolicyType)
	}

	if _, err := s.clientStore.FindByID(req.ClientID); err != nil {
		return nil, err
	}

	callerID := caller.UserID
	autoNumber := req.PolicyNumber == ""

	attempts := 1
	if autoNumber {
		attempts = autoNumberAttempts
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		number := req.PolicyNumber
		if autoNumber {
			number = GeneratePolicyNumber()
		}

		policy := &models.Policy{
			ClientID:        req.ClientID,
			CreatedByID:     &callerID,
			PolicyNumber:    number,
			PolicyType:      req.PolicyType,
			CoverageDetails: req.CoverageDetails,
			Premium:         req.Premium,
			StartDate:       req.StartDate,
			ExpiryDate:      req.ExpiryDate,
			IsActive:        req.IsActive,
			MaxClaimLimit:   req.MaxClaimLimit,
			WaitingDays:     req.WaitingDays,
			Deductible:      req.Deductible,
		}

		err := s.policyStore.Create(policy)
		if err == nil {
			return policy, nil
		}
		if !errors.Is(err, ErrConflict) {
			return nil, err
		}
		lastErr = fmt.Errorf("%w: policy number %q is already in use", ErrConflict, number)
	}
	return nil, lastErr
}

// CreateDefaultHealthPolicy attaches the standard one-year health policy to
// a freshly registered client.
func (s *PolicyService) CreateDefaultHealthPolicy(caller Identity, clientID uint) (*models.Policy, error) {
	if !caller.HasRole(models.RoleAdmin, models.RoleAgent, models.RoleFinanceOfficer) {
		return nil, fmt.Errorf("%w: your role cannot create policies", ErrAccessDenied)
	}
	if _, err := s.clientStore.FindByID(clientID); err != nil {
		return nil, err
	}

	callerID := caller.UserID
	now := time.Now()
	policy := &models.Policy{
		ClientID:     clientID,
		CreatedByID:  &callerID,
		PolicyNumber: "H-" + now.Format("20060102150405"),
		PolicyType:   models.PolicyTypeHealth,
		Premium:      500.00,
		StartDate:    now,
		ExpiryDate:   now.AddDate(1, 0, 0),
		IsActive:     true,
	}

	if err := s.policyStore.Create(policy); err != nil {
		if errors.Is(err, ErrConflict) {
			return nil, fmt.Errorf("%w: policy number %q is already in use", ErrConflict, policy.PolicyNumber)
		}
		return nil, err
	}
	return policy, nil
}

// List retrieves policies; activeOnly restricts to explicitly active rows.
func (s *PolicyService) List(caller Identity, activeOnly bool) ([]models.Policy, error) {
	if !caller.HasRole(models.RoleAdmin, models.RoleFinanceOfficer) {
		return nil, fmt.Errorf("%w: only administrators and finance officers can list policies", ErrAccessDenied)
	}
	if activeOnly {
		return s.policyStore.ListActive()
	}
	return s.policyStore.List()
}

// Get retrieves a single policy
func (s *PolicyService) Get(caller Identity, id uint) (*models.Policy, error) {
	if !caller.HasRole(models.RoleAdmin, models.RoleFinanceOfficer) {
		return nil, fmt.Errorf("%w: only administrators and finance officers can view policies", ErrAccessDenied)
	}
	return s.policyStore.FindByID(id)
}

// UpdatePolicyRequest carries the editable policy fields.
type UpdatePolicyRequest struct {
	PolicyType      *string
	CoverageDetails *string
	Premium         *float64
	StartDate       *time.Time
	ExpiryDate      *time.Time
	IsActive        *bool
	MaxClaimLimit   *float64
	WaitingDays     *uint
	Deductible      *float64
}

// Update edits a policy. The policy number is immutable once issued.
func (s *PolicyService) Update(caller Identity, id uint, req UpdatePolicyRequest) (*models.Policy, error) {
	if !caller.HasRole(models.RoleAdmin, models.RoleFinanceOfficer) {
		return nil, fmt.Errorf("%w: only administrators and finance officers can edit policies", ErrAccessDenied)
	}

	policy, err := s.policyStore.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.PolicyType != nil {
		if !models.IsValidPolicyType(*req.PolicyType) {
			return nil, fmt.Errorf("%w: unknown policy type %q", ErrValidation, *req.PolicyType)
		}
		policy.PolicyType = *req.PolicyType
	}
	if req.CoverageDetails != nil {
		policy.CoverageDetails = *req.CoverageDetails
	}
	if req.Premium != nil {
		policy.Premium = *req.Premium
	}
	if req.StartDate != nil {
		policy.StartDate = *req.StartDate
	}
	if req.ExpiryDate != nil {
		policy.ExpiryDate = *req.ExpiryDate
	}
	if req.IsActive != nil {
		policy.IsActive = *req.IsActive
	}
	if req.MaxClaimLimit != nil {
		policy.MaxClaimLimit = *req.MaxClaimLimit
	}
	if req.WaitingDays != nil {
		policy.WaitingDays = *req.WaitingDays
	}
	if req.Deductible != nil {
		policy.Deductible = *req.Deductible
	}

	if err := s.policyStore.Update(policy); err != nil {
		return nil, err
	}
	return policy, nil
}

// Delete removes a policy (admin only)
func (s *PolicyService) Delete(caller Identity, id uint) error {
	if !caller.IsAdmin() {
		return fmt.Errorf("%w: only administrators can delete policies", ErrAccessDenied)
	}
	return s.policyStore.Delete(id)
}
