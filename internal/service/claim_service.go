package service

import (
	"errors"
	"fmt"
	"time"

	"health-insurance-backend/internal/models"
)

// ClaimService implements the claim lifecycle: hospitals submit claims
// against active policies, claim officers and administrators decide them,
// and administrators reimburse approved claims.
type ClaimService struct {
	claimStore    ClaimStore
	clientStore   ClientStore
	policyStore   PolicyStore
	hospitalStore HospitalStore
}

func NewClaimService(
	claimStore ClaimStore,
	clientStore ClientStore,
	policyStore PolicyStore,
	hospitalStore HospitalStore,
) *ClaimService {
	return &ClaimService{
		claimStore:    claimStore,
		clientStore:   clientStore,
		policyStore:   policyStore,
		hospitalStore: hospitalStore,
	}
}

// GenerateClaimNumber builds the CLM-prefixed number at second granularity.
// Uniqueness is enforced by the claims table, not by this function: two
// submissions in the same second collide and the second insert fails with a
// conflict.
func GenerateClaimNumber(now time.Time) string {
	return "CLM-" + now.Format("20060102150405")
}

// SubmitClaimRequest carries the fields for a new claim.
type SubmitClaimRequest struct {
	ClientID uint
	PolicyID uint
	Amount   float64
	Notes    string
	Document string
}

// Submit creates a claim in pending status. Only a hospital account may
// submit, and only for its own bound hospital profile; the referenced policy
// must be explicitly active at submission time.
func (s *ClaimService) Submit(caller Identity, req SubmitClaimRequest) (*models.Claim, error) {
	if caller.Role != models.RoleHospital {
		return nil, fmt.Errorf("%w: only hospital accounts can submit claims", ErrAccessDenied)
	}

	hospital, err := s.hospitalStore.FindByUserID(caller.UserID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: no hospital profile is bound to your account", ErrNotFound)
		}
		return nil, err
	}

	if req.ClientID == 0 || req.PolicyID == 0 || req.Amount <= 0 {
		return nil, fmt.Errorf("%w: client, policy and a positive amount are required", ErrValidation)
	}

	if _, err := s.clientStore.FindByID(req.ClientID); err != nil {
		return nil, err
	}

	policy, err := s.policyStore.FindByID(req.PolicyID)
	if err != nil {
		return nil, err
	}
	if !policy.IsActive {
		return nil, fmt.Errorf("%w: claims can only be submitted against an active policy", ErrDomainRule)
	}

	callerID := caller.UserID
	claim := &models.Claim{
		ClaimNumber: GenerateClaimNumber(time.Now()),
		ClientID:    req.ClientID,
		PolicyID:    req.PolicyID,
		HospitalID:  hospital.ID,
		Amount:      req.Amount,
		Status:      models.ClaimStatusPending,
		Notes:       req.Notes,
		Document:    req.Document,
		CreatedByID: &callerID,
	}

	if err := s.claimStore.Create(claim); err != nil {
		if errors.Is(err, ErrConflict) {
			return nil, fmt.Errorf("%w: claim number %q is already in use, resubmit to get a new one", ErrConflict, claim.ClaimNumber)
		}
		return nil, err
	}
	return claim, nil
}

// Approve moves a claim to approved. Approving an already-approved claim is
// an informational no-op.
func (s *ClaimService) Approve(caller Identity, claimID uint) (*models.Claim, bool, error) {
	return s.decide(caller, claimID, models.ClaimStatusApproved)
}

// Reject moves a claim to rejected. Rejecting an already-rejected claim is a
// no-op. An approved claim may still be rejected; a reimbursed one may not.
func (s *ClaimService) Reject(caller Identity, claimID uint) (*models.Claim, bool, error) {
	return s.decide(caller, claimID, models.ClaimStatusRejected)
}

// decide applies an approve/reject decision. The returned bool reports a
// no-op (claim already in the requested status).
func (s *ClaimService) decide(caller Identity, claimID uint, status string) (*models.Claim, bool, error) {
	if !caller.HasRole(models.RoleAdmin, models.RoleClaimOfficer) {
		return nil, false, fmt.Errorf("%w: only administrators and claim officers can decide claims", ErrAccessDenied)
	}

	claim, err := s.claimStore.FindByID(claimID)
	if err != nil {
		return nil, false, err
	}

	if claim.Status == status {
		return claim, true, nil
	}
	if claim.Status == models.ClaimStatusReimbursed {
		return nil, false, fmt.Errorf("%w: a reimbursed claim is final", ErrDomainRule)
	}

	claim.Status = status
	if err := s.claimStore.Update(claim); err != nil {
		return nil, false, err
	}
	return claim, false, nil
}

// Reimburse marks an approved claim as reimbursed. Only administrators may
// reimburse, and only from the approved status.
func (s *ClaimService) Reimburse(caller Identity, claimID uint) (*models.Claim, error) {
	if !caller.HasRole(models.RoleAdmin) {
		return nil, fmt.Errorf("%w: only administrators can reimburse claims", ErrAccessDenied)
	}

	claim, err := s.claimStore.FindByID(claimID)
	if err != nil {
		return nil, err
	}

	if claim.Status != models.ClaimStatusApproved {
		return nil, fmt.Errorf("%w: only approved claims can be reimbursed", ErrDomainRule)
	}

	claim.Status = models.ClaimStatusReimbursed
	if err := s.claimStore.Update(claim); err != nil {
		return nil, err
	}
	return claim, nil
}

// UpdateClaimRequest carries the fields claim officers may edit directly.
type UpdateClaimRequest struct {
	Amount *float64
	Notes  *string
	Status *string
}

// Update edits a claim's amount, notes or status directly. Reserved for
// administrators and claim officers.
func (s *ClaimService) Update(caller Identity, claimID uint, req UpdateClaimRequest) (*models.Claim, error) {
	if !caller.HasRole(models.RoleAdmin, models.RoleClaimOfficer) {
		return nil, fmt.Errorf("%w: only administrators and claim officers can edit claims", ErrAccessDenied)
	}

	claim, err := s.claimStore.FindByID(claimID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if *req.Amount <= 0 {
			return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
		}
		claim.Amount = *req.Amount
	}
	if req.Notes != nil {
		claim.Notes = *req.Notes
	}
	if req.Status != nil {
		switch *req.Status {
		case models.ClaimStatusPending, models.ClaimStatusApproved,
			models.ClaimStatusRejected, models.ClaimStatusReimbursed:
			claim.Status = *req.Status
		default:
			return nil, fmt.Errorf("%w: unknown claim status %q", ErrValidation, *req.Status)
		}
	}

	if err := s.claimStore.Update(claim); err != nil {
		return nil, err
	}
	return claim, nil
}

// List retrieves claims scoped by role: administrators and claim officers
// see all, agents see their clients' claims, hospitals see their own. Any
// other role gets an empty set.
func (s *ClaimService) List(caller Identity) ([]models.Claim, error) {
	switch {
	case caller.HasRole(models.RoleAdmin, models.RoleClaimOfficer):
		return s.claimStore.List()
	case caller.Role == models.RoleAgent:
		return s.claimStore.ListByAgent(caller.UserID)
	case caller.Role == models.RoleHospital:
		hospital, err := s.hospitalStore.FindByUserID(caller.UserID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return []models.Claim{}, nil
			}
			return nil, err
		}
		return s.claimStore.ListByHospital(hospital.ID)
	default:
		return []models.Claim{}, nil
	}
}

// Get retrieves a single claim with the same scoping as List. A caller
// outside the claim's scope gets an authorization error, not a not-found.
func (s *ClaimService) Get(caller Identity, claimID uint) (*models.Claim, error) {
	claim, err := s.claimStore.FindByID(claimID)
	if err != nil {
		return nil, err
	}

	switch {
	case caller.HasRole(models.RoleAdmin, models.RoleClaimOfficer):
		return claim, nil
	case caller.Role == models.RoleAgent:
		client, err := s.clientStore.FindByID(claim.ClientID)
		if err != nil {
			return nil, err
		}
		if client.AgentID == nil || *client.AgentID != caller.UserID {
			return nil, fmt.Errorf("%w: this claim does not belong to one of your clients", ErrAccessDenied)
		}
		return claim, nil
	case caller.Role == models.RoleHospital:
		hospital, err := s.hospitalStore.FindByUserID(caller.UserID)
		if err != nil {
			return nil, fmt.Errorf("%w: no hospital profile is bound to your account", ErrAccessDenied)
		}
		if claim.HospitalID != hospital.ID {
			return nil, fmt.Errorf("%w: this claim belongs to another hospital", ErrAccessDenied)
		}
		return claim, nil
	default:
		return nil, fmt.Errorf("%w: your role cannot view claims", ErrAccessDenied)
	}
}

// Stats aggregates claim numbers for a hospital dashboard. Hospital callers
// always get their own hospital; privileged roles name the hospital.
func (s *ClaimService) Stats(caller Identity, hospitalID uint) (*models.ClaimStats, error) {
	switch {
	case caller.Role == models.RoleHospital && !caller.IsSuperuser:
		hospital, err := s.hospitalStore.FindByUserID(caller.UserID)
		if err != nil {
			return nil, fmt.Errorf("%w: no hospital profile is bound to your account", ErrNotFound)
		}
		return s.claimStore.StatsByHospital(hospital.ID)
	case caller.HasRole(models.RoleAdmin, models.RoleClaimOfficer, models.RoleFinanceOfficer, models.RoleReportOfficer):
		if hospitalID == 0 {
			return nil, fmt.Errorf("%w: hospital id is required", ErrValidation)
		}
		if _, err := s.hospitalStore.FindByID(hospitalID); err != nil {
			return nil, err
		}
		return s.claimStore.StatsByHospital(hospitalID)
	default:
		return nil, fmt.Errorf("%w: your role cannot view claim statistics", ErrAccessDenied)
	}
}
