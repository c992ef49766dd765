package service

import (
	"errors"
	"fmt"

	"health-insurance-backend/internal/models"
	"health-insurance-backend/pkg/utils"
)

// HospitalService manages hospital profiles and their login accounts.
type HospitalService struct {
	hospitalStore HospitalStore
	userStore     UserStore
}

func NewHospitalService(hospitalStore HospitalStore, userStore UserStore) *HospitalService {
	return &HospitalService{
		hospitalStore: hospitalStore,
		userStore:     userStore,
	}
}

// CreateHospitalRequest carries the profile fields plus the credentials for
// the hospital's login account.
type CreateHospitalRequest struct {
	Name           string
	Language       string
	OwnerFirstName string
	OwnerLastName  string
	Email          string
	Currency       string
	Mobile         string
	Phone          string
	Address        string
	City           string
	Country        string
	Image          string
	Username       string
	Password       string
}

// Create provisions a hospital profile together with its login account in
// one transaction. A taken username fails the whole operation and leaves no
// orphaned login behind.
func (s *HospitalService) Create(caller Identity, req CreateHospitalRequest) (*models.Hospital, error) {
	if !caller.HasRole(models.RoleAdmin, models.RoleFinanceOfficer) {
		return nil, fmt.Errorf("%w: only administrators and finance officers can create hospitals", ErrAccessDenied)
	}
	if req.Name == "" || req.Email == "" {
		return nil, fmt.Errorf("%w: hospital name and email are required", ErrValidation)
	}
	if req.Username == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: login username and password are required", ErrValidation)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.User{
		Username:     req.Username,
		PasswordHash: passwordHash,
		Role:         models.RoleHospital,
		Email:        req.Email,
		IsActive:     true,
	}

	callerID := caller.UserID
	hospital := &models.Hospital{
		Name:           req.Name,
		Language:       defaultString(req.Language, "English"),
		OwnerFirstName: req.OwnerFirstName,
		OwnerLastName:  req.OwnerLastName,
		Email:          req.Email,
		Currency:       defaultString(req.Currency, "USD"),
		Mobile:         req.Mobile,
		Phone:          req.Phone,
		Address:        req.Address,
		City:           req.City,
		Country:        req.Country,
		Image:          req.Image,
		CreatedByID:    &callerID,
	}

	if err := s.hospitalStore.CreateWithAccount(hospital, account); err != nil {
		if errors.Is(err, ErrConflict) {
			return nil, fmt.Errorf("%w: username %q is already taken", ErrConflict, req.Username)
		}
		return nil, err
	}
	return hospital, nil
}

// List retrieves hospitals. Administrators, finance officers and superusers
// see all; everyone else sees only verified hospitals.
func (s *HospitalService) List(caller Identity) ([]models.Hospital, error) {
	if caller.HasRole(models.RoleAdmin, models.RoleFinanceOfficer) {
		return s.hospitalStore.List()
	}
	return s.hospitalStore.ListVerified()
}

// Get retrieves a hospital with the List visibility rule applied: an
// unverified hospital does not exist for unprivileged callers.
func (s *HospitalService) Get(caller Identity, id uint) (*models.Hospital, error) {
	hospital, err := s.hospitalStore.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !hospital.Verified && !caller.HasRole(models.RoleAdmin, models.RoleFinanceOfficer) {
		return nil, fmt.Errorf("%w: hospital not found", ErrNotFound)
	}
	return hospital, nil
}

// Profile resolves the hospital bound to the caller's account. A hospital
// account without a profile is an explicit error, not a silent absence.
func (s *HospitalService) Profile(caller Identity) (*models.Hospital, error) {
	if caller.Role != models.RoleHospital {
		return nil, fmt.Errorf("%w: only hospital accounts have a hospital profile", ErrAccessDenied)
	}
	hospital, err := s.hospitalStore.FindByUserID(caller.UserID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: no hospital profile is bound to your account", ErrNotFound)
		}
		return nil, err
	}
	return hospital, nil
}

// UpdateHospitalRequest carries the editable profile fields. Credentials are
// absent: editing never re-provisions the login account.
type UpdateHospitalRequest struct {
	Name           *string
	Language       *string
	OwnerFirstName *string
	OwnerLastName  *string
	Email          *string
	Currency       *string
	Mobile         *string
	Phone          *string
	Address        *string
	City           *string
	Country        *string
	Image          *string
}

// Update edits an existing hospital profile.
func (s *HospitalService) Update(caller Identity, id uint, req UpdateHospitalRequest) (*models.Hospital, error) {
	if !caller.HasRole(models.RoleAdmin, models.RoleFinanceOfficer) {
		return nil, fmt.Errorf("%w: only administrators and finance officers can edit hospitals", ErrAccessDenied)
	}

	hospital, err := s.hospitalStore.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		hospital.Name = *req.Name
	}
	if req.Language != nil {
		hospital.Language = *req.Language
	}
	if req.OwnerFirstName != nil {
		hospital.OwnerFirstName = *req.OwnerFirstName
	}
	if req.OwnerLastName != nil {
		hospital.OwnerLastName = *req.OwnerLastName
	}
	if req.Email != nil {
		hospital.Email = *req.Email
	}
	if req.Currency != nil {
		hospital.Currency = *req.Currency
	}
	if req.Mobile != nil {
		hospital.Mobile = *req.Mobile
	}
	if req.Phone != nil {
		hospital.Phone = *req.Phone
	}
	if req.Address != nil {
		hospital.Address = *req.Address
	}
	if req.City != nil {
		hospital.City = *req.City
	}
	if req.Country != nil {
		hospital.Country = *req.Country
	}
	if req.Image != nil {
		hospital.Image = *req.Image
	}

	if err := s.hospitalStore.Update(hospital); err != nil {
		return nil, err
	}
	return hospital, nil
}

// Verify marks a hospital as verified, making it visible to all roles.
func (s *HospitalService) Verify(caller Identity, id uint) (*models.Hospital, error) {
	if !caller.IsAdmin() {
		return nil, fmt.Errorf("%w: only administrators can verify hospitals", ErrAccessDenied)
	}

	hospital, err := s.hospitalStore.FindByID(id)
	if err != nil {
		return nil, err
	}

	hospital.Verified = true
	if err := s.hospitalStore.Update(hospital); err != nil {
		return nil, err
	}
	return hospital, nil
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
