package service

import (
	"errors"
	"fmt"
	"time"

	"health-insurance-backend/internal/models"
	"health-insurance-backend/pkg/utils"
)

// AccountService handles account administration: listing, editing,
// suspension. All operations require the admin role.
type AccountService struct {
	userStore UserStore
}

func NewAccountService(userStore UserStore) *AccountService {
	return &AccountService{userStore: userStore}
}

// CreateAccountRequest carries the fields for an admin-created account.
type CreateAccountRequest struct {
	Username string
	Password string
	Role     string
	Email    string
	Phone    string
	Address  string
	Gender   string
	Daamiin  string
	DOB      *time.Time
}

// Create provisions a new account on behalf of an administrator.
func (s *AccountService) Create(caller Identity, req CreateAccountRequest) (*models.User, error) {
	if !caller.IsAdmin() {
		return nil, fmt.Errorf("%w: only administrators can create accounts", ErrAccessDenied)
	}
	if req.Username == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}
	role := req.Role
	if role == "" {
		role = models.RolePolicyholder
	}
	if !models.IsValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: passwordHash,
		Role:         role,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		Gender:       req.Gender,
		Daamiin:      req.Daamiin,
		DOB:          req.DOB,
		IsActive:     true,
	}

	if err := s.userStore.Create(user); err != nil {
		if errors.Is(err, ErrConflict) {
			return nil, fmt.Errorf("%w: username %q is already taken", ErrConflict, req.Username)
		}
		return nil, err
	}
	return user, nil
}

// List retrieves all accounts (admin only)
func (s *AccountService) List(caller Identity) ([]models.User, error) {
	if !caller.IsAdmin() {
		return nil, fmt.Errorf("%w: only administrators can list accounts", ErrAccessDenied)
	}
	return s.userStore.List()
}

// Get retrieves a single account (admin only)
func (s *AccountService) Get(caller Identity, id uint) (*models.User, error) {
	if !caller.IsAdmin() {
		return nil, fmt.Errorf("%w: only administrators can view accounts", ErrAccessDenied)
	}
	return s.userStore.FindByID(id)
}

// UpdateAccountRequest carries the editable profile fields.
type UpdateAccountRequest struct {
	Role    *string
	Email   *string
	Phone   *string
	Address *string
	Gender  *string
	Daamiin *string
	DOB     *time.Time
}

// Update edits an account's profile fields and role (admin only). The
// superuser invariant still applies: a superuser stays admin regardless of
// the requested role.
func (s *AccountService) Update(caller Identity, id uint, req UpdateAccountRequest) (*models.User, error) {
	if !caller.IsAdmin() {
		return nil, fmt.Errorf("%w: only administrators can edit accounts", ErrAccessDenied)
	}

	user, err := s.userStore.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Role != nil {
		if !models.IsValidRole(*req.Role) {
			return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, *req.Role)
		}
		user.Role = *req.Role
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.Gender != nil {
		user.Gender = *req.Gender
	}
	if req.Daamiin != nil {
		user.Daamiin = *req.Daamiin
	}
	if req.DOB != nil {
		user.DOB = req.DOB
	}

	if err := s.userStore.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Suspend blocks an account from logging in (admin only)
func (s *AccountService) Suspend(caller Identity, id uint) (*models.User, error) {
	return s.setSuspended(caller, id, true)
}

// Activate lifts an account's suspension (admin only)
func (s *AccountService) Activate(caller Identity, id uint) (*models.User, error) {
	return s.setSuspended(caller, id, false)
}

func (s *AccountService) setSuspended(caller Identity, id uint, suspended bool) (*models.User, error) {
	if !caller.IsAdmin() {
		return nil, fmt.Errorf("%w: only administrators can suspend or activate accounts", ErrAccessDenied)
	}

	user, err := s.userStore.FindByID(id)
	if err != nil {
		return nil, err
	}

	user.IsSuspended = suspended
	if err := s.userStore.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
