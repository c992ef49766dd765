package service

import (
	"errors"
	"fmt"
	"time"

	"health-insurance-backend/internal/models"
	"health-insurance-backend/pkg/utils"
)

type AuthService struct {
	userStore  UserStore
	tokenStore RefreshTokenStore
}

func NewAuthService(userStore UserStore, tokenStore RefreshTokenStore) *AuthService {
	return &AuthService{
		userStore:  userStore,
		tokenStore: tokenStore,
	}
}

// LoginResponse represents the response structure for login
type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
	Landing      string       `json:"landing"`
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// landingFor returns the role-specific landing route used by the frontend
// after a successful login.
func landingFor(user *models.User) string {
	switch {
	case user.IsSuperuser, user.Role == models.RoleAdmin, user.Role == models.RoleFinanceOfficer:
		return "/hospitals"
	case user.Role == models.RoleHospital:
		return "/hospital/dashboard"
	default:
		return "/dashboard"
	}
}

// Login authenticates a user and returns tokens. Inactive and suspended
// accounts are rejected even with a correct password.
func (s *AuthService) Login(username, password string) (*LoginResponse, error) {
	user, err := s.userStore.FindByUsername(username)
	if err != nil {
		return nil, errors.New("invalid credentials")
	}

	if !utils.ComparePassword(user.PasswordHash, password) {
		return nil, errors.New("invalid credentials")
	}

	if !user.CanLogin() {
		return nil, errors.New("account is inactive or suspended")
	}

	accessToken, err := utils.GenerateAccessToken(user.ID, user.Role, user.IsSuperuser)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	tokenHash := utils.HashRefreshToken(refreshToken)
	refreshTokenModel := &models.RefreshToken{
		UserID:    user.ID,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(utils.GetRefreshTokenExpiry()),
	}

	if err := s.tokenStore.Create(refreshTokenModel); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role,
		},
		Landing: landingFor(user),
	}, nil
}

// RefreshAccessToken generates a new access token from a refresh token
func (s *AuthService) RefreshAccessToken(refreshToken string) (string, error) {
	tokenHash := utils.HashRefreshToken(refreshToken)

	token, err := s.tokenStore.FindByHash(tokenHash)
	if err != nil {
		return "", errors.New("invalid or revoked refresh token")
	}

	if time.Now().After(token.ExpiresAt) {
		return "", errors.New("refresh token expired")
	}

	// Suspension takes effect at the next refresh at the latest.
	if !token.User.CanLogin() {
		return "", errors.New("account is inactive or suspended")
	}

	accessToken, err := utils.GenerateAccessToken(token.User.ID, token.User.Role, token.User.IsSuperuser)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}

	return accessToken, nil
}

// Logout revokes a refresh token
func (s *AuthService) Logout(refreshToken string) error {
	tokenHash := utils.HashRefreshToken(refreshToken)

	if err := s.tokenStore.RevokeByHash(tokenHash); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}

// Register creates a new account. The password is hashed before persistence
// and never stored in plaintext.
func (s *AuthService) Register(username, password, role string) (*LoginResponse, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}
	if role == "" {
		role = models.RolePolicyholder
	}
	if !models.IsValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
	}

	if err := s.userStore.Create(user); err != nil {
		if errors.Is(err, ErrConflict) {
			return nil, fmt.Errorf("%w: username %q is already taken", ErrConflict, username)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	accessToken, err := utils.GenerateAccessToken(user.ID, user.Role, user.IsSuperuser)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	tokenHash := utils.HashRefreshToken(refreshToken)
	refreshTokenModel := &models.RefreshToken{
		UserID:    user.ID,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(utils.GetRefreshTokenExpiry()),
	}

	if err := s.tokenStore.Create(refreshTokenModel); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role,
		},
		Landing: landingFor(user),
	}, nil
}
