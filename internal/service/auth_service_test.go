package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"health-insurance-backend/internal/models"
	"health-insurance-backend/pkg/utils"
)

type AuthServiceSuite struct {
	suite.Suite

	users  *memUserStore
	tokens *memRefreshTokenStore
	svc    *AuthService
}

func (s *AuthServiceSuite) SetupSuite() {
	utils.InitJWT("test-access-secret", "test-refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func (s *AuthServiceSuite) SetupTest() {
	s.users = newMemUserStore()
	s.tokens = newMemRefreshTokenStore(s.users)
	s.svc = NewAuthService(s.users, s.tokens)
}

func (s *AuthServiceSuite) seedUser(username, password, role string, mutate func(*models.User)) *models.User {
	hash, err := utils.HashPassword(password)
	s.Require().NoError(err)
	user := &models.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	if mutate != nil {
		mutate(user)
	}
	s.Require().NoError(s.users.Create(user))
	return user
}

func (s *AuthServiceSuite) TestLoginSuccess() {
	user := s.seedUser("agent1", "pass123", models.RoleAgent, nil)

	resp, err := s.svc.Login("agent1", "pass123")
	s.Require().NoError(err)
	s.NotEmpty(resp.AccessToken)
	s.NotEmpty(resp.RefreshToken)
	s.Equal(user.ID, resp.User.ID)
	s.Equal(models.RoleAgent, resp.User.Role)

	claims, err := utils.ValidateAccessToken(resp.AccessToken)
	s.Require().NoError(err)
	s.Equal(user.ID, claims.UserID)
	s.Equal(models.RoleAgent, claims.Role)
	s.False(claims.Superuser)
}

func (s *AuthServiceSuite) TestLoginWrongPassword() {
	s.seedUser("agent1", "pass123", models.RoleAgent, nil)

	_, err := s.svc.Login("agent1", "wrong")
	s.Require().EqualError(err, "invalid credentials")
}

func (s *AuthServiceSuite) TestLoginUnknownUser() {
	_, err := s.svc.Login("ghost", "pass123")
	s.Require().EqualError(err, "invalid credentials")
}

func (s *AuthServiceSuite) TestLoginSuspendedAccountRejected() {
	s.seedUser("agent1", "pass123", models.RoleAgent, func(u *models.User) {
		u.IsSuspended = true
	})

	_, err := s.svc.Login("agent1", "pass123")
	s.Require().EqualError(err, "account is inactive or suspended")
}

func (s *AuthServiceSuite) TestLoginInactiveAccountRejected() {
	s.seedUser("agent1", "pass123", models.RoleAgent, func(u *models.User) {
		u.IsActive = false
	})

	_, err := s.svc.Login("agent1", "pass123")
	s.Require().EqualError(err, "account is inactive or suspended")
}

func (s *AuthServiceSuite) TestLoginLandingByRole() {
	cases := []struct {
		username string
		role     string
		landing  string
	}{
		{"admin1", models.RoleAdmin, "/hospitals"},
		{"finance1", models.RoleFinanceOfficer, "/hospitals"},
		{"hospital1", models.RoleHospital, "/hospital/dashboard"},
		{"agent1", models.RoleAgent, "/dashboard"},
		{"officer1", models.RoleClaimOfficer, "/dashboard"},
	}
	for _, tc := range cases {
		s.seedUser(tc.username, "pass123", tc.role, nil)
		resp, err := s.svc.Login(tc.username, "pass123")
		s.Require().NoError(err)
		s.Equal(tc.landing, resp.Landing, "role %s", tc.role)
	}
}

func (s *AuthServiceSuite) TestSuperuserTokenCarriesFlag() {
	s.seedUser("root", "pass123", models.RoleAdmin, func(u *models.User) {
		u.IsSuperuser = true
	})

	resp, err := s.svc.Login("root", "pass123")
	s.Require().NoError(err)

	claims, err := utils.ValidateAccessToken(resp.AccessToken)
	s.Require().NoError(err)
	s.True(claims.Superuser)
}

func (s *AuthServiceSuite) TestRefreshAccessToken() {
	user := s.seedUser("agent1", "pass123", models.RoleAgent, nil)
	resp, err := s.svc.Login("agent1", "pass123")
	s.Require().NoError(err)

	accessToken, err := s.svc.RefreshAccessToken(resp.RefreshToken)
	s.Require().NoError(err)

	claims, err := utils.ValidateAccessToken(accessToken)
	s.Require().NoError(err)
	s.Equal(user.ID, claims.UserID)
}

func (s *AuthServiceSuite) TestRefreshAfterSuspensionRejected() {
	user := s.seedUser("agent1", "pass123", models.RoleAgent, nil)
	resp, err := s.svc.Login("agent1", "pass123")
	s.Require().NoError(err)

	user.IsSuspended = true
	s.Require().NoError(s.users.Update(user))

	_, err = s.svc.RefreshAccessToken(resp.RefreshToken)
	s.Require().EqualError(err, "account is inactive or suspended")
}

func (s *AuthServiceSuite) TestLogoutRevokesRefreshToken() {
	s.seedUser("agent1", "pass123", models.RoleAgent, nil)
	resp, err := s.svc.Login("agent1", "pass123")
	s.Require().NoError(err)

	s.Require().NoError(s.svc.Logout(resp.RefreshToken))

	_, err = s.svc.RefreshAccessToken(resp.RefreshToken)
	s.Require().EqualError(err, "invalid or revoked refresh token")
}

func (s *AuthServiceSuite) TestRegisterDefaultsToPolicyholder() {
	resp, err := s.svc.Register("newuser", "pass123", "")
	s.Require().NoError(err)
	s.Equal(models.RolePolicyholder, resp.User.Role)
	s.Equal("/dashboard", resp.Landing)

	stored, err := s.users.FindByUsername("newuser")
	s.Require().NoError(err)
	s.NotEqual("pass123", stored.PasswordHash)
	s.True(utils.ComparePassword(stored.PasswordHash, "pass123"))
}

func (s *AuthServiceSuite) TestRegisterRejectsUnknownRole() {
	_, err := s.svc.Register("newuser", "pass123", "superhero")
	s.Require().ErrorIs(err, ErrValidation)
}

func (s *AuthServiceSuite) TestRegisterTakenUsername() {
	s.seedUser("taken", "pass123", models.RoleAgent, nil)

	_, err := s.svc.Register("taken", "pass123", models.RoleAgent)
	s.Require().ErrorIs(err, ErrConflict)
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}
