package service

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"health-insurance-backend/internal/models"
)

type AccountServiceSuite struct {
	suite.Suite

	users *memUserStore
	svc   *AccountService

	admin Identity
	agent Identity
}

func (s *AccountServiceSuite) SetupTest() {
	s.users = newMemUserStore()
	s.svc = NewAccountService(s.users)

	s.admin = Identity{UserID: 1, Role: models.RoleAdmin}
	s.agent = Identity{UserID: 2, Role: models.RoleAgent}
}

func (s *AccountServiceSuite) TestCreateAccount() {
	user, err := s.svc.Create(s.admin, CreateAccountRequest{
		Username: "officer1",
		Password: "pass123",
		Role:     models.RoleClaimOfficer,
		Daamiin:  "Ahmed Jama",
	})
	s.Require().NoError(err)
	s.Equal(models.RoleClaimOfficer, user.Role)
	s.Equal("Ahmed Jama", user.Daamiin)
	s.True(user.IsActive)
	s.False(user.IsSuspended)
	s.NotEqual("pass123", user.PasswordHash)
}

func (s *AccountServiceSuite) TestCreateDefaultsToPolicyholder() {
	user, err := s.svc.Create(s.admin, CreateAccountRequest{
		Username: "member1",
		Password: "pass123",
	})
	s.Require().NoError(err)
	s.Equal(models.RolePolicyholder, user.Role)
}

func (s *AccountServiceSuite) TestCreateRejectsUnknownRole() {
	_, err := s.svc.Create(s.admin, CreateAccountRequest{
		Username: "x", Password: "y", Role: "wizard",
	})
	s.Require().ErrorIs(err, ErrValidation)
}

func (s *AccountServiceSuite) TestCreateTakenUsername() {
	_, err := s.svc.Create(s.admin, CreateAccountRequest{Username: "dup", Password: "p"})
	s.Require().NoError(err)

	_, err = s.svc.Create(s.admin, CreateAccountRequest{Username: "dup", Password: "p"})
	s.Require().ErrorIs(err, ErrConflict)
}

func (s *AccountServiceSuite) TestAdminGateOnEverything() {
	user, err := s.svc.Create(s.admin, CreateAccountRequest{Username: "victim", Password: "p"})
	s.Require().NoError(err)

	_, err = s.svc.Create(s.agent, CreateAccountRequest{Username: "x", Password: "y"})
	s.Require().ErrorIs(err, ErrAccessDenied)

	_, err = s.svc.List(s.agent)
	s.Require().ErrorIs(err, ErrAccessDenied)

	_, err = s.svc.Get(s.agent, user.ID)
	s.Require().ErrorIs(err, ErrAccessDenied)

	_, err = s.svc.Suspend(s.agent, user.ID)
	s.Require().ErrorIs(err, ErrAccessDenied)
}

func (s *AccountServiceSuite) TestSuperuserPassesAdminGate() {
	super := Identity{UserID: 9, Role: models.RoleReportOfficer, IsSuperuser: true}

	_, err := s.svc.Create(super, CreateAccountRequest{Username: "via-super", Password: "p"})
	s.Require().NoError(err)
}

func (s *AccountServiceSuite) TestSuspendAndActivate() {
	user, err := s.svc.Create(s.admin, CreateAccountRequest{Username: "agentx", Password: "p", Role: models.RoleAgent})
	s.Require().NoError(err)

	suspended, err := s.svc.Suspend(s.admin, user.ID)
	s.Require().NoError(err)
	s.True(suspended.IsSuspended)
	s.False(suspended.CanLogin())

	activated, err := s.svc.Activate(s.admin, user.ID)
	s.Require().NoError(err)
	s.False(activated.IsSuspended)
	s.True(activated.CanLogin())
}

func (s *AccountServiceSuite) TestUpdateRole() {
	user, err := s.svc.Create(s.admin, CreateAccountRequest{Username: "agentx", Password: "p", Role: models.RoleAgent})
	s.Require().NoError(err)

	newRole := models.RoleFinanceOfficer
	updated, err := s.svc.Update(s.admin, user.ID, UpdateAccountRequest{Role: &newRole})
	s.Require().NoError(err)
	s.Equal(models.RoleFinanceOfficer, updated.Role)
}

func (s *AccountServiceSuite) TestUpdateCannotDemoteSuperuser() {
	super := &models.User{Username: "root", PasswordHash: "h", Role: models.RoleAdmin, IsSuperuser: true, IsActive: true}
	s.Require().NoError(s.users.Create(super))

	demoted := models.RoleAgent
	updated, err := s.svc.Update(s.admin, super.ID, UpdateAccountRequest{Role: &demoted})
	s.Require().NoError(err)
	s.Equal(models.RoleAdmin, updated.Role)

	stored, err := s.users.FindByID(super.ID)
	s.Require().NoError(err)
	s.Equal(models.RoleAdmin, stored.Role)
}

func TestAccountServiceSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceSuite))
}
