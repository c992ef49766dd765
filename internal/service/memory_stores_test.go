package service

import (
	"fmt"

	"health-insurance-backend/internal/models"
)

// In-memory store fakes backing the service suites. They mirror the
// storage-layer contract: ErrNotFound for missing rows, ErrConflict for
// uniqueness violations, and the User BeforeSave hook applied on every
// persist, the same way gorm applies it.

type memUserStore struct {
	users  map[uint]*models.User
	nextID uint
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[uint]*models.User), nextID: 1}
}

func (s *memUserStore) Create(user *models.User) error {
	for _, u := range s.users {
		if u.Username == user.Username {
			return fmt.Errorf("%w: duplicate username", ErrConflict)
		}
	}
	if err := user.BeforeSave(nil); err != nil {
		return err
	}
	user.ID = s.nextID
	s.nextID++
	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (s *memUserStore) FindByID(id uint) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
	}
	copied := *u
	return &copied, nil
}

func (s *memUserStore) FindByUsername(username string) (*models.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("%w: user %q", ErrNotFound, username)
}

func (s *memUserStore) Update(user *models.User) error {
	if _, ok := s.users[user.ID]; !ok {
		return fmt.Errorf("%w: user %d", ErrNotFound, user.ID)
	}
	if err := user.BeforeSave(nil); err != nil {
		return err
	}
	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (s *memUserStore) List() ([]models.User, error) {
	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, *u)
	}
	return users, nil
}

type memRefreshTokenStore struct {
	tokens map[string]*models.RefreshToken
	users  *memUserStore
	nextID uint
}

func newMemRefreshTokenStore(users *memUserStore) *memRefreshTokenStore {
	return &memRefreshTokenStore{
		tokens: make(map[string]*models.RefreshToken),
		users:  users,
		nextID: 1,
	}
}

func (s *memRefreshTokenStore) Create(token *models.RefreshToken) error {
	token.ID = s.nextID
	s.nextID++
	stored := *token
	s.tokens[token.TokenHash] = &stored
	return nil
}

func (s *memRefreshTokenStore) FindByHash(hash string) (*models.RefreshToken, error) {
	t, ok := s.tokens[hash]
	if !ok || t.Revoked {
		return nil, fmt.Errorf("%w: refresh token", ErrNotFound)
	}
	copied := *t
	if user, err := s.users.FindByID(t.UserID); err == nil {
		copied.User = *user
	}
	return &copied, nil
}

func (s *memRefreshTokenStore) RevokeByHash(hash string) error {
	if t, ok := s.tokens[hash]; ok {
		t.Revoked = true
	}
	return nil
}

type memClientStore struct {
	clients map[uint]*models.Client
	nextID  uint
}

func newMemClientStore() *memClientStore {
	return &memClientStore{clients: make(map[uint]*models.Client), nextID: 1}
}

func (s *memClientStore) Create(client *models.Client) error {
	for _, existing := range s.clients {
		if existing.Email == client.Email {
			return fmt.Errorf("%w: duplicate email", ErrConflict)
		}
	}
	client.ID = s.nextID
	s.nextID++
	stored := *client
	s.clients[client.ID] = &stored
	return nil
}

func (s *memClientStore) FindByID(id uint) (*models.Client, error) {
	c, ok := s.clients[id]
	if !ok {
		return nil, fmt.Errorf("%w: client %d", ErrNotFound, id)
	}
	copied := *c
	return &copied, nil
}

func (s *memClientStore) List() ([]models.Client, error) {
	clients := make([]models.Client, 0, len(s.clients))
	for _, c := range s.clients {
		clients = append(clients, *c)
	}
	return clients, nil
}

func (s *memClientStore) ListByAgent(agentID uint) ([]models.Client, error) {
	var clients []models.Client
	for _, c := range s.clients {
		if c.AgentID != nil && *c.AgentID == agentID {
			clients = append(clients, *c)
		}
	}
	return clients, nil
}

func (s *memClientStore) ListWithFingerprints() ([]models.Client, error) {
	var clients []models.Client
	for id := uint(1); id < s.nextID; id++ {
		if c, ok := s.clients[id]; ok && len(c.FingerprintData) > 0 {
			clients = append(clients, *c)
		}
	}
	return clients, nil
}

func (s *memClientStore) Update(client *models.Client) error {
	if _, ok := s.clients[client.ID]; !ok {
		return fmt.Errorf("%w: client %d", ErrNotFound, client.ID)
	}
	stored := *client
	s.clients[client.ID] = &stored
	return nil
}

func (s *memClientStore) Delete(id uint) error {
	if _, ok := s.clients[id]; !ok {
		return fmt.Errorf("%w: client %d", ErrNotFound, id)
	}
	delete(s.clients, id)
	return nil
}

type memPolicyStore struct {
	policies map[uint]*models.Policy
	nextID   uint

	// conflictNext fails the next N creates with ErrConflict, simulating
	// storage-level number collisions.
	conflictNext int
}

func newMemPolicyStore() *memPolicyStore {
	return &memPolicyStore{policies: make(map[uint]*models.Policy), nextID: 1}
}

func (s *memPolicyStore) Create(policy *models.Policy) error {
	if s.conflictNext > 0 {
		s.conflictNext--
		return fmt.Errorf("%w: duplicate policy number", ErrConflict)
	}
	for _, existing := range s.policies {
		if existing.PolicyNumber == policy.PolicyNumber {
			return fmt.Errorf("%w: duplicate policy number", ErrConflict)
		}
	}
	policy.ID = s.nextID
	s.nextID++
	stored := *policy
	s.policies[policy.ID] = &stored
	return nil
}

func (s *memPolicyStore) FindByID(id uint) (*models.Policy, error) {
	p, ok := s.policies[id]
	if !ok {
		return nil, fmt.Errorf("%w: policy %d", ErrNotFound, id)
	}
	copied := *p
	return &copied, nil
}

func (s *memPolicyStore) List() ([]models.Policy, error) {
	policies := make([]models.Policy, 0, len(s.policies))
	for _, p := range s.policies {
		policies = append(policies, *p)
	}
	return policies, nil
}

func (s *memPolicyStore) ListActive() ([]models.Policy, error) {
	var policies []models.Policy
	for _, p := range s.policies {
		if p.IsActive {
			policies = append(policies, *p)
		}
	}
	return policies, nil
}

func (s *memPolicyStore) Update(policy *models.Policy) error {
	if _, ok := s.policies[policy.ID]; !ok {
		return fmt.Errorf("%w: policy %d", ErrNotFound, policy.ID)
	}
	stored := *policy
	s.policies[policy.ID] = &stored
	return nil
}

func (s *memPolicyStore) Delete(id uint) error {
	if _, ok := s.policies[id]; !ok {
		return fmt.Errorf("%w: policy %d", ErrNotFound, id)
	}
	delete(s.policies, id)
	return nil
}

type memClaimStore struct {
	claims  map[uint]*models.Claim
	clients *memClientStore
	nextID  uint
}

func newMemClaimStore(clients *memClientStore) *memClaimStore {
	return &memClaimStore{
		claims:  make(map[uint]*models.Claim),
		clients: clients,
		nextID:  1,
	}
}

func (s *memClaimStore) Create(claim *models.Claim) error {
	for _, existing := range s.claims {
		if existing.ClaimNumber == claim.ClaimNumber {
			return fmt.Errorf("%w: duplicate claim number", ErrConflict)
		}
	}
	claim.ID = s.nextID
	s.nextID++
	stored := *claim
	s.claims[claim.ID] = &stored
	return nil
}

func (s *memClaimStore) FindByID(id uint) (*models.Claim, error) {
	c, ok := s.claims[id]
	if !ok {
		return nil, fmt.Errorf("%w: claim %d", ErrNotFound, id)
	}
	copied := *c
	return &copied, nil
}

func (s *memClaimStore) List() ([]models.Claim, error) {
	claims := make([]models.Claim, 0, len(s.claims))
	for _, c := range s.claims {
		claims = append(claims, *c)
	}
	return claims, nil
}

func (s *memClaimStore) ListByAgent(agentID uint) ([]models.Claim, error) {
	var claims []models.Claim
	for _, c := range s.claims {
		client, err := s.clients.FindByID(c.ClientID)
		if err != nil {
			continue
		}
		if client.AgentID != nil && *client.AgentID == agentID {
			claims = append(claims, *c)
		}
	}
	return claims, nil
}

func (s *memClaimStore) ListByHospital(hospitalID uint) ([]models.Claim, error) {
	var claims []models.Claim
	for _, c := range s.claims {
		if c.HospitalID == hospitalID {
			claims = append(claims, *c)
		}
	}
	return claims, nil
}

func (s *memClaimStore) Update(claim *models.Claim) error {
	if _, ok := s.claims[claim.ID]; !ok {
		return fmt.Errorf("%w: claim %d", ErrNotFound, claim.ID)
	}
	stored := *claim
	s.claims[claim.ID] = &stored
	return nil
}

func (s *memClaimStore) StatsByHospital(hospitalID uint) (*models.ClaimStats, error) {
	stats := &models.ClaimStats{}
	for _, c := range s.claims {
		if c.HospitalID != hospitalID {
			continue
		}
		stats.TotalClaims++
		switch c.Status {
		case models.ClaimStatusPending:
			stats.PendingClaims++
			stats.PendingAmount += c.Amount
		case models.ClaimStatusApproved:
			stats.ApprovedClaims++
			stats.RevenueCollected += c.Amount
		case models.ClaimStatusRejected:
			stats.RejectedClaims++
		case models.ClaimStatusReimbursed:
			stats.ReimbursedClaims++
			stats.RevenueCollected += c.Amount
		}
	}
	return stats, nil
}

type memHospitalStore struct {
	hospitals map[uint]*models.Hospital
	users     *memUserStore
	nextID    uint
}

func newMemHospitalStore(users *memUserStore) *memHospitalStore {
	return &memHospitalStore{
		hospitals: make(map[uint]*models.Hospital),
		users:     users,
		nextID:    1,
	}
}

// CreateWithAccount mimics the transactional contract: the account insert
// failing means the hospital is not persisted either.
func (s *memHospitalStore) CreateWithAccount(hospital *models.Hospital, account *models.User) error {
	if err := s.users.Create(account); err != nil {
		return err
	}
	hospital.UserID = &account.ID
	hospital.ID = s.nextID
	s.nextID++
	stored := *hospital
	s.hospitals[hospital.ID] = &stored
	return nil
}

func (s *memHospitalStore) add(hospital *models.Hospital) {
	hospital.ID = s.nextID
	s.nextID++
	stored := *hospital
	s.hospitals[hospital.ID] = &stored
}

func (s *memHospitalStore) FindByID(id uint) (*models.Hospital, error) {
	h, ok := s.hospitals[id]
	if !ok {
		return nil, fmt.Errorf("%w: hospital %d", ErrNotFound, id)
	}
	copied := *h
	return &copied, nil
}

func (s *memHospitalStore) FindByUserID(userID uint) (*models.Hospital, error) {
	for _, h := range s.hospitals {
		if h.UserID != nil && *h.UserID == userID {
			copied := *h
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("%w: hospital profile for user %d", ErrNotFound, userID)
}

func (s *memHospitalStore) List() ([]models.Hospital, error) {
	hospitals := make([]models.Hospital, 0, len(s.hospitals))
	for _, h := range s.hospitals {
		hospitals = append(hospitals, *h)
	}
	return hospitals, nil
}

func (s *memHospitalStore) ListVerified() ([]models.Hospital, error) {
	var hospitals []models.Hospital
	for _, h := range s.hospitals {
		if h.Verified {
			hospitals = append(hospitals, *h)
		}
	}
	return hospitals, nil
}

func (s *memHospitalStore) Update(hospital *models.Hospital) error {
	if _, ok := s.hospitals[hospital.ID]; !ok {
		return fmt.Errorf("%w: hospital %d", ErrNotFound, hospital.ID)
	}
	stored := *hospital
	s.hospitals[hospital.ID] = &stored
	return nil
}
