package service

import "health-insurance-backend/internal/models"

// Store interfaces consumed by the services. The gorm-backed implementations
// live in internal/repository; tests substitute in-memory fakes. Stores
// return ErrNotFound for missing rows and ErrConflict for uniqueness
// violations so services never see driver-level errors.

// UserStore persists accounts.
type UserStore interface {
	Create(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	Update(user *models.User) error
	List() ([]models.User, error)
}

// RefreshTokenStore persists hashed refresh tokens.
type RefreshTokenStore interface {
	Create(token *models.RefreshToken) error
	FindByHash(hash string) (*models.RefreshToken, error)
	RevokeByHash(hash string) error
}

// ClientStore persists policyholder records.
type ClientStore interface {
	Create(client *models.Client) error
	FindByID(id uint) (*models.Client, error)
	List() ([]models.Client, error)
	ListByAgent(agentID uint) ([]models.Client, error)
	ListWithFingerprints() ([]models.Client, error)
	Update(client *models.Client) error
	Delete(id uint) error
}

// PolicyStore persists insurance policies.
type PolicyStore interface {
	Create(policy *models.Policy) error
	FindByID(id uint) (*models.Policy, error)
	List() ([]models.Policy, error)
	ListActive() ([]models.Policy, error)
	Update(policy *models.Policy) error
	Delete(id uint) error
}

// ClaimStore persists claims and answers the role-scoped list queries.
type ClaimStore interface {
	Create(claim *models.Claim) error
	FindByID(id uint) (*models.Claim, error)
	List() ([]models.Claim, error)
	ListByAgent(agentID uint) ([]models.Claim, error)
	ListByHospital(hospitalID uint) ([]models.Claim, error)
	Update(claim *models.Claim) error
	StatsByHospital(hospitalID uint) (*models.ClaimStats, error)
}

// HospitalStore persists hospital profiles. CreateWithAccount must insert the
// login account and the hospital atomically.
type HospitalStore interface {
	CreateWithAccount(hospital *models.Hospital, account *models.User) error
	FindByID(id uint) (*models.Hospital, error)
	FindByUserID(userID uint) (*models.Hospital, error)
	List() ([]models.Hospital, error)
	ListVerified() ([]models.Hospital, error)
	Update(hospital *models.Hospital) error
}
