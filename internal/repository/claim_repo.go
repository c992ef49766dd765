package repository

import (
	"health-insurance-backend/internal/models"

	"gorm.io/gorm"
)

type ClaimRepository struct {
	db *gorm.DB
}

func NewClaimRepo(db *gorm.DB) *ClaimRepository {
	return &ClaimRepository{db: db}
}

// Create creates a new claim. A duplicate claim number surfaces as a
// conflict error, never an overwrite.
func (r *ClaimRepository) Create(claim *models.Claim) error {
	return translateError(r.db.Create(claim).Error)
}

// FindByID retrieves a claim by ID with its relations
func (r *ClaimRepository) FindByID(id uint) (*models.Claim, error) {
	var claim models.Claim
	err := r.db.Preload("Client").Preload("Policy").Preload("Hospital").
		First(&claim, id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &claim, nil
}

// List retrieves all claims, newest first
func (r *ClaimRepository) List() ([]models.Claim, error) {
	var claims []models.Claim
	err := r.db.Preload("Client").Preload("Hospital").
		Order("created_at DESC").Find(&claims).Error
	return claims, translateError(err)
}

// ListByAgent retrieves claims whose client is assigned to the given agent
func (r *ClaimRepository) ListByAgent(agentID uint) ([]models.Claim, error) {
	var claims []models.Claim
	err := r.db.
		Joins("INNER JOIN clients ON clients.id = claims.client_id").
		Where("clients.agent_id = ?", agentID).
		Preload("Client").Preload("Hospital").
		Order("claims.created_at DESC").
		Find(&claims).Error
	return claims, translateError(err)
}

// ListByHospital retrieves claims bound to a specific hospital
func (r *ClaimRepository) ListByHospital(hospitalID uint) ([]models.Claim, error) {
	var claims []models.Claim
	err := r.db.Where("hospital_id = ?", hospitalID).
		Preload("Client").
		Order("created_at DESC").
		Find(&claims).Error
	return claims, translateError(err)
}

// Update persists the full claim row
func (r *ClaimRepository) Update(claim *models.Claim) error {
	return translateError(r.db.Save(claim).Error)
}

// StatsByHospital aggregates claim counts and amounts for one hospital
func (r *ClaimRepository) StatsByHospital(hospitalID uint) (*models.ClaimStats, error) {
	stats := &models.ClaimStats{}
	base := r.db.Model(&models.Claim{}).Where("hospital_id = ?", hospitalID)

	if err := base.Session(&gorm.Session{}).Count(&stats.TotalClaims).Error; err != nil {
		return nil, translateError(err)
	}

	counts := []struct {
		status string
		dest   *int64
	}{
		{models.ClaimStatusPending, &stats.PendingClaims},
		{models.ClaimStatusApproved, &stats.ApprovedClaims},
		{models.ClaimStatusRejected, &stats.RejectedClaims},
		{models.ClaimStatusReimbursed, &stats.ReimbursedClaims},
	}
	for _, c := range counts {
		err := base.Session(&gorm.Session{}).Where("status = ?", c.status).Count(c.dest).Error
		if err != nil {
			return nil, translateError(err)
		}
	}

	err := base.Session(&gorm.Session{}).
		Where("status IN ?", []string{models.ClaimStatusApproved, models.ClaimStatusReimbursed}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&stats.RevenueCollected).Error
	if err != nil {
		return nil, translateError(err)
	}

	err = base.Session(&gorm.Session{}).
		Where("status = ?", models.ClaimStatusPending).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&stats.PendingAmount).Error
	if err != nil {
		return nil, translateError(err)
	}

	return stats, nil
}
