package repository

import (
	"health-insurance-backend/internal/models"

	"gorm.io/gorm"
)

type PolicyRepository struct {
	db *gorm.DB
}

func NewPolicyRepo(db *gorm.DB) *PolicyRepository {
	return &PolicyRepository{db: db}
}

// Create creates a new policy
func (r *PolicyRepository) Create(policy *models.Policy) error {
	return translateError(r.db.Create(policy).Error)
}

// FindByID retrieves a policy by ID
func (r *PolicyRepository) FindByID(id uint) (*models.Policy, error) {
	var policy models.Policy
	if err := r.db.First(&policy, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &policy, nil
}

// List retrieves all policies, newest first
func (r *PolicyRepository) List() ([]models.Policy, error) {
	var policies []models.Policy
	err := r.db.Order("created_at DESC").Find(&policies).Error
	return policies, translateError(err)
}

// ListActive retrieves policies explicitly flagged active
func (r *PolicyRepository) ListActive() ([]models.Policy, error) {
	var policies []models.Policy
	err := r.db.Where("is_active = ?", true).Order("created_at DESC").Find(&policies).Error
	return policies, translateError(err)
}

// Update persists the full policy row
func (r *PolicyRepository) Update(policy *models.Policy) error {
	return translateError(r.db.Save(policy).Error)
}

// Delete removes a policy
func (r *PolicyRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Policy{}, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound)
	}
	return nil
}
