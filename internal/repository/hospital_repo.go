package repository

import (
	"health-insurance-backend/internal/models"

	"gorm.io/gorm"
)

type HospitalRepository struct {
	db *gorm.DB
}

func NewHospitalRepo(db *gorm.DB) *HospitalRepository {
	return &HospitalRepository{db: db}
}

// CreateWithAccount inserts the hospital's login account and the hospital
// profile in a single transaction. A failure on either insert rolls back
// both, so a taken username never leaves an orphaned login.
func (r *HospitalRepository) CreateWithAccount(hospital *models.Hospital, account *models.User) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			return err
		}
		hospital.UserID = &account.ID
		return tx.Create(hospital).Error
	})
	return translateError(err)
}

// FindByID retrieves a hospital by ID
func (r *HospitalRepository) FindByID(id uint) (*models.Hospital, error) {
	var hospital models.Hospital
	if err := r.db.First(&hospital, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &hospital, nil
}

// FindByUserID retrieves the hospital profile bound to a login account
func (r *HospitalRepository) FindByUserID(userID uint) (*models.Hospital, error) {
	var hospital models.Hospital
	if err := r.db.Where("user_id = ?", userID).First(&hospital).Error; err != nil {
		return nil, translateError(err)
	}
	return &hospital, nil
}

// List retrieves all hospitals, newest first
func (r *HospitalRepository) List() ([]models.Hospital, error) {
	var hospitals []models.Hospital
	err := r.db.Order("created_at DESC").Find(&hospitals).Error
	return hospitals, translateError(err)
}

// ListVerified retrieves only hospitals flagged verified
func (r *HospitalRepository) ListVerified() ([]models.Hospital, error) {
	var hospitals []models.Hospital
	err := r.db.Where("verified = ?", true).Order("created_at DESC").Find(&hospitals).Error
	return hospitals, translateError(err)
}

// Update persists the full hospital row
func (r *HospitalRepository) Update(hospital *models.Hospital) error {
	return translateError(r.db.Save(hospital).Error)
}
