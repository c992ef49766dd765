package repository

import (
	"health-insurance-backend/internal/models"

	"gorm.io/gorm"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepo(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// Create creates a new client record
func (r *ClientRepository) Create(client *models.Client) error {
	return translateError(r.db.Create(client).Error)
}

// FindByID retrieves a client by ID
func (r *ClientRepository) FindByID(id uint) (*models.Client, error) {
	var client models.Client
	if err := r.db.First(&client, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &client, nil
}

// List retrieves all clients, newest first
func (r *ClientRepository) List() ([]models.Client, error) {
	var clients []models.Client
	err := r.db.Order("created_at DESC").Find(&clients).Error
	return clients, translateError(err)
}

// ListByAgent retrieves clients assigned to a specific agent
func (r *ClientRepository) ListByAgent(agentID uint) ([]models.Client, error) {
	var clients []models.Client
	err := r.db.Where("agent_id = ?", agentID).Order("created_at DESC").Find(&clients).Error
	return clients, translateError(err)
}

// ListWithFingerprints retrieves clients that have a stored fingerprint
// template, oldest first so the earliest enrollment wins an exact match.
func (r *ClientRepository) ListWithFingerprints() ([]models.Client, error) {
	var clients []models.Client
	err := r.db.Where("fingerprint_data IS NOT NULL AND LENGTH(fingerprint_data) > 0").
		Order("id ASC").
		Find(&clients).Error
	return clients, translateError(err)
}

// Update persists the full client row
func (r *ClientRepository) Update(client *models.Client) error {
	return translateError(r.db.Save(client).Error)
}

// Delete removes a client record
func (r *ClientRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Client{}, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound)
	}
	return nil
}
