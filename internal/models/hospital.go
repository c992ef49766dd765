package models

import "time"

// Hospital represents the hospitals table. A hospital may be bound 1:1 to a
// login account with role=hospital; that account is the hospital's identity
// when submitting claims.
type Hospital struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         *uint     `gorm:"uniqueIndex" json:"user_id,omitempty"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	Language       string    `gorm:"size:100;default:'English'" json:"language"`
	OwnerFirstName string    `gorm:"size:100" json:"owner_first_name"`
	OwnerLastName  string    `gorm:"size:100" json:"owner_last_name"`
	Email          string    `gorm:"size:255" json:"email"`
	Currency       string    `gorm:"size:10;default:'USD'" json:"currency"`
	Mobile         string    `gorm:"size:20" json:"mobile,omitempty"`
	Phone          string    `gorm:"size:20" json:"phone,omitempty"`
	Address        string    `gorm:"type:text" json:"address,omitempty"`
	City           string    `gorm:"size:50" json:"city,omitempty"`
	Country        string    `gorm:"size:50" json:"country,omitempty"`
	Image          string    `gorm:"size:255" json:"image,omitempty"`
	Verified       bool      `gorm:"default:false" json:"verified"`
	CreatedByID    *uint     `json:"created_by_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`

	// Relationships
	User      *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedBy *User `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
}

// TableName specifies the table name for Hospital model
func (Hospital) TableName() string {
	return "hospitals"
}
