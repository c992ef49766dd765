package models

import "time"

// Client verification statuses.
const (
	ClientStatusPending  = "pending"
	ClientStatusVerified = "verified"
	ClientStatusFailed   = "failed"
)

// Client represents the clients table. A client is a policyholder record,
// optionally assigned to an agent account and optionally carrying a stored
// fingerprint template used for identity verification.
type Client struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	FirstName string     `gorm:"size:50;not null" json:"first_name"`
	LastName  string     `gorm:"size:50;not null" json:"last_name"`
	Email     string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone     string     `gorm:"size:20" json:"phone,omitempty"`
	DOB       *time.Time `gorm:"column:dob" json:"dob,omitempty"`
	Gender    string     `gorm:"size:10" json:"gender,omitempty"`
	Address   string     `gorm:"type:text" json:"address,omitempty"`
	Photo     string     `gorm:"size:255" json:"photo,omitempty"`

	AgentID     *uint `gorm:"index" json:"agent_id,omitempty"`
	CreatedByID *uint `json:"created_by_id,omitempty"`

	Status              string `gorm:"size:20;not null;default:'pending'" json:"status"`
	FingerprintVerified bool   `gorm:"default:false" json:"fingerprint_verified"`
	FingerprintData     []byte `gorm:"type:blob" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Agent     *User `gorm:"foreignKey:AgentID" json:"agent,omitempty"`
	CreatedBy *User `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
}

// TableName specifies the table name for Client model
func (Client) TableName() string {
	return "clients"
}
