package models

import "time"

// Claim statuses. A claim starts pending, moves to approved or rejected, and
// only an approved claim can be reimbursed. Reimbursed is final.
const (
	ClaimStatusPending    = "pending"
	ClaimStatusApproved   = "approved"
	ClaimStatusRejected   = "rejected"
	ClaimStatusReimbursed = "reimbursed"
)

// Claim represents the claims table. A claim is a monetary request submitted
// by a hospital against a client's policy.
type Claim struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ClaimNumber string    `gorm:"size:50;uniqueIndex;not null" json:"claim_number"`
	ClientID    uint      `gorm:"not null;index" json:"client_id"`
	PolicyID    uint      `gorm:"not null;index" json:"policy_id"`
	HospitalID  uint      `gorm:"not null;index" json:"hospital_id"`
	Amount      float64   `gorm:"type:decimal(12,2);not null" json:"amount"`
	Status      string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	Document    string    `gorm:"size:255" json:"document,omitempty"`
	Notes       string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedByID *uint     `json:"created_by_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	Client    Client   `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Policy    Policy   `gorm:"foreignKey:PolicyID" json:"policy,omitempty"`
	Hospital  Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
	CreatedBy *User    `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
}

// TableName specifies the table name for Claim model
func (Claim) TableName() string {
	return "claims"
}

// ClaimStats holds aggregate claim numbers for a hospital dashboard.
type ClaimStats struct {
	TotalClaims      int64   `json:"total_claims"`
	PendingClaims    int64   `json:"pending_claims"`
	ApprovedClaims   int64   `json:"approved_claims"`
	RejectedClaims   int64   `json:"rejected_claims"`
	ReimbursedClaims int64   `json:"reimbursed_claims"`
	RevenueCollected float64 `json:"revenue_collected"`
	PendingAmount    float64 `json:"pending_amount"`
}
