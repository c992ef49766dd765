package models

import "time"

// Policy types.
const (
	PolicyTypeIndividual = "individual"
	PolicyTypeFamily     = "family"
	PolicyTypeEmployer   = "employer"
	PolicyTypeNGO        = "ngo"
	PolicyTypeHealth     = "health"
)

// ValidPolicyTypes lists every accepted policy type.
var ValidPolicyTypes = []string{
	PolicyTypeIndividual,
	PolicyTypeFamily,
	PolicyTypeEmployer,
	PolicyTypeNGO,
	PolicyTypeHealth,
}

// IsValidPolicyType reports whether t is a known policy type.
func IsValidPolicyType(t string) bool {
	for _, p := range ValidPolicyTypes {
		if p == t {
			return true
		}
	}
	return false
}

// Policy represents the policies table. IsActive is a stored flag maintained
// by administrators, not computed from the expiry date.
type Policy struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	ClientID        uint      `gorm:"not null;index" json:"client_id"`
	CreatedByID     *uint     `json:"created_by_id,omitempty"`
	PolicyNumber    string    `gorm:"size:50;uniqueIndex;not null" json:"policy_number"`
	PolicyType      string    `gorm:"size:20;not null" json:"policy_type"`
	CoverageDetails string    `gorm:"type:text" json:"coverage_details,omitempty"`
	Premium         float64   `gorm:"type:decimal(10,2);default:0" json:"premium"`
	StartDate       time.Time `gorm:"not null" json:"start_date"`
	ExpiryDate      time.Time `gorm:"not null" json:"expiry_date"`
	IsActive        bool      `gorm:"default:true" json:"is_active"`
	MaxClaimLimit   float64   `gorm:"type:decimal(12,2);default:0" json:"max_claim_limit"`
	WaitingDays     uint      `gorm:"column:waiting_period_days;default:0" json:"waiting_period_days"`
	Deductible      float64   `gorm:"type:decimal(10,2);default:0" json:"deductible"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Relationships
	Client    Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	CreatedBy *User  `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
}

// TableName specifies the table name for Policy model
func (Policy) TableName() string {
	return "policies"
}
