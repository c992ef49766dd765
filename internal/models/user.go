package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles. Every account carries exactly one role; the role decides which
// operations the account may perform.
const (
	RoleAdmin          = "admin"
	RoleAgent          = "agent"
	RolePolicyholder   = "policyholder"
	RoleClaimOfficer   = "claim_officer"
	RoleFinanceOfficer = "finance_officer"
	RoleReportOfficer  = "report_officer"
	RoleHospital       = "hospital"
)

// ValidRoles lists every role an account may hold.
var ValidRoles = []string{
	RoleAdmin,
	RoleAgent,
	RolePolicyholder,
	RoleClaimOfficer,
	RoleFinanceOfficer,
	RoleReportOfficer,
	RoleHospital,
}

// IsValidRole reports whether role is one of the known account roles.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// User represents the users table
type User struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Username       string     `gorm:"uniqueIndex;not null;size:150" json:"username"`
	PasswordHash   string     `gorm:"not null;size:255" json:"-"`
	Role           string     `gorm:"size:20;not null;default:'policyholder'" json:"role"`
	Email          string     `gorm:"size:255" json:"email,omitempty"`
	Phone          string     `gorm:"size:20" json:"phone,omitempty"`
	Address        string     `gorm:"type:text" json:"address,omitempty"`
	ProfilePicture string     `gorm:"size:255" json:"profile_picture,omitempty"`
	DOB            *time.Time `gorm:"column:dob" json:"dob,omitempty"`
	Gender         string     `gorm:"size:10" json:"gender,omitempty"`
	Daamiin        string     `gorm:"size:150" json:"daamiin,omitempty"` // responsible person for agents
	IsActive       bool       `gorm:"default:true" json:"is_active"`
	IsSuspended    bool       `gorm:"default:false" json:"is_suspended"`
	IsSuperuser    bool       `gorm:"default:false" json:"is_superuser"`
	CreatedAt      time.Time  `json:"created_at"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// BeforeSave forces superuser accounts into the admin role on every persist.
// This is a data-integrity safeguard, not a user-facing toggle.
func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.IsSuperuser && u.Role != RoleAdmin {
		u.Role = RoleAdmin
	}
	return nil
}

// CanLogin reports whether the account is allowed to authenticate.
func (u *User) CanLogin() bool {
	return u.IsActive && !u.IsSuspended
}

// RefreshToken represents the refresh_tokens table
type RefreshToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	TokenHash string    `gorm:"not null;size:255;index" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	Revoked   bool      `gorm:"default:false" json:"revoked"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for RefreshToken model
func (RefreshToken) TableName() string {
	return "refresh_tokens"
}
