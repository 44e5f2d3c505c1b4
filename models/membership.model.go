package models

import (
	"time"

	"gorm.io/gorm"
)

// MembershipStatus enum values
const (
	MembershipActive    = "ACTIVE"
	MembershipExpired   = "EXPIRED"
	MembershipCancelled = "CANCELLED"
)

// MembershipPlan is an admin-managed subscription tier definition
type MembershipPlan struct {
	gorm.Model
	Tier           string  `gorm:"not null;type:varchar(20)" json:"tier"` // BASIC or PREMIUM
	Name           string  `gorm:"not null" json:"name"`
	Description    string  `gorm:"type:text" json:"description"`
	Price          float64 `gorm:"not null;default:0" json:"price"`
	DurationMonths int     `gorm:"not null;default:1" json:"duration_months"`
	IsActive       bool    `gorm:"default:true" json:"is_active"`
	IsDeleted      bool    `gorm:"default:false" json:"-"`
}

// Membership tracks a user's subscription to a membership plan
type Membership struct {
	gorm.Model
	UserID       uint       `gorm:"not null;index" json:"user_id"`
	PlanID       uint       `gorm:"not null;index" json:"plan_id"`
	Tier         string     `gorm:"not null;type:varchar(20)" json:"tier"`
	Price        float64    `gorm:"not null;default:0" json:"price"` // price of plan at subscription
	Status       string     `gorm:"not null;type:varchar(20);default:'ACTIVE'" json:"status"`
	SubscribedAt time.Time  `gorm:"not null" json:"subscribed_at"`
	ExpiresAt    *time.Time `json:"expires_at"`
	ReminderSent bool       `gorm:"default:false" json:"reminder_sent"`
	IsDeleted    bool       `gorm:"default:false" json:"-"`

	// Relations
	Plan MembershipPlan `gorm:"foreignKey:PlanID" json:"plan,omitempty"`
}

func (Membership) TableName() string {
	return "memberships"
}
