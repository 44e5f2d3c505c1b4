package models

import (
	"time"

	"gorm.io/gorm"
)

// Role enum values
const (
	RoleUser       = "USER"
	RoleInstructor = "INSTRUCTOR"
	RoleAdmin      = "ADMIN"
)

// Membership tier enum values
const (
	TierFree    = "FREE"
	TierBasic   = "BASIC"
	TierPremium = "PREMIUM"
)

// FreeCourseLimit is the maximum number of active enrollments a FREE member may hold
const FreeCourseLimit = 2

type User struct {
	gorm.Model
	ProfileImage        string     `gorm:"default:''" json:"profile_image"`
	Name                string     `gorm:"default:''" json:"name"`
	Email               string     `gorm:"unique;not null" json:"email"`
	Mobile              string     `gorm:"default:''" json:"mobile"`
	Role                string     `gorm:"default:'USER'" json:"role"`                    // USER, INSTRUCTOR, ADMIN
	MembershipTier      string     `gorm:"default:'FREE'" json:"membership_tier"`         // FREE, BASIC, PREMIUM
	Password            string     `gorm:"not null" json:"-"`
	IsEmailVerified     bool       `gorm:"default:false" json:"is_email_verified"`
	LastLogin           time.Time  `gorm:"default:NULL" json:"last_login"`
	FailedLoginAttempts int        `gorm:"default:0" json:"-"`
	LastFailedLogin     *time.Time `json:"-"`
	IsBlocked           bool       `gorm:"default:false" json:"is_blocked"`
	BlockedUntil        *time.Time `json:"blocked_until,omitempty"`
	IsDeleted           bool       `gorm:"default:false" json:"-"`
}
