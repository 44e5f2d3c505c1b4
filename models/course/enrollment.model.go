package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment status enum values
const (
	EnrollmentEnrolled   = "ENROLLED"
	EnrollmentInProgress = "IN_PROGRESS"
	EnrollmentCompleted  = "COMPLETED"
)

// Enrollment tracks a user's enrollment in a course with progress
type Enrollment struct {
	gorm.Model
	UserID            uint       `json:"user_id" gorm:"index;not null"`
	CourseID          uint       `json:"course_id" gorm:"index;not null"`
	Status            string     `json:"status" gorm:"default:'ENROLLED'"`
	Progress          float64    `json:"progress" gorm:"default:0"` // Completion percentage (0-100)
	CompletedLectures int        `json:"completed_lectures" gorm:"default:0"`
	TotalLectures     int        `json:"total_lectures" gorm:"default:0"`
	CompletedAt       *time.Time `json:"completed_at"`
	IsDeleted         bool       `gorm:"default:false"`

	// Relations
	Course Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}
