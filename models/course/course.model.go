package course

import "gorm.io/gorm"

// Course status enum values
const (
	StatusDraft    = "DRAFT"
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// Course represents a board-exam review course owned by an instructor
type Course struct {
	gorm.Model
	InstructorID uint   `json:"instructor_id" gorm:"index;not null"`
	Title        string `json:"title"`
	Description  string `json:"description" gorm:"type:text"`
	Status       string `json:"status" gorm:"default:'DRAFT'"` // DRAFT, ACTIVE, INACTIVE
	ThumbnailURL string `json:"thumbnail_url"`
	IsPublished  bool   `json:"is_published" gorm:"default:false"`
	IsDeleted    bool   `gorm:"default:false"`
}
