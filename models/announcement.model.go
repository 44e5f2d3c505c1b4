package models

import "gorm.io/gorm"

// Announcement audience tags. AudienceAll is visible to every member;
// a tier name restricts visibility to members of that tier.
const (
	AudienceAll = "ALL"
)

// Announcement is a broadcast message from an instructor or admin.
// Visibility is computed at read time from the viewer's role and
// membership tier, never stored per recipient.
type Announcement struct {
	gorm.Model
	AuthorID  uint   `json:"author_id" gorm:"index;not null"`
	Title     string `json:"title"`
	Body      string `json:"body" gorm:"type:text"`
	Audience  string `json:"audience" gorm:"default:'ALL'"` // ALL, FREE, BASIC, PREMIUM
	CourseID  *uint  `json:"course_id" gorm:"index"`        // optional course scoping
	IsDeleted bool   `gorm:"default:false"`
}
