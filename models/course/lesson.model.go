package course

import "gorm.io/gorm"

// Lecture content types
const (
	LectureText  = "TEXT"
	LecturePDF   = "PDF"
	LectureVideo = "VIDEO"
)

// Lesson represents an ordered section within a course
type Lesson struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"` // Lesson order in course
	IsDeleted   bool   `gorm:"default:false"`
}

// Lecture represents an item within a lesson
type Lecture struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	LessonID    uint   `json:"lesson_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ContentType string `json:"content_type" gorm:"default:'TEXT'"` // TEXT, PDF, VIDEO
	TextContent string `json:"text_content" gorm:"type:text"`      // For TEXT type
	FileURL     string `json:"file_url"`                           // For PDF/VIDEO types
	OrderIndex  int    `json:"order_index" gorm:"default:0"`       // Order within lesson
	IsPublished bool   `json:"is_published" gorm:"default:false"`
	IsDeleted   bool   `gorm:"default:false"`
}

// LectureCompletion tracks a user's completion of a lecture
type LectureCompletion struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	CourseID  uint   `json:"course_id" gorm:"index;not null"`
	LectureID uint   `json:"lecture_id" gorm:"index;not null"`
	Status    string `json:"status" gorm:"default:'COMPLETED'"`
	IsDeleted bool   `gorm:"default:false"`
}
