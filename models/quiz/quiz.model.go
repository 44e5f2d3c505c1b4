package quiz

import "gorm.io/gorm"

// QuestionOptionCount is the fixed number of options per question
const QuestionOptionCount = 4

// Quiz represents a multiple-choice quiz authored by an instructor
type Quiz struct {
	gorm.Model
	AuthorID    uint   `json:"author_id" gorm:"index;not null"`
	CourseID    *uint  `json:"course_id" gorm:"index"` // optional course linkage
	Title       string `json:"title"`
	Topic       string `json:"topic"`
	IsGenerated bool   `json:"is_generated" gorm:"default:false"` // authored via the AI pipeline
	IsPublished bool   `json:"is_published" gorm:"default:false"`
	IsDeleted   bool   `gorm:"default:false"`

	// Relations
	Questions []Question `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
}

// Question holds one quiz question with exactly four options. The correct
// answer is stored both as a letter code (A-D, indexing the option) and as
// the original full text, which the UI shows after grading.
type Question struct {
	gorm.Model
	QuizID        uint   `json:"quiz_id" gorm:"index;not null"`
	Text          string `json:"text" gorm:"type:text"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectLetter string `json:"correct_letter" gorm:"type:varchar(1)"` // A, B, C or D
	CorrectText   string `json:"correct_text"`
	OrderIndex    int    `json:"order_index" gorm:"default:0"`
	IsDeleted     bool   `gorm:"default:false"`
}

// Options returns the question's options in display order
func (q *Question) Options() []string {
	return []string{q.OptionA, q.OptionB, q.OptionC, q.OptionD}
}
