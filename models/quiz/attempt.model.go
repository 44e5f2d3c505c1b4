package quiz

import "gorm.io/gorm"

// QuizAttempt represents a student's graded submission for a quiz
type QuizAttempt struct {
	gorm.Model
	UserID         uint    `json:"user_id" gorm:"index;not null"`
	QuizID         uint    `json:"quiz_id" gorm:"index;not null"`
	CourseID       *uint   `json:"course_id" gorm:"index"` // copied from the quiz at submission
	Answers        string  `json:"answers"`                // JSON array of submitted answer letters
	Score          int     `json:"score"`                  // count of correct answers
	TotalQuestions int     `json:"total_questions"`
	Percentage     float64 `json:"percentage"`
	AttemptNumber  int     `json:"attempt_number" gorm:"default:1"`
	IsDeleted      bool    `gorm:"default:false"`
}
