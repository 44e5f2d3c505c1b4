package quizController

import (
	"crimedge/database"
	"crimedge/middleware"
	"crimedge/models"
	quizModels "crimedge/models/quiz"
	"crimedge/utils"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
)

// SubmitQuiz grades an ordered list of answer letters against a published
// quiz and persists the attempt. Comparison is positional; missing or
// out-of-range letters count as incorrect, never as errors.
func SubmitQuiz(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	quizID := c.Locals("quizID").(int)

	var quiz quizModels.Quiz
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", quizID, false, true).
		First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	reqData, ok := c.Locals("validatedSubmission").(*struct {
		Answers []string `json:"answers"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var questions []quizModels.Question
	if err := database.Database.Db.Where("quiz_id = ? AND is_deleted = ?", quiz.ID, false).
		Order("order_index asc").Find(&questions).Error; err != nil || len(questions) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz has no questions!", nil)
	}

	correct := make([]string, len(questions))
	for i, q := range questions {
		correct[i] = q.CorrectLetter
	}

	score := utils.GradeAnswers(correct, reqData.Answers)
	percentage := utils.ScorePercentage(score, len(questions))

	// Attempt number for this user on this quiz
	var attemptCount int64
	database.Database.Db.Model(&quizModels.QuizAttempt{}).
		Where("user_id = ? AND quiz_id = ? AND is_deleted = ?", user.ID, quiz.ID, false).
		Count(&attemptCount)

	answersJSON, _ := json.Marshal(reqData.Answers)

	attempt := quizModels.QuizAttempt{
		UserID:         user.ID,
		QuizID:         quiz.ID,
		CourseID:       quiz.CourseID,
		Answers:        string(answersJSON),
		Score:          score,
		TotalQuestions: len(questions),
		Percentage:     percentage,
		AttemptNumber:  int(attemptCount) + 1,
	}

	if err := database.Database.Db.Create(&attempt).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit quiz!", nil)
	}

	// Per-question review with the stored full-text correct answers
	type QuestionResult struct {
		QuestionID    uint   `json:"question_id"`
		Submitted     string `json:"submitted"`
		CorrectLetter string `json:"correct_letter"`
		CorrectText   string `json:"correct_text"`
		IsCorrect     bool   `json:"is_correct"`
	}

	results := make([]QuestionResult, len(questions))
	for i, q := range questions {
		submitted := ""
		if i < len(reqData.Answers) {
			submitted = utils.NormalizeAnswerLetter(reqData.Answers[i])
		}
		results[i] = QuestionResult{
			QuestionID:    q.ID,
			Submitted:     submitted,
			CorrectLetter: q.CorrectLetter,
			CorrectText:   q.CorrectText,
			IsCorrect:     submitted != "" && submitted == q.CorrectLetter,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted!", fiber.Map{
		"attempt":    attempt,
		"score":      score,
		"total":      len(questions),
		"percentage": percentage,
		"results":    results,
	})
}

// GetQuizAttempts lists every attempt for a quiz. Instructor-only and
// owner-scoped; admins see attempts for any quiz.
func GetQuizAttempts(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	quizID := c.Locals("quizID").(int)
	if _, allowed := quizAuthor(user, quizID); !allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Quiz not found or not yours!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&quizModels.QuizAttempt{}).
		Where("quiz_id = ? AND is_deleted = ?", quizID, false)

	var total int64
	db.Count(&total)

	var attempts []quizModels.QuizAttempt
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&attempts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch attempts!", nil)
	}

	type AttemptWithUser struct {
		quizModels.QuizAttempt
		UserName  string `json:"user_name"`
		UserEmail string `json:"user_email"`
	}

	response := make([]AttemptWithUser, 0, len(attempts))
	for _, a := range attempts {
		var student models.User
		database.Database.Db.Select("name, email").Where("id = ?", a.UserID).First(&student)
		response = append(response, AttemptWithUser{
			QuizAttempt: a,
			UserName:    student.Name,
			UserEmail:   student.Email,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempts fetched successfully!", fiber.Map{
		"attempts": response,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetMyAttempts returns the authenticated user's attempt history
func GetMyAttempts(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var attempts []quizModels.QuizAttempt
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", user.ID, false).
		Order("created_at desc").Find(&attempts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch attempts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempts fetched successfully!", attempts)
}
