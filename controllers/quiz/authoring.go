package quizController

import (
	"crimedge/database"
	"crimedge/middleware"
	"crimedge/models"
	quizModels "crimedge/models/quiz"
	"crimedge/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

// quizAuthor loads a quiz and checks the current user may manage it
func quizAuthor(user models.User, quizID int) (quizModels.Quiz, bool) {
	var quiz quizModels.Quiz
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return quiz, false
	}
	if user.Role != models.RoleAdmin && quiz.AuthorID != user.ID {
		return quiz, false
	}
	return quiz, true
}

// persistQuiz saves a validated generated quiz with its questions in one
// transaction. Nothing is saved when any insert fails.
func persistQuiz(gq *utils.GeneratedQuiz, authorID uint, courseID *uint, generated bool) (quizModels.Quiz, error) {
	quiz := quizModels.Quiz{
		AuthorID:    authorID,
		CourseID:    courseID,
		Title:       gq.Title,
		Topic:       gq.Topic,
		IsGenerated: generated,
	}

	questions := utils.BuildQuestions(gq)

	tx := database.Database.Db.Begin()
	if err := tx.Create(&quiz).Error; err != nil {
		tx.Rollback()
		return quiz, err
	}
	for i := range questions {
		questions[i].QuizID = quiz.ID
	}
	if err := tx.Create(&questions).Error; err != nil {
		tx.Rollback()
		return quiz, err
	}
	tx.Commit()

	quiz.Questions = questions
	return quiz, nil
}

// GenerateQuiz authors a quiz from a topic via the text-generation service
func GenerateQuiz(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedGenerate").(*struct {
		Topic    string `json:"topic"`
		CourseID *uint  `json:"course_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	gq, err := utils.GenerateQuiz(reqData.Topic)
	if err != nil {
		log.Printf("Quiz generation failed for topic %q: %v", reqData.Topic, err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to generate quiz. Please try again.", nil)
	}

	quiz, err := persistQuiz(gq, user.ID, reqData.CourseID, true)
	if err != nil {
		log.Printf("Error saving generated quiz: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz generated successfully!", quiz)
}

// CreateQuiz authors a quiz from a hand-written question set. The payload
// uses the same shape and validation path as the generated one.
func CreateQuiz(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := new(struct {
		utils.GeneratedQuiz
		CourseID *uint `json:"course_id"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if err := utils.ValidateGeneratedQuiz(&reqData.GeneratedQuiz); err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"quiz": err.Error()})
	}

	quiz, err := persistQuiz(&reqData.GeneratedQuiz, user.ID, reqData.CourseID, false)
	if err != nil {
		log.Printf("Error saving quiz: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully!", quiz)
}

// GetMyQuizzes lists quizzes authored by the instructor
func GetMyQuizzes(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db.Model(&quizModels.Quiz{}).Where("is_deleted = ?", false)
	if user.Role != models.RoleAdmin {
		db = db.Where("author_id = ?", user.ID)
	}

	var quizzes []quizModels.Quiz
	if err := db.Order("created_at desc").Find(&quizzes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quizzes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quizzes fetched successfully!", fiber.Map{
		"quizzes": quizzes,
	})
}

// PublishQuiz makes a quiz available to members
func PublishQuiz(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	quizID := c.Locals("quizID").(int)
	quiz, allowed := quizAuthor(user, quizID)
	if !allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Quiz not found or not yours!", nil)
	}

	quiz.IsPublished = true
	if err := database.Database.Db.Save(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz published successfully!", quiz)
}

// UpdateQuiz edits quiz metadata; questions are replaced by re-creating
// the quiz, not patched in place
func UpdateQuiz(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	quizID := c.Locals("quizID").(int)
	quiz, allowed := quizAuthor(user, quizID)
	if !allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Quiz not found or not yours!", nil)
	}

	reqData := new(struct {
		Title    string `json:"title"`
		Topic    string `json:"topic"`
		CourseID *uint  `json:"course_id"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Title != "" {
		quiz.Title = reqData.Title
	}
	if reqData.Topic != "" {
		quiz.Topic = reqData.Topic
	}
	if reqData.CourseID != nil {
		quiz.CourseID = reqData.CourseID
	}

	if err := database.Database.Db.Save(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz updated successfully!", quiz)
}

// DeleteQuiz soft-deletes a quiz
func DeleteQuiz(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	quizID := c.Locals("quizID").(int)
	quiz, allowed := quizAuthor(user, quizID)
	if !allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Quiz not found or not yours!", nil)
	}

	quiz.IsDeleted = true
	quiz.IsPublished = false
	if err := database.Database.Db.Save(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz deleted successfully!", nil)
}

// GetQuiz returns a published quiz for taking. Correct answers are
// stripped; they only come back through grading.
func GetQuiz(c *fiber.Ctx) error {
	_, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	quizID := c.Locals("quizID").(int)

	var quiz quizModels.Quiz
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", quizID, false, true).
		First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	var questions []quizModels.Question
	database.Database.Db.Where("quiz_id = ? AND is_deleted = ?", quiz.ID, false).
		Order("order_index asc").Find(&questions)

	type TakeQuestion struct {
		ID      uint     `json:"id"`
		Text    string   `json:"text"`
		Options []string `json:"options"`
	}

	takeQuestions := make([]TakeQuestion, len(questions))
	for i, q := range questions {
		takeQuestions[i] = TakeQuestion{
			ID:      q.ID,
			Text:    q.Text,
			Options: q.Options(),
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", fiber.Map{
		"id":        quiz.ID,
		"title":     quiz.Title,
		"topic":     quiz.Topic,
		"course_id": quiz.CourseID,
		"questions": takeQuestions,
	})
}
