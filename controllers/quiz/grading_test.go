package quizController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"crimedge/config"
	"crimedge/database"
	"crimedge/middleware"
	"crimedge/models"
	quizModels "crimedge/models/quiz"
	quizValidators "crimedge/validators/quiz"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}
	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	return db
}

func newGradingApp() *fiber.App {
	app := fiber.New()
	app.Post("/quiz/:quizId/submit", middleware.JWTMiddleware, quizValidators.QuizID(), quizValidators.SubmitQuiz(), SubmitQuiz)
	return app
}

func seedMember(t *testing.T, db *gorm.DB) (models.User, string) {
	t.Helper()

	user := models.User{Name: "Taker", Email: "taker@example.com", Role: models.RoleUser, MembershipTier: models.TierFree}
	require.NoError(t, db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return user, token
}

// ten questions with the answer pattern A B C D A B C D A B
func seedPublishedQuiz(t *testing.T, db *gorm.DB) quizModels.Quiz {
	t.Helper()

	quiz := quizModels.Quiz{
		Title:       "Evidence Review",
		Topic:       "Evidence",
		AuthorID:    1,
		IsPublished: true,
	}
	require.NoError(t, db.Create(&quiz).Error)

	letters := []string{"A", "B", "C", "D"}
	for i := 0; i < 10; i++ {
		q := quizModels.Question{
			QuizID:        quiz.ID,
			Text:          fmt.Sprintf("Question %d?", i+1),
			OptionA:       "first",
			OptionB:       "second",
			OptionC:       "third",
			OptionD:       "fourth",
			CorrectLetter: letters[i%4],
			CorrectText:   "stored answer",
			OrderIndex:    i,
		}
		require.NoError(t, db.Create(&q).Error)
	}
	return quiz
}

func submit(t *testing.T, app *fiber.App, token string, quizID uint, answers []string) (int, map[string]interface{}) {
	t.Helper()

	payload, _ := json.Marshal(fiber.Map{"answers": answers})
	req := httptest.NewRequest("POST", fmt.Sprintf("/quiz/%d/submit", quizID), bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var body struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body.Data
}

func TestSubmitQuizScoring(t *testing.T) {
	db := setupTestDB(t)
	app := newGradingApp()

	_, token := seedMember(t, db)
	quiz := seedPublishedQuiz(t, db)

	// 7 of 10 positions match the seeded pattern
	answers := []string{"A", "B", "C", "D", "A", "B", "C", "A", "B", "C"}
	code, data := submit(t, app, token, quiz.ID, answers)

	require.Equal(t, fiber.StatusOK, code)
	assert.EqualValues(t, 7, data["score"])
	assert.EqualValues(t, 10, data["total"])
	assert.EqualValues(t, 70.0, data["percentage"])

	results := data["results"].([]interface{})
	require.Len(t, results, 10)
	first := results[0].(map[string]interface{})
	assert.Equal(t, true, first["is_correct"])
	assert.Equal(t, "stored answer", first["correct_text"])
}

func TestSubmitQuizAttemptNumbers(t *testing.T) {
	db := setupTestDB(t)
	app := newGradingApp()

	user, token := seedMember(t, db)
	quiz := seedPublishedQuiz(t, db)

	answers := []string{"A", "A", "A", "A", "A", "A", "A", "A", "A", "A"}
	submit(t, app, token, quiz.ID, answers)
	submit(t, app, token, quiz.ID, answers)

	var attempts []quizModels.QuizAttempt
	require.NoError(t, db.Where("user_id = ? AND quiz_id = ?", user.ID, quiz.ID).
		Order("attempt_number asc").Find(&attempts).Error)
	require.Len(t, attempts, 2)
	assert.Equal(t, 1, attempts[0].AttemptNumber)
	assert.Equal(t, 2, attempts[1].AttemptNumber)
	assert.Equal(t, 3, attempts[0].Score) // pattern has three As
}

func TestSubmitQuizShortAndInvalidAnswers(t *testing.T) {
	db := setupTestDB(t)
	app := newGradingApp()

	_, token := seedMember(t, db)
	quiz := seedPublishedQuiz(t, db)

	code, data := submit(t, app, token, quiz.ID, []string{"a", "E", "c"})
	require.Equal(t, fiber.StatusOK, code)
	assert.EqualValues(t, 2, data["score"]) // a and c match, E never does
}

func TestSubmitUnpublishedQuiz(t *testing.T) {
	db := setupTestDB(t)
	app := newGradingApp()

	_, token := seedMember(t, db)

	quiz := quizModels.Quiz{Title: "Draft", Topic: "x", AuthorID: 1}
	require.NoError(t, db.Create(&quiz).Error)

	code, _ := submit(t, app, token, quiz.ID, []string{"A"})
	assert.Equal(t, fiber.StatusNotFound, code)
}
