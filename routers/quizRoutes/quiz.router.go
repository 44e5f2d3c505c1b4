package quizRoutes

import (
	quizControllers "crimedge/controllers/quiz"
	"crimedge/middleware"
	"crimedge/models"
	quizValidators "crimedge/validators/quiz"

	"github.com/gofiber/fiber/v2"
)

func SetupQuizRoutes(app *fiber.App) {
	quizGroup := app.Group("/quiz", middleware.JWTMiddleware)

	quizGroup.Get("/attempts/my", quizControllers.GetMyAttempts)
	quizGroup.Get("/:quizId", quizValidators.QuizID(), quizControllers.GetQuiz)
	quizGroup.Post("/:quizId/submit", quizValidators.QuizID(), quizValidators.SubmitQuiz(), quizControllers.SubmitQuiz)

	authorGroup := app.Group("/instructor/quiz",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleInstructor, models.RoleAdmin),
	)

	authorGroup.Post("/generate", quizValidators.GenerateQuiz(), quizControllers.GenerateQuiz)
	authorGroup.Post("/", quizControllers.CreateQuiz)
	authorGroup.Get("/", quizControllers.GetMyQuizzes)
	authorGroup.Put("/:quizId", quizValidators.QuizID(), quizControllers.UpdateQuiz)
	authorGroup.Patch("/:quizId/publish", quizValidators.QuizID(), quizControllers.PublishQuiz)
	authorGroup.Delete("/:quizId", quizValidators.QuizID(), quizControllers.DeleteQuiz)
	authorGroup.Get("/:quizId/attempts", quizValidators.QuizID(), quizControllers.GetQuizAttempts)
}
