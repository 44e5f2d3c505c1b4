package quizValidator

import (
	"strconv"
	"strings"

	"crimedge/middleware"

	"github.com/gofiber/fiber/v2"
)

// QuizID parses the :quizId path parameter
func QuizID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("quizId"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Quiz ID is required in the URL!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Quiz ID must be a positive number!", nil)
		}

		c.Locals("quizID", id)
		return c.Next()
	}
}

// GenerateQuiz validates the topic for AI quiz generation
func GenerateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Topic    string `json:"topic"`
			CourseID *uint  `json:"course_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Topic = strings.TrimSpace(reqData.Topic)
		if reqData.Topic == "" {
			errors["topic"] = "Topic is required!"
		} else if len(reqData.Topic) < 3 {
			errors["topic"] = "Topic must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedGenerate", reqData)
		return c.Next()
	}
}

// SubmitQuiz validates the answer sheet shape
func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Answers []string `json:"answers"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.Answers) == 0 {
			errors["answers"] = "At least one answer is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}
