package announcementValidator

import (
	"strconv"
	"strings"

	"crimedge/middleware"
	"crimedge/models"

	"github.com/gofiber/fiber/v2"
)

// AnnouncementID parses the :announcementId path parameter
func AnnouncementID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("announcementId"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Announcement ID is required in the URL!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Announcement ID must be a positive number!", nil)
		}

		c.Locals("announcementID", id)
		return c.Next()
	}
}

func CreateAnnouncement() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title    string `json:"title"`
			Body     string `json:"body"`
			Audience string `json:"audience"`
			CourseID *uint  `json:"course_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Body) == "" {
			errors["body"] = "Body is required!"
		}

		if reqData.Audience == "" {
			reqData.Audience = models.AudienceAll
		}
		switch reqData.Audience {
		case models.AudienceAll, models.TierFree, models.TierBasic, models.TierPremium:
		default:
			errors["audience"] = "Audience must be ALL, FREE, BASIC or PREMIUM!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAnnouncement", reqData)
		return c.Next()
	}
}
