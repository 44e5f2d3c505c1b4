package membershipValidator

import (
	"strconv"
	"strings"

	"crimedge/middleware"
	"crimedge/models"

	"github.com/gofiber/fiber/v2"
)

// PlanID parses the :planId path parameter
func PlanID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("planId"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Plan ID is required in the URL!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Plan ID must be a positive number!", nil)
		}

		c.Locals("planID", id)
		return c.Next()
	}
}

// Plan validates the admin plan create/update payload
func Plan() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Tier           string  `json:"tier"`
			Name           string  `json:"name"`
			Description    string  `json:"description"`
			Price          float64 `json:"price"`
			DurationMonths int     `json:"duration_months"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		switch reqData.Tier {
		case models.TierBasic, models.TierPremium:
		default:
			errors["tier"] = "Tier must be BASIC or PREMIUM!"
		}

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}
		if reqData.DurationMonths < 1 {
			errors["duration_months"] = "Duration must be at least 1 month!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPlan", reqData)
		return c.Next()
	}
}
