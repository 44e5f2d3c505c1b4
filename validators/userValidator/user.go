package userValidator

import (
	"strings"

	"crimedge/middleware"

	"github.com/gofiber/fiber/v2"
)

// UpdateProfile validates the profile edit payload
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name   string `json:"name"`
			Mobile string `json:"mobile"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name != "" && len(strings.TrimSpace(reqData.Name)) < 2 {
			errors["name"] = "Name must be at least 2 characters long!"
		}
		if reqData.Mobile != "" {
			mobile := strings.TrimSpace(reqData.Mobile)
			if len(mobile) < 7 || len(mobile) > 15 {
				errors["mobile"] = "Mobile number must be between 7 and 15 digits!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}
