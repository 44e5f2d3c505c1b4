package adminValidator

import (
	"strconv"
	"strings"

	"crimedge/middleware"

	"github.com/gofiber/fiber/v2"
)

// TargetUserID parses the :userId path parameter for admin user management
func TargetUserID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("userId"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User ID is required in the URL!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User ID must be a positive number!", nil)
		}

		c.Locals("targetUserID", id)
		return c.Next()
	}
}
