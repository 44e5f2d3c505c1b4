package middleware

import (
	"crimedge/database"
	"crimedge/models"

	"github.com/gofiber/fiber/v2"
)

// RequireRole returns a middleware that loads the authenticated user and
// checks their role against the allowed set. The loaded user is stored in
// c.Locals("currentUser") so controllers do not reload it.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		var user models.User
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
		}

		if !HasRole(user.Role, roles...) {
			return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
		}

		c.Locals("currentUser", user)
		return c.Next()
	}
}

// HasRole reports whether role is one of the allowed roles
func HasRole(role string, allowed ...string) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}

// CurrentUser returns the user loaded by RequireRole, falling back to a
// database lookup when the route only ran JWTMiddleware.
func CurrentUser(c *fiber.Ctx) (models.User, bool) {
	if user, ok := c.Locals("currentUser").(models.User); ok {
		return user, true
	}

	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return models.User{}, false
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return models.User{}, false
	}
	return user, true
}
