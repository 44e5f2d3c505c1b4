package adminRoutes

import (
	adminControllers "crimedge/controllers/admin"
	"crimedge/middleware"
	"crimedge/models"
	adminValidators "crimedge/validators/admin"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleAdmin),
	)

	adminGroup.Get("/dashboard", adminControllers.DashboardStats)

	adminGroup.Get("/users", adminControllers.GetUsers)
	adminGroup.Patch("/users/:userId/role", adminValidators.TargetUserID(), adminControllers.UpdateUserRole)
	adminGroup.Patch("/users/:userId/tier", adminValidators.TargetUserID(), adminControllers.UpdateUserTier)
	adminGroup.Patch("/users/:userId/block", adminValidators.TargetUserID(), adminControllers.BlockUser)
	adminGroup.Patch("/users/:userId/unblock", adminValidators.TargetUserID(), adminControllers.UnblockUser)
	adminGroup.Delete("/users/:userId", adminValidators.TargetUserID(), adminControllers.DeleteUser)
}
