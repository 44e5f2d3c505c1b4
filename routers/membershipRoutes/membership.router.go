package membershipRoutes

import (
	membershipControllers "crimedge/controllers/membership"
	"crimedge/middleware"
	"crimedge/models"
	membershipValidators "crimedge/validators/membership"

	"github.com/gofiber/fiber/v2"
)

func SetupMembershipRoutes(app *fiber.App) {
	group := app.Group("/membership", middleware.JWTMiddleware)

	group.Get("/plans", membershipControllers.GetPlans)
	group.Get("/my", membershipControllers.GetMyMembership)
	group.Post("/subscribe/:planId", membershipValidators.PlanID(), membershipControllers.Subscribe)
	group.Post("/cancel", membershipControllers.Cancel)

	adminGroup := app.Group("/admin/membership",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleAdmin),
	)

	adminGroup.Post("/plan", membershipValidators.Plan(), membershipControllers.AdminCreatePlan)
	adminGroup.Put("/plan/:planId", membershipValidators.PlanID(), membershipValidators.Plan(), membershipControllers.AdminUpdatePlan)
	adminGroup.Delete("/plan/:planId", membershipValidators.PlanID(), membershipControllers.AdminDeletePlan)
	adminGroup.Get("/", membershipControllers.AdminGetMemberships)
}
