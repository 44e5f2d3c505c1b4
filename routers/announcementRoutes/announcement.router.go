package announcementRoutes

import (
	announcementControllers "crimedge/controllers/announcement"
	"crimedge/middleware"
	"crimedge/models"
	announcementValidators "crimedge/validators/announcement"

	"github.com/gofiber/fiber/v2"
)

func SetupAnnouncementRoutes(app *fiber.App) {
	group := app.Group("/announcement", middleware.JWTMiddleware)

	group.Get("/", announcementControllers.GetAnnouncements)
	group.Post("/",
		middleware.RequireRole(models.RoleInstructor, models.RoleAdmin),
		announcementValidators.CreateAnnouncement(),
		announcementControllers.CreateAnnouncement,
	)
	group.Delete("/:announcementId",
		middleware.RequireRole(models.RoleInstructor, models.RoleAdmin),
		announcementValidators.AnnouncementID(),
		announcementControllers.DeleteAnnouncement,
	)
}
