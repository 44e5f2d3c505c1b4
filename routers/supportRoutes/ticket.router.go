package supportRoutes

import (
	supportControllers "crimedge/controllers/support"
	"crimedge/middleware"
	"crimedge/models"
	supportValidators "crimedge/validators/support"

	"github.com/gofiber/fiber/v2"
)

func SetupSupportRoutes(app *fiber.App) {
	group := app.Group("/support", middleware.JWTMiddleware)

	group.Post("/ticket", supportValidators.CreateTicket(), supportControllers.CreateTicket)
	group.Get("/ticket", supportControllers.GetMyTickets)

	adminGroup := app.Group("/admin/support",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleAdmin),
	)

	adminGroup.Get("/tickets", supportControllers.AdminGetTickets)
	adminGroup.Patch("/tickets/:ticketId", supportValidators.TicketID(), supportControllers.AdminRespondTicket)
}
