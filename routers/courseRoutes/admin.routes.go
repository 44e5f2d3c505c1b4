package courseRoutes

import (
	courseControllers "crimedge/controllers/course"
	"crimedge/middleware"
	"crimedge/models"
	courseValidators "crimedge/validators/course"

	"github.com/gofiber/fiber/v2"
)

// Certificate review endpoints, admin only
func SetupCertificateAdminRoutes(app *fiber.App) {
	certGroup := app.Group("/admin/certificates",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleAdmin),
	)

	certGroup.Get("/pending", courseControllers.AdminGetPendingCertificates)
	certGroup.Patch("/:requestId/approve", courseValidators.RequestID(), courseControllers.AdminApproveCertificate)
	certGroup.Patch("/:requestId/reject", courseValidators.RequestID(), courseControllers.AdminRejectCertificate)
}
