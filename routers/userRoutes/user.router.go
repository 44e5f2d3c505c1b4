package userRoutes

import (
	userControllers "crimedge/controllers/userControllers"
	"crimedge/middleware"
	userValidators "crimedge/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.JWTMiddleware, userControllers.GetProfile)
	userGroup.Put("/profile", middleware.JWTMiddleware, userValidators.UpdateProfile(), userControllers.UpdateProfile)
	userGroup.Post("/profile/image", middleware.JWTMiddleware, userControllers.UploadProfileImage)
	userGroup.Get("/login/history", middleware.JWTMiddleware, userControllers.GetLoginHistory)
}
