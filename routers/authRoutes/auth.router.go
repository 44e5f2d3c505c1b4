package authRoutes

import (
	authControllers "crimedge/controllers/auth"
	"crimedge/middleware"
	authValidators "crimedge/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidators.Signup(), authControllers.Signup)
	authGroup.Post("/verify/email", authControllers.VerifyEmail)
	authGroup.Post("/resend/otp", authControllers.ResendOTP)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Put("/change/password", middleware.JWTMiddleware, authControllers.ChangePassword)
}
