package main

import (
	"log"

	"crimedge/config"
	"crimedge/database"
	adminRoutes "crimedge/routers/adminRoutes"
	announcementRoutes "crimedge/routers/announcementRoutes"
	authRoutes "crimedge/routers/authRoutes"
	courseRoutes "crimedge/routers/courseRoutes"
	membershipRoutes "crimedge/routers/membershipRoutes"
	quizRoutes "crimedge/routers/quizRoutes"
	supportRoutes "crimedge/routers/supportRoutes"
	userRoutes "crimedge/routers/userRoutes"
	"crimedge/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Uploaded thumbnails, lecture files and profile images
	app.Static("/uploads", config.AppConfig.UploadDir)

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupCertificateAdminRoutes(app)
	quizRoutes.SetupQuizRoutes(app)
	announcementRoutes.SetupAnnouncementRoutes(app)
	membershipRoutes.SetupMembershipRoutes(app)
	adminRoutes.SetupAdminRoutes(app)
	supportRoutes.SetupSupportRoutes(app)

	utils.InitializeMembershipScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
