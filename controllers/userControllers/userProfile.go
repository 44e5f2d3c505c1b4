package userControllers

import (
	"crimedge/config"
	"crimedge/database"
	"crimedge/middleware"
	"crimedge/models"
	"crimedge/utils"
	"log"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
)

// GetProfile returns the authenticated user's profile
func GetProfile(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	user.Password = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", user)
}

// UpdateProfile updates name and mobile for the authenticated user
func UpdateProfile(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProfile").(*struct {
		Name   string `json:"name"`
		Mobile string `json:"mobile"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Name != "" {
		user.Name = reqData.Name
	}
	if reqData.Mobile != "" {
		user.Mobile = reqData.Mobile
	}

	if err := database.Database.Db.Save(&user).Error; err != nil {
		log.Printf("Error updating profile for user %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	user.Password = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", user)
}

// UploadProfileImage stores a profile image and saves its served URL
func UploadProfileImage(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Image file is required!", nil)
	}

	savedPath, err := utils.SaveUploadedFile(file, filepath.Join(config.AppConfig.UploadDir, "profiles"))
	if err != nil {
		log.Printf("Error saving profile image: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upload image!", nil)
	}

	user.ProfileImage = utils.GetFileURL(savedPath)
	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile image uploaded!", fiber.Map{
		"profile_image": user.ProfileImage,
	})
}

// GetLoginHistory returns the user's recent logins
func GetLoginHistory(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var history []models.LoginTracking
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", user.ID, false).
		Order("timestamp desc").Limit(20).Find(&history).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch login history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login history fetched!", history)
}
