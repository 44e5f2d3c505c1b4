package adminController

import (
	"crimedge/database"
	"crimedge/middleware"
	"crimedge/models"
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetUsers lists users with optional search and role filter, paginated
func GetUsers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	search := c.Query("search", "")
	role := c.Query("role", "")
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.User{}).Where("is_deleted = ?", false)
	if search != "" {
		like := "%" + search + "%"
		db = db.Where("name LIKE ? OR email LIKE ?", like, like)
	}
	if role != "" {
		db = db.Where("role = ?", role)
	}

	var total int64
	db.Count(&total)

	var users []models.User
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	for i := range users {
		users[i].Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", fiber.Map{
		"users": users,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// UpdateUserRole changes a user's role within the closed role set
func UpdateUserRole(c *fiber.Ctx) error {
	userID := c.Locals("targetUserID").(int)

	reqData := new(struct {
		Role string `json:"role"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if !middleware.HasRole(reqData.Role, models.RoleUser, models.RoleInstructor, models.RoleAdmin) {
		return middleware.ValidationErrorResponse(c, map[string]string{"role": "Role must be USER, INSTRUCTOR or ADMIN!"})
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	user.Role = reqData.Role
	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update role!", nil)
	}

	user.Password = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Role updated successfully!", user)
}

// UpdateUserTier changes a user's membership tier by admin action. A
// downgrade to FREE never trims existing enrollments.
func UpdateUserTier(c *fiber.Ctx) error {
	userID := c.Locals("targetUserID").(int)

	reqData := new(struct {
		Tier string `json:"tier"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Tier != models.TierFree && reqData.Tier != models.TierBasic && reqData.Tier != models.TierPremium {
		return middleware.ValidationErrorResponse(c, map[string]string{"tier": "Tier must be FREE, BASIC or PREMIUM!"})
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	user.MembershipTier = reqData.Tier
	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update tier!", nil)
	}

	user.Password = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Membership tier updated successfully!", user)
}

// BlockUser temporarily blocks a user from logging in
func BlockUser(c *fiber.Ctx) error {
	userID := c.Locals("targetUserID").(int)

	reqData := new(struct {
		Hours int `json:"hours"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if reqData.Hours <= 0 {
		reqData.Hours = 24
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	until := time.Now().Add(time.Duration(reqData.Hours) * time.Hour)
	user.IsBlocked = true
	user.BlockedUntil = &until
	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to block user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User blocked.", fiber.Map{
		"blocked_until": until,
	})
}

// UnblockUser lifts a block
func UnblockUser(c *fiber.Ctx) error {
	userID := c.Locals("targetUserID").(int)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	user.IsBlocked = false
	user.BlockedUntil = nil
	user.FailedLoginAttempts = 0
	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to unblock user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User unblocked.", nil)
}

// DeleteUser soft-deletes a user account
func DeleteUser(c *fiber.Ctx) error {
	userID := c.Locals("targetUserID").(int)

	if err := database.Database.Db.Model(&models.User{}).
		Where("id = ?", userID).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted.", nil)
}
