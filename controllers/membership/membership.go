package membershipController

import (
	"crimedge/database"
	"crimedge/middleware"
	"crimedge/models"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetPlans lists active membership plans for members
func GetPlans(c *fiber.Ctx) error {
	var plans []models.MembershipPlan
	if err := database.Database.Db.Where("is_active = ? AND is_deleted = ?", true, false).
		Order("price asc").Find(&plans).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch plans!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Plans fetched successfully!", plans)
}

// Subscribe puts the user on a plan and lifts their membership tier.
// Concurrent edits follow last-write-wins; there is no optimistic lock.
func Subscribe(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	planID := c.Locals("planID").(int)

	var plan models.MembershipPlan
	if err := database.Database.Db.Where("id = ? AND is_active = ? AND is_deleted = ?", planID, true, false).
		First(&plan).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Plan not found!", nil)
	}

	// Cancel any existing active membership before starting the new one
	database.Database.Db.Model(&models.Membership{}).
		Where("user_id = ? AND status = ? AND is_deleted = ?", user.ID, models.MembershipActive, false).
		Update("status", models.MembershipCancelled)

	now := time.Now()
	expiresAt := now.AddDate(0, plan.DurationMonths, 0)

	membership := models.Membership{
		UserID:       user.ID,
		PlanID:       plan.ID,
		Tier:         plan.Tier,
		Price:        plan.Price,
		Status:       models.MembershipActive,
		SubscribedAt: now,
		ExpiresAt:    &expiresAt,
	}

	tx := database.Database.Db.Begin()
	if err := tx.Create(&membership).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to subscribe!", nil)
	}
	if err := tx.Model(&models.User{}).Where("id = ?", user.ID).
		Update("membership_tier", plan.Tier).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to subscribe!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subscribed successfully!", membership)
}

// Cancel drops the user back to the FREE tier. Enrollments made while on
// the paid tier stay accessible; the course limit only applies to new
// enrollment attempts.
func Cancel(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var membership models.Membership
	if err := database.Database.Db.Where("user_id = ? AND status = ? AND is_deleted = ?", user.ID, models.MembershipActive, false).
		First(&membership).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No active membership found!", nil)
	}

	membership.Status = models.MembershipCancelled

	tx := database.Database.Db.Begin()
	if err := tx.Save(&membership).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to cancel membership!", nil)
	}
	if err := tx.Model(&models.User{}).Where("id = ?", user.ID).
		Update("membership_tier", models.TierFree).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to cancel membership!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Membership cancelled.", membership)
}

// GetMyMembership returns the user's current membership, if any
func GetMyMembership(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var membership models.Membership
	if err := database.Database.Db.Where("user_id = ? AND status = ? AND is_deleted = ?", user.ID, models.MembershipActive, false).
		Preload("Plan").First(&membership).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "No active membership.", fiber.Map{
			"tier": user.MembershipTier,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Membership fetched successfully!", membership)
}

// AdminCreatePlan creates a membership plan
func AdminCreatePlan(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPlan").(*struct {
		Tier           string  `json:"tier"`
		Name           string  `json:"name"`
		Description    string  `json:"description"`
		Price          float64 `json:"price"`
		DurationMonths int     `json:"duration_months"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	plan := models.MembershipPlan{
		Tier:           reqData.Tier,
		Name:           reqData.Name,
		Description:    reqData.Description,
		Price:          reqData.Price,
		DurationMonths: reqData.DurationMonths,
		IsActive:       true,
	}

	if err := database.Database.Db.Create(&plan).Error; err != nil {
		log.Printf("Error creating plan: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create plan!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Plan created successfully!", plan)
}

// AdminUpdatePlan edits a plan in place (last-write-wins)
func AdminUpdatePlan(c *fiber.Ctx) error {
	planID := c.Locals("planID").(int)

	var plan models.MembershipPlan
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", planID, false).First(&plan).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Plan not found!", nil)
	}

	reqData, ok := c.Locals("validatedPlan").(*struct {
		Tier           string  `json:"tier"`
		Name           string  `json:"name"`
		Description    string  `json:"description"`
		Price          float64 `json:"price"`
		DurationMonths int     `json:"duration_months"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	plan.Tier = reqData.Tier
	plan.Name = reqData.Name
	plan.Description = reqData.Description
	plan.Price = reqData.Price
	plan.DurationMonths = reqData.DurationMonths

	if err := database.Database.Db.Save(&plan).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update plan!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Plan updated successfully!", plan)
}

// AdminDeletePlan retires a plan; existing memberships run to expiry
func AdminDeletePlan(c *fiber.Ctx) error {
	planID := c.Locals("planID").(int)

	if err := database.Database.Db.Model(&models.MembershipPlan{}).
		Where("id = ?", planID).
		Updates(map[string]interface{}{"is_deleted": true, "is_active": false}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete plan!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Plan deleted successfully!", nil)
}

// AdminGetMemberships lists memberships for admin, filterable by status
func AdminGetMemberships(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	status := c.Query("status", models.MembershipActive)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db

	// Auto-expire lapsed memberships before listing
	now := time.Now()
	db.Model(&models.Membership{}).
		Where("status = ? AND expires_at IS NOT NULL AND expires_at < ?", models.MembershipActive, now).
		Update("status", models.MembershipExpired)

	query := db.Model(&models.Membership{}).Where("is_deleted = ?", false)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var memberships []models.Membership
	if err := query.Preload("Plan").Offset(offset).Limit(limit).
		Order("expires_at asc").Find(&memberships).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch memberships!", nil)
	}

	type MembershipWithUser struct {
		models.Membership
		UserName  string `json:"user_name"`
		UserEmail string `json:"user_email"`
	}

	response := make([]MembershipWithUser, 0, len(memberships))
	for _, m := range memberships {
		var member models.User
		db.Select("name, email").Where("id = ?", m.UserID).First(&member)
		response = append(response, MembershipWithUser{
			Membership: m,
			UserName:   member.Name,
			UserEmail:  member.Email,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Memberships fetched!", fiber.Map{
		"memberships": response,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
