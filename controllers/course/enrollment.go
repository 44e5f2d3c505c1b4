package controllers

import (
	"crimedge/database"
	"crimedge/middleware"
	"crimedge/models"
	courseModels "crimedge/models/course"
	"crimedge/utils"

	"github.com/gofiber/fiber/v2"
)

// EnrollInCourse enrolls the user in a course. FREE members are capped at
// two active enrollments; hitting the cap is a business state with an
// upgrade prompt, not an error. A downgrade never trims past enrollments,
// so the count can legitimately sit above the cap here.
func EnrollInCourse(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	// Check if course exists and is open for enrollment
	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ? AND status = ?",
		courseID, false, true, courseModels.StatusActive).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not active!", nil)
	}

	// Check if user is already enrolled
	var existingEnrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", user.ID, courseID, false).
		First(&existingEnrollment).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this course!", nil)
	}

	// Free-tier course limit
	var activeEnrollments int64
	database.Database.Db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND is_deleted = ?", user.ID, false).
		Count(&activeEnrollments)

	if !utils.CanEnroll(user.MembershipTier, activeEnrollments) {
		return middleware.JsonResponse(c, fiber.StatusOK, false, "Free plan course limit reached. Upgrade your membership to enroll in more courses.", fiber.Map{
			"limitReached": true,
			"limit":        models.FreeCourseLimit,
			"enrolled":     activeEnrollments,
		})
	}

	enrollment := courseModels.Enrollment{
		UserID:   user.ID,
		CourseID: uint(courseID),
		Status:   courseModels.EnrollmentEnrolled,
	}

	tx := database.Database.Db.Begin()
	if err := tx.Create(&enrollment).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}
	tx.Commit()

	go utils.SendEnrollmentEmail(user.Email, user.Name, course.Title)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", enrollment)
}

// GetEnrollments lists the user's enrollments with course data, paginated
func GetEnrollments(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND is_deleted = ?", user.ID, false).
		Preload("Course")

	var total int64
	db.Count(&total)

	var enrollments []courseModels.Enrollment
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	// Deleted courses leave their enrollments behind; hide those rows here
	visible := make([]courseModels.Enrollment, 0, len(enrollments))
	for _, e := range enrollments {
		if e.Course.IsDeleted {
			continue
		}
		visible = append(visible, e)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": visible,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
