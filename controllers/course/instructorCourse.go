package controllers

import (
	"crimedge/config"
	"crimedge/database"
	"crimedge/middleware"
	"crimedge/models"
	courseModels "crimedge/models/course"
	"crimedge/utils"
	"log"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
)

// ownedCourse loads a course and checks that the current user may manage it.
// Instructors manage their own courses; admins manage every course.
func ownedCourse(user models.User, courseID int) (courseModels.Course, bool) {
	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return course, false
	}
	if user.Role != models.RoleAdmin && course.InstructorID != user.ID {
		return course, false
	}
	return course, true
}

// CreateCourse creates a draft course owned by the instructor
func CreateCourse(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := courseModels.Course{
		InstructorID: user.ID,
		Title:        reqData.Title,
		Description:  reqData.Description,
		Status:       courseModels.StatusDraft,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course created successfully!", course)
}

// UpdateCourse updates title/description/status of an owned course
func UpdateCourse(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	course, allowed := ownedCourse(user, courseID)
	if !allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Course not found or not yours!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Status      string `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		course.Title = reqData.Title
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.Status != "" {
		course.Status = reqData.Status
	}

	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// PublishCourse flips a course to published + ACTIVE
func PublishCourse(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	course, allowed := ownedCourse(user, courseID)
	if !allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Course not found or not yours!", nil)
	}

	course.IsPublished = true
	course.Status = courseModels.StatusActive
	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course published successfully!", course)
}

// DeleteCourse soft-deletes a course. Enrollments are intentionally left in
// place; every enrolled-course query joins on the course's is_deleted flag.
func DeleteCourse(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	course, allowed := ownedCourse(user, courseID)
	if !allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Course not found or not yours!", nil)
	}

	course.IsDeleted = true
	course.IsPublished = false
	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// GetMyCourses lists the instructor's own courses, drafts included
func GetMyCourses(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db.Model(&courseModels.Course{}).Where("is_deleted = ?", false)
	if user.Role != models.RoleAdmin {
		db = db.Where("instructor_id = ?", user.ID)
	}

	var courses []courseModels.Course
	if err := db.Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}

// UploadCourseThumbnail stores a course thumbnail image
func UploadCourseThumbnail(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	course, allowed := ownedCourse(user, courseID)
	if !allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Course not found or not yours!", nil)
	}

	file, err := c.FormFile("thumbnail")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Thumbnail file is required!", nil)
	}

	savedPath, err := utils.SaveUploadedFile(file, filepath.Join(config.AppConfig.UploadDir, "thumbnails"))
	if err != nil {
		log.Printf("Error saving thumbnail: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upload thumbnail!", nil)
	}

	course.ThumbnailURL = utils.GetFileURL(savedPath)
	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Thumbnail uploaded!", fiber.Map{
		"thumbnail_url": course.ThumbnailURL,
	})
}

// GetCourseEnrollments lists enrolled students for an owned course
func GetCourseEnrollments(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	if _, allowed := ownedCourse(user, courseID); !allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Course not found or not yours!", nil)
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

	db := database.Database.Db.Model(&courseModels.Enrollment{}).Where("course_id = ? AND is_deleted = ?", courseID, false)

	var total int64
	db.Count(&total)

	var enrollments []courseModels.Enrollment
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	type EnrollmentWithUser struct {
		courseModels.Enrollment
		UserName  string `json:"user_name"`
		UserEmail string `json:"user_email"`
	}

	response := make([]EnrollmentWithUser, 0, len(enrollments))
	for _, e := range enrollments {
		var student models.User
		database.Database.Db.Select("name, email").Where("id = ?", e.UserID).First(&student)
		response = append(response, EnrollmentWithUser{
			Enrollment: e,
			UserName:   student.Name,
			UserEmail:  student.Email,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": response,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
