package controllers

import (
	"crimedge/database"
	"crimedge/middleware"
	courseModels "crimedge/models/course"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists published courses for members, paginated
func GetAllCourses(c *fiber.Ctx) error {
	_, ok := middleware.CurrentUser(c)
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

	db := database.Database.Db.Model(&courseModels.Course{}).
		Where("is_deleted = ? AND is_published = ? AND status = ?", false, true, courseModels.StatusActive)

	var total int64
	db.Count(&total)

	var courses []courseModels.Course
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetCourseDetails returns one course with its lessons. Lecture content is
// only included for enrolled users; browsing members see the outline.
func GetCourseDetails(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var lessons []courseModels.Lesson
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("order_index asc").Find(&lessons)

	// Enrollment decides whether lecture content is visible
	var enrollment courseModels.Enrollment
	enrolled := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", user.ID, courseID, false).
		First(&enrollment).Error == nil

	type LessonWithLectures struct {
		courseModels.Lesson
		Lectures []courseModels.Lecture `json:"lectures"`
	}

	detail := make([]LessonWithLectures, 0, len(lessons))
	for _, lesson := range lessons {
		entry := LessonWithLectures{Lesson: lesson}
		if enrolled {
			database.Database.Db.Where("lesson_id = ? AND is_deleted = ? AND is_published = ?", lesson.ID, false, true).
				Order("order_index asc").Find(&entry.Lectures)
		}
		detail = append(detail, entry)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":   course,
		"lessons":  detail,
		"enrolled": enrolled,
	})
}

// GetLecture returns one lecture's full content for an enrolled user
func GetLecture(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	lectureID := c.Locals("lectureID").(int)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", user.ID, courseID, false).
		First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	var lecture courseModels.Lecture
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ? AND is_published = ?", lectureID, courseID, false, true).
		First(&lecture).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lecture not found!", nil)
	}

	// Completion flag for the viewing user
	var completion courseModels.LectureCompletion
	completed := database.Database.Db.Where("user_id = ? AND lecture_id = ? AND is_deleted = ?", user.ID, lectureID, false).
		First(&completion).Error == nil

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lecture fetched successfully!", fiber.Map{
		"lecture":   lecture,
		"completed": completed,
	})
}
