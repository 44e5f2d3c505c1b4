package controllers

import (
	"crimedge/config"
	"crimedge/database"
	"crimedge/middleware"
	courseModels "crimedge/models/course"
	"crimedge/utils"
	"log"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
)

// CreateLesson adds an ordered lesson to an owned course
func CreateLesson(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	if _, allowed := ownedCourse(user, courseID); !allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Course not found or not yours!", nil)
	}

	reqData, ok := c.Locals("validatedLesson").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		OrderIndex  int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lesson := courseModels.Lesson{
		CourseID:    uint(courseID),
		Title:       reqData.Title,
		Description: reqData.Description,
		OrderIndex:  reqData.OrderIndex,
	}

	if err := database.Database.Db.Create(&lesson).Error; err != nil {
		log.Printf("Error creating lesson: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson created successfully!", lesson)
}

// UpdateLesson edits a lesson of an owned course
func UpdateLesson(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	lessonID := c.Locals("lessonID").(int)
	if _, allowed := ownedCourse(user, courseID); !allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Course not found or not yours!", nil)
	}

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", lessonID, courseID, false).
		First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	reqData, ok := c.Locals("validatedLesson").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		OrderIndex  int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lesson.Title = reqData.Title
	lesson.Description = reqData.Description
	lesson.OrderIndex = reqData.OrderIndex

	if err := database.Database.Db.Save(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}

// DeleteLesson soft-deletes a lesson and its lectures
func DeleteLesson(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	lessonID := c.Locals("lessonID").(int)
	if _, allowed := ownedCourse(user, courseID); !allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Course not found or not yours!", nil)
	}

	tx := database.Database.Db.Begin()
	if err := tx.Model(&courseModels.Lesson{}).Where("id = ? AND course_id = ?", lessonID, courseID).
		Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
	}
	if err := tx.Model(&courseModels.Lecture{}).Where("lesson_id = ?", lessonID).
		Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}

// CreateLecture adds a lecture to a lesson; PDF/VIDEO types accept a file upload
func CreateLecture(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	lessonID := c.Locals("lessonID").(int)
	if _, allowed := ownedCourse(user, courseID); !allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Course not found or not yours!", nil)
	}

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", lessonID, courseID, false).
		First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	reqData, ok := c.Locals("validatedLecture").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		ContentType string `json:"content_type"`
		TextContent string `json:"text_content"`
		OrderIndex  int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lecture := courseModels.Lecture{
		CourseID:    uint(courseID),
		LessonID:    uint(lessonID),
		Title:       reqData.Title,
		Description: reqData.Description,
		ContentType: reqData.ContentType,
		TextContent: reqData.TextContent,
		OrderIndex:  reqData.OrderIndex,
	}

	if err := database.Database.Db.Create(&lecture).Error; err != nil {
		log.Printf("Error creating lecture: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lecture!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lecture created successfully!", lecture)
}

// UploadLectureFile attaches a PDF or video file to a lecture
func UploadLectureFile(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	lectureID := c.Locals("lectureID").(int)
	if _, allowed := ownedCourse(user, courseID); !allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Course not found or not yours!", nil)
	}

	var lecture courseModels.Lecture
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", lectureID, courseID, false).
		First(&lecture).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lecture not found!", nil)
	}

	if lecture.ContentType != courseModels.LecturePDF && lecture.ContentType != courseModels.LectureVideo {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Lecture does not take a file!", nil)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File is required!", nil)
	}

	savedPath, err := utils.SaveUploadedFile(file, filepath.Join(config.AppConfig.UploadDir, "lectures"))
	if err != nil {
		log.Printf("Error saving lecture file: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upload file!", nil)
	}

	lecture.FileURL = utils.GetFileURL(savedPath)
	if err := database.Database.Db.Save(&lecture).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lecture!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lecture file uploaded!", fiber.Map{
		"file_url": lecture.FileURL,
	})
}

// PublishLecture makes a lecture visible to enrolled users
func PublishLecture(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	lectureID := c.Locals("lectureID").(int)
	if _, allowed := ownedCourse(user, courseID); !allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Course not found or not yours!", nil)
	}

	if err := database.Database.Db.Model(&courseModels.Lecture{}).
		Where("id = ? AND course_id = ? AND is_deleted = ?", lectureID, courseID, false).
		Update("is_published", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish lecture!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lecture published successfully!", nil)
}

// DeleteLecture soft-deletes a lecture
func DeleteLecture(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	lectureID := c.Locals("lectureID").(int)
	if _, allowed := ownedCourse(user, courseID); !allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Course not found or not yours!", nil)
	}

	if err := database.Database.Db.Model(&courseModels.Lecture{}).
		Where("id = ? AND course_id = ?", lectureID, courseID).
		Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lecture!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lecture deleted successfully!", nil)
}
