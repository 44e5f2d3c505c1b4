package controllers

import (
	"crimedge/database"
	"crimedge/middleware"
	courseModels "crimedge/models/course"

	"github.com/gofiber/fiber/v2"
)

// MarkLectureComplete records a lecture completion for the user and
// refreshes their enrollment progress
func MarkLectureComplete(c *fiber.Ctx) error {
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
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ? AND is_published = ?",
		lectureID, courseID, false, true).First(&lecture).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lecture not found!", nil)
	}

	// Idempotent: a second completion of the same lecture is a no-op
	var existing courseModels.LectureCompletion
	if err := database.Database.Db.Where("user_id = ? AND lecture_id = ? AND is_deleted = ?", user.ID, lectureID, false).
		First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Lecture already completed!", existing)
	}

	completion := courseModels.LectureCompletion{
		UserID:    user.ID,
		CourseID:  uint(courseID),
		LectureID: uint(lectureID),
		Status:    "COMPLETED",
	}
	if err := database.Database.Db.Create(&completion).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark lecture complete!", nil)
	}

	updateEnrollmentProgress(user.ID, uint(courseID))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lecture marked complete!", completion)
}

// GetUserProgress returns lesson-wise progress in a course
func GetUserProgress(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", user.ID, courseID, false).
		First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	// Completed lecture ids
	var completions []courseModels.LectureCompletion
	database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", user.ID, courseID, false).
		Find(&completions)

	completedIDs := make([]uint, len(completions))
	for i, cc := range completions {
		completedIDs[i] = cc.LectureID
	}

	// Lesson-wise progress
	var lessons []courseModels.Lesson
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("order_index asc").Find(&lessons)

	type LessonProgress struct {
		LessonID          uint    `json:"lesson_id"`
		LessonTitle       string  `json:"lesson_title"`
		TotalLectures     int64   `json:"total_lectures"`
		CompletedLectures int64   `json:"completed_lectures"`
		Progress          float64 `json:"progress"`
	}

	lessonProgress := make([]LessonProgress, len(lessons))
	for i, lesson := range lessons {
		var totalLectures int64
		var completedLectures int64

		database.Database.Db.Model(&courseModels.Lecture{}).
			Where("lesson_id = ? AND is_deleted = ? AND is_published = ?", lesson.ID, false, true).
			Count(&totalLectures)
		database.Database.Db.Model(&courseModels.LectureCompletion{}).
			Joins("JOIN lectures ON lecture_completions.lecture_id = lectures.id").
			Where("lecture_completions.user_id = ? AND lectures.lesson_id = ? AND lecture_completions.is_deleted = ?",
				user.ID, lesson.ID, false).
			Count(&completedLectures)

		progress := float64(0)
		if totalLectures > 0 {
			progress = float64(completedLectures) / float64(totalLectures) * 100
		}

		lessonProgress[i] = LessonProgress{
			LessonID:          lesson.ID,
			LessonTitle:       lesson.Title,
			TotalLectures:     totalLectures,
			CompletedLectures: completedLectures,
			Progress:          progress,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"enrollment":      enrollment,
		"completed_ids":   completedIDs,
		"lesson_progress": lessonProgress,
	})
}

// updateEnrollmentProgress recomputes an enrollment's progress after a
// lecture completion
func updateEnrollmentProgress(userID uint, courseID uint) {
	var totalLectures int64
	var completedLectures int64

	database.Database.Db.Model(&courseModels.Lecture{}).
		Where("course_id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).
		Count(&totalLectures)
	database.Database.Db.Model(&courseModels.LectureCompletion{}).
		Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
		Count(&completedLectures)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
		First(&enrollment).Error; err != nil {
		return
	}

	enrollment.CompletedLectures = int(completedLectures)
	enrollment.TotalLectures = int(totalLectures)

	if totalLectures > 0 {
		enrollment.Progress = float64(completedLectures) / float64(totalLectures) * 100
	}

	if enrollment.Progress >= 100 {
		enrollment.Status = courseModels.EnrollmentCompleted
		now := enrollment.UpdatedAt
		enrollment.CompletedAt = &now
	} else if enrollment.Progress > 0 {
		enrollment.Status = courseModels.EnrollmentInProgress
	}

	database.Database.Db.Save(&enrollment)
}
