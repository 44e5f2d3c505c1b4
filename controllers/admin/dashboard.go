package adminController

import (
	"crimedge/database"
	"crimedge/middleware"
	"crimedge/models"
	courseModels "crimedge/models/course"
	quizModels "crimedge/models/quiz"

	"github.com/gofiber/fiber/v2"
)

// DashboardStats returns platform-wide counts for the admin dashboard
func DashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers, totalInstructors, totalCourses, publishedCourses int64
	var totalEnrollments, completedEnrollments, totalQuizzes, totalAttempts int64
	var freeMembers, basicMembers, premiumMembers int64

	db.Model(&models.User{}).Where("is_deleted = ? AND role = ?", false, models.RoleUser).Count(&totalUsers)
	db.Model(&models.User{}).Where("is_deleted = ? AND role = ?", false, models.RoleInstructor).Count(&totalInstructors)
	db.Model(&courseModels.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)
	db.Model(&courseModels.Course{}).Where("is_deleted = ? AND is_published = ?", false, true).Count(&publishedCourses)
	db.Model(&courseModels.Enrollment{}).Where("is_deleted = ?", false).Count(&totalEnrollments)
	db.Model(&courseModels.Enrollment{}).Where("is_deleted = ? AND status = ?", false, courseModels.EnrollmentCompleted).Count(&completedEnrollments)
	db.Model(&quizModels.Quiz{}).Where("is_deleted = ?", false).Count(&totalQuizzes)
	db.Model(&quizModels.QuizAttempt{}).Where("is_deleted = ?", false).Count(&totalAttempts)
	db.Model(&models.User{}).Where("is_deleted = ? AND membership_tier = ?", false, models.TierFree).Count(&freeMembers)
	db.Model(&models.User{}).Where("is_deleted = ? AND membership_tier = ?", false, models.TierBasic).Count(&basicMembers)
	db.Model(&models.User{}).Where("is_deleted = ? AND membership_tier = ?", false, models.TierPremium).Count(&premiumMembers)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched!", fiber.Map{
		"users": fiber.Map{
			"total":       totalUsers,
			"instructors": totalInstructors,
			"tiers": fiber.Map{
				"free":    freeMembers,
				"basic":   basicMembers,
				"premium": premiumMembers,
			},
		},
		"courses": fiber.Map{
			"total":     totalCourses,
			"published": publishedCourses,
		},
		"enrollments": fiber.Map{
			"total":     totalEnrollments,
			"completed": completedEnrollments,
		},
		"quizzes": fiber.Map{
			"total":    totalQuizzes,
			"attempts": totalAttempts,
		},
	})
}
