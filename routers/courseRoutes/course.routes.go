package courseRoutes

import (
	courseControllers "crimedge/controllers/course"
	"crimedge/middleware"
	"crimedge/models"
	courseValidators "crimedge/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course", middleware.JWTMiddleware)

	// static paths before the :courseId wildcard
	courseGroup.Get("/enrollments", courseControllers.GetEnrollments)
	courseGroup.Get("/certificates", courseControllers.GetUserCertificates)

	courseGroup.Get("/", courseControllers.GetAllCourses)
	courseGroup.Get("/:courseId", courseValidators.CourseID(), courseControllers.GetCourseDetails)
	courseGroup.Post("/:courseId/enroll", courseValidators.CourseID(), courseControllers.EnrollInCourse)
	courseGroup.Get("/:courseId/progress", courseValidators.CourseID(), courseControllers.GetUserProgress)
	courseGroup.Get("/:courseId/lecture/:lectureId", courseValidators.CourseID(), courseValidators.LectureID(), courseControllers.GetLecture)
	courseGroup.Post("/:courseId/lecture/:lectureId/complete", courseValidators.CourseID(), courseValidators.LectureID(), courseControllers.MarkLectureComplete)
	courseGroup.Post("/:courseId/certificate/request", courseValidators.CourseID(), courseControllers.RequestCertificate)

	instructorGroup := app.Group("/instructor/course",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleInstructor, models.RoleAdmin),
	)

	instructorGroup.Post("/", courseValidators.CreateCourse(), courseControllers.CreateCourse)
	instructorGroup.Get("/", courseControllers.GetMyCourses)
	instructorGroup.Put("/:courseId", courseValidators.CourseID(), courseValidators.UpdateCourse(), courseControllers.UpdateCourse)
	instructorGroup.Patch("/:courseId/publish", courseValidators.CourseID(), courseControllers.PublishCourse)
	instructorGroup.Delete("/:courseId", courseValidators.CourseID(), courseControllers.DeleteCourse)
	instructorGroup.Post("/:courseId/thumbnail", courseValidators.CourseID(), courseControllers.UploadCourseThumbnail)
	instructorGroup.Get("/:courseId/enrollments", courseValidators.CourseID(), courseControllers.GetCourseEnrollments)

	instructorGroup.Post("/:courseId/lesson", courseValidators.CourseID(), courseValidators.CreateLesson(), courseControllers.CreateLesson)
	instructorGroup.Put("/:courseId/lesson/:lessonId", courseValidators.CourseID(), courseValidators.LessonID(), courseValidators.CreateLesson(), courseControllers.UpdateLesson)
	instructorGroup.Delete("/:courseId/lesson/:lessonId", courseValidators.CourseID(), courseValidators.LessonID(), courseControllers.DeleteLesson)

	instructorGroup.Post("/:courseId/lesson/:lessonId/lecture", courseValidators.CourseID(), courseValidators.LessonID(), courseValidators.CreateLecture(), courseControllers.CreateLecture)
	instructorGroup.Post("/:courseId/lecture/:lectureId/file", courseValidators.CourseID(), courseValidators.LectureID(), courseControllers.UploadLectureFile)
	instructorGroup.Patch("/:courseId/lecture/:lectureId/publish", courseValidators.CourseID(), courseValidators.LectureID(), courseControllers.PublishLecture)
	instructorGroup.Delete("/:courseId/lecture/:lectureId", courseValidators.CourseID(), courseValidators.LectureID(), courseControllers.DeleteLecture)
}
