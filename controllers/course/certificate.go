package controllers

import (
	"crimedge/database"
	"crimedge/middleware"
	"crimedge/models"
	courseModels "crimedge/models/course"
	"crimedge/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RequestCertificate opens a certificate request for a completed course
func RequestCertificate(c *fiber.Ctx) error {
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

	if enrollment.Status != courseModels.EnrollmentCompleted {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course is not completed yet!", nil)
	}

	var existing courseModels.CertificateRequest
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ? AND status IN ?",
		user.ID, courseID, false, []string{"PENDING", "APPROVED"}).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Certificate already requested!", nil)
	}

	request := courseModels.CertificateRequest{
		UserID:       user.ID,
		CourseID:     uint(courseID),
		EnrollmentID: enrollment.ID,
		Status:       "PENDING",
		RequestedAt:  time.Now(),
	}
	if err := database.Database.Db.Create(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to request certificate!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate requested!", request)
}

// GetUserCertificates lists the user's issued certificates
func GetUserCertificates(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var certs []courseModels.Certificate
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", user.ID, false).
		Order("issued_at desc").Find(&certs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched!", certs)
}

// AdminGetPendingCertificates lists open certificate requests
func AdminGetPendingCertificates(c *fiber.Ctx) error {
	var requests []courseModels.CertificateRequest
	if err := database.Database.Db.Where("status = ? AND is_deleted = ?", "PENDING", false).
		Order("requested_at asc").Find(&requests).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch requests!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending requests fetched!", requests)
}

// AdminApproveCertificate approves a request and issues the certificate
func AdminApproveCertificate(c *fiber.Ctx) error {
	admin, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	requestID := c.Locals("requestID").(int)

	var request courseModels.CertificateRequest
	if err := database.Database.Db.Where("id = ? AND status = ? AND is_deleted = ?", requestID, "PENDING", false).
		First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Request not found!", nil)
	}

	now := time.Now()
	request.Status = "APPROVED"
	request.ApprovedAt = &now
	request.ApprovedBy = &admin.ID

	certificate := courseModels.Certificate{
		UserID:            request.UserID,
		CourseID:          request.CourseID,
		CertificateNumber: utils.GenerateCertificateNumber(),
		IssuedAt:          now,
	}

	tx := database.Database.Db.Begin()
	if err := tx.Save(&request).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to approve request!", nil)
	}
	if err := tx.Create(&certificate).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue certificate!", nil)
	}
	tx.Commit()

	var student models.User
	var course courseModels.Course
	database.Database.Db.Where("id = ?", request.UserID).First(&student)
	database.Database.Db.Where("id = ?", request.CourseID).First(&course)
	go utils.SendCertificateEmail(student.Email, student.Name, course.Title, certificate.CertificateNumber)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate approved and issued!", certificate)
}

// AdminRejectCertificate rejects a pending request with a reason
func AdminRejectCertificate(c *fiber.Ctx) error {
	_, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	requestID := c.Locals("requestID").(int)

	reqData := new(struct {
		Reason string `json:"reason"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var request courseModels.CertificateRequest
	if err := database.Database.Db.Where("id = ? AND status = ? AND is_deleted = ?", requestID, "PENDING", false).
		First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Request not found!", nil)
	}

	request.Status = "REJECTED"
	request.RejectionReason = reqData.Reason
	if err := database.Database.Db.Save(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reject request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate request rejected.", request)
}
