package announcementController

import (
	"crimedge/database"
	"crimedge/middleware"
	"crimedge/models"
	"crimedge/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

// CreateAnnouncement posts an announcement targeted at an audience tag,
// optionally scoped to one course
func CreateAnnouncement(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedAnnouncement").(*struct {
		Title    string `json:"title"`
		Body     string `json:"body"`
		Audience string `json:"audience"`
		CourseID *uint  `json:"course_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	announcement := models.Announcement{
		AuthorID: user.ID,
		Title:    reqData.Title,
		Body:     reqData.Body,
		Audience: reqData.Audience,
		CourseID: reqData.CourseID,
	}

	if err := database.Database.Db.Create(&announcement).Error; err != nil {
		log.Printf("Error creating announcement: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create announcement!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Announcement created successfully!", announcement)
}

// GetAnnouncements returns the announcements visible to the viewer.
// Members get the tier/course filter, instructors get a mine/others
// partition of the full list, admins get the unfiltered list.
func GetAnnouncements(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var all []models.Announcement
	if err := database.Database.Db.Where("is_deleted = ?", false).
		Order("created_at desc").Find(&all).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch announcements!", nil)
	}

	switch user.Role {
	case models.RoleInstructor:
		mine, others := utils.PartitionAnnouncementsForInstructor(all, user.ID)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Announcements fetched successfully!", fiber.Map{
			"mine":   mine,
			"others": others,
		})

	case models.RoleAdmin:
		// Admins see everything unfiltered
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Announcements fetched successfully!", fiber.Map{
			"announcements": all,
		})

	default:
		var courseScope *uint
		if id := c.QueryInt("courseId", 0); id > 0 {
			scoped := uint(id)
			courseScope = &scoped
		}
		visible := utils.FilterAnnouncementsForMember(all, user.MembershipTier, courseScope)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Announcements fetched successfully!", fiber.Map{
			"announcements": visible,
		})
	}
}

// DeleteAnnouncement soft-deletes an announcement. Authors delete their
// own; admins delete any.
func DeleteAnnouncement(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	announcementID := c.Locals("announcementID").(int)

	var announcement models.Announcement
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", announcementID, false).
		First(&announcement).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Announcement not found!", nil)
	}

	if user.Role != models.RoleAdmin && announcement.AuthorID != user.ID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only delete your own announcements!", nil)
	}

	announcement.IsDeleted = true
	if err := database.Database.Db.Save(&announcement).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete announcement!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Announcement deleted successfully!", nil)
}
