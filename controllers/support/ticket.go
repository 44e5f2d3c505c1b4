package supportController

import (
	"crimedge/database"
	"crimedge/middleware"
	"crimedge/models"

	"github.com/gofiber/fiber/v2"
)

// CreateTicket opens a support ticket for the authenticated user
func CreateTicket(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedTicket").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Category    string `json:"category"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	ticket := models.SupportTicket{
		UserID:      user.ID,
		Title:       reqData.Title,
		Description: reqData.Description,
		Status:      "open",
	}
	if reqData.Category != "" {
		ticket.Category = reqData.Category
	}

	if err := database.Database.Db.Create(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create support ticket!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Support ticket created successfully!", ticket)
}

// GetMyTickets lists the user's own tickets
func GetMyTickets(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var tickets []models.SupportTicket
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", user.ID, false).
		Order("created_at desc").Find(&tickets).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tickets!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tickets fetched successfully!", tickets)
}

// AdminGetTickets lists all tickets, filterable by status
func AdminGetTickets(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	status := c.Query("status", "")
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.SupportTicket{}).Where("is_deleted = ?", false)
	if status != "" {
		db = db.Where("status = ?", status)
	}

	var total int64
	db.Count(&total)

	var tickets []models.SupportTicket
	if err := db.Order("created_at desc").Offset(offset).Limit(limit).Find(&tickets).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tickets!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tickets fetched successfully!", fiber.Map{
		"tickets": tickets,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminRespondTicket stores a response and closes or updates the ticket
func AdminRespondTicket(c *fiber.Ctx) error {
	ticketID := c.Locals("ticketID").(int)

	reqData := new(struct {
		Response string `json:"response"`
		Status   string `json:"status"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var ticket models.SupportTicket
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", ticketID, false).First(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Ticket not found!", nil)
	}

	if reqData.Response != "" {
		ticket.Response = reqData.Response
	}
	if reqData.Status != "" {
		ticket.Status = reqData.Status
	}

	if err := database.Database.Db.Save(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update ticket!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ticket updated successfully!", ticket)
}
