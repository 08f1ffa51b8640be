package content

import (
	"strings"

	"minhas-backend/internal/audit"
	"minhas-backend/internal/database"
	"minhas-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ClientResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Feedback string `json:"feedback"`
	Image    string `json:"image"`
	Rating   int    `json:"rating"`
}

type CreateClientRequest struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Feedback string `json:"feedback"`
	Image    string `json:"image"`
	Rating   int    `json:"rating"`
}

type UpdateClientRequest struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Feedback *string `json:"feedback"`
	Image    *string `json:"image"`
	Rating   *int    `json:"rating"`
}

func clientResponse(cl *models.Client) ClientResponse {
	return ClientResponse{
		ID:       cl.ID,
		Name:     cl.Name,
		Role:     cl.Role,
		Feedback: cl.Feedback,
		Image:    cl.Image,
		Rating:   cl.Rating,
	}
}

// GET /api/clients (public)
func ListClientsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var clients []models.Client
		if err := database.DB.Order("id asc").Find(&clients).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list clients")
		}

		res := make([]ClientResponse, 0, len(clients))
		for i := range clients {
			res = append(res, clientResponse(&clients[i]))
		}
		return c.JSON(res)
	}
}

// POST /api/clients (admin)
func CreateClientHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateClientRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name is required")
		}
		if body.Rating < 0 || body.Rating > 5 {
			return fiber.NewError(fiber.StatusBadRequest, "Rating must be between 1 and 5")
		}

		cl := models.Client{
			Name:     body.Name,
			Role:     strings.TrimSpace(body.Role),
			Feedback: body.Feedback,
			Image:    strings.TrimSpace(body.Image),
			Rating:   body.Rating,
		}

		if err := database.DB.Create(&cl).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create client")
		}

		logChange(c, audit.EntityClient, cl.ID, models.AuditActionCreate,
			"Client created: "+cl.Name, nil, clientResponse(&cl))

		return c.Status(fiber.StatusCreated).JSON(clientResponse(&cl))
	}
}

// PUT /api/clients/:id (admin)
func UpdateClientHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
		}

		var cl models.Client
		if err := database.DB.First(&cl, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Client not found")
		}
		before := clientResponse(&cl)

		var body UpdateClientRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Name cannot be empty")
			}
			cl.Name = name
		}
		if body.Role != nil {
			cl.Role = strings.TrimSpace(*body.Role)
		}
		if body.Feedback != nil {
			cl.Feedback = *body.Feedback
		}
		if body.Image != nil {
			cl.Image = strings.TrimSpace(*body.Image)
		}
		if body.Rating != nil {
			if *body.Rating < 0 || *body.Rating > 5 {
				return fiber.NewError(fiber.StatusBadRequest, "Rating must be between 1 and 5")
			}
			cl.Rating = *body.Rating
		}

		if err := database.DB.Save(&cl).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update client")
		}

		logChange(c, audit.EntityClient, cl.ID, models.AuditActionUpdate,
			"Client updated: "+cl.Name, before, clientResponse(&cl))

		return c.JSON(clientResponse(&cl))
	}
}

// DELETE /api/clients/:id (admin)
func DeleteClientHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
		}

		var cl models.Client
		if err := database.DB.First(&cl, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Client not found")
		}

		if err := database.DB.Delete(&models.Client{}, "id = ?", cl.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete client")
		}

		logChange(c, audit.EntityClient, cl.ID, models.AuditActionDelete,
			"Client deleted: "+cl.Name, clientResponse(&cl), nil)

		return c.SendStatus(fiber.StatusNoContent)
	}
}
