package content

import (
	"strings"

	"minhas-backend/internal/audit"
	"minhas-backend/internal/database"
	"minhas-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ServiceResponse struct {
	ID           uint     `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Details      string   `json:"details"`
	Icon         string   `json:"icon"`
	Features     []string `json:"features"`
	QualitySpecs string   `json:"qualitySpecs"`
	Images       []string `json:"images"`
}

type CreateServiceRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Details      string   `json:"details"`
	Icon         string   `json:"icon"`
	Features     []string `json:"features"`
	QualitySpecs string   `json:"qualitySpecs"`
	Images       []string `json:"images"`
}

type UpdateServiceRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Details      *string   `json:"details"`
	Icon         *string   `json:"icon"`
	Features     *[]string `json:"features"`
	QualitySpecs *string   `json:"qualitySpecs"`
	Images       *[]string `json:"images"`
}

func serviceResponse(s *models.Service) ServiceResponse {
	features := s.Features
	if features == nil {
		features = []string{}
	}
	images := s.Images
	if images == nil {
		images = []string{}
	}
	return ServiceResponse{
		ID:           s.ID,
		Title:        s.Title,
		Description:  s.Description,
		Details:      s.Details,
		Icon:         s.Icon,
		Features:     features,
		QualitySpecs: s.QualitySpecs,
		Images:       images,
	}
}

// GET /api/services (public)
func ListServicesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var services []models.Service
		if err := database.DB.Order("id asc").Find(&services).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list services")
		}

		res := make([]ServiceResponse, 0, len(services))
		for i := range services {
			res = append(res, serviceResponse(&services[i]))
		}
		return c.JSON(res)
	}
}

// POST /api/services (admin)
func CreateServiceHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateServiceRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Title = strings.TrimSpace(body.Title)
		if body.Title == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Title is required")
		}

		s := models.Service{
			Title:        body.Title,
			Description:  body.Description,
			Details:      body.Details,
			Icon:         strings.TrimSpace(body.Icon),
			Features:     body.Features,
			QualitySpecs: body.QualitySpecs,
			Images:       body.Images,
		}
		if s.Features == nil {
			s.Features = []string{}
		}
		if s.Images == nil {
			s.Images = []string{}
		}

		if err := database.DB.Create(&s).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create service")
		}

		logChange(c, audit.EntityService, s.ID, models.AuditActionCreate,
			"Service created: "+s.Title, nil, serviceResponse(&s))

		return c.Status(fiber.StatusCreated).JSON(serviceResponse(&s))
	}
}

// PUT /api/services/:id (admin)
func UpdateServiceHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
		}

		var s models.Service
		if err := database.DB.First(&s, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Service not found")
		}
		before := serviceResponse(&s)

		var body UpdateServiceRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Title != nil {
			title := strings.TrimSpace(*body.Title)
			if title == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Title cannot be empty")
			}
			s.Title = title
		}
		if body.Description != nil {
			s.Description = *body.Description
		}
		if body.Details != nil {
			s.Details = *body.Details
		}
		if body.Icon != nil {
			s.Icon = strings.TrimSpace(*body.Icon)
		}
		if body.Features != nil {
			s.Features = *body.Features
			if s.Features == nil {
				s.Features = []string{}
			}
		}
		if body.QualitySpecs != nil {
			s.QualitySpecs = *body.QualitySpecs
		}
		if body.Images != nil {
			s.Images = *body.Images
			if s.Images == nil {
				s.Images = []string{}
			}
		}

		if err := database.DB.Save(&s).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update service")
		}

		logChange(c, audit.EntityService, s.ID, models.AuditActionUpdate,
			"Service updated: "+s.Title, before, serviceResponse(&s))

		return c.JSON(serviceResponse(&s))
	}
}

// DELETE /api/services/:id (admin)
func DeleteServiceHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
		}

		var s models.Service
		if err := database.DB.First(&s, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Service not found")
		}

		if err := database.DB.Delete(&models.Service{}, "id = ?", s.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete service")
		}

		logChange(c, audit.EntityService, s.ID, models.AuditActionDelete,
			"Service deleted: "+s.Title, serviceResponse(&s), nil)

		return c.SendStatus(fiber.StatusNoContent)
	}
}
