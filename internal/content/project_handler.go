package content

import (
	"strings"

	"minhas-backend/internal/audit"
	"minhas-backend/internal/database"
	"minhas-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ProjectResponse struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

type CreateProjectRequest struct {
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

type UpdateProjectRequest struct {
	Title       *string   `json:"title"`
	Category    *string   `json:"category"`
	Location    *string   `json:"location"`
	Description *string   `json:"description"`
	Images      *[]string `json:"images"`
}

func projectResponse(p *models.Project) ProjectResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return ProjectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Category:    p.Category,
		Location:    p.Location,
		Description: p.Description,
		Images:      images,
	}
}

// GET /api/projects (public)
func ListProjectsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var projects []models.Project
		if err := database.DB.Order("id asc").Find(&projects).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list projects")
		}

		res := make([]ProjectResponse, 0, len(projects))
		for i := range projects {
			res = append(res, projectResponse(&projects[i]))
		}
		return c.JSON(res)
	}
}

// POST /api/projects (admin)
func CreateProjectHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateProjectRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Title = strings.TrimSpace(body.Title)
		if body.Title == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Title is required")
		}

		p := models.Project{
			Title:       body.Title,
			Category:    strings.TrimSpace(body.Category),
			Location:    strings.TrimSpace(body.Location),
			Description: body.Description,
			Images:      body.Images,
		}
		if p.Images == nil {
			p.Images = []string{}
		}

		if err := database.DB.Create(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create project")
		}

		logChange(c, audit.EntityProject, p.ID, models.AuditActionCreate,
			"Project created: "+p.Title, nil, projectResponse(&p))

		return c.Status(fiber.StatusCreated).JSON(projectResponse(&p))
	}
}

// PUT /api/projects/:id (admin)
func UpdateProjectHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
		}

		var p models.Project
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Project not found")
		}
		before := projectResponse(&p)

		var body UpdateProjectRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Title != nil {
			title := strings.TrimSpace(*body.Title)
			if title == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Title cannot be empty")
			}
			p.Title = title
		}
		if body.Category != nil {
			p.Category = strings.TrimSpace(*body.Category)
		}
		if body.Location != nil {
			p.Location = strings.TrimSpace(*body.Location)
		}
		if body.Description != nil {
			p.Description = *body.Description
		}
		if body.Images != nil {
			p.Images = *body.Images
			if p.Images == nil {
				p.Images = []string{}
			}
		}

		if err := database.DB.Save(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update project")
		}

		logChange(c, audit.EntityProject, p.ID, models.AuditActionUpdate,
			"Project updated: "+p.Title, before, projectResponse(&p))

		return c.JSON(projectResponse(&p))
	}
}

// DELETE /api/projects/:id (admin)
func DeleteProjectHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
		}

		var p models.Project
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Project not found")
		}

		if err := database.DB.Delete(&models.Project{}, "id = ?", p.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete project")
		}

		logChange(c, audit.EntityProject, p.ID, models.AuditActionDelete,
			"Project deleted: "+p.Title, projectResponse(&p), nil)

		return c.SendStatus(fiber.StatusNoContent)
	}
}
