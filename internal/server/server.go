package server

import (
	"log"
	"strings"

	"minhas-backend/internal/audit"
	"minhas-backend/internal/auth"
	"minhas-backend/internal/config"
	"minhas-backend/internal/content"
	"minhas-backend/internal/info"
	"minhas-backend/internal/models"
	"minhas-backend/internal/upload"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// New builds the fiber app with all middleware and routes. The database
// must already be initialized.
func New(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: cfg.MaxUploadMB * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Minhas Aluminium & Glass API is running")
	})

	// Uploaded assets
	app.Static("/uploads", cfg.UploadPath)

	api := app.Group("/api")

	// Public routes
	api.Post("/auth/login", auth.LoginHandler(cfg))
	api.Get("/projects", content.ListProjectsHandler())
	api.Get("/services", content.ListServicesHandler())
	api.Get("/clients", content.ListClientsHandler())
	api.Get("/info", info.GetInfoHandler())

	// Admin routes
	admin := api.Group("")
	admin.Use(auth.JWTMiddleware(cfg))
	admin.Use(auth.RequireRole(models.RoleAdmin))

	admin.Get("/auth/me", auth.MeHandler())

	admin.Post("/projects", content.CreateProjectHandler())
	admin.Put("/projects/:id", content.UpdateProjectHandler())
	admin.Delete("/projects/:id", content.DeleteProjectHandler())

	admin.Post("/services", content.CreateServiceHandler())
	admin.Put("/services/:id", content.UpdateServiceHandler())
	admin.Delete("/services/:id", content.DeleteServiceHandler())

	admin.Post("/clients", content.CreateClientHandler())
	admin.Put("/clients/:id", content.UpdateClientHandler())
	admin.Delete("/clients/:id", content.DeleteClientHandler())

	admin.Post("/info", info.SetInfoHandler())

	admin.Post("/upload", upload.ImageHandler(cfg))

	admin.Get("/audit-logs", audit.ListAuditLogsHandler())
	admin.Post("/audit-logs/:id/undo", audit.UndoAuditLogHandler())

	return app
}
