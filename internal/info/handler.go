package info

import (
	"encoding/json"
	"errors"
	"log"

	"minhas-backend/internal/audit"
	"minhas-backend/internal/auth"
	"minhas-backend/internal/database"
	"minhas-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GET /api/info (public)
//
// Returns the site-info document, or {} before anything has been saved.
// Every field is optional from the caller's point of view.
func GetInfoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var row models.SiteInfo
		err := database.DB.First(&row, "id = ?", models.SiteInfoID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(fiber.Map{})
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load site info")
		}

		var doc map[string]any
		if err := json.Unmarshal([]byte(row.Data), &doc); err != nil || doc == nil {
			doc = map[string]any{}
		}
		return c.JSON(doc)
	}
}

// POST /api/info (admin)
//
// Deep-merges the submitted partial document into the stored singleton and
// returns the merged result. A partial write must never erase untouched
// nested fields, updating contact.phone alone leaves contact.socials as is.
func SetInfoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var partial map[string]any
		if err := json.Unmarshal(c.Body(), &partial); err != nil || partial == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		stored := map[string]any{}
		before := json.RawMessage("{}")
		var row models.SiteInfo
		err := database.DB.First(&row, "id = ?", models.SiteInfoID).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load site info")
		}
		if err == nil {
			// Snapshot the raw document now, deepMerge mutates stored
			before = json.RawMessage(row.Data)
			if uerr := json.Unmarshal([]byte(row.Data), &stored); uerr != nil || stored == nil {
				stored = map[string]any{}
			}
		}

		merged := deepMerge(stored, partial)

		data, err := json.Marshal(merged)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not encode site info")
		}

		row = models.SiteInfo{ID: models.SiteInfoID, Data: string(data)}
		if err := database.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).Create(&row).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not save site info")
		}

		logInfoChange(c, before, json.RawMessage(data))

		return c.JSON(merged)
	}
}

// logInfoChange records the document update in the audit log. Audit
// failures are logged and swallowed, the write already happened.
func logInfoChange(c *fiber.Ctx, before, after json.RawMessage) {
	userID, _ := c.Locals(auth.CtxUserIDKey).(uint)
	userName, _ := c.Locals(auth.CtxUsernameKey).(string)

	if err := audit.WriteLog(audit.LogOptions{
		UserID:      userID,
		UserName:    userName,
		EntityType:  audit.EntityInfo,
		EntityID:    models.SiteInfoID,
		Action:      models.AuditActionUpdate,
		Description: "Updated site info",
		Before:      before,
		After:       after,
	}); err != nil {
		log.Println("audit write failed:", err)
	}
}
