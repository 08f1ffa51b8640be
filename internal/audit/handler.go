package audit

import (
	"errors"
	"fmt"

	"minhas-backend/internal/auth"
	"minhas-backend/internal/database"
	"minhas-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type AuditLogResponse struct {
	ID          uint               `json:"id"`
	CreatedAt   string             `json:"created_at"`
	UserID      uint               `json:"user_id"`
	UserName    string             `json:"user_name"`
	EntityType  string             `json:"entity_type"`
	EntityID    uint               `json:"entity_id"`
	Action      models.AuditAction `json:"action"`
	Description string             `json:"description"`
	IsUndone    bool               `json:"is_undone"`
	UndoneBy    *uint              `json:"undone_by"`
	UndoneAt    *string            `json:"undone_at"`
}

const (
	defaultLogLimit = 100
	maxLogLimit     = 500
)

// GET /api/audit-logs?entity_type=project&entity_id=1&user_id=1&limit=50
func ListAuditLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.AuditLog{})

		if entityType := c.Query("entity_type"); entityType != "" {
			dbq = dbq.Where("entity_type = ?", entityType)
		}
		if entityIDStr := c.Query("entity_id"); entityIDStr != "" {
			var eid uint
			if _, err := fmt.Sscan(entityIDStr, &eid); err == nil && eid > 0 {
				dbq = dbq.Where("entity_id = ?", eid)
			}
		}
		if userIDStr := c.Query("user_id"); userIDStr != "" {
			var uid uint
			if _, err := fmt.Sscan(userIDStr, &uid); err == nil && uid > 0 {
				dbq = dbq.Where("user_id = ?", uid)
			}
		}

		limit := c.QueryInt("limit", defaultLogLimit)
		if limit <= 0 {
			limit = defaultLogLimit
		}
		if limit > maxLogLimit {
			limit = maxLogLimit
		}

		var logs []models.AuditLog
		if err := dbq.Order("id desc").Limit(limit).Find(&logs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list audit logs")
		}

		res := make([]AuditLogResponse, 0, len(logs))
		for _, l := range logs {
			item := AuditLogResponse{
				ID:          l.ID,
				CreatedAt:   l.CreatedAt.Format("2006-01-02 15:04:05"),
				UserID:      l.UserID,
				UserName:    l.UserName,
				EntityType:  l.EntityType,
				EntityID:    l.EntityID,
				Action:      l.Action,
				Description: l.Description,
				IsUndone:    l.IsUndone,
				UndoneBy:    l.UndoneBy,
			}
			if l.UndoneAt != nil {
				s := l.UndoneAt.Format("2006-01-02 15:04:05")
				item.UndoneAt = &s
			}
			res = append(res, item)
		}
		return c.JSON(res)
	}
}

// POST /api/audit-logs/:id/undo
func UndoAuditLogHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid log id")
		}

		userID, _ := c.Locals(auth.CtxUserIDKey).(uint)
		userName, _ := c.Locals(auth.CtxUsernameKey).(string)

		if err := UndoLog(uint(id), userID, userName); err != nil {
			switch {
			case errors.Is(err, ErrLogNotFound):
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			case errors.Is(err, ErrAlreadyUndone), errors.Is(err, ErrNotUndoable):
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "Undo failed")
			}
		}

		return c.JSON(fiber.Map{"success": true})
	}
}
