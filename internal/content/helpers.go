package content

import (
	"log"

	"minhas-backend/internal/audit"
	"minhas-backend/internal/auth"
	"minhas-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// logChange records an admin mutation in the audit log. Audit failures are
// logged and swallowed, the content write already happened.
func logChange(c *fiber.Ctx, entityType string, entityID uint, action models.AuditAction, description string, before, after any) {
	userID, _ := c.Locals(auth.CtxUserIDKey).(uint)
	userName, _ := c.Locals(auth.CtxUsernameKey).(string)

	if err := audit.WriteLog(audit.LogOptions{
		UserID:      userID,
		UserName:    userName,
		EntityType:  entityType,
		EntityID:    entityID,
		Action:      action,
		Description: description,
		Before:      before,
		After:       after,
	}); err != nil {
		log.Println("audit write failed:", err)
	}
}
