package audit

import (
	"encoding/json"
	"fmt"
	"time"

	"minhas-backend/internal/database"
	"minhas-backend/internal/models"
)

const (
	EntityProject = "project"
	EntityService = "service"
	EntityClient  = "client"
	EntityInfo    = "site_info"
)

type LogOptions struct {
	UserID      uint
	UserName    string
	EntityType  string
	EntityID    uint
	Action      models.AuditAction
	Description string
	Before      any
	After       any
}

func WriteLog(opts LogOptions) error {
	// jsonb columns need the JSON null literal, not an empty string
	beforeStr := "null"
	afterStr := "null"

	if opts.Before != nil {
		if b, err := json.Marshal(opts.Before); err == nil {
			beforeStr = string(b)
		}
	}
	if opts.After != nil {
		if b, err := json.Marshal(opts.After); err == nil {
			afterStr = string(b)
		}
	}

	entry := models.AuditLog{
		UserID:      opts.UserID,
		UserName:    opts.UserName,
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		BeforeData:  beforeStr,
		AfterData:   afterStr,
	}

	if err := database.DB.Create(&entry).Error; err != nil {
		return fmt.Errorf("could not write audit log: %w", err)
	}

	return nil
}

// UndoLog reverts the change recorded in the given log entry: a create is
// deleted again, an update restored to its before-image, a delete
// recreated from its before-image. Undo entries themselves cannot be
// undone.
func UndoLog(logID uint, userID uint, userName string) error {
	var entry models.AuditLog
	if err := database.DB.First(&entry, "id = ?", logID).Error; err != nil {
		return ErrLogNotFound
	}

	if entry.IsUndone {
		return ErrAlreadyUndone
	}

	switch entry.Action {
	case models.AuditActionCreate:
		if err := deleteEntity(entry.EntityType, entry.EntityID); err != nil {
			return fmt.Errorf("could not delete entity: %w", err)
		}

	case models.AuditActionUpdate:
		if err := restoreEntity(entry.EntityType, entry.EntityID, entry.BeforeData); err != nil {
			return fmt.Errorf("could not restore entity: %w", err)
		}

	case models.AuditActionDelete:
		if err := recreateEntity(entry.EntityType, entry.BeforeData); err != nil {
			return fmt.Errorf("could not recreate entity: %w", err)
		}

	default:
		return ErrNotUndoable
	}

	now := time.Now()
	entry.IsUndone = true
	entry.UndoneBy = &userID
	entry.UndoneAt = &now

	if err := database.DB.Save(&entry).Error; err != nil {
		return fmt.Errorf("could not update audit log: %w", err)
	}

	undoEntry := models.AuditLog{
		UserID:      userID,
		UserName:    userName,
		EntityType:  entry.EntityType,
		EntityID:    entry.EntityID,
		Action:      models.AuditActionUndo,
		Description: fmt.Sprintf("Reverted: %s", entry.Description),
		BeforeData:  entry.AfterData,
		AfterData:   entry.BeforeData,
	}
	if err := database.DB.Create(&undoEntry).Error; err != nil {
		return fmt.Errorf("could not write undo log: %w", err)
	}

	return nil
}

func deleteEntity(entityType string, entityID uint) error {
	switch entityType {
	case EntityProject:
		return database.DB.Delete(&models.Project{}, "id = ?", entityID).Error
	case EntityService:
		return database.DB.Delete(&models.Service{}, "id = ?", entityID).Error
	case EntityClient:
		return database.DB.Delete(&models.Client{}, "id = ?", entityID).Error
	}
	return fmt.Errorf("unknown entity type %q", entityType)
}

func restoreEntity(entityType string, entityID uint, beforeJSON string) error {
	switch entityType {
	case EntityProject:
		var p models.Project
		if err := json.Unmarshal([]byte(beforeJSON), &p); err != nil {
			return err
		}
		p.ID = entityID
		return database.DB.Save(&p).Error
	case EntityService:
		var s models.Service
		if err := json.Unmarshal([]byte(beforeJSON), &s); err != nil {
			return err
		}
		s.ID = entityID
		return database.DB.Save(&s).Error
	case EntityClient:
		var cl models.Client
		if err := json.Unmarshal([]byte(beforeJSON), &cl); err != nil {
			return err
		}
		cl.ID = entityID
		return database.DB.Save(&cl).Error
	case EntityInfo:
		// The singleton document is stored as raw jsonb, the before-image
		// is already the full document
		info := models.SiteInfo{ID: models.SiteInfoID, Data: beforeJSON}
		return database.DB.Save(&info).Error
	}
	return fmt.Errorf("unknown entity type %q", entityType)
}

func recreateEntity(entityType string, beforeJSON string) error {
	switch entityType {
	case EntityProject:
		var p models.Project
		if err := json.Unmarshal([]byte(beforeJSON), &p); err != nil {
			return err
		}
		return database.DB.Create(&p).Error
	case EntityService:
		var s models.Service
		if err := json.Unmarshal([]byte(beforeJSON), &s); err != nil {
			return err
		}
		return database.DB.Create(&s).Error
	case EntityClient:
		var cl models.Client
		if err := json.Unmarshal([]byte(beforeJSON), &cl); err != nil {
			return err
		}
		return database.DB.Create(&cl).Error
	}
	return fmt.Errorf("unknown entity type %q", entityType)
}
