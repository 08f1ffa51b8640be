package models

import "time"

type Project struct {
	ID          uint     `gorm:"primaryKey"`
	Title       string   `gorm:"size:200;not null"`
	Category    string   `gorm:"size:100"` // Free-text label, filtered client-side
	Location    string   `gorm:"size:200"`
	Description string   `gorm:"type:text"`
	Images      []string `gorm:"type:jsonb;serializer:json"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
