package models

import "time"

type Service struct {
	ID           uint     `gorm:"primaryKey"`
	Title        string   `gorm:"size:200;not null"`
	Description  string   `gorm:"type:text"`
	Details      string   `gorm:"type:text"`
	Icon         string   `gorm:"size:50"` // Symbolic icon key, resolved by the frontend
	Features     []string `gorm:"type:jsonb;serializer:json"`
	QualitySpecs string   `gorm:"type:text"`
	Images       []string `gorm:"type:jsonb;serializer:json"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
