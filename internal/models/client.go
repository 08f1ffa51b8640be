package models

import "time"

// Client is a testimonial entry shown on the public site.
type Client struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null"`
	Role      string `gorm:"size:100"`
	Feedback  string `gorm:"type:text"`
	Image     string `gorm:"size:500"`
	Rating    int    // 1-5, 0 means not set
	CreatedAt time.Time
	UpdatedAt time.Time
}
