package models

import "time"

// SiteInfoID is the fixed primary key of the singleton row.
const SiteInfoID uint = 1

// SiteInfo holds the whole site-info document (stats, contact, working
// hours, about) as one JSON blob. The document is schemaless on purpose:
// the admin UI round-trips it wholesale and writes are deep-merged, so the
// server never needs to know the full field set.
type SiteInfo struct {
	ID        uint   `gorm:"primaryKey"`
	Data      string `gorm:"type:jsonb"`
	UpdatedAt time.Time
}
