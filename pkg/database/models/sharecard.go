package models

import (
	"time"

	"gorm.io/datatypes"
)

// ShareCard is a shareable snapshot of a player summary.
// The snapshot is frozen at creation, so the card keeps rendering the same
// numbers even after the summary is regenerated.
type ShareCard struct {
	ID          string         `gorm:"primaryKey;type:varchar(32)"`
	Puuid       string         `gorm:"type:varchar(100);index"`
	DisplayName string         `gorm:"type:varchar(100)"`
	Snapshot    datatypes.JSON `gorm:"not null"`
	CreatedAt   time.Time
}
