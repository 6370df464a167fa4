package models

import "time"

// Setting is a mutable key/value business configuration row
// (business hours, slot interval, concurrency capacity).
type Setting struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Key         string `gorm:"size:60;uniqueIndex" json:"key"`
	Value       string `gorm:"size:120" json:"value"`
	Description string `gorm:"size:255" json:"description"`

	UpdatedAt time.Time `json:"updated_at"`
}
