package models

import "time"

// Service is a catalog entry. Duration drives the staff-path overlap
// window; price is the default amount on payment.
type Service struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:120" json:"name"`
	Description string `gorm:"size:255" json:"description"`

	VehicleTypeID uint        `json:"vehicle_type_id"`
	VehicleType   VehicleType `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"vehicle_type"`

	Price           float64 `json:"price"`
	DurationMinutes int     `gorm:"default:30" json:"duration_minutes"`
	Active          bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
