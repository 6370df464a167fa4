package models

import "time"

type Vehicle struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	LicensePlate string `gorm:"size:10" json:"license_plate"`
	Model        string `gorm:"size:60" json:"model"`
	Brand        string `gorm:"size:60" json:"brand"`
	Color        string `gorm:"size:30" json:"color"`
	Year         int    `json:"year"`
	Size         string `gorm:"size:20" json:"size"` // Pequeno | Médio | Grande
	Active       bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
