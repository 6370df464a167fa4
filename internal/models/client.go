package models

import "time"

type Client struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"size:120" json:"name"`
	Phone  string `gorm:"size:30" json:"phone"`
	Email  string `gorm:"size:120" json:"email"`
	Notes  string `gorm:"size:255" json:"notes"`
	Active bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
