package models

import "time"

// CustomerAccount is a self-service portal login tied to a client.
type CustomerAccount struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	Email    string `gorm:"size:120;uniqueIndex" json:"email"`
	Password string `gorm:"size:120" json:"-"`
	Active   bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
