package models

import "time"

// User is a staff account (admin or employee).
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:120" json:"name"`
	Email    string `gorm:"size:120;uniqueIndex" json:"email"`
	Password string `gorm:"size:120" json:"-"`
	Role     string `gorm:"size:20" json:"role"` // admin | employee
	Active   bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
