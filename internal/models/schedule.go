package models

import "time"

// Schedule origin channels.
const (
	OriginStaff  = "staff"
	OriginPortal = "portal"
)

// Schedule is an appointment. Date and time are kept as the business
// local calendar strings ("2006-01-02", "15:04") so slot equality is
// exact string equality, matching how capacity is counted.
type Schedule struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"size:36;uniqueIndex" json:"code"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	VehicleID uint    `json:"vehicle_id"`
	Vehicle   Vehicle `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"vehicle"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	ScheduledDate string `gorm:"size:10;index:idx_schedules_slot" json:"scheduled_date"`
	ScheduledTime string `gorm:"size:5;index:idx_schedules_slot" json:"scheduled_time"`

	Status string `gorm:"size:20;default:'scheduled';index:idx_schedules_slot" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`

	PaymentStatus string   `gorm:"size:10" json:"payment_status"` // "" | unpaid | pending | paid
	PaymentMethod string   `gorm:"size:10" json:"payment_method"` // "" | pix | cartao | dinheiro
	AmountPaid    *float64 `json:"amount_paid"`

	PhotoURL string `gorm:"size:255" json:"photo_url"`

	CreatedBy uint   `json:"created_by"`
	Origin    string `gorm:"size:10;default:'staff'" json:"origin"`

	InProgressAt *time.Time `json:"in_progress_at"`
	CompletedAt  *time.Time `json:"completed_at"`
	PaidAt       *time.Time `json:"paid_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
