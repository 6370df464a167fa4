package dto

import (
	"time"

	"github.com/LavaJatoPro/carwash-scheduler/internal/models"
)

type ScheduleListDTO struct {
	ID   uint   `json:"id"`
	Code string `json:"code"`

	ScheduledDate string `json:"scheduled_date"`
	ScheduledTime string `json:"scheduled_time"`
	Status        string `json:"status"`

	ClientName   string `json:"client_name"`
	ClientPhone  string `json:"client_phone"`
	LicensePlate string `json:"license_plate"`
	VehicleModel string `json:"vehicle_model"`

	ServiceName     string  `json:"service_name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`

	PaymentStatus string   `json:"payment_status,omitempty"`
	PaymentMethod string   `json:"payment_method,omitempty"`
	AmountPaid    *float64 `json:"amount_paid,omitempty"`

	Notes    string `json:"notes,omitempty"`
	PhotoURL string `json:"photo_url,omitempty"`
	Origin   string `json:"origin"`

	CreatedAt time.Time `json:"created_at"`
}

func FromSchedule(sc models.Schedule) ScheduleListDTO {
	return ScheduleListDTO{
		ID:              sc.ID,
		Code:            sc.Code,
		ScheduledDate:   sc.ScheduledDate,
		ScheduledTime:   sc.ScheduledTime,
		Status:          sc.Status,
		ClientName:      sc.Client.Name,
		ClientPhone:     sc.Client.Phone,
		LicensePlate:    sc.Vehicle.LicensePlate,
		VehicleModel:    sc.Vehicle.Model,
		ServiceName:     sc.Service.Name,
		Price:           sc.Service.Price,
		DurationMinutes: sc.Service.DurationMinutes,
		PaymentStatus:   sc.PaymentStatus,
		PaymentMethod:   sc.PaymentMethod,
		AmountPaid:      sc.AmountPaid,
		Notes:           sc.Notes,
		PhotoURL:        sc.PhotoURL,
		Origin:          sc.Origin,
		CreatedAt:       sc.CreatedAt,
	}
}

func FromSchedules(list []models.Schedule) []ScheduleListDTO {
	out := make([]ScheduleListDTO, 0, len(list))
	for _, sc := range list {
		out = append(out, FromSchedule(sc))
	}
	return out
}
