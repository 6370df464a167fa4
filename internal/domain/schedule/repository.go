package schedule

import (
	"context"

	"github.com/LavaJatoPro/carwash-scheduler/internal/models"
)

// ListFilter narrows staff schedule listings. Zero values mean
// "no filter".
type ListFilter struct {
	StartDate string
	EndDate   string
	ClientID  uint
	VehicleID uint
	ServiceID uint
	Status    string
}

// ActiveSlot is one active appointment's start time and service
// duration, used by the duration-overlap policy and by availability.
type ActiveSlot struct {
	Time            string
	DurationMinutes int
}

type Repository interface {
	// -------- Referenced entities --------
	GetActiveClient(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	GetActiveVehicle(
		ctx context.Context,
		id uint,
	) (*models.Vehicle, error)

	VehicleBelongsToClient(
		ctx context.Context,
		vehicleID uint,
		clientID uint,
	) (bool, error)

	GetActiveService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Schedule lookups --------
	GetSchedule(
		ctx context.Context,
		id uint,
	) (*models.Schedule, error)

	ListSchedules(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Schedule, error)

	ListForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Schedule, error)

	LastForClient(
		ctx context.Context,
		clientID uint,
	) (*models.Schedule, error)

	// -------- Capacity / conflict --------
	CountActiveAt(
		ctx context.Context,
		date string,
		timeOfDay string,
		excludeID uint,
	) (int, error)

	ListActiveForDate(
		ctx context.Context,
		date string,
	) ([]ActiveSlot, error)

	// -------- Mutations --------
	//
	// The create/reschedule variants run the capacity or overlap check
	// and the write inside one serialized transaction, so concurrent
	// bookings cannot both pass the check.

	CreateWithOverlapGuard(
		ctx context.Context,
		sc *models.Schedule,
		durationMinutes int,
	) error

	CreateInSlot(
		ctx context.Context,
		sc *models.Schedule,
		maxConcurrent int,
	) error

	RescheduleInSlot(
		ctx context.Context,
		id uint,
		newDate string,
		newTime string,
		maxConcurrent int,
	) error

	UpdateSchedule(
		ctx context.Context,
		sc *models.Schedule,
	) error

	UpdateFields(
		ctx context.Context,
		id uint,
		fields map[string]any,
	) error

	DeleteSchedule(
		ctx context.Context,
		id uint,
	) error
}
