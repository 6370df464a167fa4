package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/LavaJatoPro/carwash-scheduler/internal/domain/schedule"
	"github.com/LavaJatoPro/carwash-scheduler/internal/httperr"
	"github.com/LavaJatoPro/carwash-scheduler/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Referenced entities
// --------------------------------------------------

func (r *ScheduleGormRepository) GetActiveClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.Validation("client_not_found")
		}
		return nil, err
	}
	return &client, nil
}

func (r *ScheduleGormRepository) GetActiveVehicle(
	ctx context.Context,
	id uint,
) (*models.Vehicle, error) {

	var vehicle models.Vehicle
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.Validation("vehicle_not_found")
		}
		return nil, err
	}
	return &vehicle, nil
}

func (r *ScheduleGormRepository) VehicleBelongsToClient(
	ctx context.Context,
	vehicleID uint,
	clientID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Vehicle{}).
		Where("id = ? AND client_id = ?", vehicleID, clientID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ScheduleGormRepository) GetActiveService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&svc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.Validation("service_not_found")
		}
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Schedule lookups
// --------------------------------------------------

func (r *ScheduleGormRepository) GetSchedule(
	ctx context.Context,
	id uint,
) (*models.Schedule, error) {

	var sc models.Schedule
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Vehicle").
		Preload("Service").
		First(&sc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("schedule_not_found")
		}
		return nil, err
	}
	return &sc, nil
}

func (r *ScheduleGormRepository) ListSchedules(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Schedule, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Vehicle").
		Preload("Service")

	if filter.StartDate != "" {
		q = q.Where("scheduled_date >= ?", filter.StartDate)
	}
	if filter.EndDate != "" {
		q = q.Where("scheduled_date <= ?", filter.EndDate)
	}
	if filter.ClientID != 0 {
		q = q.Where("client_id = ?", filter.ClientID)
	}
	if filter.VehicleID != 0 {
		q = q.Where("vehicle_id = ?", filter.VehicleID)
	}
	if filter.ServiceID != 0 {
		q = q.Where("service_id = ?", filter.ServiceID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var out []models.Schedule
	if err := q.
		Order("scheduled_date ASC, scheduled_time ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ScheduleGormRepository) ListForClient(
	ctx context.Context,
	clientID uint,
) ([]models.Schedule, error) {

	var out []models.Schedule
	if err := r.db.WithContext(ctx).
		Preload("Vehicle").
		Preload("Service").
		Where("client_id = ?", clientID).
		Order("scheduled_date DESC, scheduled_time DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ScheduleGormRepository) LastForClient(
	ctx context.Context,
	clientID uint,
) (*models.Schedule, error) {

	var sc models.Schedule
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		First(&sc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sc, nil
}

// --------------------------------------------------
// Capacity / conflict
// --------------------------------------------------

func (r *ScheduleGormRepository) CountActiveAt(
	ctx context.Context,
	date string,
	timeOfDay string,
	excludeID uint,
) (int, error) {
	return countActiveAt(r.db.WithContext(ctx), date, timeOfDay, excludeID)
}

func countActiveAt(tx *gorm.DB, date, timeOfDay string, excludeID uint) (int, error) {
	q := tx.Model(&models.Schedule{}).
		Where(
			"scheduled_date = ? AND scheduled_time = ? AND status IN ?",
			date, timeOfDay, domain.ActiveStatuses,
		)
	if excludeID != 0 {
		q = q.Where("id != ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *ScheduleGormRepository) ListActiveForDate(
	ctx context.Context,
	date string,
) ([]domain.ActiveSlot, error) {
	return listActiveForDate(r.db.WithContext(ctx), date)
}

func listActiveForDate(tx *gorm.DB, date string) ([]domain.ActiveSlot, error) {
	var rows []domain.ActiveSlot
	err := tx.Model(&models.Schedule{}).
		Select("schedules.scheduled_time AS time, services.duration_minutes AS duration_minutes").
		Joins("JOIN services ON services.id = schedules.service_id").
		Where(
			"schedules.scheduled_date = ? AND schedules.status IN ?",
			date, domain.ActiveStatuses,
		).
		Order("schedules.scheduled_time ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// --------------------------------------------------
// Mutations
// --------------------------------------------------

// slotLock serializes every capacity or overlap check for one key via
// a transaction-scoped Postgres advisory lock. Plain
// read-count-then-insert would let two concurrent bookings both pass
// the check; the lock makes the loser wait and re-count after the
// winner commits.
func slotLock(tx *gorm.DB, key string) error {
	return tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).Error
}

// dateLockKey is the single lock key every booking guard for a date
// takes. The staff overlap guard and the portal capacity guards must
// contend on the same key: with per-slot keys a staff create and a
// portal create for the same slot would not serialize against each
// other, and both could pass their checks.
func dateLockKey(date string) string {
	return "schedules:" + date
}

func (r *ScheduleGormRepository) CreateWithOverlapGuard(
	ctx context.Context,
	sc *models.Schedule,
	durationMinutes int,
) error {

	newStart, err := domain.MinutesOfDay(sc.ScheduledTime)
	if err != nil {
		return httperr.Validation("invalid_time")
	}
	newEnd := newStart + durationMinutes

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := slotLock(tx, dateLockKey(sc.ScheduledDate)); err != nil {
			return err
		}

		existing, err := listActiveForDate(tx, sc.ScheduledDate)
		if err != nil {
			return err
		}

		for _, row := range existing {
			start, err := domain.MinutesOfDay(row.Time)
			if err != nil {
				continue
			}
			if domain.Overlaps(newStart, newEnd, start, start+row.DurationMinutes) {
				return httperr.Conflict("time_conflict")
			}
		}

		return tx.Create(sc).Error
	})
}

func (r *ScheduleGormRepository) CreateInSlot(
	ctx context.Context,
	sc *models.Schedule,
	maxConcurrent int,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := slotLock(tx, dateLockKey(sc.ScheduledDate)); err != nil {
			return err
		}

		count, err := countActiveAt(tx, sc.ScheduledDate, sc.ScheduledTime, 0)
		if err != nil {
			return err
		}
		if count >= maxConcurrent {
			return httperr.Conflict("slot_unavailable")
		}

		return tx.Create(sc).Error
	})
}

func (r *ScheduleGormRepository) RescheduleInSlot(
	ctx context.Context,
	id uint,
	newDate string,
	newTime string,
	maxConcurrent int,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := slotLock(tx, dateLockKey(newDate)); err != nil {
			return err
		}

		count, err := countActiveAt(tx, newDate, newTime, id)
		if err != nil {
			return err
		}
		if count >= maxConcurrent {
			return httperr.Conflict("slot_unavailable")
		}

		return tx.Model(&models.Schedule{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"scheduled_date": newDate,
				"scheduled_time": newTime,
			}).Error
	})
}

func (r *ScheduleGormRepository) UpdateSchedule(
	ctx context.Context,
	sc *models.Schedule,
) error {
	return r.db.WithContext(ctx).Save(sc).Error
}

func (r *ScheduleGormRepository) UpdateFields(
	ctx context.Context,
	id uint,
	fields map[string]any,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Schedule{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *ScheduleGormRepository) DeleteSchedule(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).
		Delete(&models.Schedule{}, id).Error
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
