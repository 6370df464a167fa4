package schedule

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/LavaJatoPro/carwash-scheduler/internal/audit"
	domain "github.com/LavaJatoPro/carwash-scheduler/internal/domain/schedule"
	"github.com/LavaJatoPro/carwash-scheduler/internal/httperr"
	"github.com/LavaJatoPro/carwash-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateStaffScheduleInput struct {
	ClientID  uint
	VehicleID uint
	ServiceID uint

	Date string
	Time string

	Notes     string
	CreatedBy uint
}

// ======================================================
// USE CASE
// ======================================================

// CreateStaffSchedule books through the staff channel: vehicle must
// belong to the chosen client, the slot must fall on a business
// weekday inside business hours, and the whole service window
// [start, start+duration) must be free of other active appointments.
type CreateStaffSchedule struct {
	repo     domain.Repository
	settings ConfigSource
	audit    *audit.Dispatcher
	log      *logrus.Logger
}

func NewCreateStaffSchedule(
	repo domain.Repository,
	settings ConfigSource,
	auditDisp *audit.Dispatcher,
	log *logrus.Logger,
) *CreateStaffSchedule {
	return &CreateStaffSchedule{
		repo:     repo,
		settings: settings,
		audit:    auditDisp,
		log:      log,
	}
}

func (uc *CreateStaffSchedule) Execute(
	ctx context.Context,
	in CreateStaffScheduleInput,
) (*models.Schedule, error) {

	start, err := parseSlot(in.Date, in.Time)
	if err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetActiveClient(ctx, in.ClientID); err != nil {
		return nil, err
	}
	if _, err := uc.repo.GetActiveVehicle(ctx, in.VehicleID); err != nil {
		return nil, err
	}

	owned, err := uc.repo.VehicleBelongsToClient(ctx, in.VehicleID, in.ClientID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, httperr.Validation("vehicle_does_not_belong_to_client")
	}

	svc, err := uc.repo.GetActiveService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	if err := ensureFuture(start); err != nil {
		return nil, err
	}
	if err := ensureBusinessDay(start); err != nil {
		return nil, err
	}

	cfg, err := uc.settings.BusinessConfig(ctx)
	if err != nil {
		return nil, err
	}
	if err := ensureWithinHours(cfg, in.Time); err != nil {
		return nil, err
	}

	sc := &models.Schedule{
		Code:          uuid.NewString(),
		ClientID:      in.ClientID,
		VehicleID:     in.VehicleID,
		ServiceID:     in.ServiceID,
		ScheduledDate: in.Date,
		ScheduledTime: in.Time,
		Status:        string(domain.InitialStatus()),
		Notes:         in.Notes,
		CreatedBy:     in.CreatedBy,
		Origin:        models.OriginStaff,
	}

	if err := uc.repo.CreateWithOverlapGuard(ctx, sc, svc.DurationMinutes); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.CreatedBy,
		Action:   audit.ActionScheduleCreated,
		Entity:   "schedule",
		EntityID: &sc.ID,
	})

	return sc, nil
}
