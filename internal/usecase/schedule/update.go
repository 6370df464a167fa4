package schedule

import (
	"context"

	"github.com/LavaJatoPro/carwash-scheduler/internal/audit"
	domain "github.com/LavaJatoPro/carwash-scheduler/internal/domain/schedule"
	"github.com/LavaJatoPro/carwash-scheduler/internal/httperr"
	"github.com/LavaJatoPro/carwash-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// UpdateScheduleInput carries the staff partial update. Zero IDs mean
// "unchanged"; Date and Time must be sent together; Status and Notes
// use pointers so they can be set to their zero values.
type UpdateScheduleInput struct {
	ID uint

	ClientID  uint
	VehicleID uint
	ServiceID uint

	Date string
	Time string

	Status *string
	Notes  *string

	UpdatedBy uint
}

// ======================================================
// USE CASE
// ======================================================

// UpdateSchedule is the generic staff edit. Reference changes are
// re-validated; a date/time change re-runs the future, weekday and
// business-hours rules. Conflict control lives in the create and
// reschedule paths, so a plain edit does not re-run the overlap
// check. The dedicated transition operations remain the stricter
// path for status changes.
type UpdateSchedule struct {
	repo     domain.Repository
	settings ConfigSource
	audit    *audit.Dispatcher
}

func NewUpdateSchedule(
	repo domain.Repository,
	settings ConfigSource,
	auditDisp *audit.Dispatcher,
) *UpdateSchedule {
	return &UpdateSchedule{
		repo:     repo,
		settings: settings,
		audit:    auditDisp,
	}
}

func (uc *UpdateSchedule) Execute(
	ctx context.Context,
	in UpdateScheduleInput,
) (*models.Schedule, error) {

	if _, err := uc.repo.GetSchedule(ctx, in.ID); err != nil {
		return nil, err
	}

	fields := map[string]any{}

	if in.ClientID != 0 {
		if _, err := uc.repo.GetActiveClient(ctx, in.ClientID); err != nil {
			return nil, err
		}
		fields["client_id"] = in.ClientID
	}

	if in.VehicleID != 0 {
		if _, err := uc.repo.GetActiveVehicle(ctx, in.VehicleID); err != nil {
			return nil, err
		}
		fields["vehicle_id"] = in.VehicleID
	}

	if in.ServiceID != 0 {
		if _, err := uc.repo.GetActiveService(ctx, in.ServiceID); err != nil {
			return nil, err
		}
		fields["service_id"] = in.ServiceID
	}

	if in.Date != "" || in.Time != "" {
		if in.Date == "" || in.Time == "" {
			return nil, httperr.Validation("date_and_time_required_together")
		}

		start, err := parseSlot(in.Date, in.Time)
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

		fields["scheduled_date"] = in.Date
		fields["scheduled_time"] = in.Time
	}

	if in.Status != nil {
		switch domain.Status(*in.Status) {
		case domain.StatusScheduled, domain.StatusInProgress,
			domain.StatusCompleted, domain.StatusCancelled:
			fields["status"] = *in.Status
		default:
			return nil, httperr.Validation("invalid_status")
		}
	}

	if in.Notes != nil {
		fields["notes"] = *in.Notes
	}

	if len(fields) == 0 {
		return nil, httperr.Validation("nothing_to_update")
	}

	if err := uc.repo.UpdateFields(ctx, in.ID, fields); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UpdatedBy,
		Action:   audit.ActionScheduleUpdated,
		Entity:   "schedule",
		EntityID: &in.ID,
	})

	return uc.repo.GetSchedule(ctx, in.ID)
}
