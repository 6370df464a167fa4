package schedule

import (
	"context"

	"github.com/LavaJatoPro/carwash-scheduler/internal/audit"
	domain "github.com/LavaJatoPro/carwash-scheduler/internal/domain/schedule"
	"github.com/LavaJatoPro/carwash-scheduler/internal/httperr"
	"github.com/LavaJatoPro/carwash-scheduler/internal/models"
)

// ReschedulePortal moves a customer's own appointment to a new slot.
// Only status "scheduled" may move; the new slot is checked against
// capacity with the appointment itself excluded from the count.
// Status and transition timestamps are untouched.
type ReschedulePortal struct {
	repo     domain.Repository
	settings ConfigSource
	audit    *audit.Dispatcher
}

func NewReschedulePortal(
	repo domain.Repository,
	settings ConfigSource,
	auditDisp *audit.Dispatcher,
) *ReschedulePortal {
	return &ReschedulePortal{
		repo:     repo,
		settings: settings,
		audit:    auditDisp,
	}
}

func (uc *ReschedulePortal) Execute(
	ctx context.Context,
	clientID uint,
	scheduleID uint,
	newDate string,
	newTime string,
) (*models.Schedule, error) {

	sc, err := uc.repo.GetSchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if sc.ClientID != clientID {
		return nil, httperr.NotFound("schedule_not_found")
	}
	if domain.Status(sc.Status) != domain.StatusScheduled {
		return nil, httperr.InvalidTransition("only_scheduled_can_reschedule")
	}

	if _, err := parseSlot(newDate, newTime); err != nil {
		return nil, err
	}

	cfg, err := uc.settings.BusinessConfig(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.RescheduleInSlot(ctx, sc.ID, newDate, newTime, cfg.MaxConcurrent); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionScheduleRescheduled,
		Entity:   "schedule",
		EntityID: &sc.ID,
		Metadata: map[string]any{"date": newDate, "time": newTime},
	})

	return uc.repo.GetSchedule(ctx, sc.ID)
}
