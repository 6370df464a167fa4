package schedule

import (
	"context"

	"github.com/LavaJatoPro/carwash-scheduler/internal/audit"
	domain "github.com/LavaJatoPro/carwash-scheduler/internal/domain/schedule"
	"github.com/LavaJatoPro/carwash-scheduler/internal/httperr"
	"github.com/LavaJatoPro/carwash-scheduler/internal/timezone"
)

// DeleteSchedule hard-deletes an appointment. Completed or paid
// appointments are kept for the books, and only today-or-future dates
// may be removed (date-only comparison, so a same-day appointment
// whose time already passed is still deletable).
type DeleteSchedule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteSchedule(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
) *DeleteSchedule {
	return &DeleteSchedule{
		repo:  repo,
		audit: auditDisp,
	}
}

func (uc *DeleteSchedule) Execute(
	ctx context.Context,
	userID uint,
	scheduleID uint,
) error {

	sc, err := uc.repo.GetSchedule(ctx, scheduleID)
	if err != nil {
		return err
	}

	if err := domain.CanDelete(domain.Status(sc.Status)); err != nil {
		return err
	}

	// ISO dates compare lexicographically.
	if sc.ScheduledDate < timezone.Today() {
		return httperr.PastDate("cannot_delete_past_schedule")
	}

	if err := uc.repo.DeleteSchedule(ctx, sc.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   audit.ActionScheduleDeleted,
		Entity:   "schedule",
		EntityID: &sc.ID,
	})

	return nil
}
