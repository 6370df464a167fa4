package schedule

import (
	"context"

	"github.com/LavaJatoPro/carwash-scheduler/internal/audit"
	domain "github.com/LavaJatoPro/carwash-scheduler/internal/domain/schedule"
	"github.com/LavaJatoPro/carwash-scheduler/internal/models"
	"github.com/LavaJatoPro/carwash-scheduler/internal/timezone"
)

type CompleteSchedule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteSchedule(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
) *CompleteSchedule {
	return &CompleteSchedule{
		repo:  repo,
		audit: auditDisp,
	}
}

func (uc *CompleteSchedule) Execute(
	ctx context.Context,
	userID uint,
	scheduleID uint,
) (*models.Schedule, error) {

	sc, err := uc.repo.GetSchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	if err := domain.Complete(sc, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateSchedule(ctx, sc); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   audit.ActionScheduleCompleted,
		Entity:   "schedule",
		EntityID: &sc.ID,
	})

	return sc, nil
}
