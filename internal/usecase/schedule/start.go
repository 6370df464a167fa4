package schedule

import (
	"context"

	"github.com/LavaJatoPro/carwash-scheduler/internal/audit"
	domain "github.com/LavaJatoPro/carwash-scheduler/internal/domain/schedule"
	"github.com/LavaJatoPro/carwash-scheduler/internal/models"
	"github.com/LavaJatoPro/carwash-scheduler/internal/timezone"
)

type StartSchedule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewStartSchedule(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
) *StartSchedule {
	return &StartSchedule{
		repo:  repo,
		audit: auditDisp,
	}
}

func (uc *StartSchedule) Execute(
	ctx context.Context,
	userID uint,
	scheduleID uint,
) (*models.Schedule, error) {

	sc, err := uc.repo.GetSchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	if err := domain.Start(sc, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateSchedule(ctx, sc); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   audit.ActionScheduleStarted,
		Entity:   "schedule",
		EntityID: &sc.ID,
	})

	return sc, nil
}
