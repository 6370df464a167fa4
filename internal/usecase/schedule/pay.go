package schedule

import (
	"context"

	"github.com/LavaJatoPro/carwash-scheduler/internal/audit"
	domain "github.com/LavaJatoPro/carwash-scheduler/internal/domain/schedule"
	"github.com/LavaJatoPro/carwash-scheduler/internal/models"
	"github.com/LavaJatoPro/carwash-scheduler/internal/timezone"
)

// PaySchedule confirms payment after service completion (paying while
// still in progress is also accepted). When no amount is given the
// referenced service's current price is charged.
type PaySchedule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewPaySchedule(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
) *PaySchedule {
	return &PaySchedule{
		repo:  repo,
		audit: auditDisp,
	}
}

func (uc *PaySchedule) Execute(
	ctx context.Context,
	userID uint,
	scheduleID uint,
	method string,
	amount *float64,
) (*models.Schedule, error) {

	sc, err := uc.repo.GetSchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	final := sc.Service.Price
	if amount != nil {
		final = *amount
	}

	if err := domain.Pay(sc, method, final, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateSchedule(ctx, sc); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   audit.ActionSchedulePaid,
		Entity:   "schedule",
		EntityID: &sc.ID,
		Metadata: map[string]any{"method": method, "amount": final},
	})

	return sc, nil
}
