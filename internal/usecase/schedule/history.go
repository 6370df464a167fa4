package schedule

import (
	"context"

	domain "github.com/LavaJatoPro/carwash-scheduler/internal/domain/schedule"
	"github.com/LavaJatoPro/carwash-scheduler/internal/models"
)

// ClientHistory lists every appointment of the authenticated
// customer, newest first.
type ClientHistory struct {
	repo domain.Repository
}

func NewClientHistory(repo domain.Repository) *ClientHistory {
	return &ClientHistory{repo: repo}
}

func (uc *ClientHistory) Execute(
	ctx context.Context,
	clientID uint,
) ([]models.Schedule, error) {
	return uc.repo.ListForClient(ctx, clientID)
}

// LastSchedule fetches the customer's most recent booking so the
// portal can offer a one-tap repeat. Nil when there is none.
type LastSchedule struct {
	repo domain.Repository
}

func NewLastSchedule(repo domain.Repository) *LastSchedule {
	return &LastSchedule{repo: repo}
}

func (uc *LastSchedule) Execute(
	ctx context.Context,
	clientID uint,
) (*models.Schedule, error) {
	return uc.repo.LastForClient(ctx, clientID)
}
