package schedule

import (
	"context"

	domain "github.com/LavaJatoPro/carwash-scheduler/internal/domain/schedule"
	"github.com/LavaJatoPro/carwash-scheduler/internal/models"
)

type ListSchedules struct {
	repo domain.Repository
}

func NewListSchedules(repo domain.Repository) *ListSchedules {
	return &ListSchedules{repo: repo}
}

func (uc *ListSchedules) Execute(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Schedule, error) {
	return uc.repo.ListSchedules(ctx, filter)
}

type GetSchedule struct {
	repo domain.Repository
}

func NewGetSchedule(repo domain.Repository) *GetSchedule {
	return &GetSchedule{repo: repo}
}

func (uc *GetSchedule) Execute(
	ctx context.Context,
	id uint,
) (*models.Schedule, error) {
	return uc.repo.GetSchedule(ctx, id)
}
