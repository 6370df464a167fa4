package schedule

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/LavaJatoPro/carwash-scheduler/internal/audit"
	domain "github.com/LavaJatoPro/carwash-scheduler/internal/domain/schedule"
	"github.com/LavaJatoPro/carwash-scheduler/internal/httperr"
	"github.com/LavaJatoPro/carwash-scheduler/internal/models"
)

// AttachPhoto stores a finished-wash photo for an appointment whose
// service has at least started.
type AttachPhoto struct {
	repo  domain.Repository
	store PhotoStore
	audit *audit.Dispatcher
}

func NewAttachPhoto(
	repo domain.Repository,
	store PhotoStore,
	auditDisp *audit.Dispatcher,
) *AttachPhoto {
	return &AttachPhoto{
		repo:  repo,
		store: store,
		audit: auditDisp,
	}
}

func (uc *AttachPhoto) Execute(
	ctx context.Context,
	userID uint,
	scheduleID uint,
	photo io.Reader,
) (*models.Schedule, error) {

	if uc.store == nil {
		return nil, httperr.Validation("photo_storage_not_configured")
	}

	sc, err := uc.repo.GetSchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	switch domain.Status(sc.Status) {
	case domain.StatusInProgress, domain.StatusCompleted, domain.StatusPaid:
	default:
		return nil, httperr.InvalidTransition("photo_requires_started_service")
	}

	key := fmt.Sprintf("schedules/%d/%s.webp", sc.ID, uuid.NewString())
	url, err := uc.store.Upload(ctx, key, photo)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateFields(ctx, sc.ID, map[string]any{"photo_url": url}); err != nil {
		return nil, err
	}
	sc.PhotoURL = url

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   audit.ActionScheduleUpdated,
		Entity:   "schedule",
		EntityID: &sc.ID,
		Metadata: map[string]any{"photo_url": url},
	})

	return sc, nil
}
