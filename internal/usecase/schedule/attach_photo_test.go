package schedule

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/LavaJatoPro/carwash-scheduler/internal/domain/schedule"
	"github.com/LavaJatoPro/carwash-scheduler/internal/httperr"
	"github.com/LavaJatoPro/carwash-scheduler/internal/models"
)

type fakePhotoStore struct {
	keys []string
}

func (s *fakePhotoStore) Upload(_ context.Context, key string, _ io.Reader) (string, error) {
	s.keys = append(s.keys, key)
	return "https://cdn.example.com/" + key, nil
}

func TestAttachPhoto(t *testing.T) {
	repo := newFakeRepo()
	store := &fakePhotoStore{}
	uc := NewAttachPhoto(repo, store, testDispatcher())
	ctx := context.Background()

	id := seedSchedule(repo, models.Schedule{
		ClientID: 1, VehicleID: 1, ServiceID: 1,
		ScheduledDate: nextWeekday(t), ScheduledTime: "10:00",
		Status: string(domain.StatusInProgress),
	})

	sc, err := uc.Execute(ctx, 7, id, strings.NewReader("img"))

	require.NoError(t, err)
	assert.NotEmpty(t, sc.PhotoURL)
	assert.Equal(t, sc.PhotoURL, repo.schedules[id].PhotoURL)
	require.Len(t, store.keys, 1)
	assert.Contains(t, store.keys[0], "schedules/")
	assert.Contains(t, store.keys[0], ".webp")
}

func TestAttachPhotoRequiresStartedService(t *testing.T) {
	repo := newFakeRepo()
	uc := NewAttachPhoto(repo, &fakePhotoStore{}, testDispatcher())

	id := seedSchedule(repo, models.Schedule{
		ClientID: 1, VehicleID: 1, ServiceID: 1,
		ScheduledDate: nextWeekday(t), ScheduledTime: "10:00",
		Status: string(domain.StatusScheduled),
	})

	_, err := uc.Execute(context.Background(), 7, id, strings.NewReader("img"))
	assert.True(t, httperr.IsBusiness(err, "photo_requires_started_service"))
}

func TestAttachPhotoWithoutStore(t *testing.T) {
	repo := newFakeRepo()
	uc := NewAttachPhoto(repo, nil, testDispatcher())

	_, err := uc.Execute(context.Background(), 7, 1, strings.NewReader("img"))
	assert.True(t, httperr.IsBusiness(err, "photo_storage_not_configured"))
}
