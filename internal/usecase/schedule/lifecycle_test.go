package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/LavaJatoPro/carwash-scheduler/internal/domain/schedule"
	"github.com/LavaJatoPro/carwash-scheduler/internal/httperr"
	"github.com/LavaJatoPro/carwash-scheduler/internal/models"
)

// seedSchedule plants an appointment directly in the fake repository.
func seedSchedule(repo *fakeRepo, sc models.Schedule) uint {
	repo.insert(&sc)
	return sc.ID
}

func TestStartCompletePayFlow(t *testing.T) {
	repo := newFakeRepo()
	disp := testDispatcher()
	ctx := context.Background()

	id := seedSchedule(repo, models.Schedule{
		ClientID: 1, VehicleID: 1, ServiceID: 1,
		ScheduledDate: nextWeekday(t), ScheduledTime: "10:00",
		Status: string(domain.StatusScheduled),
	})

	startUC := NewStartSchedule(repo, disp)
	completeUC := NewCompleteSchedule(repo, disp)
	payUC := NewPaySchedule(repo, disp)

	sc, err := startUC.Execute(ctx, 7, id)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusInProgress), sc.Status)
	assert.NotNil(t, sc.InProgressAt)

	// a second start is refused
	_, err = startUC.Execute(ctx, 7, id)
	assert.True(t, httperr.IsBusiness(err, "only_scheduled_can_start"))

	sc, err = completeUC.Execute(ctx, 7, id)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), sc.Status)

	// no amount given: service 1's current price applies
	sc, err = payUC.Execute(ctx, 7, id, domain.PaymentPix, nil)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPaid), sc.Status)
	require.NotNil(t, sc.AmountPaid)
	assert.Equal(t, 45.0, *sc.AmountPaid)
}

func TestPayExplicitAmount(t *testing.T) {
	repo := newFakeRepo()
	ctx := context.Background()

	id := seedSchedule(repo, models.Schedule{
		ClientID: 1, VehicleID: 1, ServiceID: 1,
		ScheduledDate: nextWeekday(t), ScheduledTime: "10:00",
		Status: string(domain.StatusCompleted),
	})

	amount := 40.0
	sc, err := NewPaySchedule(repo, testDispatcher()).Execute(ctx, 7, id, domain.PaymentDinheiro, &amount)

	require.NoError(t, err)
	assert.Equal(t, 40.0, *sc.AmountPaid)
	assert.Equal(t, domain.PaymentStatusPaid, sc.PaymentStatus)
}

func TestCancelSchedule(t *testing.T) {
	repo := newFakeRepo()
	ctx := context.Background()
	uc := NewCancelSchedule(repo, testDispatcher())

	id := seedSchedule(repo, models.Schedule{
		ClientID: 1, VehicleID: 1, ServiceID: 1,
		ScheduledDate: nextWeekday(t), ScheduledTime: "10:00",
		Status: string(domain.StatusScheduled),
	})

	sc, err := uc.Execute(ctx, 7, id)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), sc.Status)

	_, err = uc.Execute(ctx, 7, id)
	assert.True(t, httperr.IsKind(err, httperr.KindInvalidTransition))

	_, err = uc.Execute(ctx, 7, 999)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}

func TestCancelledSlotFreesCapacity(t *testing.T) {
	repo := newFakeRepo()
	settings := fixedConfig{cfg: domain.BusinessConfig{
		HoursStart: "08:00", HoursEnd: "18:00",
		IntervalMinutes: 30, MaxConcurrent: 1,
	}}
	ctx := context.Background()
	date := nextWeekday(t)

	createUC := NewCreatePortalSchedule(repo, settings, nil, testDispatcher(), quietLogger())
	cancelUC := NewCancelSchedule(repo, testDispatcher())

	first, err := createUC.Execute(ctx, CreatePortalScheduleInput{
		ClientID: 1, VehicleID: 1, ServiceID: 2,
		Date: date, Time: "10:00",
	})
	require.NoError(t, err)

	_, err = cancelUC.Execute(ctx, 7, first.ID)
	require.NoError(t, err)

	// cancelled appointments no longer count against the slot
	_, err = createUC.Execute(ctx, CreatePortalScheduleInput{
		ClientID: 2, VehicleID: 2, ServiceID: 2,
		Date: date, Time: "10:00",
	})
	assert.NoError(t, err)
}

func TestDeleteSchedule(t *testing.T) {
	repo := newFakeRepo()
	ctx := context.Background()
	uc := NewDeleteSchedule(repo, testDispatcher())

	id := seedSchedule(repo, models.Schedule{
		ClientID: 1, VehicleID: 1, ServiceID: 1,
		ScheduledDate: nextWeekday(t), ScheduledTime: "10:00",
		Status: string(domain.StatusScheduled),
	})

	require.NoError(t, uc.Execute(ctx, 7, id))
	_, ok := repo.schedules[id]
	assert.False(t, ok)
}

func TestDeleteScheduleGuards(t *testing.T) {
	repo := newFakeRepo()
	ctx := context.Background()
	uc := NewDeleteSchedule(repo, testDispatcher())

	completed := seedSchedule(repo, models.Schedule{
		ClientID: 1, VehicleID: 1, ServiceID: 1,
		ScheduledDate: nextWeekday(t), ScheduledTime: "10:00",
		Status: string(domain.StatusCompleted),
	})

	err := uc.Execute(ctx, 7, completed)
	assert.True(t, httperr.IsBusiness(err, "cannot_delete_completed"))

	past := seedSchedule(repo, models.Schedule{
		ClientID: 1, VehicleID: 1, ServiceID: 1,
		ScheduledDate: "2020-01-06", ScheduledTime: "10:00",
		Status: string(domain.StatusScheduled),
	})

	err = uc.Execute(ctx, 7, past)
	assert.True(t, httperr.IsBusiness(err, "cannot_delete_past_schedule"))
	assert.True(t, httperr.IsKind(err, httperr.KindPastDate))
}

func TestUpdateSchedule(t *testing.T) {
	repo := newFakeRepo()
	ctx := context.Background()
	uc := NewUpdateSchedule(repo, defaultSettings(), testDispatcher())

	id := seedSchedule(repo, models.Schedule{
		ClientID: 1, VehicleID: 1, ServiceID: 1,
		ScheduledDate: nextWeekday(t), ScheduledTime: "10:00",
		Status: string(domain.StatusScheduled),
	})

	notes := "cera extra"
	sc, err := uc.Execute(ctx, UpdateScheduleInput{
		ID:        id,
		ServiceID: 2,
		Notes:     &notes,
		UpdatedBy: 7,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(2), sc.ServiceID)
	assert.Equal(t, "cera extra", sc.Notes)

	_, err = uc.Execute(ctx, UpdateScheduleInput{ID: id})
	assert.True(t, httperr.IsBusiness(err, "nothing_to_update"))

	_, err = uc.Execute(ctx, UpdateScheduleInput{ID: id, Date: nextWeekday(t)})
	assert.True(t, httperr.IsBusiness(err, "date_and_time_required_together"))

	bad := "washed"
	_, err = uc.Execute(ctx, UpdateScheduleInput{ID: id, Status: &bad})
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestUpdateScheduleMoveDoesNotRecheckOverlap(t *testing.T) {
	repo := newFakeRepo()
	ctx := context.Background()
	date := nextWeekday(t)

	// two bookings, 09:00 (60 min) and 11:00
	seedSchedule(repo, models.Schedule{
		ClientID: 1, VehicleID: 1, ServiceID: 1,
		ScheduledDate: date, ScheduledTime: "09:00",
		Status: string(domain.StatusScheduled),
	})
	id := seedSchedule(repo, models.Schedule{
		ClientID: 2, VehicleID: 2, ServiceID: 2,
		ScheduledDate: date, ScheduledTime: "11:00",
		Status: string(domain.StatusScheduled),
	})

	uc := NewUpdateSchedule(repo, defaultSettings(), testDispatcher())

	// moving straight into the occupied window is accepted; the
	// generic edit leaves conflict control to the booking paths
	sc, err := uc.Execute(ctx, UpdateScheduleInput{
		ID:   id,
		Date: date,
		Time: "09:30",
	})

	require.NoError(t, err)
	assert.Equal(t, "09:30", sc.ScheduledTime)
}

func TestReschedulePortal(t *testing.T) {
	repo := newFakeRepo()
	settings := fixedConfig{cfg: domain.BusinessConfig{
		HoursStart: "08:00", HoursEnd: "18:00",
		IntervalMinutes: 30, MaxConcurrent: 1,
	}}
	ctx := context.Background()
	uc := NewReschedulePortal(repo, settings, testDispatcher())
	date := nextWeekday(t)

	id := seedSchedule(repo, models.Schedule{
		ClientID: 1, VehicleID: 1, ServiceID: 2,
		ScheduledDate: date, ScheduledTime: "10:00",
		Status: string(domain.StatusScheduled),
	})

	// someone else's appointment reads as missing
	_, err := uc.Execute(ctx, 2, id, date, "11:00")
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))

	sc, err := uc.Execute(ctx, 1, id, date, "11:00")
	require.NoError(t, err)
	assert.Equal(t, "11:00", sc.ScheduledTime)
	assert.Equal(t, string(domain.StatusScheduled), sc.Status)
}

func TestReschedulePortalExcludesSelfFromCount(t *testing.T) {
	repo := newFakeRepo()
	settings := fixedConfig{cfg: domain.BusinessConfig{
		HoursStart: "08:00", HoursEnd: "18:00",
		IntervalMinutes: 30, MaxConcurrent: 1,
	}}
	ctx := context.Background()
	uc := NewReschedulePortal(repo, settings, testDispatcher())
	date := nextWeekday(t)

	id := seedSchedule(repo, models.Schedule{
		ClientID: 1, VehicleID: 1, ServiceID: 2,
		ScheduledDate: date, ScheduledTime: "10:00",
		Status: string(domain.StatusScheduled),
	})

	// moving onto its own slot does not trip the capacity check
	_, err := uc.Execute(ctx, 1, id, date, "10:00")
	assert.NoError(t, err)

	seedSchedule(repo, models.Schedule{
		ClientID: 2, VehicleID: 2, ServiceID: 2,
		ScheduledDate: date, ScheduledTime: "11:00",
		Status: string(domain.StatusScheduled),
	})

	_, err = uc.Execute(ctx, 1, id, date, "11:00")
	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))
}

func TestReschedulePortalOnlyScheduled(t *testing.T) {
	repo := newFakeRepo()
	ctx := context.Background()
	uc := NewReschedulePortal(repo, defaultSettings(), testDispatcher())
	date := nextWeekday(t)

	id := seedSchedule(repo, models.Schedule{
		ClientID: 1, VehicleID: 1, ServiceID: 2,
		ScheduledDate: date, ScheduledTime: "10:00",
		Status: string(domain.StatusInProgress),
	})

	_, err := uc.Execute(ctx, 1, id, date, "11:00")
	assert.True(t, httperr.IsBusiness(err, "only_scheduled_can_reschedule"))
}

func TestHistoryAndLastSchedule(t *testing.T) {
	repo := newFakeRepo()
	ctx := context.Background()
	date := nextWeekday(t)

	seedSchedule(repo, models.Schedule{
		ClientID: 1, VehicleID: 1, ServiceID: 1,
		ScheduledDate: date, ScheduledTime: "09:00",
		Status: string(domain.StatusPaid),
	})
	last := seedSchedule(repo, models.Schedule{
		ClientID: 1, VehicleID: 1, ServiceID: 2,
		ScheduledDate: date, ScheduledTime: "14:00",
		Status: string(domain.StatusScheduled),
	})
	seedSchedule(repo, models.Schedule{
		ClientID: 2, VehicleID: 2, ServiceID: 2,
		ScheduledDate: date, ScheduledTime: "15:00",
		Status: string(domain.StatusScheduled),
	})

	history, err := NewClientHistory(repo).Execute(ctx, 1)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, last, history[0].ID)

	sc, err := NewLastSchedule(repo).Execute(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, sc)
	assert.Equal(t, last, sc.ID)

	none, err := NewLastSchedule(repo).Execute(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, none)
}
