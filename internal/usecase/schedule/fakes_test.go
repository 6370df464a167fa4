package schedule

import (
	"context"
	"io"
	"sort"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/LavaJatoPro/carwash-scheduler/internal/audit"
	domain "github.com/LavaJatoPro/carwash-scheduler/internal/domain/schedule"
	"github.com/LavaJatoPro/carwash-scheduler/internal/httperr"
	"github.com/LavaJatoPro/carwash-scheduler/internal/models"
	"github.com/LavaJatoPro/carwash-scheduler/internal/timezone"
)

// ======================================================
// In-memory repository
// ======================================================

// fakeRepo mirrors the SQL repository's behavior, including its
// error codes, so use cases can be exercised without a database.
type fakeRepo struct {
	clients   map[uint]*models.Client
	vehicles  map[uint]*models.Vehicle
	services  map[uint]*models.Service
	schedules map[uint]*models.Schedule
	nextID    uint
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		clients: map[uint]*models.Client{
			1: {ID: 1, Name: "Maria", Active: true},
			2: {ID: 2, Name: "João", Active: true},
		},
		vehicles: map[uint]*models.Vehicle{
			1: {ID: 1, ClientID: 1, LicensePlate: "ABC1D23", Active: true},
			2: {ID: 2, ClientID: 2, LicensePlate: "XYZ9K88", Active: true},
		},
		services: map[uint]*models.Service{
			1: {ID: 1, Name: "Lavagem Completa", Price: 45.0, DurationMinutes: 60, Active: true},
			2: {ID: 2, Name: "Lavagem Simples", Price: 30.0, DurationMinutes: 30, Active: true},
		},
		schedules: map[uint]*models.Schedule{},
	}
}

func (r *fakeRepo) GetActiveClient(_ context.Context, id uint) (*models.Client, error) {
	c, ok := r.clients[id]
	if !ok || !c.Active {
		return nil, httperr.Validation("client_not_found")
	}
	return c, nil
}

func (r *fakeRepo) GetActiveVehicle(_ context.Context, id uint) (*models.Vehicle, error) {
	v, ok := r.vehicles[id]
	if !ok || !v.Active {
		return nil, httperr.Validation("vehicle_not_found")
	}
	return v, nil
}

func (r *fakeRepo) VehicleBelongsToClient(_ context.Context, vehicleID, clientID uint) (bool, error) {
	v, ok := r.vehicles[vehicleID]
	return ok && v.ClientID == clientID, nil
}

func (r *fakeRepo) GetActiveService(_ context.Context, id uint) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok || !s.Active {
		return nil, httperr.Validation("service_not_found")
	}
	return s, nil
}

func (r *fakeRepo) GetSchedule(_ context.Context, id uint) (*models.Schedule, error) {
	sc, ok := r.schedules[id]
	if !ok {
		return nil, httperr.NotFound("schedule_not_found")
	}

	out := *sc
	if svc, ok := r.services[sc.ServiceID]; ok {
		out.Service = *svc
	}
	return &out, nil
}

func (r *fakeRepo) ListSchedules(_ context.Context, filter domain.ListFilter) ([]models.Schedule, error) {
	var out []models.Schedule
	for _, sc := range r.schedules {
		if filter.Status != "" && sc.Status != filter.Status {
			continue
		}
		if filter.ClientID != 0 && sc.ClientID != filter.ClientID {
			continue
		}
		if filter.StartDate != "" && sc.ScheduledDate < filter.StartDate {
			continue
		}
		if filter.EndDate != "" && sc.ScheduledDate > filter.EndDate {
			continue
		}
		out = append(out, *sc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeRepo) ListForClient(_ context.Context, clientID uint) ([]models.Schedule, error) {
	var out []models.Schedule
	for _, sc := range r.schedules {
		if sc.ClientID == clientID {
			out = append(out, *sc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeRepo) LastForClient(ctx context.Context, clientID uint) (*models.Schedule, error) {
	all, _ := r.ListForClient(ctx, clientID)
	if len(all) == 0 {
		return nil, nil
	}
	return &all[0], nil
}

func (r *fakeRepo) CountActiveAt(_ context.Context, date, timeOfDay string, excludeID uint) (int, error) {
	count := 0
	for _, sc := range r.schedules {
		if sc.ID == excludeID {
			continue
		}
		if sc.ScheduledDate == date && sc.ScheduledTime == timeOfDay &&
			domain.Status(sc.Status).Active() {
			count++
		}
	}
	return count, nil
}

func (r *fakeRepo) ListActiveForDate(_ context.Context, date string) ([]domain.ActiveSlot, error) {
	var out []domain.ActiveSlot
	for _, sc := range r.schedules {
		if sc.ScheduledDate != date || !domain.Status(sc.Status).Active() {
			continue
		}
		duration := 30
		if svc, ok := r.services[sc.ServiceID]; ok {
			duration = svc.DurationMinutes
		}
		out = append(out, domain.ActiveSlot{Time: sc.ScheduledTime, DurationMinutes: duration})
	}
	return out, nil
}

func (r *fakeRepo) CreateWithOverlapGuard(ctx context.Context, sc *models.Schedule, durationMinutes int) error {
	start, err := domain.MinutesOfDay(sc.ScheduledTime)
	if err != nil {
		return httperr.Validation("invalid_date_or_time")
	}
	end := start + durationMinutes

	active, _ := r.ListActiveForDate(ctx, sc.ScheduledDate)
	for _, slot := range active {
		otherStart, err := domain.MinutesOfDay(slot.Time)
		if err != nil {
			continue
		}
		if domain.Overlaps(start, end, otherStart, otherStart+slot.DurationMinutes) {
			return httperr.Conflict("time_conflict")
		}
	}

	r.insert(sc)
	return nil
}

func (r *fakeRepo) CreateInSlot(ctx context.Context, sc *models.Schedule, maxConcurrent int) error {
	count, _ := r.CountActiveAt(ctx, sc.ScheduledDate, sc.ScheduledTime, 0)
	if count >= maxConcurrent {
		return httperr.Conflict("slot_unavailable")
	}

	r.insert(sc)
	return nil
}

func (r *fakeRepo) RescheduleInSlot(ctx context.Context, id uint, newDate, newTime string, maxConcurrent int) error {
	sc, ok := r.schedules[id]
	if !ok {
		return httperr.NotFound("schedule_not_found")
	}

	count, _ := r.CountActiveAt(ctx, newDate, newTime, id)
	if count >= maxConcurrent {
		return httperr.Conflict("slot_unavailable")
	}

	sc.ScheduledDate = newDate
	sc.ScheduledTime = newTime
	return nil
}

func (r *fakeRepo) UpdateSchedule(_ context.Context, sc *models.Schedule) error {
	if _, ok := r.schedules[sc.ID]; !ok {
		return httperr.NotFound("schedule_not_found")
	}
	stored := *sc
	r.schedules[sc.ID] = &stored
	return nil
}

func (r *fakeRepo) UpdateFields(_ context.Context, id uint, fields map[string]any) error {
	sc, ok := r.schedules[id]
	if !ok {
		return httperr.NotFound("schedule_not_found")
	}

	for k, v := range fields {
		switch k {
		case "client_id":
			sc.ClientID = v.(uint)
		case "vehicle_id":
			sc.VehicleID = v.(uint)
		case "service_id":
			sc.ServiceID = v.(uint)
		case "scheduled_date":
			sc.ScheduledDate = v.(string)
		case "scheduled_time":
			sc.ScheduledTime = v.(string)
		case "status":
			sc.Status = v.(string)
		case "notes":
			sc.Notes = v.(string)
		case "photo_url":
			sc.PhotoURL = v.(string)
		}
	}
	return nil
}

func (r *fakeRepo) DeleteSchedule(_ context.Context, id uint) error {
	delete(r.schedules, id)
	return nil
}

func (r *fakeRepo) insert(sc *models.Schedule) {
	r.nextID++
	sc.ID = r.nextID
	stored := *sc
	r.schedules[sc.ID] = &stored
}

// ======================================================
// Supporting fakes
// ======================================================

type fixedConfig struct {
	cfg domain.BusinessConfig
}

func (f fixedConfig) BusinessConfig(context.Context) (domain.BusinessConfig, error) {
	return f.cfg, nil
}

type noopSink struct{}

func (noopSink) Log(*uint, string, string, *uint, any) error { return nil }

type fakeGateway struct {
	calls []string
	err   error
}

func (g *fakeGateway) CreatePixIntent(_ context.Context, _ float64, description, _ string) (string, error) {
	g.calls = append(g.calls, description)
	if g.err != nil {
		return "", g.err
	}
	return "mp-123", nil
}

// ======================================================
// Helpers
// ======================================================

func testDispatcher() *audit.Dispatcher {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return audit.NewDispatcher(noopSink{}, log)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func defaultSettings() fixedConfig {
	return fixedConfig{cfg: domain.DefaultConfig()}
}

// nextWeekday returns a business-day date at least two days out.
func nextWeekday(t *testing.T) string {
	t.Helper()

	d := timezone.Now().AddDate(0, 0, 2)
	for d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}

// nextSaturday returns a future Saturday.
func nextSaturday(t *testing.T) string {
	t.Helper()

	d := timezone.Now().AddDate(0, 0, 2)
	for d.Weekday() != time.Saturday {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}
