package schedule

import (
	"context"
	"sort"
	"time"

	domain "github.com/LavaJatoPro/carwash-scheduler/internal/domain/schedule"
	"github.com/LavaJatoPro/carwash-scheduler/internal/httperr"
	"github.com/LavaJatoPro/carwash-scheduler/internal/timezone"
)

// Availability is the staff view of one day: which slot times remain
// free once every active appointment's full service window is blocked
// out, plus the raw occupied set for diagnostics.
type Availability struct {
	Date           string   `json:"date"`
	Available      bool     `json:"available"`
	AvailableTimes []string `json:"available_times"`
	OccupiedTimes  []string `json:"occupied_times"`
	TotalSlots     int      `json:"total_slots"`
	OccupiedSlots  int      `json:"occupied_slots"`
	AvailableSlots int      `json:"available_slots"`
}

// GetAvailability answers "what times are free on date D" for the
// staff calendar. An active appointment occupies every slot its
// service duration covers, regardless of the concurrency capacity.
// This duration-expansion policy is intentionally different from the
// portal's slot-exact capacity rule in SuggestedSlots.
type GetAvailability struct {
	repo     domain.Repository
	settings ConfigSource
}

func NewGetAvailability(
	repo domain.Repository,
	settings ConfigSource,
) *GetAvailability {
	return &GetAvailability{
		repo:     repo,
		settings: settings,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
) (*Availability, error) {

	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	today := timezone.Today()
	if date < today {
		return nil, httperr.PastDate("date_in_the_past")
	}

	if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return &Availability{
			Date:           date,
			Available:      false,
			AvailableTimes: []string{},
			OccupiedTimes:  []string{},
		}, nil
	}

	cfg, err := uc.settings.BusinessConfig(ctx)
	if err != nil {
		return nil, err
	}

	slots := domain.GenerateSlots(cfg)

	if date == today {
		now := timezone.Now()
		slots = keepFutureSlots(slots, now.Hour()*60+now.Minute())
	}

	active, err := uc.repo.ListActiveForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	occupied := make(map[string]struct{})
	for _, ap := range active {
		start, err := domain.MinutesOfDay(ap.Time)
		if err != nil {
			continue
		}
		for m := start; m < start+ap.DurationMinutes; m += cfg.IntervalMinutes {
			occupied[domain.FormatMinutesOfDay(m)] = struct{}{}
		}
	}

	available := make([]string, 0, len(slots))
	for _, slot := range slots {
		if _, taken := occupied[slot]; !taken {
			available = append(available, slot)
		}
	}

	occupiedList := make([]string, 0, len(occupied))
	for t := range occupied {
		occupiedList = append(occupiedList, t)
	}
	sort.Strings(occupiedList)

	return &Availability{
		Date:           date,
		Available:      len(available) > 0,
		AvailableTimes: available,
		OccupiedTimes:  occupiedList,
		TotalSlots:     len(slots),
		OccupiedSlots:  len(occupied),
		AvailableSlots: len(available),
	}, nil
}

// keepFutureSlots drops every slot at or before nowMinutes. A slot
// equal to "now" is already unbookable.
func keepFutureSlots(slots []string, nowMinutes int) []string {
	kept := slots[:0]
	for _, slot := range slots {
		m, err := domain.MinutesOfDay(slot)
		if err != nil {
			continue
		}
		if m > nowMinutes {
			kept = append(kept, slot)
		}
	}
	return kept
}
