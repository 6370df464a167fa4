package schedule

import (
	"context"
	"io"
	"time"

	domain "github.com/LavaJatoPro/carwash-scheduler/internal/domain/schedule"
	"github.com/LavaJatoPro/carwash-scheduler/internal/httperr"
	"github.com/LavaJatoPro/carwash-scheduler/internal/timezone"
)

// ConfigSource yields the current business configuration. Values are
// re-read per request; they may change between requests.
type ConfigSource interface {
	BusinessConfig(ctx context.Context) (domain.BusinessConfig, error)
}

// PaymentGateway registers a remote payment intent for online methods.
type PaymentGateway interface {
	CreatePixIntent(
		ctx context.Context,
		amount float64,
		description string,
		payerEmail string,
	) (string, error)
}

// PhotoStore persists an uploaded image and returns its public URL.
type PhotoStore interface {
	Upload(ctx context.Context, key string, r io.Reader) (string, error)
}

// --------------------------------------------------
// Shared validation helpers
// --------------------------------------------------

const (
	dateLayout = "2006-01-02"
	slotLayout = "2006-01-02 15:04"
)

func parseSlot(date, timeOfDay string) (time.Time, error) {
	start, err := time.ParseInLocation(
		slotLayout,
		date+" "+timeOfDay,
		timezone.Location(),
	)
	if err != nil {
		return time.Time{}, httperr.Validation("invalid_date_or_time")
	}
	return start, nil
}

func parseDate(date string) (time.Time, error) {
	d, err := time.ParseInLocation(dateLayout, date, timezone.Location())
	if err != nil {
		return time.Time{}, httperr.Validation("invalid_date")
	}
	return d, nil
}

func ensureFuture(start time.Time) error {
	if !start.After(timezone.Now()) {
		return httperr.PastDate("schedule_in_the_past")
	}
	return nil
}

// Staff bookings are restricted to business weekdays.
func ensureBusinessDay(start time.Time) error {
	wd := start.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return httperr.OutOfHours("weekends_not_available")
	}
	return nil
}

func ensureWithinHours(cfg domain.BusinessConfig, timeOfDay string) error {
	if !cfg.WithinHours(timeOfDay) {
		return httperr.OutOfHours("outside_business_hours")
	}
	return nil
}
