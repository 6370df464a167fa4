package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/LavaJatoPro/carwash-scheduler/internal/httperr"
)

// BusinessConfig is the mutable scheduling configuration, loaded from
// the settings store on every request. Hours are "15:04" strings in
// the business timezone.
type BusinessConfig struct {
	HoursStart      string
	HoursEnd        string
	IntervalMinutes int
	MaxConcurrent   int
}

func DefaultConfig() BusinessConfig {
	return BusinessConfig{
		HoursStart:      "08:00",
		HoursEnd:        "18:00",
		IntervalMinutes: 30,
		MaxConcurrent:   3,
	}
}

func (c BusinessConfig) Validate() error {
	start, err := MinutesOfDay(c.HoursStart)
	if err != nil {
		return httperr.Validation("invalid_business_hours_start")
	}
	end, err := MinutesOfDay(c.HoursEnd)
	if err != nil {
		return httperr.Validation("invalid_business_hours_end")
	}
	if start >= end {
		return httperr.Validation("invalid_business_hours_range")
	}
	if c.IntervalMinutes <= 0 {
		return httperr.Validation("invalid_appointment_interval")
	}
	if c.MaxConcurrent <= 0 {
		return httperr.Validation("invalid_max_concurrent")
	}
	return nil
}

// WithinHours reports whether t ("15:04") satisfies start <= t < end.
func (c BusinessConfig) WithinHours(t string) bool {
	tm, err := MinutesOfDay(t)
	if err != nil {
		return false
	}
	start, _ := MinutesOfDay(c.HoursStart)
	end, _ := MinutesOfDay(c.HoursEnd)
	return tm >= start && tm < end
}

// MinutesOfDay converts "15:04" into minutes since midnight.
func MinutesOfDay(t string) (int, error) {
	parts := strings.SplitN(t, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", t)
	}
	hh, err := strconv.Atoi(parts[0])
	if err != nil || hh < 0 || hh > 23 {
		return 0, fmt.Errorf("invalid time %q", t)
	}
	mm, err := strconv.Atoi(parts[1])
	if err != nil || mm < 0 || mm > 59 {
		return 0, fmt.Errorf("invalid time %q", t)
	}
	return hh*60 + mm, nil
}

// FormatMinutesOfDay is the inverse of MinutesOfDay.
func FormatMinutesOfDay(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
