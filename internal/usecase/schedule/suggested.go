package schedule

import (
	"context"

	domain "github.com/LavaJatoPro/carwash-scheduler/internal/domain/schedule"
	"github.com/LavaJatoPro/carwash-scheduler/internal/timezone"
)

// SuggestedSlots is the portal's simpler availability rule: a slot is
// offered while its slot-exact active count stays under the
// concurrency capacity. No duration-overlap logic and no "now"
// filtering beyond what the caller applies.
type SuggestedSlots struct {
	repo     domain.Repository
	settings ConfigSource
}

func NewSuggestedSlots(
	repo domain.Repository,
	settings ConfigSource,
) *SuggestedSlots {
	return &SuggestedSlots{
		repo:     repo,
		settings: settings,
	}
}

func (uc *SuggestedSlots) Execute(
	ctx context.Context,
	date string,
) (string, []string, error) {

	if date == "" {
		date = timezone.Today()
	}
	if _, err := parseDate(date); err != nil {
		return "", nil, err
	}

	cfg, err := uc.settings.BusinessConfig(ctx)
	if err != nil {
		return "", nil, err
	}

	available := make([]string, 0)
	for _, slot := range domain.GenerateSlots(cfg) {
		count, err := uc.repo.CountActiveAt(ctx, date, slot, 0)
		if err != nil {
			return "", nil, err
		}
		if count < cfg.MaxConcurrent {
			available = append(available, slot)
		}
	}

	return date, available, nil
}
