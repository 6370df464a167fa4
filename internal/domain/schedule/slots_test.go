package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlotsDefaultConfig(t *testing.T) {
	slots := GenerateSlots(DefaultConfig())

	assert.Len(t, slots, 20)
	assert.Equal(t, "08:00", slots[0])
	assert.Equal(t, "17:30", slots[len(slots)-1])

	// closing time is exclusive
	assert.NotContains(t, slots, "18:00")

	for i := 1; i < len(slots); i++ {
		assert.Less(t, slots[i-1], slots[i])
	}
}

func TestGenerateSlotsUnevenInterval(t *testing.T) {
	cfg := BusinessConfig{
		HoursStart:      "08:00",
		HoursEnd:        "10:00",
		IntervalMinutes: 45,
		MaxConcurrent:   1,
	}

	assert.Equal(t, []string{"08:00", "08:45", "09:30"}, GenerateSlots(cfg))
}

func TestGenerateSlotsInvalidConfig(t *testing.T) {
	assert.Nil(t, GenerateSlots(BusinessConfig{
		HoursStart:      "nope",
		HoursEnd:        "18:00",
		IntervalMinutes: 30,
	}))
	assert.Nil(t, GenerateSlots(BusinessConfig{
		HoursStart:      "08:00",
		HoursEnd:        "18:00",
		IntervalMinutes: 0,
	}))
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name         string
		aStart, aEnd int
		bStart, bEnd int
		want         bool
	}{
		{"identical", 540, 600, 540, 600, true},
		{"partial", 540, 600, 570, 630, true},
		{"contained", 540, 660, 570, 600, true},
		{"touching end-to-start", 540, 600, 600, 660, false},
		{"touching start-to-end", 600, 660, 540, 600, false},
		{"disjoint", 540, 600, 700, 760, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestMinutesOfDay(t *testing.T) {
	m, err := MinutesOfDay("08:30")
	assert.NoError(t, err)
	assert.Equal(t, 510, m)

	for _, bad := range []string{"", "8h30", "25:00", "10:75", "10"} {
		_, err := MinutesOfDay(bad)
		assert.Error(t, err, bad)
	}

	assert.Equal(t, "08:30", FormatMinutesOfDay(510))
	assert.Equal(t, "00:00", FormatMinutesOfDay(0))
}

func TestWithinHours(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.WithinHours("08:00"))
	assert.True(t, cfg.WithinHours("17:30"))
	assert.False(t, cfg.WithinHours("18:00"))
	assert.False(t, cfg.WithinHours("07:59"))
	assert.False(t, cfg.WithinHours("bad"))
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	bad := DefaultConfig()
	bad.HoursStart = "19:00"
	assert.Error(t, bad.Validate())

	bad = DefaultConfig()
	bad.IntervalMinutes = 0
	assert.Error(t, bad.Validate())

	bad = DefaultConfig()
	bad.MaxConcurrent = 0
	assert.Error(t, bad.Validate())
}
