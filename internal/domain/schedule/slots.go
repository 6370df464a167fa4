package schedule

// GenerateSlots produces every slot start time t with
// start <= t < end, stepping by the configured interval, ascending.
// When the interval does not divide the span evenly, the last slot is
// simply the final one below the closing time.
//
// The function is deliberately ignorant of "today" and of occupancy;
// callers filter past times and full slots.
func GenerateSlots(cfg BusinessConfig) []string {
	start, err := MinutesOfDay(cfg.HoursStart)
	if err != nil {
		return nil
	}
	end, err := MinutesOfDay(cfg.HoursEnd)
	if err != nil {
		return nil
	}
	if cfg.IntervalMinutes <= 0 {
		return nil
	}

	var slots []string
	for m := start; m < end; m += cfg.IntervalMinutes {
		slots = append(slots, FormatMinutesOfDay(m))
	}
	return slots
}

// Overlaps tests two half-open minute intervals [aStart, aEnd) and
// [bStart, bEnd).
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}
