package timezone

import "time"

// BusinessTimezone is the single fixed timezone every business-hours
// rule and "now" comparison uses.
const BusinessTimezone = "America/Sao_Paulo"

func Location() *time.Location {
	loc, err := time.LoadLocation(BusinessTimezone)
	if err != nil {
		return time.FixedZone("-03", -3*60*60)
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// Today returns the current business date formatted as 2006-01-02.
func Today() string {
	return Now().Format("2006-01-02")
}
