package timezone

import "time"

// The gym operates in a single location; all calendar dates (attendance,
// subscription expiry) are taken in gym-local time.
const DefaultTimezone = "Asia/Kathmandu"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

// DateOf truncates an instant to its gym-local calendar date.
func DateOf(t time.Time) time.Time {
	t = t.In(Location(DefaultTimezone))
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func Today() time.Time {
	return DateOf(Now())
}
