package timezone

import "time"

const DefaultTimezone = "America/Santiago"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

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

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Now returns the current instant in UTC at millisecond precision, the
// resolution the stored createdAt timestamps use.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// ParseSlot parses a booking date ("2006-01-02") and time ("15:04") in tz.
func ParseSlot(date, hm, tz string) (time.Time, error) {
	return time.ParseInLocation(
		DateLayout+" "+TimeLayout,
		date+" "+hm,
		Location(tz),
	)
}
