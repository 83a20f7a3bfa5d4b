package utils

import "time"

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// Westernmost and easternmost UTC offsets in use, in minutes.
const (
	MinTimezoneOffsetMinutes = -720
	MaxTimezoneOffsetMinutes = 840
)

// ToUTCInstant interprets dateStr ("YYYY-MM-DD") and timeStr ("HH:MM") as a
// wall-clock reading in the caller's local timezone and returns the absolute
// UTC instant it denotes. tzOffsetMinutes is the number of minutes to
// subtract from the wall clock (read as if it were UTC) to reach real UTC;
// a caller east of Greenwich therefore passes a positive offset. Zero means
// the wall clock is already UTC. No timezone database is consulted: the
// caller supplies the offset valid for that specific instant.
func ToUTCInstant(dateStr, timeStr string, tzOffsetMinutes int) (time.Time, error) {
	wallClock, err := time.Parse(DateLayout+" "+ClockLayout, dateStr+" "+timeStr)
	if err != nil {
		return time.Time{}, err
	}
	return wallClock.Add(-time.Duration(tzOffsetMinutes) * time.Minute), nil
}

// FromUTCInstant is the inverse of ToUTCInstant: it reapplies the offset and
// formats the wall-clock reading the instant corresponds to.
func FromUTCInstant(instant time.Time, tzOffsetMinutes int) (dateStr, timeStr string) {
	wallClock := instant.UTC().Add(time.Duration(tzOffsetMinutes) * time.Minute)
	return wallClock.Format(DateLayout), wallClock.Format(ClockLayout)
}
