package doctor

import (
	"fmt"
	"time"
)

const clockLayout = "15:04"

// ParseClock converts a zero-padded 24h "HH:MM" string to minutes since
// midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock converts minutes since midnight back to "HH:MM".
func FormatClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Format12Hour renders a "HH:MM" value as "hh:mm AM/PM" for user-facing
// messages.
func Format12Hour(s string) string {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return s
	}
	return t.Format("03:04 PM")
}
