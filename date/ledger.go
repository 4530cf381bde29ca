package date

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// UnparsedError is returned for ledger timestamps that are not in the
// "DD/MM/YYYY[ HH:MM[:SS]]" shape. Input holds the original text.
type UnparsedError struct {
	Input  string
	Reason string
}

func (e *UnparsedError) Error() string {
	return fmt.Sprintf("unrecognized ledger date %q: %s", e.Input, e.Reason)
}

// CalendarKey converts a ledger timestamp into its "YYYY-MM-DD" key.
// Strings that are not in the ledger shape are returned unchanged.
func CalendarKey(s string) string {
	d, err := ParseLedger(s)
	if err != nil {
		return s
	}
	return d.String()
}

// ParseLedger parses the day part of a "DD/MM/YYYY" or "DD/MM/YYYY HH:MM:SS"
// ledger timestamp. Whatever follows the day is ignored.
func ParseLedger(s string) (Date, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Date{}, &UnparsedError{Input: s, Reason: "empty"}
	}
	return parseDay(s, fields[0])
}

// ParseInstant parses a ledger timestamp with its time of day, defaulting to
// midnight. The result is in UTC and only meant to order timestamps.
func ParseInstant(s string) (time.Time, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 2 {
		return time.Time{}, &UnparsedError{Input: s, Reason: "want a date and an optional time"}
	}
	day, err := parseDay(s, fields[0])
	if err != nil {
		return time.Time{}, err
	}
	if len(fields) == 1 {
		return day.time(), nil
	}
	clock, err := parseClock(fields[1])
	if err != nil {
		return time.Time{}, &UnparsedError{Input: s, Reason: err.Error()}
	}
	return day.time().Add(clock), nil
}

// parseDay reads the "DD/MM/YYYY" field of the timestamp s.
func parseDay(s, field string) (Date, error) {
	parts := strings.Split(field, "/")
	if len(parts) != 3 {
		return Date{}, &UnparsedError{Input: s, Reason: "want day/month/year"}
	}
	var dmy [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 {
			return Date{}, &UnparsedError{Input: s, Reason: fmt.Sprintf("invalid number %q", p)}
		}
		dmy[i] = v
	}
	day := New(dmy[2], time.Month(dmy[1]), dmy[0])
	// New normalizes overflowing days (31/02 becomes 02/03), reject those.
	if day.Day() != dmy[0] || int(day.Month()) != dmy[1] || day.Year() != dmy[2] {
		return Date{}, &UnparsedError{Input: s, Reason: "day or month out of range"}
	}
	return day, nil
}

// parseClock reads "HH:MM:SS" or "HH:MM" as a duration since midnight.
func parseClock(s string) (time.Duration, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second, nil
		}
	}
	return 0, fmt.Errorf("invalid time of day %q", s)
}
