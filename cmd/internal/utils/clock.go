package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var errBadClock = errors.New("clock value must have hour and minute parts")

// ParseClock splits an "HH:MM" (or "H:MM") string into hour and minute.
// It only checks structure, not range; range is the validator's job for
// request input, and working-hours entries are trusted configuration.
func ParseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, errBadClock
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, errBadClock
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, errBadClock
	}
	return hour, minute, nil
}

// ClockToMinutes converts "HH:MM" to minutes since midnight.
func ClockToMinutes(s string) (int, error) {
	h, m, err := ParseClock(s)
	if err != nil {
		return 0, err
	}
	return h*60 + m, nil
}

// MinutesToClock formats minutes since midnight as "HH:MM".
func MinutesToClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ParseDate parses a "YYYY-MM-DD" calendar date in the local timezone.
func ParseDate(date string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, date, time.Local)
}

// CombineDateTime resolves a calendar date plus an "HH:MM" slot into the
// appointment's local wall-clock instant.
func CombineDateTime(date, slot string) (time.Time, error) {
	day, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	h, m, err := ParseClock(slot)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, time.Local), nil
}
