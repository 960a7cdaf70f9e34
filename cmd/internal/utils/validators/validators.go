// Package validators holds the custom go-playground validators registered
// in main.
package validators

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

// Matches 24-hour HH:MM with an optional leading zero on the hour.
var timeSlotPattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

// IsTimeSlot validates the "timeslot" tag: a HH:MM slot start time.
func IsTimeSlot(fl validator.FieldLevel) bool {
	return timeSlotPattern.MatchString(fl.Field().String())
}

// IsDateOnly validates the "dateonly" tag: a YYYY-MM-DD calendar date.
func IsDateOnly(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}
