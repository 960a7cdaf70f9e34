// Package apierror defines the API error taxonomy. Every service operation
// returns an ErrorResponse that routes serialize as-is, so the wire shape
// ({success:false, message}) and the HTTP status live in one place.
package apierror

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ErrorResponse interface {
	error
	Code() int
}

type Simple struct {
	HTTPCode int    `json:"-"`
	Success  bool   `json:"success"`
	Message  string `json:"message"`
}

func (e *Simple) Error() string {
	return e.Message
}

func (e *Simple) Code() int {
	return e.HTTPCode
}

func NewSimple(code int, message string) *Simple {
	return &Simple{HTTPCode: code, Success: false, Message: message}
}

var (
	InternalServerError   = NewSimple(500, "Internal server error")
	MalformedBodyError    = NewSimple(400, "Malformed request body")
	InvalidAuthTokenError = NewSimple(401, "Invalid or missing auth token")
	AdminOnlyError        = NewSimple(403, "Administrator access required")
	NotFoundError         = NewSimple(404, "Resource not found")

	ServiceNotFoundError     = NewSimple(404, "Service not found")
	BeauticianNotFoundError  = NewSimple(404, "Beautician not found")
	AppointmentNotFoundError = NewSimple(404, "Appointment not found")

	// Conflict and Forbidden variants carry distinct messages: they drive
	// different client-side remediations.
	SlotNotAvailableError     = NewSimple(409, "This time slot is not available")
	CancelTooLateError        = NewSimple(409, "Appointments cannot be cancelled less than 2 hours in advance")
	AppointmentNotActiveError = NewSimple(409, "Only pending or confirmed appointments can be cancelled")
	NotYourAppointmentError   = NewSimple(403, "Not authorized to access this appointment")

	AppointmentInPastError     = NewSimple(400, "The appointment date must be in the future")
	InvalidStatusError         = NewSimple(400, "Invalid appointment status")
	InvalidDateError           = NewSimple(400, "Invalid date format, expected YYYY-MM-DD")
	MalformedWorkingHoursError = NewSimple(500, "Invalid working hours format")
)

func NewMissingParamError(name string) *Simple {
	return NewSimple(400, fmt.Sprintf("Missing required parameter: %s", name))
}

func NewInvalidParamTypeError(name, expected string) *Simple {
	return NewSimple(400, fmt.Sprintf("Parameter %s must be a valid %s", name, expected))
}

// FromValidationError adapts a go-playground validation failure into a 400
// listing the offending fields.
func FromValidationError(err error) *Simple {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return MalformedBodyError
	}

	fields := make([]string, len(verrs))
	for i, fe := range verrs {
		fields[i] = fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag())
	}
	return NewSimple(400, "Validation failed: "+strings.Join(fields, ", "))
}
