package service

import (
	"eclat/cmd/internal/domain/entity"
	"eclat/cmd/internal/utils"
	"eclat/cmd/internal/utils/apierror"
	"github.com/labstack/gommon/log"
)

// Slot length used when no service is given or the service cannot be
// resolved.
const defaultSlotMinutes = 60

// AvailabilityResult is the outcome of one availability computation. Slots
// is never nil; Note explains an empty result that is not an error (the
// beautician simply does not work that day).
type AvailabilityResult struct {
	Slots []string
	Note  string
}

type DefaultAvailabilityService struct {
	AppointmentRepo AppointmentRepository
	BeauticianRepo  BeauticianRepository
	ServiceRepo     ServiceRepository
}

func NewAvailabilityService(apptRepo AppointmentRepository, beauticianRepo BeauticianRepository, serviceRepo ServiceRepository) *DefaultAvailabilityService {
	return &DefaultAvailabilityService{
		AppointmentRepo: apptRepo,
		BeauticianRepo:  beauticianRepo,
		ServiceRepo:     serviceRepo,
	}
}

// ComputeAvailableSlots returns the bookable HH:MM start times for a
// beautician on a date, in chronological order. The result is computed
// from persisted state on every call, never cached: a booking is visible
// to the next call immediately.
func (s *DefaultAvailabilityService) ComputeAvailableSlots(date, beauticianID, serviceID string) (*AvailabilityResult, apierror.ErrorResponse) {
	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, apierror.InvalidDateError
	}

	beautician, err := s.BeauticianRepo.FindByID(beauticianID)
	if err != nil {
		log.Errorf("failed to fetch beautician %s: %v", beauticianID, err)
		return nil, apierror.InternalServerError
	}
	if beautician == nil {
		return nil, apierror.BeauticianNotFoundError
	}

	hours := beautician.WorkingHours.Data().ForWeekday(day.Weekday())
	if !hours.Available {
		return &AvailabilityResult{
			Slots: []string{},
			Note:  "The beautician does not work this day",
		}, nil
	}

	duration := s.resolveSlotDuration(serviceID)

	startMin, err := utils.ClockToMinutes(hours.Start)
	if err != nil {
		log.Errorf("beautician %s has malformed working hours start %q", beauticianID, hours.Start)
		return nil, apierror.MalformedWorkingHoursError
	}
	endMin, err := utils.ClockToMinutes(hours.End)
	if err != nil {
		log.Errorf("beautician %s has malformed working hours end %q", beauticianID, hours.End)
		return nil, apierror.MalformedWorkingHoursError
	}

	busy, err := s.AppointmentRepo.FindActiveByDay(beauticianID, day.Format(utils.DateLayout))
	if err != nil {
		log.Errorf("failed to fetch appointments for beautician %s on %s: %v", beauticianID, date, err)
		return nil, apierror.InternalServerError
	}

	slots := []string{}
	for t := startMin; t < endMin; t += duration {
		if !overlapsBusy(t, t+duration, busy) {
			slots = append(slots, utils.MinutesToClock(t))
		}
	}
	return &AvailabilityResult{Slots: slots}, nil
}

// resolveSlotDuration looks up the service's duration. A missing or
// unresolvable service is not an error here: the calculator falls back to
// the default so a stale service reference on the client still produces a
// usable slot list.
func (s *DefaultAvailabilityService) resolveSlotDuration(serviceID string) int {
	if serviceID == "" {
		return defaultSlotMinutes
	}

	svc, err := s.ServiceRepo.FindByID(serviceID)
	if err != nil {
		log.Errorf("failed to fetch service %s, using default slot duration: %v", serviceID, err)
		return defaultSlotMinutes
	}
	if svc == nil || svc.Duration <= 0 {
		return defaultSlotMinutes
	}
	return svc.Duration
}

// overlapsBusy reports whether the half-open candidate window
// [startMin, endMin) overlaps any active appointment's own window. Interval
// overlap, not exact slot-string equality: a 90-minute booking at 10:00
// also blocks a 60-minute candidate at 10:30.
func overlapsBusy(startMin, endMin int, busy []*entity.Appointment) bool {
	for _, appt := range busy {
		apptStart, err := utils.ClockToMinutes(appt.TimeSlot)
		if err != nil {
			continue
		}
		apptEnd := apptStart + appt.Duration
		if startMin < apptEnd && apptStart < endMin {
			return true
		}
	}
	return false
}
