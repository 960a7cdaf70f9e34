package service

import (
	"errors"
	"time"

	"eclat/cmd/internal/domain/entity"
	"eclat/cmd/internal/utils"
	"eclat/cmd/internal/utils/apierror"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

// Minimum lead time a non-admin client must respect to cancel.
const cancellationWindow = 2 * time.Hour

type AppointmentRepository interface {
	Save(appointment *entity.Appointment) error
	FindByID(id string) (*entity.Appointment, error)
	FindActiveByDay(beauticianID, date string) ([]*entity.Appointment, error)
	FindByClientID(clientID string) ([]*entity.Appointment, error)
	FindPage(status, beauticianID, date string, page, limit int) ([]*entity.Appointment, int64, error)
}

type UserRepository interface {
	FindByID(id string) (*entity.User, error)
}

// ConfirmationMailer is the messaging collaborator. It is always invoked
// from a goroutine and never awaited by the booking path.
type ConfirmationMailer interface {
	SendAppointmentConfirmation(appt *entity.Appointment, client *entity.User, svc *entity.Service, beautician *entity.Beautician) error
}

type AppointmentRequest struct {
	ServiceID    string `json:"serviceId" validate:"required"`
	BeauticianID string `json:"beauticianId" validate:"required"`
	Date         string `json:"date" validate:"required,dateonly"`
	TimeSlot     string `json:"timeSlot" validate:"required,timeslot"`
	Notes        string `json:"notes" validate:"max=500"`
	ClientNotes  string `json:"clientNotes" validate:"max=500"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type AppointmentResponse struct {
	ID           string  `json:"id"`
	ClientID     string  `json:"clientId"`
	ServiceID    string  `json:"serviceId"`
	BeauticianID string  `json:"beauticianId"`
	Date         string  `json:"date"`
	TimeSlot     string  `json:"timeSlot"`
	Duration     int     `json:"duration"`
	Price        float64 `json:"price"`
	Status       string  `json:"status"`
	Notes        string  `json:"notes,omitempty"`
	ClientNotes  string  `json:"clientNotes,omitempty"`
	ReminderSent bool    `json:"reminderSent"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// AppointmentPage is one page of the admin listing.
type AppointmentPage struct {
	Appointments []*AppointmentResponse
	Total        int64
	Page         int
	Pages        int
}

type DefaultAppointmentService struct {
	AppointmentRepo AppointmentRepository
	ServiceRepo     ServiceRepository
	BeauticianRepo  BeauticianRepository
	UserRepo        UserRepository
	Mailer          ConfirmationMailer
	Validate        *validator.Validate
}

func NewAppointmentService(
	apptRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	beauticianRepo BeauticianRepository,
	userRepo UserRepository,
	mailer ConfirmationMailer,
	validate *validator.Validate,
) *DefaultAppointmentService {
	return &DefaultAppointmentService{
		AppointmentRepo: apptRepo,
		ServiceRepo:     serviceRepo,
		BeauticianRepo:  beauticianRepo,
		UserRepo:        userRepo,
		Mailer:          mailer,
		Validate:        validate,
	}
}

// CreateAppointment books a slot for the calling client. The in-process
// conflict check only exists for a friendly error message; the partial
// unique index on (beautician, date, slot) is what actually guarantees the
// invariant, and a duplicate-key failure at insert time surfaces as the
// same conflict.
func (a *DefaultAppointmentService) CreateAppointment(req *AppointmentRequest, clientID string) (*AppointmentResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := a.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	svc, err := a.ServiceRepo.FindByID(req.ServiceID)
	if err != nil {
		log.Errorf("failed to fetch service %s: %v", req.ServiceID, err)
		return nil, apierror.InternalServerError
	}
	if svc == nil {
		return nil, apierror.ServiceNotFoundError
	}

	beautician, err := a.BeauticianRepo.FindByID(req.BeauticianID)
	if err != nil {
		log.Errorf("failed to fetch beautician %s: %v", req.BeauticianID, err)
		return nil, apierror.InternalServerError
	}
	if beautician == nil {
		return nil, apierror.BeauticianNotFoundError
	}

	when, err := utils.CombineDateTime(req.Date, req.TimeSlot)
	if err != nil {
		return nil, apierror.MalformedBodyError
	}
	if !when.After(time.Now()) {
		return nil, apierror.AppointmentInPastError
	}

	taken, apierr := a.slotTaken(req.BeauticianID, req.Date, req.TimeSlot, svc.Duration)
	if apierr != nil {
		return nil, apierr
	}
	if taken {
		return nil, apierror.SlotNotAvailableError
	}

	now := utils.NowUTC()
	appointment := &entity.Appointment{
		ID:           uuid.NewString(),
		ClientID:     clientID,
		ServiceID:    req.ServiceID,
		BeauticianID: req.BeauticianID,
		Date:         req.Date,
		TimeSlot:     req.TimeSlot,
		Duration:     svc.Duration,
		Price:        svc.Price,
		Status:       entity.StatusPending,
		Notes:        req.Notes,
		ClientNotes:  req.ClientNotes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := a.AppointmentRepo.Save(appointment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race against a concurrent booking of the same slot.
			return nil, apierror.SlotNotAvailableError
		}
		log.Errorf("failed to save appointment: %v", err)
		return nil, apierror.InternalServerError
	}

	go a.sendConfirmation(appointment)

	return toAppointmentResponse(appointment), nil
}

// GetAppointments is the admin listing: filterable by status, beautician
// and day, paginated.
func (a *DefaultAppointmentService) GetAppointments(status, beauticianID, date string, page, limit int) (*AppointmentPage, apierror.ErrorResponse) {
	if status != "" && !entity.AppointmentStatus(status).IsValid() {
		return nil, apierror.InvalidStatusError
	}
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	appts, total, err := a.AppointmentRepo.FindPage(status, beauticianID, date, page, limit)
	if err != nil {
		log.Errorf("failed to list appointments: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*AppointmentResponse, len(appts))
	for i, appt := range appts {
		resp[i] = toAppointmentResponse(appt)
	}

	pages := int((total + int64(limit) - 1) / int64(limit))
	return &AppointmentPage{Appointments: resp, Total: total, Page: page, Pages: pages}, nil
}

func (a *DefaultAppointmentService) GetMyAppointments(clientID string) ([]*AppointmentResponse, apierror.ErrorResponse) {
	appts, err := a.AppointmentRepo.FindByClientID(clientID)
	if err != nil {
		log.Errorf("failed to list appointments for client %s: %v", clientID, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*AppointmentResponse, len(appts))
	for i, appt := range appts {
		resp[i] = toAppointmentResponse(appt)
	}
	return resp, nil
}

func (a *DefaultAppointmentService) GetAppointment(id, requesterID string, isAdmin bool) (*AppointmentResponse, apierror.ErrorResponse) {
	appt, apierr := a.fetchAppointment(id)
	if apierr != nil {
		return nil, apierr
	}
	if !isAdmin && appt.ClientID != requesterID {
		return nil, apierror.NotYourAppointmentError
	}
	return toAppointmentResponse(appt), nil
}

// ChangeStatus overwrites the status unconditionally. There is no enforced
// transition graph: administrators may move an appointment between any of
// the five states, including out of terminal ones, to correct mistakes.
func (a *DefaultAppointmentService) ChangeStatus(id, status string) (*AppointmentResponse, apierror.ErrorResponse) {
	newStatus := entity.AppointmentStatus(status)
	if !newStatus.IsValid() {
		return nil, apierror.InvalidStatusError
	}

	appt, apierr := a.fetchAppointment(id)
	if apierr != nil {
		return nil, apierr
	}

	appt.Status = newStatus
	appt.UpdatedAt = utils.NowUTC()
	if err := a.AppointmentRepo.Save(appt); err != nil {
		log.Errorf("failed to update status of appointment %s: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toAppointmentResponse(appt), nil
}

// CancelAppointment sets the status to cancelled. The record is never
// deleted. Clients may only cancel their own, still-active appointments and
// only up to the cancellation window; administrators bypass both checks.
func (a *DefaultAppointmentService) CancelAppointment(id, requesterID string, isAdmin bool) (*AppointmentResponse, apierror.ErrorResponse) {
	appt, apierr := a.fetchAppointment(id)
	if apierr != nil {
		return nil, apierr
	}

	if !isAdmin && appt.ClientID != requesterID {
		return nil, apierror.NotYourAppointmentError
	}

	if !isAdmin {
		if !appt.Status.IsActive() {
			return nil, apierror.AppointmentNotActiveError
		}

		when, err := utils.CombineDateTime(appt.Date, appt.TimeSlot)
		if err != nil {
			log.Errorf("appointment %s has malformed date/slot %q %q", appt.ID, appt.Date, appt.TimeSlot)
			return nil, apierror.InternalServerError
		}
		if time.Until(when) < cancellationWindow {
			return nil, apierror.CancelTooLateError
		}
	}

	appt.Status = entity.StatusCancelled
	appt.UpdatedAt = utils.NowUTC()
	if err := a.AppointmentRepo.Save(appt); err != nil {
		log.Errorf("failed to cancel appointment %s: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toAppointmentResponse(appt), nil
}

func (a *DefaultAppointmentService) fetchAppointment(id string) (*entity.Appointment, apierror.ErrorResponse) {
	appt, err := a.AppointmentRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch appointment %s: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if appt == nil {
		return nil, apierror.AppointmentNotFoundError
	}
	return appt, nil
}

// slotTaken checks the requested window against the beautician's active
// appointments of that day, by interval overlap.
func (a *DefaultAppointmentService) slotTaken(beauticianID, date, timeSlot string, duration int) (bool, apierror.ErrorResponse) {
	startMin, err := utils.ClockToMinutes(timeSlot)
	if err != nil {
		return false, apierror.MalformedBodyError
	}

	busy, err := a.AppointmentRepo.FindActiveByDay(beauticianID, date)
	if err != nil {
		log.Errorf("failed to check slot availability for beautician %s on %s: %v", beauticianID, date, err)
		return false, apierror.InternalServerError
	}
	return overlapsBusy(startMin, startMin+duration, busy), nil
}

// sendConfirmation runs detached from the booking request. Whatever happens
// here is logged and nothing else; a lost email never fails or rolls back
// the booking.
func (a *DefaultAppointmentService) sendConfirmation(appt *entity.Appointment) {
	client, err := a.UserRepo.FindByID(appt.ClientID)
	if err != nil || client == nil {
		log.Errorf("confirmation email for appointment %s skipped, client %s unavailable: %v", appt.ID, appt.ClientID, err)
		return
	}
	svc, err := a.ServiceRepo.FindByID(appt.ServiceID)
	if err != nil || svc == nil {
		log.Errorf("confirmation email for appointment %s skipped, service %s unavailable: %v", appt.ID, appt.ServiceID, err)
		return
	}
	beautician, err := a.BeauticianRepo.FindByID(appt.BeauticianID)
	if err != nil || beautician == nil {
		log.Errorf("confirmation email for appointment %s skipped, beautician %s unavailable: %v", appt.ID, appt.BeauticianID, err)
		return
	}

	if err := a.Mailer.SendAppointmentConfirmation(appt, client, svc, beautician); err != nil {
		log.Errorf("failed to send confirmation email to %s: %v", client.Email, err)
		return
	}
	log.Infof("appointment confirmation email sent to %s", client.Email)
}

func toAppointmentResponse(appt *entity.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:           appt.ID,
		ClientID:     appt.ClientID,
		ServiceID:    appt.ServiceID,
		BeauticianID: appt.BeauticianID,
		Date:         appt.Date,
		TimeSlot:     appt.TimeSlot,
		Duration:     appt.Duration,
		Price:        appt.Price,
		Status:       string(appt.Status),
		Notes:        appt.Notes,
		ClientNotes:  appt.ClientNotes,
		ReminderSent: appt.ReminderSent,
		CreatedAt:    utils.FormatEpoch(appt.CreatedAt),
		UpdatedAt:    utils.FormatEpoch(appt.UpdatedAt),
	}
}
