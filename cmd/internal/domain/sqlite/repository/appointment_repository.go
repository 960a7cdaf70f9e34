package repository

import (
	"errors"

	"eclat/cmd/internal/domain/entity"
	"gorm.io/gorm"
)

var activeStatuses = []entity.AppointmentStatus{
	entity.StatusPending,
	entity.StatusConfirmed,
}

type DefaultAppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *DefaultAppointmentRepository {
	return &DefaultAppointmentRepository{db: db}
}

func (a *DefaultAppointmentRepository) FindByID(id string) (*entity.Appointment, error) {
	var appt entity.Appointment
	err := a.db.First(&appt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

// FindActiveByDay returns the pending/confirmed appointments of one
// beautician on one calendar day, in slot order. Used both by the
// availability calculator and by the create-time conflict fast path.
func (a *DefaultAppointmentRepository) FindActiveByDay(beauticianID, date string) ([]*entity.Appointment, error) {
	var appts []*entity.Appointment
	err := a.db.
		Where("beautician_id = ?", beauticianID).
		Where("date = ?", date).
		Where("status IN ?", activeStatuses).
		Order("time_slot asc").
		Find(&appts).Error
	return appts, err
}

func (a *DefaultAppointmentRepository) FindByClientID(clientID string) ([]*entity.Appointment, error) {
	var appts []*entity.Appointment
	err := a.db.
		Where("client_id = ?", clientID).
		Order("date desc, time_slot desc").
		Find(&appts).Error
	return appts, err
}

// FindPage returns one page of appointments plus the unpaginated total.
// Empty filter values are ignored.
func (a *DefaultAppointmentRepository) FindPage(status, beauticianID, date string, page, limit int) ([]*entity.Appointment, int64, error) {
	query := a.db.Model(&entity.Appointment{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if beauticianID != "" {
		query = query.Where("beautician_id = ?", beauticianID)
	}
	if date != "" {
		query = query.Where("date = ?", date)
	}

	// Count on its own session so the finisher does not pollute the
	// statement reused by Find below.
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var appts []*entity.Appointment
	err := query.
		Order("date asc, time_slot asc").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&appts).Error
	if err != nil {
		return nil, 0, err
	}
	return appts, total, nil
}

func (a *DefaultAppointmentRepository) Save(appointment *entity.Appointment) error {
	return a.db.Save(appointment).Error
}
