package service

import (
	"fmt"

	"eclat/cmd/internal/domain/entity"
	"eclat/cmd/internal/utils"
	"eclat/cmd/internal/utils/apierror"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
	"gorm.io/datatypes"
)

type BeauticianRepository interface {
	Save(beautician *entity.Beautician) error
	FindByID(id string) (*entity.Beautician, error)
	FindAll() ([]*entity.Beautician, error)
}

type BeauticianRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=80"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"max=32"`
	Specialties string `json:"specialties" validate:"max=255"`
}

type BeauticianResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	Phone        string           `json:"phone,omitempty"`
	Specialties  string           `json:"specialties,omitempty"`
	WorkingHours entity.WeekHours `json:"workingHours"`
	Active       bool             `json:"active"`
	CreatedAt    string           `json:"createdAt"`
	UpdatedAt    string           `json:"updatedAt"`
}

type DefaultBeauticianService struct {
	BeauticianRepo BeauticianRepository
	Validate       *validator.Validate

	// The default weekly schedule is injected configuration, not a schema
	// constant.
	DefaultHours entity.WeekHours
}

func NewBeauticianService(beauticianRepo BeauticianRepository, validate *validator.Validate, defaultHours entity.WeekHours) *DefaultBeauticianService {
	return &DefaultBeauticianService{
		BeauticianRepo: beauticianRepo,
		Validate:       validate,
		DefaultHours:   defaultHours,
	}
}

func (b *DefaultBeauticianService) GetBeauticians() ([]*BeauticianResponse, apierror.ErrorResponse) {
	beauticians, err := b.BeauticianRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch beauticians: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*BeauticianResponse, len(beauticians))
	for i, beautician := range beauticians {
		resp[i] = toBeauticianResponse(beautician)
	}
	return resp, nil
}

func (b *DefaultBeauticianService) GetBeautician(id string) (*BeauticianResponse, apierror.ErrorResponse) {
	beautician, err := b.BeauticianRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch beautician %s: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if beautician == nil {
		return nil, apierror.BeauticianNotFoundError
	}
	return toBeauticianResponse(beautician), nil
}

// CreateBeautician registers a staff member with the configured default
// weekly schedule; hours are adjusted afterwards via UpdateWorkingHours.
func (b *DefaultBeauticianService) CreateBeautician(req *BeauticianRequest) (*BeauticianResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := b.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	now := utils.NowUTC()
	beautician := &entity.Beautician{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Specialties:  req.Specialties,
		WorkingHours: datatypes.NewJSONType(b.DefaultHours),
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := b.BeauticianRepo.Save(beautician); err != nil {
		log.Errorf("failed to create beautician: %v", err)
		return nil, apierror.InternalServerError
	}
	return toBeauticianResponse(beautician), nil
}

func (b *DefaultBeauticianService) UpdateWorkingHours(id string, hours *entity.WeekHours) (*BeauticianResponse, apierror.ErrorResponse) {
	if apierr := validateWeekHours(hours); apierr != nil {
		return nil, apierr
	}

	beautician, err := b.BeauticianRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch beautician %s: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if beautician == nil {
		return nil, apierror.BeauticianNotFoundError
	}

	beautician.WorkingHours = datatypes.NewJSONType(*hours)
	beautician.UpdatedAt = utils.NowUTC()
	if err := b.BeauticianRepo.Save(beautician); err != nil {
		log.Errorf("failed to update working hours of beautician %s: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toBeauticianResponse(beautician), nil
}

// validateWeekHours rejects schedules the availability calculator could not
// work with: on available days both clocks must parse and the day must not
// end before it starts.
func validateWeekHours(hours *entity.WeekHours) apierror.ErrorResponse {
	for name, day := range hours.Days() {
		if !day.Available {
			continue
		}
		start, err := utils.ClockToMinutes(day.Start)
		if err != nil {
			return apierror.NewSimple(400, fmt.Sprintf("Invalid start time for %s, expected HH:MM", name))
		}
		end, err := utils.ClockToMinutes(day.End)
		if err != nil {
			return apierror.NewSimple(400, fmt.Sprintf("Invalid end time for %s, expected HH:MM", name))
		}
		if end <= start {
			return apierror.NewSimple(400, fmt.Sprintf("Working hours for %s end before they start", name))
		}
	}
	return nil
}

func toBeauticianResponse(beautician *entity.Beautician) *BeauticianResponse {
	return &BeauticianResponse{
		ID:           beautician.ID,
		Name:         beautician.Name,
		Email:        beautician.Email,
		Phone:        beautician.Phone,
		Specialties:  beautician.Specialties,
		WorkingHours: beautician.WorkingHours.Data(),
		Active:       beautician.Active,
		CreatedAt:    utils.FormatEpoch(beautician.CreatedAt),
		UpdatedAt:    utils.FormatEpoch(beautician.UpdatedAt),
	}
}
