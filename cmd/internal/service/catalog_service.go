package service

import (
	"eclat/cmd/internal/domain/entity"
	"eclat/cmd/internal/utils"
	"eclat/cmd/internal/utils/apierror"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

type ServiceRepository interface {
	Save(svc *entity.Service) error
	FindByID(id string) (*entity.Service, error)
	FindAll() ([]*entity.Service, error)
}

type ServiceRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=120"`
	Category string  `json:"category" validate:"max=80"`
	Duration int     `json:"duration" validate:"required,min=15,max=180"`
	Price    float64 `json:"price" validate:"gte=0"`
}

type ServiceResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category,omitempty"`
	Duration  int     `json:"duration"`
	Price     float64 `json:"price"`
	Active    bool    `json:"active"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// DefaultCatalogService manages the salon's bookable services.
type DefaultCatalogService struct {
	ServiceRepo ServiceRepository
	Validate    *validator.Validate
}

func NewCatalogService(serviceRepo ServiceRepository, validate *validator.Validate) *DefaultCatalogService {
	return &DefaultCatalogService{ServiceRepo: serviceRepo, Validate: validate}
}

func (c *DefaultCatalogService) GetServices() ([]*ServiceResponse, apierror.ErrorResponse) {
	services, err := c.ServiceRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch services: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*ServiceResponse, len(services))
	for i, svc := range services {
		resp[i] = toServiceResponse(svc)
	}
	return resp, nil
}

func (c *DefaultCatalogService) GetService(id string) (*ServiceResponse, apierror.ErrorResponse) {
	svc, err := c.ServiceRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch service %s: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if svc == nil {
		return nil, apierror.ServiceNotFoundError
	}
	return toServiceResponse(svc), nil
}

func (c *DefaultCatalogService) CreateService(req *ServiceRequest) (*ServiceResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := c.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	now := utils.NowUTC()
	svc := &entity.Service{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Category:  req.Category,
		Duration:  req.Duration,
		Price:     req.Price,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.ServiceRepo.Save(svc); err != nil {
		log.Errorf("failed to create service: %v", err)
		return nil, apierror.InternalServerError
	}
	return toServiceResponse(svc), nil
}

func toServiceResponse(svc *entity.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:        svc.ID,
		Name:      svc.Name,
		Category:  svc.Category,
		Duration:  svc.Duration,
		Price:     svc.Price,
		Active:    svc.Active,
		CreatedAt: utils.FormatEpoch(svc.CreatedAt),
		UpdatedAt: utils.FormatEpoch(svc.UpdatedAt),
	}
}
