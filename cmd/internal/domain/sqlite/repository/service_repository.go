package repository

import (
	"errors"

	"eclat/cmd/internal/domain/entity"
	"gorm.io/gorm"
)

type DefaultServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *DefaultServiceRepository {
	return &DefaultServiceRepository{db: db}
}

func (s *DefaultServiceRepository) FindByID(id string) (*entity.Service, error) {
	var svc entity.Service
	err := s.db.First(&svc, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (s *DefaultServiceRepository) FindAll() ([]*entity.Service, error) {
	var services []*entity.Service
	err := s.db.Where("active = ?", true).Order("name asc").Find(&services).Error
	return services, err
}

func (s *DefaultServiceRepository) Save(svc *entity.Service) error {
	return s.db.Save(svc).Error
}
