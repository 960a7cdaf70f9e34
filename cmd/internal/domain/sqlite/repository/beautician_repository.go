package repository

import (
	"errors"

	"eclat/cmd/internal/domain/entity"
	"gorm.io/gorm"
)

type DefaultBeauticianRepository struct {
	db *gorm.DB
}

func NewBeauticianRepository(db *gorm.DB) *DefaultBeauticianRepository {
	return &DefaultBeauticianRepository{db: db}
}

func (b *DefaultBeauticianRepository) FindByID(id string) (*entity.Beautician, error) {
	var beautician entity.Beautician
	err := b.db.First(&beautician, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &beautician, nil
}

func (b *DefaultBeauticianRepository) FindAll() ([]*entity.Beautician, error) {
	var beauticians []*entity.Beautician
	err := b.db.Where("active = ?", true).Order("name asc").Find(&beauticians).Error
	return beauticians, err
}

func (b *DefaultBeauticianRepository) Save(beautician *entity.Beautician) error {
	return b.db.Save(beautician).Error
}
