package repository

import (
	"docbook/cmd/internal/domain/entity"
	"gorm.io/gorm"
)

type DefaultDoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) *DefaultDoctorRepository {
	return &DefaultDoctorRepository{db: db}
}

func (d *DefaultDoctorRepository) FindAll() ([]*entity.Doctor, error) {
	var doctors []*entity.Doctor
	err := d.db.Order("id asc").Find(&doctors).Error
	return doctors, err
}
