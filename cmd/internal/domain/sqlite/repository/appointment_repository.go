package repository

import (
	"docbook/cmd/internal/domain/entity"
	"errors"
	"gorm.io/gorm"
)

type DefaultAppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *DefaultAppointmentRepository {
	return &DefaultAppointmentRepository{db: db}
}

func (a *DefaultAppointmentRepository) FindByID(id int64) (*entity.Appointment, error) {
	var appt entity.Appointment
	err := a.db.First(&appt, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &appt, err
}

// FindAll returns every appointment ordered by id. Ids are creation
// timestamps or NextID values, so this is also creation order.
func (a *DefaultAppointmentRepository) FindAll() ([]*entity.Appointment, error) {
	var appts []*entity.Appointment
	err := a.db.Order("id asc").Find(&appts).Error
	return appts, err
}

// NextID returns an identifier larger than any stored one. Used when a
// client-chosen identifier is missing or already taken.
func (a *DefaultAppointmentRepository) NextID() (int64, error) {
	var maxID int64
	err := a.db.Model(&entity.Appointment{}).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error
	if err != nil {
		return 0, err
	}
	return maxID + 1, nil
}

func (a *DefaultAppointmentRepository) Create(appointment *entity.Appointment) error {
	return a.db.Create(appointment).Error
}

func (a *DefaultAppointmentRepository) Save(appointment *entity.Appointment) error {
	return a.db.Save(appointment).Error
}
