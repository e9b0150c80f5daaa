package service

import (
	"docbook/cmd/internal/domain/entity"
	"docbook/cmd/internal/utils/apierror"
	"github.com/labstack/gommon/log"
)

type DoctorRepository interface {
	FindAll() ([]*entity.Doctor, error)
}

type DoctorResponse struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Specialty  string `json:"specialty"`
	Experience string `json:"experience"`
	Image      string `json:"image"`
}

type DefaultDoctorService struct {
	DoctorRepo DoctorRepository
}

func NewDoctorService(doctorRepo DoctorRepository) *DefaultDoctorService {
	return &DefaultDoctorService{DoctorRepo: doctorRepo}
}

func (d *DefaultDoctorService) GetDoctors() ([]*DoctorResponse, apierror.ErrorResponse) {
	doctors, err := d.DoctorRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch doctors: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*DoctorResponse, len(doctors))
	for i, doc := range doctors {
		resp[i] = toDoctorResponse(doc)
	}
	return resp, nil
}

func toDoctorResponse(doc *entity.Doctor) *DoctorResponse {
	return &DoctorResponse{
		ID:         doc.ID,
		Name:       doc.Name,
		Specialty:  doc.Specialty,
		Experience: doc.Experience,
		Image:      doc.Image,
	}
}
