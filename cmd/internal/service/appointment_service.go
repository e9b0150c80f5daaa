package service

import (
	"docbook/cmd/internal/domain/entity"
	"docbook/cmd/internal/utils"
	"docbook/cmd/internal/utils/apierror"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type AppointmentRepository interface {
	FindAll() ([]*entity.Appointment, error)
	FindByID(id int64) (*entity.Appointment, error)
	NextID() (int64, error)
	Create(appointment *entity.Appointment) error
	Save(appointment *entity.Appointment) error
}

type AppointmentRequest struct {
	ID          int64  `json:"id" validate:"gte=0"`
	DoctorID    int    `json:"doctorId" validate:"required"`
	DoctorName  string `json:"doctorName" validate:"required,max=128"`
	PatientName string `json:"patientName" validate:"required,max=128"`
	Status      string `json:"status" validate:"omitempty,oneof=pending done"`
}

type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending done"`
}

type AppointmentResponse struct {
	ID          int64  `json:"id"`
	DoctorID    int    `json:"doctorId"`
	DoctorName  string `json:"doctorName"`
	PatientName string `json:"patientName"`
	Status      string `json:"status"`
}

type DefaultAppointmentService struct {
	AppointmentRepo AppointmentRepository
	Validate        *validator.Validate
}

func NewAppointmentService(apptRepo AppointmentRepository, validate *validator.Validate) *DefaultAppointmentService {
	return &DefaultAppointmentService{AppointmentRepo: apptRepo, Validate: validate}
}

func (a *DefaultAppointmentService) GetAppointments() ([]*AppointmentResponse, apierror.ErrorResponse) {
	appts, err := a.AppointmentRepo.FindAll()
	if err != nil {
		log.Errorf("failed to find appointments: %v", err)
		return nil, apierror.InternalServerError
	}

	response := make([]*AppointmentResponse, len(appts))
	for i, appt := range appts {
		response[i] = toAppointmentResponse(appt)
	}
	return response, nil
}

// CreateAppointment stores a new booking. The client-chosen id is kept when
// it is free; otherwise the store assigns the next one. The stored record is
// returned and is authoritative for the caller.
func (a *DefaultAppointmentService) CreateAppointment(req *AppointmentRequest) (*AppointmentResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := a.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	id, apierr := a.resolveID(req.ID)
	if apierr != nil {
		return nil, apierr
	}

	status := entity.Status(req.Status)
	if status == "" {
		status = entity.StatusPending
	}

	appointment := &entity.Appointment{
		ID:          id,
		DoctorID:    req.DoctorID,
		DoctorName:  req.DoctorName,
		PatientName: req.PatientName,
		Status:      status,
	}

	if err := a.AppointmentRepo.Create(appointment); err != nil {
		log.Errorf("failed to save appointment: %v", err)
		return nil, apierror.InternalServerError
	}
	return toAppointmentResponse(appointment), nil
}

// UpdateStatus moves a booking to req.Status. Only pending -> done changes
// anything; repeating done on a done booking returns it unchanged.
func (a *DefaultAppointmentService) UpdateStatus(id int64, req *StatusRequest) (*AppointmentResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := a.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	appt, err := a.AppointmentRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch appointment by id %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if appt == nil {
		return nil, apierror.NotFoundError
	}

	next := entity.Status(req.Status)
	if appt.Status == next && next == entity.StatusDone {
		return toAppointmentResponse(appt), nil
	}
	if !appt.Status.CanAdvanceTo(next) {
		return nil, apierror.InvalidTransitionError
	}

	appt.Status = next
	if err := a.AppointmentRepo.Save(appt); err != nil {
		log.Errorf("failed to update appointment %d status: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toAppointmentResponse(appt), nil
}

func (a *DefaultAppointmentService) resolveID(requested int64) (int64, apierror.ErrorResponse) {
	if requested > 0 {
		existing, err := a.AppointmentRepo.FindByID(requested)
		if err != nil {
			log.Errorf("failed to check appointment id %d: %v", requested, err)
			return 0, apierror.InternalServerError
		}
		if existing == nil {
			return requested, nil
		}
	}

	id, err := a.AppointmentRepo.NextID()
	if err != nil {
		log.Errorf("failed to allocate appointment id: %v", err)
		return 0, apierror.InternalServerError
	}
	return id, nil
}

func toAppointmentResponse(appt *entity.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          appt.ID,
		DoctorID:    appt.DoctorID,
		DoctorName:  appt.DoctorName,
		PatientName: appt.PatientName,
		Status:      string(appt.Status),
	}
}
