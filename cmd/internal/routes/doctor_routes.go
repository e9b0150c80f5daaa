package routes

import (
	"docbook/cmd/internal/service"
	"docbook/cmd/internal/utils/apierror"
	"net/http"

	"github.com/labstack/echo/v4"
)

type DoctorService interface {
	GetDoctors() ([]*service.DoctorResponse, apierror.ErrorResponse)
}

type DefaultDoctorRoute struct {
	DoctorService DoctorService
}

func NewDoctorDefault(doctorService DoctorService) *DefaultDoctorRoute {
	return &DefaultDoctorRoute{DoctorService: doctorService}
}

func (d *DefaultDoctorRoute) GetDoctors(c echo.Context) error {
	doctors, apierr := d.DoctorService.GetDoctors()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, doctors)
}
