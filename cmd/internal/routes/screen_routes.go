package routes

import (
	"context"
	"docbook/cmd/internal/booking"
	"docbook/cmd/internal/domain/entity"
	"docbook/cmd/internal/notify"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

type BookingState interface {
	Snapshot() booking.Snapshot
	SelectDoctor(doc entity.Doctor)
	SetPatientName(name string)
	CloseModal()
	SubmitBooking(ctx context.Context) (*entity.Appointment, error)
	AdvanceStatus(ctx context.Context, id int64) bool
}

type DoctorDirectory interface {
	Doctors() []entity.Doctor
	Find(id int) (entity.Doctor, bool)
}

type DialogQueue interface {
	Drain() []notify.Message
}

// PageData is what the "page" template renders.
type PageData struct {
	booking.Snapshot
	Doctors []entity.Doctor
	Dialogs []notify.Message
}

// DefaultScreenRoute serves the booking screen. Every action is a form POST
// answered with a redirect back to the page, which then shows any dialogs
// the action raised.
type DefaultScreenRoute struct {
	State     BookingState
	Directory DoctorDirectory
	Dialogs   DialogQueue
}

func NewScreenDefault(state BookingState, directory DoctorDirectory, dialogs DialogQueue) *DefaultScreenRoute {
	return &DefaultScreenRoute{State: state, Directory: directory, Dialogs: dialogs}
}

func (s *DefaultScreenRoute) Page(c echo.Context) error {
	data := PageData{
		Snapshot: s.State.Snapshot(),
		Doctors:  s.Directory.Doctors(),
		Dialogs:  s.Dialogs.Drain(),
	}
	return c.Render(http.StatusOK, "page", data)
}

func (s *DefaultScreenRoute) BookDoctor(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "ID is not a number")
	}

	doc, ok := s.Directory.Find(id)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Doctor not found")
	}

	s.State.SelectDoctor(doc)
	return backToPage(c)
}

func (s *DefaultScreenRoute) CancelModal(c echo.Context) error {
	s.State.SetPatientName(c.FormValue("patientName"))
	s.State.CloseModal()
	return backToPage(c)
}

func (s *DefaultScreenRoute) ConfirmModal(c echo.Context) error {
	s.State.SetPatientName(c.FormValue("patientName"))

	_, err := s.State.SubmitBooking(c.Request().Context())
	switch {
	case err == nil:
	case errors.Is(err, booking.ErrSubmitInFlight):
		log.Debugf("ignoring repeated booking confirmation")
	case errors.Is(err, booking.ErrPatientNameRequired), errors.Is(err, booking.ErrNoDoctorSelected):
		log.Debugf("booking rejected: %v", err)
	default:
		log.Warnf("booking not saved: %v", err)
	}
	return backToPage(c)
}

func (s *DefaultScreenRoute) AdvanceStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "ID is not a number")
	}

	s.State.AdvanceStatus(c.Request().Context(), id)
	return backToPage(c)
}

func backToPage(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, "/")
}
