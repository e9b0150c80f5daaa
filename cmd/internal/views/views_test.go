package views

import (
	"bytes"
	"docbook/cmd/internal/booking"
	"docbook/cmd/internal/domain/entity"
	"docbook/cmd/internal/notify"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pageData struct {
	booking.Snapshot
	Doctors []entity.Doctor
	Dialogs []notify.Message
}

func render(t *testing.T, data pageData) string {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "page", data, nil))
	return buf.String()
}

func TestPageRendersAppointmentsAndCount(t *testing.T) {
	out := render(t, pageData{
		Snapshot: booking.Snapshot{Appointments: []entity.Appointment{
			{ID: 1, DoctorID: 1, DoctorName: "Dr. Vali", PatientName: "Aziz", Status: entity.StatusPending},
			{ID: 2, DoctorID: 1, DoctorName: "Dr. Vali", PatientName: "Lola", Status: entity.StatusDone},
		}},
	})

	assert.Contains(t, out, "2 bookings")
	assert.Contains(t, out, "Aziz &rarr; Dr. Vali (pending)")
	assert.Contains(t, out, "Lola &rarr; Dr. Vali (done)")
	assert.Contains(t, out, `action="/appointments/1/advance"`)
	assert.NotContains(t, out, `action="/appointments/2/advance"`)
}

func TestModalOnlyWhenOpen(t *testing.T) {
	doc := entity.Doctor{ID: 3, Name: "Dr. Nodira"}

	closed := render(t, pageData{Snapshot: booking.Snapshot{Session: booking.Session{SelectedDoctor: &doc}}})
	assert.NotContains(t, closed, "Book with")

	open := render(t, pageData{Snapshot: booking.Snapshot{Session: booking.Session{
		SelectedDoctor: &doc,
		PatientName:    "Aziz",
		ModalOpen:      true,
		Submitting:     true,
	}}})
	assert.Contains(t, open, "Book with Dr. Nodira")
	assert.Contains(t, open, `value="Aziz"`)
	assert.Contains(t, open, "data-confirm disabled")
}

func TestDialogsRenderedAsAlerts(t *testing.T) {
	out := render(t, pageData{Dialogs: []notify.Message{
		{Audience: notify.AudiencePatient, Text: "Please enter your name!"},
	}})
	assert.Contains(t, out, "alert(dialog.text)")
	assert.Contains(t, out, "Please enter your name!")

	quiet := render(t, pageData{})
	assert.NotContains(t, quiet, "alert(")
}
