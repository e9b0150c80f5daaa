package routes

import (
	"context"
	"docbook/cmd/internal/booking"
	"docbook/cmd/internal/cache"
	"docbook/cmd/internal/directory"
	"docbook/cmd/internal/domain/entity"
	"docbook/cmd/internal/notify"
	"docbook/cmd/internal/views"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRemote struct {
	list    []entity.Appointment
	created []entity.Appointment
}

func (s *stubRemote) ListDoctors(context.Context) ([]entity.Doctor, error) {
	return []entity.Doctor{
		{ID: 1, Name: "Dr. Vali", Specialty: "Cardiologist", Experience: "12 years", Image: "v.png"},
		{ID: 2, Name: "Dr. Malika", Specialty: "Pediatrician", Experience: "8 years", Image: "m.png"},
	}, nil
}

func (s *stubRemote) ListAppointments(context.Context) ([]entity.Appointment, error) {
	return s.list, nil
}

func (s *stubRemote) CreateAppointment(_ context.Context, appt entity.Appointment) (*entity.Appointment, error) {
	s.created = append(s.created, appt)
	return &appt, nil
}

func (s *stubRemote) CompleteAppointment(_ context.Context, id int64) (*entity.Appointment, error) {
	return &entity.Appointment{ID: id, Status: entity.StatusDone}, nil
}

type screenFixture struct {
	e      *echo.Echo
	route  *DefaultScreenRoute
	state  *booking.Store
	remote *stubRemote
}

func newScreenFixture(t *testing.T, existing []entity.Appointment) *screenFixture {
	t.Helper()
	renderer, err := views.NewRenderer()
	require.NoError(t, err)

	persister, err := cache.NewFileCache(t.TempDir(), "appointments")
	require.NoError(t, err)

	remote := &stubRemote{list: existing}
	dialogs := notify.NewDialogs()
	state := booking.NewStore(remote, persister, dialogs, nil, booking.Options{})
	require.NoError(t, state.Init(context.Background()))

	dir := directory.New(remote)
	dir.Load(context.Background())

	e := echo.New()
	e.Renderer = renderer
	return &screenFixture{e: e, route: NewScreenDefault(state, dir, dialogs), state: state, remote: remote}
}

func (f *screenFixture) post(t *testing.T, handler echo.HandlerFunc, form url.Values, paramName, paramValue string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := f.e.NewContext(req, rec)
	if paramName != "" {
		c.SetParamNames(paramName)
		c.SetParamValues(paramValue)
	}
	require.NoError(t, handler(c))
	return rec
}

func (f *screenFixture) page(t *testing.T) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, f.route.Page(f.e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestPageListsDoctorsInOrder(t *testing.T) {
	f := newScreenFixture(t, nil)

	body := f.page(t)

	assert.Contains(t, body, "0 bookings")
	vali := strings.Index(body, "Dr. Vali")
	malika := strings.Index(body, "Dr. Malika")
	require.True(t, vali >= 0 && malika >= 0)
	assert.Less(t, vali, malika)
	assert.NotContains(t, body, `class="overlay"`)
}

func TestBookingFlow(t *testing.T) {
	f := newScreenFixture(t, nil)

	rec := f.post(t, f.route.BookDoctor, nil, "id", "1")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))

	body := f.page(t)
	assert.Contains(t, body, `class="overlay"`)
	assert.Contains(t, body, "Book with Dr. Vali")

	f.post(t, f.route.ConfirmModal, url.Values{"patientName": {"Aziz"}}, "", "")

	body = f.page(t)
	assert.NotContains(t, body, `class="overlay"`)
	assert.Contains(t, body, "1 bookings")
	assert.Contains(t, body, "Aziz &rarr; Dr. Vali (pending)")
	assert.Contains(t, body, "alert(dialog.text)")
	assert.Contains(t, body, "you are booked with Dr. Vali")

	// dialogs are shown once
	assert.NotContains(t, f.page(t), "alert(dialog.text)")
}

func TestConfirmWithEmptyNameKeepsModal(t *testing.T) {
	f := newScreenFixture(t, nil)
	f.post(t, f.route.BookDoctor, nil, "id", "2")

	f.post(t, f.route.ConfirmModal, url.Values{"patientName": {""}}, "", "")

	body := f.page(t)
	assert.Contains(t, body, `class="overlay"`)
	assert.Contains(t, body, "Please enter your name!")
	assert.Empty(t, f.remote.created)
}

func TestCancelKeepsTypedName(t *testing.T) {
	f := newScreenFixture(t, nil)
	f.post(t, f.route.BookDoctor, nil, "id", "1")

	f.post(t, f.route.CancelModal, url.Values{"patientName": {"Azi"}}, "", "")
	assert.False(t, f.state.Snapshot().ModalOpen)

	f.post(t, f.route.BookDoctor, nil, "id", "2")
	body := f.page(t)
	assert.Contains(t, body, `value="Azi"`)
	assert.Contains(t, body, "Book with Dr. Malika")
}

func TestAdvanceRoute(t *testing.T) {
	f := newScreenFixture(t, []entity.Appointment{
		{ID: 1, DoctorID: 1, DoctorName: "Dr. Vali", PatientName: "Aziz", Status: entity.StatusPending},
	})

	body := f.page(t)
	assert.Contains(t, body, `action="/appointments/1/advance"`)

	f.post(t, f.route.AdvanceStatus, nil, "id", "1")

	body = f.page(t)
	assert.Contains(t, body, "Aziz &rarr; Dr. Vali (done)")
	assert.NotContains(t, body, `action="/appointments/1/advance"`)
	assert.Contains(t, body, "patient Aziz is now in your queue")
}

func TestScreenRoutesRejectBadIDs(t *testing.T) {
	f := newScreenFixture(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	c := f.e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("abc")
	err := f.route.AdvanceStatus(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)

	c = f.e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("99")
	err = f.route.BookDoctor(c)
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}
