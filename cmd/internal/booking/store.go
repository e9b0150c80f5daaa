// Package booking is the state container behind the booking screen. It owns
// the appointment set and the session state of the modal, keeps the set in
// the local cache after every change and tells patients and doctors what
// happened.
package booking

import (
	"context"
	"docbook/cmd/internal/cache"
	"docbook/cmd/internal/domain/entity"
	"docbook/cmd/internal/metrics"
	"docbook/cmd/internal/notify"
	"docbook/cmd/internal/utils"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

var (
	ErrNoDoctorSelected    = errors.New("booking: no doctor selected")
	ErrPatientNameRequired = errors.New("booking: patient name required")
	ErrSubmitInFlight      = errors.New("booking: submission already in flight")
)

// RemoteStore is the backend the appointment set is synchronized with.
type RemoteStore interface {
	ListAppointments(ctx context.Context) ([]entity.Appointment, error)
	CreateAppointment(ctx context.Context, appt entity.Appointment) (*entity.Appointment, error)
	CompleteAppointment(ctx context.Context, id int64) (*entity.Appointment, error)
}

// Session is the ephemeral state of the screen. Only the appointment set
// survives a restart.
type Session struct {
	SelectedDoctor *entity.Doctor
	PatientName    string
	ModalOpen      bool
	Submitting     bool
}

type Snapshot struct {
	Session
	Appointments []entity.Appointment
}

type Options struct {
	// SyncAdvance also marks the booking done in the remote store.
	SyncAdvance bool
	Clock       *utils.IDClock
	Metrics     *metrics.BookingMetrics
}

type bookingForm struct {
	PatientName string `validate:"required"`
}

type Store struct {
	remote      RemoteStore
	cache       cache.Persister
	notifier    notify.Port
	validate    *validator.Validate
	clock       *utils.IDClock
	metrics     *metrics.BookingMetrics
	syncAdvance bool

	mu           sync.Mutex
	initialized  bool
	appointments []entity.Appointment
	session      Session
}

func NewStore(remote RemoteStore, persister cache.Persister, notifier notify.Port, validate *validator.Validate, opts Options) *Store {
	if validate == nil {
		validate = validator.New()
	}
	if opts.Clock == nil {
		opts.Clock = utils.NewIDClock()
	}
	return &Store{
		remote:       remote,
		cache:        persister,
		notifier:     notifier,
		validate:     validate,
		clock:        opts.Clock,
		metrics:      opts.Metrics,
		syncAdvance:  opts.SyncAdvance,
		appointments: []entity.Appointment{},
	}
}

// Init restores the appointment set: from the local cache when it holds
// one, otherwise from a single remote read. It runs once; later calls
// return nil without doing anything. If the remote read fails the set stays
// empty and nothing is cached.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	if s.initialized {
		s.mu.Unlock()
		return nil
	}
	s.initialized = true

	cached, found, err := s.cache.Load(ctx)
	if err != nil {
		log.Warnf("failed to read appointment cache, falling back to remote store: %v", err)
	}
	if err == nil && found {
		s.dispatch(ctx, Load{Appointments: cached})
		s.mu.Unlock()
		log.Infof("restored %d appointments from cache", len(cached))
		return nil
	}
	s.mu.Unlock()

	remote, err := s.remote.ListAppointments(ctx)
	if err != nil {
		log.Errorf("failed to load appointments from remote store: %v", err)
		return fmt.Errorf("booking: init: %w", err)
	}

	s.mu.Lock()
	s.dispatch(ctx, Load{Appointments: remote})
	s.mu.Unlock()
	log.Infof("loaded %d appointments from remote store", len(remote))
	return nil
}

// SelectDoctor picks the doctor to book and opens the modal. The name
// buffer keeps whatever was typed before.
func (s *Store) SelectDoctor(doc entity.Doctor) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.SelectedDoctor = &doc
	s.session.ModalOpen = true
}

func (s *Store) SetPatientName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.PatientName = name
}

// CloseModal hides the modal without clearing the name buffer.
func (s *Store) CloseModal() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.ModalOpen = false
}

// SubmitBooking books the selected doctor for the buffered patient name.
// The record returned by the remote store is the one appended. While one
// write is in flight further submissions fail with ErrSubmitInFlight.
func (s *Store) SubmitBooking(ctx context.Context) (*entity.Appointment, error) {
	s.mu.Lock()
	if s.session.Submitting {
		s.mu.Unlock()
		s.metrics.ObserveSubmission("in_flight")
		return nil, ErrSubmitInFlight
	}

	form := bookingForm{PatientName: s.session.PatientName}
	utils.Sanitize(&form)
	if err := s.validate.Struct(&form); err != nil {
		s.mu.Unlock()
		s.metrics.ObserveSubmission("invalid")
		s.notify(ctx, notify.AudiencePatient, "Please enter your name!")
		return nil, ErrPatientNameRequired
	}

	doc := s.session.SelectedDoctor
	if doc == nil {
		s.mu.Unlock()
		s.metrics.ObserveSubmission("no_doctor")
		return nil, ErrNoDoctorSelected
	}

	appt := entity.Appointment{
		ID:          s.clock.Next(),
		DoctorID:    doc.ID,
		DoctorName:  doc.Name,
		PatientName: form.PatientName,
		Status:      entity.StatusPending,
	}
	s.session.Submitting = true
	s.mu.Unlock()

	// A write already sent is seen through even if the caller goes away;
	// the client timeout still bounds it.
	created, err := s.remote.CreateAppointment(context.WithoutCancel(ctx), appt)

	s.mu.Lock()
	s.session.Submitting = false
	if err != nil {
		s.mu.Unlock()
		s.metrics.ObserveSubmission("failed")
		log.Errorf("failed to create appointment for %s with %s: %v", appt.PatientName, appt.DoctorName, err)
		return nil, fmt.Errorf("booking: submit: %w", err)
	}

	s.dispatch(ctx, Create{Appointment: *created})
	s.session.ModalOpen = false
	s.session.PatientName = ""
	s.mu.Unlock()

	s.metrics.ObserveSubmission("created")
	log.Infof("appointment %d created for %s with %s", created.ID, created.PatientName, created.DoctorName)
	s.notify(ctx, notify.AudiencePatient, fmt.Sprintf("Dear %s, you are booked with %s!", appt.PatientName, appt.DoctorName))
	return created, nil
}

// AdvanceStatus marks the pending bookings with id as done and tells the
// patient and then the doctor of the first one. A done or unknown id changes nothing and notifies nobody.
func (s *Store) AdvanceStatus(ctx context.Context, id int64) bool {
	s.mu.Lock()
	var prior entity.Appointment
	if idx := firstPending(s.appointments, id); idx >= 0 {
		prior = s.appointments[idx]
	}
	changed := s.dispatch(ctx, Advance{ID: id})
	s.mu.Unlock()

	if !changed {
		s.metrics.ObserveAdvance("noop")
		return false
	}
	s.metrics.ObserveAdvance("advanced")

	s.notify(ctx, notify.AudiencePatient, fmt.Sprintf("%s, it is your turn! Doctor %s is waiting for you.", prior.PatientName, prior.DoctorName))
	s.notify(ctx, notify.AudienceDoctor, fmt.Sprintf("%s, patient %s is now in your queue.", prior.DoctorName, prior.PatientName))

	if s.syncAdvance {
		if _, err := s.remote.CompleteAppointment(context.WithoutCancel(ctx), id); err != nil {
			log.Warnf("failed to mark appointment %d done in remote store: %v", id, err)
		}
	}
	return true
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{Session: s.session}
	if s.session.SelectedDoctor != nil {
		doc := *s.session.SelectedDoctor
		snap.SelectedDoctor = &doc
	}
	snap.Appointments = make([]entity.Appointment, len(s.appointments))
	copy(snap.Appointments, s.appointments)
	return snap
}

// dispatch applies action and, when the set changed, writes the whole set
// to the cache. Callers hold s.mu so the cache always matches memory.
func (s *Store) dispatch(ctx context.Context, action Action) bool {
	next, changed := Reduce(s.appointments, action)
	if !changed {
		return false
	}
	s.appointments = next

	if err := s.cache.Save(context.WithoutCancel(ctx), next); err != nil {
		log.Errorf("failed to persist %d appointments: %v", len(next), err)
	}
	return true
}

func (s *Store) notify(ctx context.Context, audience notify.Audience, message string) {
	s.notifier.Notify(ctx, audience, message)
	s.metrics.ObserveNotification(string(audience))
}
