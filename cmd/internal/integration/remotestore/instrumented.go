package remotestore

import (
	"context"
	"docbook/cmd/internal/domain/entity"
	"time"
)

type Observer interface {
	ObserveRemoteCall(operation string, err error, seconds float64)
}

// InstrumentedStore times every call made through the wrapped store.
type InstrumentedStore struct {
	inner    RemoteStoreInterface
	observer Observer
}

func WithObserver(inner RemoteStoreInterface, observer Observer) *InstrumentedStore {
	return &InstrumentedStore{inner: inner, observer: observer}
}

func (s *InstrumentedStore) ListDoctors(ctx context.Context) ([]entity.Doctor, error) {
	start := time.Now()
	doctors, err := s.inner.ListDoctors(ctx)
	s.observe("list_doctors", start, err)
	return doctors, err
}

func (s *InstrumentedStore) ListAppointments(ctx context.Context) ([]entity.Appointment, error) {
	start := time.Now()
	appts, err := s.inner.ListAppointments(ctx)
	s.observe("list_appointments", start, err)
	return appts, err
}

func (s *InstrumentedStore) CreateAppointment(ctx context.Context, appt entity.Appointment) (*entity.Appointment, error) {
	start := time.Now()
	created, err := s.inner.CreateAppointment(ctx, appt)
	s.observe("create_appointment", start, err)
	return created, err
}

func (s *InstrumentedStore) CompleteAppointment(ctx context.Context, id int64) (*entity.Appointment, error) {
	start := time.Now()
	updated, err := s.inner.CompleteAppointment(ctx, id)
	s.observe("complete_appointment", start, err)
	return updated, err
}

func (s *InstrumentedStore) observe(operation string, start time.Time, err error) {
	if s.observer == nil {
		return
	}
	s.observer.ObserveRemoteCall(operation, err, time.Since(start).Seconds())
}
