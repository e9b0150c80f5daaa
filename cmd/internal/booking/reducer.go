package booking

import "docbook/cmd/internal/domain/entity"

// Action is a change to the appointment set. Reduce applies it.
type Action interface {
	apply(appts []entity.Appointment) ([]entity.Appointment, bool)
}

// Load replaces the whole set, as on startup.
type Load struct {
	Appointments []entity.Appointment
}

// Create appends one booking.
type Create struct {
	Appointment entity.Appointment
}

// Advance marks every pending booking with ID as done. Ids come from the
// remote store and are not guaranteed unique.
type Advance struct {
	ID int64
}

// Reduce returns the set after action and whether anything changed. The
// input slice is never modified.
func Reduce(appts []entity.Appointment, action Action) ([]entity.Appointment, bool) {
	return action.apply(appts)
}

func (l Load) apply(_ []entity.Appointment) ([]entity.Appointment, bool) {
	next := make([]entity.Appointment, len(l.Appointments))
	copy(next, l.Appointments)
	return next, true
}

func (c Create) apply(appts []entity.Appointment) ([]entity.Appointment, bool) {
	next := make([]entity.Appointment, len(appts), len(appts)+1)
	copy(next, appts)
	return append(next, c.Appointment), true
}

func (a Advance) apply(appts []entity.Appointment) ([]entity.Appointment, bool) {
	if firstPending(appts, a.ID) < 0 {
		return appts, false
	}

	next := make([]entity.Appointment, len(appts))
	copy(next, appts)
	for i := range next {
		if next[i].ID == a.ID && next[i].Status.CanAdvanceTo(entity.StatusDone) {
			next[i].Status = entity.StatusDone
		}
	}
	return next, true
}

// firstPending returns the index of the first booking with id that can
// still be advanced, or -1.
func firstPending(appts []entity.Appointment, id int64) int {
	for i := range appts {
		if appts[i].ID == id && appts[i].Status.CanAdvanceTo(entity.StatusDone) {
			return i
		}
	}
	return -1
}
