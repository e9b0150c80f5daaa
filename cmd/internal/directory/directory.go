// Package directory holds the doctor list shown on the booking screen.
package directory

import (
	"context"
	"docbook/cmd/internal/domain/entity"
	"sync"

	"github.com/labstack/gommon/log"
)

type DoctorLister interface {
	ListDoctors(ctx context.Context) ([]entity.Doctor, error)
}

// Directory fetches the doctors once per process and serves them as received.
type Directory struct {
	remote DoctorLister

	once    sync.Once
	mu      sync.RWMutex
	doctors []entity.Doctor
}

func New(remote DoctorLister) *Directory {
	return &Directory{remote: remote}
}

// Load issues the single read of the doctor collection. Later calls do
// nothing. A failed read leaves the directory empty.
func (d *Directory) Load(ctx context.Context) {
	d.once.Do(func() {
		doctors, err := d.remote.ListDoctors(ctx)
		if err != nil {
			log.Errorf("failed to load doctor directory: %v", err)
			return
		}

		d.mu.Lock()
		d.doctors = doctors
		d.mu.Unlock()
		log.Infof("loaded %d doctors", len(doctors))
	})
}

// Doctors returns a copy of the directory in the order the store sent it.
func (d *Directory) Doctors() []entity.Doctor {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]entity.Doctor, len(d.doctors))
	copy(out, d.doctors)
	return out
}

func (d *Directory) Find(id int) (entity.Doctor, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, doc := range d.doctors {
		if doc.ID == id {
			return doc, true
		}
	}
	return entity.Doctor{}, false
}
