// Package cache keeps the booking screen's appointment list across restarts.
// A cache holds a single key whose value is the JSON array of the whole
// collection; every save overwrites it.
package cache

import (
	"context"
	"docbook/cmd/internal/domain/entity"
	"encoding/json"
	"fmt"
)

// Persister loads and saves the full appointment collection.
// Load reports found=false when nothing has been saved yet.
type Persister interface {
	Load(ctx context.Context) (appts []entity.Appointment, found bool, err error)
	Save(ctx context.Context, appts []entity.Appointment) error
}

func encode(appts []entity.Appointment) ([]byte, error) {
	if appts == nil {
		appts = []entity.Appointment{}
	}
	data, err := json.Marshal(appts)
	if err != nil {
		return nil, fmt.Errorf("cache: marshal appointments: %w", err)
	}
	return data, nil
}

func decode(data []byte) ([]entity.Appointment, error) {
	var appts []entity.Appointment
	if err := json.Unmarshal(data, &appts); err != nil {
		return nil, fmt.Errorf("cache: unmarshal appointments: %w", err)
	}
	if appts == nil {
		appts = []entity.Appointment{}
	}
	return appts, nil
}
