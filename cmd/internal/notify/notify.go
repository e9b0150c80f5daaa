// Package notify delivers user-facing messages as blocking dialogs.
package notify

import (
	"context"
	"sync"
)

type Audience string

const (
	AudiencePatient Audience = "patient"
	AudienceDoctor  Audience = "doctor"
)

// Port is how the booking state talks to people.
type Port interface {
	Notify(ctx context.Context, audience Audience, message string)
}

type Message struct {
	Audience Audience `json:"audience"`
	Text     string   `json:"text"`
}

// Dialogs queues messages until the next page render, where each one is
// shown as its own blocking alert in the order it was raised.
type Dialogs struct {
	mu      sync.Mutex
	pending []Message
}

func NewDialogs() *Dialogs {
	return &Dialogs{}
}

func (d *Dialogs) Notify(_ context.Context, audience Audience, message string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = append(d.pending, Message{Audience: audience, Text: message})
}

// Drain returns the queued messages and empties the queue.
func (d *Dialogs) Drain() []Message {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := d.pending
	d.pending = nil
	return out
}
