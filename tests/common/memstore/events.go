//go:build unit || e2e

package memstore

import (
	"context"
	"sync"

	"cowork-booking/internal/usecase/shared"
)

// Recorder is an EventPublisher that keeps every event it is handed.
type Recorder struct {
	mu     sync.Mutex
	events []shared.ReservationEvent
	Err    error
}

func (r *Recorder) Publish(_ context.Context, event shared.ReservationEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.events = append(r.events, event)
	return nil
}

func (r *Recorder) Events() []shared.ReservationEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]shared.ReservationEvent(nil), r.events...)
}

func (r *Recorder) Types() []shared.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]shared.EventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
