//go:build e2e

package e2e

import (
	"context"
	"sync"
	"time"

	"bus-seat-booking/internal/domain/schedule"
)

// JourneyDate returns the date daysAhead from today in the service's date convention.
func JourneyDate(daysAhead int) string {
	return schedule.JourneyDateOf(time.Now().AddDate(0, 0, daysAhead)).String()
}

type PublishedEvent struct {
	Topic   string
	Key     string
	Payload []byte
}

// RecordingPublisher keeps what the outbox relay hands it.
type RecordingPublisher struct {
	mu     sync.Mutex
	events []PublishedEvent
	Err    error
}

func (p *RecordingPublisher) Publish(_ context.Context, topic, key string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.events = append(p.events, PublishedEvent{Topic: topic, Key: key, Payload: append([]byte(nil), payload...)})
	return nil
}

func (p *RecordingPublisher) Close() error { return nil }

func (p *RecordingPublisher) Events() []PublishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]PublishedEvent(nil), p.events...)
}
