// Package progress carries scan progress notifications from the pipeline to
// any number of subscribers (CLI renderer, webhook sink) without the
// pipeline holding direct knowledge of transport internals.
package progress

import "sync"

// Status is the lifecycle state reported by a progress event
type Status string

const (
	StatusStarted   Status = "started"
	StatusScanning  Status = "scanning"
	StatusCompleted Status = "completed"
	StatusError     Status = "error"
)

// Terminal reports whether s ends a scan's event stream
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusError
}

// Event is one progress notification, keyed by scan ID. For a single scan
// the Progress values are non-decreasing and end at 100 on success, or the
// stream ends with a terminal error event.
type Event struct {
	ScanID   string `json:"scan_id"`
	Hostname string `json:"hostname"`
	Status   Status `json:"status"`
	Progress int    `json:"progress"`
	Message  string `json:"message,omitempty"`
}

// Subscriber receives every published event. Notify must not block for long;
// it is invoked synchronously from the scanning goroutine.
type Subscriber interface {
	Notify(Event)
}

// SubscriberFunc adapts a plain function to the Subscriber interface
type SubscriberFunc func(Event)

func (f SubscriberFunc) Notify(ev Event) { f(ev) }

// Publisher fans events out to all registered subscribers
type Publisher struct {
	mu   sync.RWMutex
	subs []Subscriber
}

// NewPublisher creates an empty publisher
func NewPublisher() *Publisher {
	return &Publisher{}
}

// Subscribe registers a subscriber for all future events
func (p *Publisher) Subscribe(s Subscriber) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subs = append(p.subs, s)
}

// Publish delivers ev to every subscriber in registration order
func (p *Publisher) Publish(ev Event) {
	p.mu.RLock()
	subs := p.subs
	p.mu.RUnlock()

	for _, s := range subs {
		s.Notify(ev)
	}
}
