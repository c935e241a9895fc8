package progress

import "testing"

func TestPublishFansOutInOrder(t *testing.T) {
	p := NewPublisher()

	var first, second []Event
	p.Subscribe(SubscriberFunc(func(ev Event) { first = append(first, ev) }))
	p.Subscribe(SubscriberFunc(func(ev Event) { second = append(second, ev) }))

	events := []Event{
		{ScanID: "a", Status: StatusStarted, Progress: 0},
		{ScanID: "a", Status: StatusScanning, Progress: 30},
		{ScanID: "a", Status: StatusCompleted, Progress: 100},
	}
	for _, ev := range events {
		p.Publish(ev)
	}

	for name, got := range map[string][]Event{"first": first, "second": second} {
		if len(got) != len(events) {
			t.Fatalf("%s subscriber saw %d events, want %d", name, len(got), len(events))
		}
		for i := range events {
			if got[i] != events[i] {
				t.Errorf("%s subscriber event[%d] = %+v, want %+v", name, i, got[i], events[i])
			}
		}
	}
}

func TestPublishWithNoSubscribers(t *testing.T) {
	p := NewPublisher()
	// Must not panic.
	p.Publish(Event{ScanID: "a", Status: StatusStarted})
}

func TestStatusTerminal(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusStarted, false},
		{StatusScanning, false},
		{StatusCompleted, true},
		{StatusError, true},
	}
	for _, tt := range tests {
		if got := tt.status.Terminal(); got != tt.want {
			t.Errorf("%s.Terminal() = %v, want %v", tt.status, got, tt.want)
		}
	}
}
