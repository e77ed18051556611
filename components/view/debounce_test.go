package view

import (
	"sync"
	"testing"
	"time"
)

type recorder struct {
	mu     sync.Mutex
	values []string
}

func (r *recorder) record(v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.values...)
}

func TestDebouncerCoalescesRapidTriggers(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(50*time.Millisecond, rec.record)
	defer d.Stop()

	for _, v := range []string{"d", "de", "del", "dell", "dell "} {
		d.Trigger(v)
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(150 * time.Millisecond)

	got := rec.snapshot()
	if len(got) != 1 {
		t.Fatalf("5 rapid triggers must coalesce into 1 delivery, got %d: %v", len(got), got)
	}
	if got[0] != "dell " {
		t.Fatalf("delivery must carry the final value, got %q", got[0])
	}
}

func TestDebouncerDeliversAgainAfterSettling(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(20*time.Millisecond, rec.record)
	defer d.Stop()

	d.Trigger("first")
	time.Sleep(60 * time.Millisecond)
	d.Trigger("second")
	time.Sleep(60 * time.Millisecond)

	got := rec.snapshot()
	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Fatalf("settled triggers must each deliver, got %v", got)
	}
}

func TestDebouncerStopDropsPending(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(20*time.Millisecond, rec.record)

	d.Trigger("pending")
	d.Stop()
	time.Sleep(60 * time.Millisecond)

	if got := rec.snapshot(); len(got) != 0 {
		t.Fatalf("stop must drop the pending delivery, got %v", got)
	}
}
