package scheduler

import (
	"errors"
	"testing"
	"time"
)

func TestEngineEmitsInFireOrder(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now()
	if err := engine.Schedule(Event{Kind: KindHideNotification, NodeID: 2, FireAt: now.Add(80 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule later: %v", err)
	}
	if err := engine.Schedule(Event{Kind: KindRemoveCompleted, NodeID: 1, FireAt: now.Add(20 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule sooner: %v", err)
	}

	first := waitEvent(t, engine.C(), time.Second)
	second := waitEvent(t, engine.C(), time.Second)
	if first.NodeID != 1 || second.NodeID != 2 {
		t.Fatalf("unexpected order: first=%d second=%d", first.NodeID, second.NodeID)
	}
}

func TestEngineDeliversEveryEventToSlowConsumer(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	defer engine.Stop()

	const total = 25
	for i := 0; i < total; i++ {
		if err := engine.After(10*time.Millisecond, Event{Kind: KindHideNotification, NodeID: i}); err != nil {
			t.Fatalf("schedule event: %v", err)
		}
	}

	time.Sleep(60 * time.Millisecond)
	for i := 0; i < total; i++ {
		ev := waitEvent(t, engine.C(), time.Second)
		if ev.NodeID != i {
			t.Fatalf("event %d delivered out of order: %d", i, ev.NodeID)
		}
	}
	if engine.Pending() != 0 {
		t.Fatalf("expected empty queue, got %d", engine.Pending())
	}
}

func TestEngineDoesNotFireEarly(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	defer engine.Stop()

	start := time.Now()
	if err := engine.After(50*time.Millisecond, Event{Kind: KindRemoveCompleted, NodeID: 7}); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	select {
	case <-engine.C():
		t.Fatal("event delivered before its fire time")
	case <-time.After(20 * time.Millisecond):
	}
	ev := waitEvent(t, engine.C(), time.Second)
	if ev.NodeID != 7 || time.Since(start) < 50*time.Millisecond {
		t.Fatalf("unexpected delivery %+v after %s", ev, time.Since(start))
	}
}

func TestScheduleValidation(t *testing.T) {
	engine := NewEngine(1)
	if err := engine.Schedule(Event{Kind: KindRemoveCompleted}); !errors.Is(err, ErrInvalidFireTime) {
		t.Fatalf("expected ErrInvalidFireTime, got %v", err)
	}
	engine.Start()
	engine.Stop()
	if err := engine.After(time.Millisecond, Event{Kind: KindRemoveCompleted}); !errors.Is(err, ErrStopped) {
		t.Fatalf("expected ErrStopped, got %v", err)
	}
}

func waitEvent(t *testing.T, ch <-chan Event, timeout time.Duration) Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for event")
		return Event{}
	}
}
