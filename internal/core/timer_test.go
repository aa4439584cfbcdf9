package core

import (
	"testing"
	"time"
)

func TestFixedStepPacing(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should step")
	}
	if fs.ShouldStep() {
		t.Fatal("no time elapsed, should not step")
	}
	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half a tick elapsed, should not step")
	}
	clock = clock.Add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a full tick elapsed, should step")
	}
}

func TestFixedStepBacklogBounded(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(100)
	fs.now = func() time.Time { return clock }
	fs.ShouldStep()

	clock = clock.Add(10 * time.Second)
	steps := 0
	for fs.ShouldStep() {
		steps++
		if steps > 100 {
			break
		}
	}
	if steps != maxBacklog {
		t.Fatalf("stalled frame produced %d ticks, want %d", steps, maxBacklog)
	}
}

func TestFixedStepDefaultsRate(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.TPS() != 60 {
		t.Fatalf("TPS() = %d, want 60", fs.TPS())
	}
}
