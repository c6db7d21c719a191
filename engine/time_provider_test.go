package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	if now := mock.Now(); !now.Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, now)
	}

	mock.Advance(1 * time.Hour)
	mock.Advance(30 * time.Minute)
	expected := startTime.Add(90 * time.Minute)
	if now := mock.Now(); !now.Equal(expected) {
		t.Errorf("Expected time to be %v after advances, got %v", expected, now)
	}
}

func TestPausableClock(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	pc := NewPausableClock(mock)

	mock.Advance(5 * time.Second)
	if e := pc.Elapsed(); e != 0 {
		t.Errorf("Expected no elapsed time before start, got %v", e)
	}
	if p := pc.GetTotalPauseDuration(); p != 0 {
		t.Errorf("Expected wait before start not to count as pause, got %v", p)
	}

	pc.Resume()
	mock.Advance(3 * time.Second)
	if e := pc.Elapsed(); e != 3*time.Second {
		t.Errorf("Expected 3s elapsed, got %v", e)
	}

	pc.Pause()
	mock.Advance(10 * time.Second)
	if e := pc.Elapsed(); e != 3*time.Second {
		t.Errorf("Expected elapsed frozen at 3s while paused, got %v", e)
	}
	if p := pc.GetTotalPauseDuration(); p != 10*time.Second {
		t.Errorf("Expected 10s total pause, got %v", p)
	}

	pc.Resume()
	mock.Advance(2 * time.Second)
	if e := pc.Elapsed(); e != 5*time.Second {
		t.Errorf("Expected 5s elapsed after resume, got %v", e)
	}

	if p := pc.GetTotalPauseDuration(); p != 10*time.Second {
		t.Errorf("Expected pause total kept after resume, got %v", p)
	}

	pc.Reset()
	mock.Advance(time.Second)
	if e, p := pc.Elapsed(), pc.GetTotalPauseDuration(); e != 0 || p != 0 {
		t.Errorf("Expected reset clock at zero, got elapsed %v paused %v", e, p)
	}
}

func TestPausableClockDoubleTransitions(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	pc := NewPausableClock(mock)

	pc.Resume()
	pc.Resume()
	mock.Advance(time.Second)
	pc.Pause()
	mock.Advance(time.Second)
	pc.Pause()
	if e := pc.Elapsed(); e != time.Second {
		t.Errorf("Expected repeated transitions to be no-ops, got %v", e)
	}
}
