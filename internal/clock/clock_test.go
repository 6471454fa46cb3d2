package clock

import (
	"testing"
	"time"
)

func TestRealClock_Now(t *testing.T) {
	clock := &RealClock{}

	before := time.Now()
	actual := clock.Now()
	after := time.Now()

	if actual.Before(before) || actual.After(after) {
		t.Errorf("RealClock.Now() returned time outside expected range: got %v, expected between %v and %v", actual, before, after)
	}
}

func TestFakeClock_Now(t *testing.T) {
	fixedTime := time.Date(2026, 2, 15, 10, 30, 0, 0, time.UTC)
	clock := NewFakeClock(fixedTime)

	t.Run("returns fixed time", func(t *testing.T) {
		if actual := clock.Now(); !actual.Equal(fixedTime) {
			t.Errorf("FakeClock.Now() = %v, want %v", actual, fixedTime)
		}
	})

	t.Run("subsequent calls return same time", func(t *testing.T) {
		first := clock.Now()
		time.Sleep(1 * time.Millisecond)
		second := clock.Now()

		if !first.Equal(second) {
			t.Errorf("FakeClock.Now() should return consistent time: first=%v, second=%v", first, second)
		}
	})
}

func TestFakeClock_Set(t *testing.T) {
	clock := NewFakeClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	newTime := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	clock.Set(newTime)

	if actual := clock.Now(); !actual.Equal(newTime) {
		t.Errorf("After Set(), Now() = %v, want %v", actual, newTime)
	}
}

func TestFakeClock_Advance(t *testing.T) {
	initialTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := NewFakeClock(initialTime)

	t.Run("advances time by duration", func(t *testing.T) {
		clock.Advance(2 * time.Hour)

		expected := initialTime.Add(2 * time.Hour)
		if actual := clock.Now(); !actual.Equal(expected) {
			t.Errorf("After Advance(2h), Now() = %v, want %v", actual, expected)
		}
	})

	t.Run("can advance by negative duration", func(t *testing.T) {
		clock.Set(initialTime)
		clock.Advance(-1 * time.Hour)

		expected := initialTime.Add(-1 * time.Hour)
		if actual := clock.Now(); !actual.Equal(expected) {
			t.Errorf("After negative advance, Now() = %v, want %v", actual, expected)
		}
	})
}
