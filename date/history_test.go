package date

import (
	"slices"
	"testing"
)

func TestAppend(t *testing.T) {
	h := new(History[string])
	d1, v1 := New(2025, 07, 01), "25 Jul 1"
	d2, v2 := New(2024, 07, 01), "24 Jul 1"

	// Test is about appending two values in reverse order and checking that everything is
	// as expected at every step of the way.

	if h.Len() != 0 {
		t.Errorf("History.Len() = %v want 0", h.Len())
	}

	h.Append(d1, v1)
	if h.Len() != 1 {
		t.Errorf("Append(d1, v1).Len() = %v want 1", h.Len())
	}

	h.Append(d2, v2)
	if h.Len() != 2 {
		t.Errorf("Append(d2, v2).Len() = %v want 2", h.Len())
	}

	if h.days[1] != d1 {
		t.Errorf("history[1].day = %v want %v", h.days[0], d1)
	}
	if h.days[0] != d2 {
		t.Errorf("history[0].day = %v want %v", h.days[1], d2)
	}
	if h.values[1] != v1 {
		t.Errorf("history[1].value = %v want %v", h.values[0], v1)
	}
	if h.values[0] != v2 {
		t.Errorf("history[0].value = %v want %v", h.values[1], v2)
	}
}

func TestAppendOverwrites(t *testing.T) {
	h := new(History[float64])
	on := New(2025, 1, 2)
	h.Append(on, 1.0)
	h.Append(on, 2.0)

	if h.Len() != 1 {
		t.Fatalf("Len() = %v want 1 after duplicate Append", h.Len())
	}
	if v, _ := h.Get(on); v != 2.0 {
		t.Errorf("Get(%v) = %v want 2.0 (last write wins)", on, v)
	}
}

func TestGet(t *testing.T) {
	h := new(History[float64])
	on := New(2025, 1, 2)
	h.Append(on, 42.0)

	if v, ok := h.Get(on); !ok || v != 42.0 {
		t.Errorf("Get(%v) = %v, %v want 42.0, true", on, v, ok)
	}
	if _, ok := h.Get(on.Add(1)); ok {
		t.Errorf("Get on an absent day should report false")
	}
}

func TestLatest(t *testing.T) {
	h := new(History[float64])
	if day, _ := h.Latest(); !day.IsZero() {
		t.Errorf("Latest() on empty history = %v want zero date", day)
	}
	h.Append(New(2025, 1, 3), 3)
	h.Append(New(2025, 1, 1), 1)
	day, v := h.Latest()
	if day != New(2025, 1, 3) || v != 3 {
		t.Errorf("Latest() = %v, %v want 2025-01-03, 3", day, v)
	}
}

func TestIterate(t *testing.T) {
	a := new(History[float64])
	a.Append(New(2025, 1, 1), 1)
	a.Append(New(2025, 1, 3), 3)

	b := new(History[float64])
	b.Append(New(2025, 1, 2), 2)
	b.Append(New(2025, 1, 3), 3)

	got := make([]Date, 0, 3)
	for on := range Iterate(a, b) {
		got = append(got, on)
	}

	// union of days, unique and sorted
	want := []Date{New(2025, 1, 1), New(2025, 1, 2), New(2025, 1, 3)}
	if !slices.Equal(got, want) {
		t.Errorf("Iterate() = %v want %v", got, want)
	}
}
