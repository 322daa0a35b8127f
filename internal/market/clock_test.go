package market

import (
	"testing"
	"time"
)

// clockAt fixes the clock to a single IST instant.
func clockAt(year int, month time.Month, day, hour, min, sec int) *Clock {
	ts := time.Date(year, month, day, hour, min, sec, 0, IST)
	return NewClockAt(func() time.Time { return ts })
}

func TestIsOpenWeekend(t *testing.T) {
	// 2024-01-06 is a Saturday, 2024-01-07 a Sunday.
	cases := []struct {
		name  string
		clock *Clock
	}{
		{"saturday morning", clockAt(2024, time.January, 6, 10, 0, 0)},
		{"saturday midday", clockAt(2024, time.January, 6, 12, 30, 0)},
		{"sunday inside window", clockAt(2024, time.January, 7, 11, 0, 0)},
		{"sunday at open instant", clockAt(2024, time.January, 7, 9, 15, 0)},
	}
	for _, tc := range cases {
		if tc.clock.IsOpen() {
			t.Errorf("%s: expected market closed on weekend", tc.name)
		}
	}
}

func TestIsOpenWeekdayWindow(t *testing.T) {
	// 2024-01-08 is a Monday, 2024-01-12 a Friday.
	cases := []struct {
		name  string
		clock *Clock
		open  bool
	}{
		{"before open", clockAt(2024, time.January, 8, 9, 14, 59), false},
		{"open boundary inclusive", clockAt(2024, time.January, 8, 9, 15, 0), true},
		{"mid session", clockAt(2024, time.January, 10, 12, 0, 0), true},
		{"close boundary inclusive", clockAt(2024, time.January, 12, 15, 30, 0), true},
		{"after close", clockAt(2024, time.January, 12, 15, 30, 1), false},
		{"late evening", clockAt(2024, time.January, 12, 20, 0, 0), false},
		{"midnight", clockAt(2024, time.January, 8, 0, 0, 0), false},
	}
	for _, tc := range cases {
		if got := tc.clock.IsOpen(); got != tc.open {
			t.Errorf("%s: IsOpen() = %v, want %v", tc.name, got, tc.open)
		}
	}
}

func TestIsOpenConvertsToIST(t *testing.T) {
	// 05:00 UTC on a Wednesday is 10:30 IST, inside the session.
	ts := time.Date(2024, time.January, 10, 5, 0, 0, 0, time.UTC)
	clock := NewClockAt(func() time.Time { return ts })
	if !clock.IsOpen() {
		t.Fatalf("expected 05:00 UTC (10:30 IST) to be inside the session")
	}

	// 11:00 UTC is 16:30 IST, after close.
	ts = time.Date(2024, time.January, 10, 11, 0, 0, 0, time.UTC)
	if clock.IsOpen() {
		t.Fatalf("expected 11:00 UTC (16:30 IST) to be after close")
	}
}

func TestOrderVariety(t *testing.T) {
	if got := clockAt(2024, time.January, 10, 12, 0, 0).OrderVariety(); got != "regular" {
		t.Errorf("open market: OrderVariety() = %q, want %q", got, "regular")
	}
	if got := clockAt(2024, time.January, 10, 18, 0, 0).OrderVariety(); got != "amo" {
		t.Errorf("closed market: OrderVariety() = %q, want %q", got, "amo")
	}
	if got := clockAt(2024, time.January, 6, 12, 0, 0).OrderVariety(); got != "amo" {
		t.Errorf("weekend: OrderVariety() = %q, want %q", got, "amo")
	}
}

func TestStatusSnapshot(t *testing.T) {
	status := clockAt(2024, time.January, 10, 12, 0, 0).Status()
	if !status.IsOpen || status.Status != "OPEN" || status.OrderTypeAvailable != "REGULAR" {
		t.Errorf("open session: unexpected status %+v", status)
	}
	if status.CurrentTime != "2024-01-10 12:00:00 IST" {
		t.Errorf("CurrentTime = %q", status.CurrentTime)
	}

	status = clockAt(2024, time.January, 6, 12, 0, 0).Status()
	if status.IsOpen || status.Status != "CLOSED" || status.OrderTypeAvailable != "AMO" {
		t.Errorf("weekend: unexpected status %+v", status)
	}
}
