package utils

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		hour    int
		minute  int
		wantErr bool
	}{
		{in: "09:00", hour: 9, minute: 0},
		{in: "9:30", hour: 9, minute: 30},
		{in: "23:59", hour: 23, minute: 59},
		{in: "0900", wantErr: true},
		{in: "9h00", wantErr: true},
		{in: "nine:00", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range tests {
		h, m, err := ParseClock(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q) expected error, got %d:%d", tc.in, h, m)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if h != tc.hour || m != tc.minute {
			t.Errorf("ParseClock(%q) = %d:%d, want %d:%d", tc.in, h, m, tc.hour, tc.minute)
		}
	}
}

func TestClockMinutesRoundTrip(t *testing.T) {
	tests := []struct {
		clock   string
		minutes int
	}{
		{clock: "00:00", minutes: 0},
		{clock: "09:00", minutes: 540},
		{clock: "10:30", minutes: 630},
		{clock: "18:00", minutes: 1080},
		{clock: "23:59", minutes: 1439},
	}

	for _, tc := range tests {
		got, err := ClockToMinutes(tc.clock)
		if err != nil {
			t.Errorf("ClockToMinutes(%q) unexpected error: %v", tc.clock, err)
			continue
		}
		if got != tc.minutes {
			t.Errorf("ClockToMinutes(%q) = %d, want %d", tc.clock, got, tc.minutes)
		}
		if back := MinutesToClock(tc.minutes); back != tc.clock {
			t.Errorf("MinutesToClock(%d) = %q, want %q", tc.minutes, back, tc.clock)
		}
	}
}

func TestMinutesToClock_PadsSingleDigits(t *testing.T) {
	if got := MinutesToClock(545); got != "09:05" {
		t.Fatalf("expected 09:05, got %q", got)
	}
}

func TestCombineDateTime(t *testing.T) {
	when, err := CombineDateTime("2026-03-02", "14:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2026, time.March, 2, 14, 30, 0, 0, time.Local)
	if !when.Equal(want) {
		t.Fatalf("expected %v, got %v", want, when)
	}
}

func TestCombineDateTime_Invalid(t *testing.T) {
	if _, err := CombineDateTime("02/03/2026", "14:30"); err == nil {
		t.Fatal("expected error for a non-ISO date")
	}
	if _, err := CombineDateTime("2026-03-02", "1430"); err == nil {
		t.Fatal("expected error for a slot without a separator")
	}
}
