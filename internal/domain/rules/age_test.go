package rules

import (
	"testing"
	"time"
)

func TestParseBirthdateFormats(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want time.Time
		ok   bool
	}{
		{name: "mm_dd_yyyy", raw: "08/23/1992", want: time.Date(1992, time.August, 23, 0, 0, 0, 0, time.UTC), ok: true},
		{name: "mm_dd_yyyy_unpadded", raw: "8/3/1992", want: time.Date(1992, time.August, 3, 0, 0, 0, 0, time.UTC), ok: true},
		{name: "mm_yyyy", raw: "08/1992", want: time.Date(1992, time.August, 1, 0, 0, 0, 0, time.UTC), ok: true},
		{name: "dd_mm_yyyy_dots", raw: "23.08.1992", want: time.Date(1992, time.August, 23, 0, 0, 0, 0, time.UTC), ok: true},
		{name: "iso", raw: "1992-08-23", want: time.Date(1992, time.August, 23, 0, 0, 0, 0, time.UTC), ok: true},
		{name: "iso_with_time", raw: "1992-08-23T00:00:00Z", want: time.Date(1992, time.August, 23, 0, 0, 0, 0, time.UTC), ok: true},
		{name: "empty", raw: "", ok: false},
		{name: "garbage", raw: "unknown", ok: false},
		{name: "month_out_of_range", raw: "13/23/1992", ok: false},
		{name: "year_out_of_range", raw: "08/23/1892", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseBirthdate(tc.raw)
			if ok != tc.ok {
				t.Fatalf("unexpected ok: got %v want %v", ok, tc.ok)
			}
			if ok && !got.Equal(tc.want) {
				t.Fatalf("unexpected date: got %v want %v", got, tc.want)
			}
		})
	}
}

func TestAgeOnSubtractsBeforeBirthday(t *testing.T) {
	birthdate := time.Date(1992, time.August, 23, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		now  time.Time
		want int
	}{
		{name: "day_before_birthday", now: time.Date(2026, time.August, 22, 0, 0, 0, 0, time.UTC), want: 33},
		{name: "on_birthday", now: time.Date(2026, time.August, 23, 0, 0, 0, 0, time.UTC), want: 34},
		{name: "day_after_birthday", now: time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC), want: 34},
		{name: "earlier_month", now: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), want: 33},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AgeOn(birthdate, tc.now); got != tc.want {
				t.Fatalf("unexpected age: got %d want %d", got, tc.want)
			}
		})
	}
}

func TestAgeFromBirthdateUnparsableIsNotFilterable(t *testing.T) {
	if _, ok := AgeFromBirthdate("around 1990", time.Now()); ok {
		t.Fatalf("expected unparsable birthdate to report ok=false")
	}
}
