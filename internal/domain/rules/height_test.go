package rules

import "testing"

func TestParseHeightTokens(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want int
		ok   bool
	}{
		{name: "five_eight", raw: `5'8"`, want: 68, ok: true},
		{name: "no_inch_mark", raw: "5'8", want: 68, ok: true},
		{name: "zero_inches", raw: `6'0"`, want: 72, ok: true},
		{name: "feet_only", raw: "5'", want: 60, ok: true},
		{name: "spaces", raw: ` 5' 10" `, want: 70, ok: true},
		{name: "empty", raw: "", ok: false},
		{name: "plain_number", raw: "68", ok: false},
		{name: "centimeters", raw: "173 cm", ok: false},
		{name: "inches_out_of_range", raw: "5'12", ok: false},
		{name: "too_short", raw: `3'11"`, ok: false},
		{name: "too_tall", raw: `8'0"`, ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseHeight(tc.raw)
			if ok != tc.ok {
				t.Fatalf("unexpected ok: got %v want %v", ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Fatalf("unexpected inches: got %d want %d", got, tc.want)
			}
		})
	}
}

func TestHeightRoundTrip(t *testing.T) {
	for inches := minHeightInches; inches <= maxHeightInches; inches++ {
		got, ok := ParseHeight(FormatHeight(inches))
		if !ok {
			t.Fatalf("formatted height %q failed to parse", FormatHeight(inches))
		}
		if got != inches {
			t.Fatalf("round trip mismatch: got %d want %d", got, inches)
		}
	}
}
