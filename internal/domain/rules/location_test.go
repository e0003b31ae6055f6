package rules

import "testing"

func TestCleanLocationPreference(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain", raw: "Texas", want: "texas"},
		{name: "would_be_ideal", raw: "Texas would be ideal", want: "texas"},
		{name: "prefer_prefix", raw: "prefer California", want: "california"},
		{name: "preferred_suffix", raw: "New Jersey preferred", want: "new jersey"},
		{name: "trailing_punct", raw: "  Bay Area, ", want: "bay area"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CleanLocationPreference(tc.raw); got != tc.want {
				t.Fatalf("unexpected cleaned value: got %q want %q", got, tc.want)
			}
		})
	}
}

func TestLocationMatches(t *testing.T) {
	cases := []struct {
		name      string
		pref      string
		candidate string
		want      bool
	}{
		{name: "empty_pref_passes", pref: "", candidate: "Houston, Texas", want: true},
		{name: "doesnt_matter_passes", pref: "Doesn't matter", candidate: "Houston, Texas", want: true},
		{name: "missing_candidate_passes", pref: "Texas", candidate: "", want: true},

		// A state preference is a strict same-state match, not substring.
		{name: "state_match_full_name", pref: "Texas", candidate: "Houston, Texas", want: true},
		{name: "state_match_abbrev", pref: "Texas", candidate: "Dallas, TX", want: true},
		{name: "state_rejects_other_state", pref: "Texas", candidate: "Bay Area, California", want: false},
		{name: "state_pref_by_abbrev", pref: "NJ", candidate: "Edison, New Jersey", want: true},
		{name: "abbrev_not_matched_inside_words", pref: "Indiana", candidate: "Springfield, Illinois", want: false},

		// Country-level preference accepts any recognized US location.
		{name: "usa_accepts_state", pref: "USA", candidate: "Fremont, California", want: true},
		{name: "usa_accepts_abbrev", pref: "usa", candidate: "Dallas, TX", want: true},
		{name: "usa_accepts_country_marker", pref: "United States", candidate: "Queens, USA", want: true},
		{name: "usa_rejects_unrecognized", pref: "USA", candidate: "Toronto, Ontario", want: false},

		// Named regions match by substring list.
		{name: "bay_area_accepts_fremont", pref: "Bay Area", candidate: "Fremont, California", want: true},
		{name: "bay_area_accepts_sf", pref: "bay area preferred", candidate: "San Francisco", want: true},
		{name: "bay_area_rejects_la", pref: "Bay Area", candidate: "Los Angeles, California", want: false},

		// Fallback containment in either direction.
		{name: "city_containment", pref: "Houston", candidate: "Houston, Texas", want: true},
		{name: "reverse_containment", pref: "greater Houston area", candidate: "houston", want: true},
		{name: "no_overlap", pref: "Seattle", candidate: "Miami, Florida", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := LocationMatches(tc.pref, tc.candidate); got != tc.want {
				t.Fatalf("unexpected match: got %v want %v", got, tc.want)
			}
		})
	}
}
