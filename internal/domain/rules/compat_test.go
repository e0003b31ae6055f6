package rules

import (
	"testing"
	"time"

	"github.com/laksanil/vivaahready/internal/domain/enums"
	"github.com/laksanil/vivaahready/internal/domain/model"
)

var compatNow = time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

func baseCandidate() model.Profile {
	return model.Profile{
		UserID:        2,
		Gender:        enums.GenderFemale,
		Birthdate:     "08/23/1996", // 29 on compatNow
		Height:        `5'4"`,
		MaritalStatus: enums.MaritalStatusNeverMarried,
		Community:     "brahmin",
		Diet:          enums.DietVegetarian,
		Smoking:       enums.HabitNo,
		Drinking:      enums.HabitOccasionally,
		Location:      "Houston, Texas",
		Education:     "masters",
		Religion:      "hindu",
		MotherTongue:  "telugu",
	}
}

func TestAcceptableWithNoBindingGatesPassesEverything(t *testing.T) {
	prefs := model.Preferences{UserID: 1}
	candidates := []model.Profile{
		{},
		baseCandidate(),
		{Birthdate: "not a date", Height: "??", Location: "Mars"},
	}

	for i, candidate := range candidates {
		if !Acceptable(prefs, candidate, compatNow) {
			t.Fatalf("candidate %d: expected pass with no active dealbreakers", i)
		}
	}
}

func TestAcceptableAgeGate(t *testing.T) {
	cases := []struct {
		name      string
		min, max  int
		birthdate string
		want      bool
	}{
		{name: "inside_range", min: 25, max: 32, birthdate: "08/23/1996", want: true},
		{name: "at_min_boundary", min: 29, max: 35, birthdate: "08/23/1996", want: true},
		{name: "at_max_boundary", min: 20, max: 29, birthdate: "08/23/1996", want: true},
		{name: "below_min", min: 30, max: 35, birthdate: "08/23/1996", want: false},
		{name: "above_max", min: 20, max: 28, birthdate: "08/23/1996", want: false},
		{name: "unparsable_dob_passes", min: 25, max: 32, birthdate: "around 1990", want: true},
		{name: "min_only", min: 30, max: 0, birthdate: "08/23/1996", want: false},
		{name: "max_only", min: 0, max: 28, birthdate: "08/23/1996", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prefs := model.Preferences{AgeMin: tc.min, AgeMax: tc.max, AgeStrict: true}
			candidate := baseCandidate()
			candidate.Birthdate = tc.birthdate
			if got := Acceptable(prefs, candidate, compatNow); got != tc.want {
				t.Fatalf("unexpected result: got %v want %v", got, tc.want)
			}
		})
	}
}

func TestAcceptableHeightGate(t *testing.T) {
	cases := []struct {
		name   string
		height string
		want   bool
	}{
		{name: "inside_range", height: `5'4"`, want: true},
		{name: "at_min", height: `5'0"`, want: true},
		{name: "at_max", height: `5'8"`, want: true},
		{name: "too_short", height: `4'11"`, want: false},
		{name: "too_tall", height: `5'9"`, want: false},
		// A malformed height is "cannot evaluate", never 0 inches.
		{name: "malformed_passes", height: "tall-ish", want: true},
		{name: "empty_passes", height: "", want: true},
	}

	prefs := model.Preferences{HeightMinIn: 60, HeightMaxIn: 68, HeightStrict: true}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			candidate := baseCandidate()
			candidate.Height = tc.height
			if got := Acceptable(prefs, candidate, compatNow); got != tc.want {
				t.Fatalf("unexpected result: got %v want %v", got, tc.want)
			}
		})
	}
}

func TestAcceptableLocationGateIsStrictStateMatch(t *testing.T) {
	prefs := model.Preferences{Location: "Texas", LocationStrict: true}

	candidate := baseCandidate()
	candidate.Location = "Bay Area, California"
	if Acceptable(prefs, candidate, compatNow) {
		t.Fatalf("expected California candidate to fail a Texas preference")
	}

	candidate.Location = "Dallas, TX"
	if !Acceptable(prefs, candidate, compatNow) {
		t.Fatalf("expected TX candidate to pass a Texas preference")
	}
}

func TestAcceptableCriterionGates(t *testing.T) {
	cases := []struct {
		name  string
		prefs model.Preferences
		tweak func(*model.Profile)
		want  bool
	}{
		{
			name:  "community_in_set",
			prefs: model.Preferences{Community: model.Criterion{Values: []string{"brahmin", "kayastha"}, Strict: true}},
			want:  true,
		},
		{
			name:  "community_not_in_set",
			prefs: model.Preferences{Community: model.Criterion{Values: []string{"kayastha"}, Strict: true}},
			want:  false,
		},
		{
			name:  "case_insensitive_equality",
			prefs: model.Preferences{Religion: model.Criterion{Values: []string{"Hindu"}, Strict: true}},
			want:  true,
		},
		{
			name:  "non_strict_mismatch_passes",
			prefs: model.Preferences{Diet: model.Criterion{Values: []string{"vegan"}, Strict: false}},
			want:  true,
		},
		{
			name:  "strict_without_values_is_non_binding",
			prefs: model.Preferences{Gotra: model.Criterion{Values: nil, Strict: true}},
			want:  true,
		},
		{
			name:  "missing_candidate_value_passes",
			prefs: model.Preferences{Pets: model.Criterion{Values: []string{"no pets"}, Strict: true}},
			want:  true,
		},
		{
			name:  "smoking_mismatch_fails",
			prefs: model.Preferences{Smoking: model.Criterion{Values: []string{"no"}, Strict: true}},
			tweak: func(p *model.Profile) { p.Smoking = enums.HabitYes },
			want:  false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			candidate := baseCandidate()
			if tc.tweak != nil {
				tc.tweak(&candidate)
			}
			if got := Acceptable(tc.prefs, candidate, compatNow); got != tc.want {
				t.Fatalf("unexpected result: got %v want %v", got, tc.want)
			}
		})
	}
}

func TestAcceptableIsAsymmetric(t *testing.T) {
	seekerPrefs := model.Preferences{Diet: model.Criterion{Values: []string{"vegetarian"}, Strict: true}}
	candidatePrefs := model.Preferences{Diet: model.Criterion{Values: []string{"vegan"}, Strict: true}}

	seeker := baseCandidate()
	seeker.Diet = enums.DietNonVegetarian
	candidate := baseCandidate()
	candidate.Diet = enums.DietVegetarian

	if !Acceptable(seekerPrefs, candidate, compatNow) {
		t.Fatalf("expected seeker to accept candidate")
	}
	if Acceptable(candidatePrefs, seeker, compatNow) {
		t.Fatalf("did not expect candidate to accept seeker")
	}
}
