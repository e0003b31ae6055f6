package rules

import (
	"time"

	"github.com/laksanil/vivaahready/internal/domain/model"
)

// Acceptable decides, from the seeker's side only, whether a candidate
// passes the seeker's preference filter. The overall result is the AND of
// all binding gates; A accepting B says nothing about B accepting A.
//
// Unparsable or missing candidate data always resolves to "cannot filter,
// so pass". Flipping that to fail-closed would silently shrink every
// member's candidate pool, so the permissive policy is deliberate.
func Acceptable(prefs model.Preferences, candidate model.Profile, now time.Time) bool {
	if !agePasses(prefs, candidate, now) {
		return false
	}
	if !heightPasses(prefs, candidate) {
		return false
	}
	if prefs.LocationStrict && !IsNoPreference(prefs.Location) {
		if !LocationMatches(prefs.Location, candidate.Location) {
			return false
		}
	}

	gates := []struct {
		criterion model.Criterion
		value     string
	}{
		{prefs.MaritalStatus, string(candidate.MaritalStatus)},
		{prefs.Community, candidate.Community},
		{prefs.SubCommunity, candidate.SubCommunity},
		{prefs.Gotra, candidate.Gotra},
		{prefs.Diet, string(candidate.Diet)},
		{prefs.Smoking, string(candidate.Smoking)},
		{prefs.Drinking, string(candidate.Drinking)},
		{prefs.Citizenship, candidate.Citizenship},
		{prefs.GrewUpIn, candidate.GrewUpIn},
		{prefs.Education, candidate.Education},
		{prefs.Income, candidate.Income},
		{prefs.Occupation, candidate.Occupation},
		{prefs.FamilyValues, candidate.FamilyValues},
		{prefs.FamilyLocation, candidate.FamilyLocation},
		{prefs.MotherTongue, candidate.MotherTongue},
		{prefs.Pets, candidate.Pets},
		{prefs.Religion, candidate.Religion},
	}
	for _, gate := range gates {
		if !criterionPasses(gate.criterion, gate.value) {
			return false
		}
	}

	return true
}

func agePasses(prefs model.Preferences, candidate model.Profile, now time.Time) bool {
	if !prefs.AgeStrict || (prefs.AgeMin <= 0 && prefs.AgeMax <= 0) {
		return true
	}

	age, ok := AgeFromBirthdate(candidate.Birthdate, now)
	if !ok {
		return true
	}
	if prefs.AgeMin > 0 && age < prefs.AgeMin {
		return false
	}
	if prefs.AgeMax > 0 && age > prefs.AgeMax {
		return false
	}
	return true
}

func heightPasses(prefs model.Preferences, candidate model.Profile) bool {
	if !prefs.HeightStrict || (prefs.HeightMinIn <= 0 && prefs.HeightMaxIn <= 0) {
		return true
	}

	inches, ok := ParseHeight(candidate.Height)
	if !ok {
		return true
	}
	if prefs.HeightMinIn > 0 && inches < prefs.HeightMinIn {
		return false
	}
	if prefs.HeightMaxIn > 0 && inches > prefs.HeightMaxIn {
		return false
	}
	return true
}

// criterionPasses is the shared equality/set-membership gate. A non-binding
// criterion or a candidate with no value for the field always passes.
func criterionPasses(c model.Criterion, candidateValue string) bool {
	if !c.IsBinding() {
		return true
	}

	value := Normalize(candidateValue)
	if value == "" {
		return true
	}
	for _, accepted := range c.Values {
		if Normalize(accepted) == value {
			return true
		}
	}
	return false
}
