package rules

import "strings"

var locationFillers = []string{
	"would be ideal",
	"preferred",
	"prefer",
	"ideally",
}

var countryTokens = map[string]bool{
	"usa":                      true,
	"us":                       true,
	"u.s.":                     true,
	"u.s.a.":                   true,
	"united states":            true,
	"united states of america": true,
	"america":                  true,
}

// usStates maps lowercase full state names to their postal abbreviations.
var usStates = map[string]string{
	"alabama": "al", "alaska": "ak", "arizona": "az", "arkansas": "ar",
	"california": "ca", "colorado": "co", "connecticut": "ct",
	"delaware": "de", "florida": "fl", "georgia": "ga", "hawaii": "hi",
	"idaho": "id", "illinois": "il", "indiana": "in", "iowa": "ia",
	"kansas": "ks", "kentucky": "ky", "louisiana": "la", "maine": "me",
	"maryland": "md", "massachusetts": "ma", "michigan": "mi",
	"minnesota": "mn", "mississippi": "ms", "missouri": "mo",
	"montana": "mt", "nebraska": "ne", "nevada": "nv",
	"new hampshire": "nh", "new jersey": "nj", "new mexico": "nm",
	"new york": "ny", "north carolina": "nc", "north dakota": "nd",
	"ohio": "oh", "oklahoma": "ok", "oregon": "or", "pennsylvania": "pa",
	"rhode island": "ri", "south carolina": "sc", "south dakota": "sd",
	"tennessee": "tn", "texas": "tx", "utah": "ut", "vermont": "vt",
	"virginia": "va", "washington": "wa", "west virginia": "wv",
	"wisconsin": "wi", "wyoming": "wy", "washington dc": "dc",
}

var usStateAbbrevs = func() map[string]string {
	out := make(map[string]string, len(usStates))
	for name, code := range usStates {
		out[code] = name
	}
	return out
}()

// regionAliases matches named metro areas by substring against a fixed list
// of representative sub-strings of candidate location text.
var regionAliases = map[string][]string{
	"bay area": {
		"bay area", "san francisco", "san jose", "fremont", "oakland",
		"sunnyvale", "santa clara", "palo alto", "mountain view",
	},
	"dfw": {
		"dfw", "dallas", "fort worth", "arlington", "plano", "irving", "frisco",
	},
	"tri-state": {
		"tri-state", "tristate", "new york", "new jersey", "connecticut",
	},
	"socal": {
		"socal", "southern california", "los angeles", "san diego",
		"orange county", "irvine",
	},
}

// CleanLocationPreference strips the filler phrases users type into the
// location preference field ("Texas would be ideal" -> "texas").
func CleanLocationPreference(raw string) string {
	value := strings.ToLower(strings.TrimSpace(raw))
	for _, filler := range locationFillers {
		value = strings.ReplaceAll(value, filler, "")
	}
	value = strings.Trim(value, " ,.-")
	return strings.Join(strings.Fields(value), " ")
}

// LocationMatches decides whether a candidate's location satisfies the
// seeker's location preference. Resolution is layered: country-level
// preferences accept any recognized US location, a state preference is a
// strict same-state match, named regions match by substring list, and
// anything else falls back to containment in either direction. Missing data
// on either side passes.
func LocationMatches(preference, candidateLocation string) bool {
	pref := CleanLocationPreference(preference)
	if pref == "" || IsNoPreference(pref) {
		return true
	}

	loc := strings.ToLower(strings.TrimSpace(candidateLocation))
	if loc == "" {
		return true
	}

	if countryTokens[pref] {
		return mentionsUSLocation(loc)
	}

	if prefState := resolveStateName(pref); prefState != "" {
		return candidateState(loc) == prefState
	}

	if subs, ok := regionAliases[pref]; ok {
		for _, sub := range subs {
			if strings.Contains(loc, sub) {
				return true
			}
		}
		return false
	}

	return strings.Contains(loc, pref) || strings.Contains(pref, loc)
}

// resolveStateName maps a cleaned preference to a full state name when the
// preference is exactly a state name or postal abbreviation.
func resolveStateName(pref string) string {
	if _, ok := usStates[pref]; ok {
		return pref
	}
	if name, ok := usStateAbbrevs[pref]; ok {
		return name
	}
	return ""
}

// candidateState resolves free-text candidate location to a full state name:
// full names by substring, abbreviations by exact token to keep "in" or "or"
// inside words from matching Indiana or Oregon.
func candidateState(loc string) string {
	// "washington dc" must win over "washington" before the map scan.
	if strings.Contains(loc, "washington dc") || strings.Contains(loc, "washington, dc") {
		return "washington dc"
	}
	for name := range usStates {
		if strings.Contains(loc, name) {
			return name
		}
	}
	for _, token := range splitLocationTokens(loc) {
		if name, ok := usStateAbbrevs[token]; ok {
			return name
		}
	}
	return ""
}

func mentionsUSLocation(loc string) bool {
	if candidateState(loc) != "" {
		return true
	}
	for _, token := range splitLocationTokens(loc) {
		if countryTokens[token] {
			return true
		}
	}
	for country := range countryTokens {
		if strings.Contains(country, " ") && strings.Contains(loc, country) {
			return true
		}
	}
	return false
}

func splitLocationTokens(loc string) []string {
	return strings.FieldsFunc(loc, func(r rune) bool {
		switch r {
		case ' ', ',', ';', '/', '(', ')', '-':
			return true
		default:
			return false
		}
	})
}
