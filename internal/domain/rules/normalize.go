package rules

import (
	"encoding/json"
	"strings"
)

// SameAsMine is the sentinel a member can pick instead of listing values.
// It is resolved to the member's own attribute at write time; the evaluator
// never sees it.
const SameAsMine = "same_as_mine"

var noPreferenceTokens = map[string]bool{
	"":               true,
	"doesn't matter": true,
	"doesnt matter":  true,
	"does not matter": true,
	"any":            true,
	"no preference":  true,
	"open":           true,
}

// IsNoPreference reports whether a stored preference value carries no
// constraint. A dealbreaker flag paired with such a value is non-binding.
func IsNoPreference(raw string) bool {
	return noPreferenceTokens[Normalize(raw)]
}

// Normalize is the single canonical form for comparable attribute values:
// trimmed and lowercased.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// IsSameAsMine matches the historical spellings of the sentinel.
func IsSameAsMine(raw string) bool {
	switch Normalize(raw) {
	case SameAsMine, "same as mine":
		return true
	default:
		return false
	}
}

// ParseList accepts the two historical encodings of a multi-value
// preference: a JSON-encoded string array or a comma-separated string.
// Values are normalized, no-preference tokens dropped, duplicates removed.
func ParseList(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	var parts []string
	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal([]byte(trimmed), &parts); err != nil {
			parts = strings.Split(trimmed, ",")
		}
	} else {
		parts = strings.Split(trimmed, ",")
	}

	return DedupeValues(parts)
}

// DedupeValues normalizes, drops empties and no-preference tokens, and
// removes duplicates while keeping first-seen order.
func DedupeValues(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		norm := Normalize(v)
		if norm == "" || noPreferenceTokens[norm] || seen[norm] {
			continue
		}
		seen[norm] = true
		out = append(out, norm)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// DefaultStrict is the per-field default for a dealbreaker flag that was
// never set. The migration scripts treated a handful of core fields as hard
// filters unless the member explicitly relaxed them; everything else
// defaults to soft.
func DefaultStrict(field string) bool {
	switch field {
	case "marital_status", "religion", "community":
		return true
	default:
		return false
	}
}
