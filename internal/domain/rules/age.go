package rules

import (
	"strconv"
	"strings"
	"time"
)

// ParseBirthdate accepts the date-of-birth formats that accumulated in the
// data over the years:
//
//	MM/DD/YYYY
//	MM/YYYY     (day unknown, treated as the 1st)
//	DD.MM.YYYY
//	YYYY-MM-DD  (with or without a time suffix)
//
// The second return is false when the value cannot be parsed.
func ParseBirthdate(raw string) (time.Time, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, false
	}
	if idx := strings.IndexByte(value, 'T'); idx > 0 {
		value = value[:idx]
	}

	switch {
	case strings.Contains(value, "-"):
		parts := strings.Split(value, "-")
		if len(parts) != 3 {
			return time.Time{}, false
		}
		return buildDate(parts[0], parts[1], parts[2])
	case strings.Contains(value, "/"):
		parts := strings.Split(value, "/")
		switch len(parts) {
		case 3:
			return buildDate(parts[2], parts[0], parts[1])
		case 2:
			return buildDate(parts[1], parts[0], "1")
		default:
			return time.Time{}, false
		}
	case strings.Contains(value, "."):
		parts := strings.Split(value, ".")
		if len(parts) != 3 {
			return time.Time{}, false
		}
		return buildDate(parts[2], parts[1], parts[0])
	default:
		return time.Time{}, false
	}
}

func buildDate(yearStr, monthStr, dayStr string) (time.Time, bool) {
	year, err := strconv.Atoi(strings.TrimSpace(yearStr))
	if err != nil || year < 1900 || year > 2100 {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(strings.TrimSpace(monthStr))
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(strings.TrimSpace(dayStr))
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// AgeOn derives the exact current age with month/day subtraction.
func AgeOn(birthdate, now time.Time) int {
	years := now.Year() - birthdate.Year()
	if now.Month() < birthdate.Month() ||
		(now.Month() == birthdate.Month() && now.Day() < birthdate.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// AgeFromBirthdate parses a raw DOB token and derives the age on the given
// day. ok is false when the token is unparsable; callers must treat that as
// "cannot filter", never as age zero.
func AgeFromBirthdate(raw string, now time.Time) (int, bool) {
	birthdate, ok := ParseBirthdate(raw)
	if !ok {
		return 0, false
	}
	return AgeOn(birthdate, now.UTC()), true
}
