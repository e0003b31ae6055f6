package enums

import "strings"

// Habit covers the smoking and drinking attributes.
type Habit string

const (
	HabitNo           Habit = "no"
	HabitOccasionally Habit = "occasionally"
	HabitYes          Habit = "yes"
)

func ParseHabit(raw string) Habit {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "no", "never", "none":
		return HabitNo
	case "occasionally", "occasional", "socially", "social":
		return HabitOccasionally
	case "yes", "regularly", "regular":
		return HabitYes
	default:
		return ""
	}
}
