package rules

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	minHeightInches = 48 // 4'0"
	maxHeightInches = 95 // 7'11"
)

// ParseHeight converts a stored height token like `5'8"` to total inches.
// ok is false for malformed tokens or values outside the supported range;
// a failed parse must be treated as "cannot evaluate", not as zero inches.
func ParseHeight(raw string) (int, bool) {
	value := strings.TrimSpace(raw)
	value = strings.TrimSuffix(value, `"`)
	if value == "" {
		return 0, false
	}

	feetStr, inchStr, found := strings.Cut(value, "'")
	if !found {
		return 0, false
	}

	feet, err := strconv.Atoi(strings.TrimSpace(feetStr))
	if err != nil {
		return 0, false
	}
	inches := 0
	if trimmed := strings.TrimSpace(inchStr); trimmed != "" {
		inches, err = strconv.Atoi(trimmed)
		if err != nil {
			return 0, false
		}
	}
	if inches < 0 || inches > 11 {
		return 0, false
	}

	total := feet*12 + inches
	if total < minHeightInches || total > maxHeightInches {
		return 0, false
	}
	return total, true
}

// FormatHeight renders total inches back to the canonical token form.
func FormatHeight(totalInches int) string {
	return fmt.Sprintf(`%d'%d"`, totalInches/12, totalInches%12)
}
