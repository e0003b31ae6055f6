package enums

import "strings"

type MaritalStatus string

const (
	MaritalStatusNeverMarried MaritalStatus = "never_married"
	MaritalStatusDivorced     MaritalStatus = "divorced"
	MaritalStatusWidowed      MaritalStatus = "widowed"
	MaritalStatusAnnulled     MaritalStatus = "annulled"
)

func ParseMaritalStatus(raw string) MaritalStatus {
	value := strings.ToLower(strings.TrimSpace(raw))
	value = strings.ReplaceAll(value, " ", "_")
	value = strings.ReplaceAll(value, "-", "_")
	switch value {
	case "never_married", "single", "unmarried":
		return MaritalStatusNeverMarried
	case "divorced":
		return MaritalStatusDivorced
	case "widowed", "widow", "widower":
		return MaritalStatusWidowed
	case "annulled":
		return MaritalStatusAnnulled
	default:
		return ""
	}
}
