package enums

import "strings"

type ModerationStatus string

const (
	ModerationStatusPending  ModerationStatus = "pending"
	ModerationStatusApproved ModerationStatus = "approved"
	ModerationStatusRejected ModerationStatus = "rejected"
)

func ParseModerationStatus(raw string) ModerationStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending":
		return ModerationStatusPending
	case "approved", "approve":
		return ModerationStatusApproved
	case "rejected", "reject":
		return ModerationStatusRejected
	default:
		return ""
	}
}
