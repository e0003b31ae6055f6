package enums

type InterestStatus string

const (
	InterestStatusPending  InterestStatus = "pending"
	InterestStatusAccepted InterestStatus = "accepted"
	InterestStatusRejected InterestStatus = "rejected"
)

type InterestAction string

const (
	InterestActionAccept     InterestAction = "accept"
	InterestActionReject     InterestAction = "reject"
	InterestActionReconsider InterestAction = "reconsider"
)

func ParseInterestAction(raw string) (InterestAction, bool) {
	switch InterestAction(raw) {
	case InterestActionAccept, InterestActionReject, InterestActionReconsider:
		return InterestAction(raw), true
	default:
		return "", false
	}
}
