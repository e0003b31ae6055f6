package enums

type NotificationKind string

const (
	NotificationKindNewInterest      NotificationKind = "new_interest"
	NotificationKindInterestAccepted NotificationKind = "interest_accepted"
)

type NotificationChannel string

const (
	NotificationChannelEmail NotificationChannel = "email"
	NotificationChannelSMS   NotificationChannel = "sms"
	NotificationChannelInApp NotificationChannel = "inapp"
)
