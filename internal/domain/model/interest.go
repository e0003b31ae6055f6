package model

import (
	"time"

	"github.com/laksanil/vivaahready/internal/domain/enums"
)

// Interest is a directed edge: sender expressed interest in receiver.
// Edges are unique per ordered pair and are never deleted, only
// status-transitioned.
type Interest struct {
	ID         int64                `json:"id"`
	SenderID   int64                `json:"sender_id"`
	ReceiverID int64                `json:"receiver_id"`
	Status     enums.InterestStatus `json:"status"`
	Message    string               `json:"message,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

// DeclinedProfile suppresses a previously rejected sender from the
// receiver's future candidate lists. Kept in sync with the edge status:
// added on reject, removed on a later accept or reconsider.
type DeclinedProfile struct {
	UserID         int64     `json:"user_id"`
	DeclinedUserID int64     `json:"declined_user_id"`
	CreatedAt     time.Time `json:"created_at"`
}
