package model

import (
	"time"

	"github.com/laksanil/vivaahready/internal/domain/enums"
)

type Notification struct {
	ID        string                 `json:"id"`
	UserID    int64                  `json:"user_id"`
	Kind      enums.NotificationKind `json:"kind"`
	Title     string                 `json:"title"`
	Body      string                 `json:"body"`
	Read      bool                   `json:"read"`
	CreatedAt time.Time              `json:"created_at"`
}
