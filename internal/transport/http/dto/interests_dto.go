package dto

import "time"

type ExpressInterestRequest struct {
	ReceiverID int64  `json:"receiver_id"`
	Message    string `json:"message,omitempty"`
}

type InterestResponse struct {
	ID         int64     `json:"id"`
	SenderID   int64     `json:"sender_id"`
	ReceiverID int64     `json:"receiver_id"`
	Status     string    `json:"status"`
	Message    string    `json:"message,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type RespondInterestRequest struct {
	Action string `json:"action"`
}

type ContactCard struct {
	UserID      int64  `json:"user_id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	LinkedInURL string `json:"linkedin_url,omitempty"`
	InstagramID string `json:"instagram_id,omitempty"`
}

type RespondInterestResponse struct {
	Interest InterestResponse `json:"interest"`
	Mutual   bool             `json:"mutual"`
	Contact  *ContactCard     `json:"contact,omitempty"`
}

type InterestListItem struct {
	ID          int64     `json:"id"`
	OtherUserID int64     `json:"other_user_id"`
	DisplayName string    `json:"display_name"`
	Location    string    `json:"location,omitempty"`
	Status      string    `json:"status"`
	Message     string    `json:"message,omitempty"`
	Mutual      bool      `json:"mutual"`
	CreatedAt   time.Time `json:"created_at"`
}

type InterestListResponse struct {
	Items []InterestListItem `json:"items"`
}
