package dto

type ModerationUpdateRequest struct {
	Status string `json:"status"`
}
