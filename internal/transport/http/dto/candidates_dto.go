package dto

type CandidateCard struct {
	UserID        int64  `json:"user_id"`
	DisplayName   string `json:"display_name"`
	Age           int    `json:"age,omitempty"`
	Height        string `json:"height,omitempty"`
	Location      string `json:"location,omitempty"`
	Community     string `json:"community,omitempty"`
	Education     string `json:"education,omitempty"`
	Occupation    string `json:"occupation,omitempty"`
	MaritalStatus string `json:"marital_status,omitempty"`
}

type CandidatesResponse struct {
	Cards      []CandidateCard `json:"cards"`
	NextCursor string          `json:"next_cursor,omitempty"`
}
