package model

import (
	"time"

	"github.com/laksanil/vivaahready/internal/domain/enums"
)

// Profile is one member's biodata as entered through the profile forms.
// Birthdate and Height are kept verbatim as the historical free-text tokens
// ("08/1992", `5'8"`); the rules package owns parsing them.
type Profile struct {
	UserID           int64                  `json:"user_id"`
	DisplayName      string                 `json:"display_name"`
	Gender           enums.Gender           `json:"gender"`
	Birthdate        string                 `json:"birthdate"`
	Height           string                 `json:"height"`
	MaritalStatus    enums.MaritalStatus    `json:"marital_status"`
	Community        string                 `json:"community"`
	SubCommunity     string                 `json:"sub_community"`
	Gotra            string                 `json:"gotra"`
	Diet             enums.Diet             `json:"diet"`
	Smoking          enums.Habit            `json:"smoking"`
	Drinking         enums.Habit            `json:"drinking"`
	Citizenship      string                 `json:"citizenship"`
	GrewUpIn         string                 `json:"grew_up_in"`
	Location         string                 `json:"location"`
	Education        string                 `json:"education"`
	Income           string                 `json:"income"`
	Occupation       string                 `json:"occupation"`
	FamilyValues     string                 `json:"family_values"`
	FamilyLocation   string                 `json:"family_location"`
	MotherTongue     string                 `json:"mother_tongue"`
	Pets             string                 `json:"pets"`
	Religion         string                 `json:"religion"`
	ModerationStatus enums.ModerationStatus `json:"moderation_status"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

// ContactInfo is disclosed to the other side only once a pair of interests
// is mutually accepted. It never travels through the candidate read paths.
type ContactInfo struct {
	UserID      int64  `json:"user_id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	LinkedInURL string `json:"linkedin_url,omitempty"`
	InstagramID string `json:"instagram_id,omitempty"`
}
