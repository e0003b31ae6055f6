package dto

type ProfileResponse struct {
	UserID           int64  `json:"user_id"`
	DisplayName      string `json:"display_name"`
	Gender           string `json:"gender"`
	Birthdate        string `json:"birthdate,omitempty"`
	Height           string `json:"height,omitempty"`
	MaritalStatus    string `json:"marital_status,omitempty"`
	Community        string `json:"community,omitempty"`
	SubCommunity     string `json:"sub_community,omitempty"`
	Gotra            string `json:"gotra,omitempty"`
	Diet             string `json:"diet,omitempty"`
	Smoking          string `json:"smoking,omitempty"`
	Drinking         string `json:"drinking,omitempty"`
	Citizenship      string `json:"citizenship,omitempty"`
	GrewUpIn         string `json:"grew_up_in,omitempty"`
	Location         string `json:"location,omitempty"`
	Education        string `json:"education,omitempty"`
	Income           string `json:"income,omitempty"`
	Occupation       string `json:"occupation,omitempty"`
	FamilyValues     string `json:"family_values,omitempty"`
	FamilyLocation   string `json:"family_location,omitempty"`
	MotherTongue     string `json:"mother_tongue,omitempty"`
	Pets             string `json:"pets,omitempty"`
	Religion         string `json:"religion,omitempty"`
	ModerationStatus string `json:"moderation_status"`
}

type ProfileUpdateRequest struct {
	DisplayName    string `json:"display_name"`
	Gender         string `json:"gender"`
	Birthdate      string `json:"birthdate"`
	Height         string `json:"height"`
	MaritalStatus  string `json:"marital_status"`
	Community      string `json:"community"`
	SubCommunity   string `json:"sub_community"`
	Gotra          string `json:"gotra"`
	Diet           string `json:"diet"`
	Smoking        string `json:"smoking"`
	Drinking       string `json:"drinking"`
	Citizenship    string `json:"citizenship"`
	GrewUpIn       string `json:"grew_up_in"`
	Location       string `json:"location"`
	Education      string `json:"education"`
	Income         string `json:"income"`
	Occupation     string `json:"occupation"`
	FamilyValues   string `json:"family_values"`
	FamilyLocation string `json:"family_location"`
	MotherTongue   string `json:"mother_tongue"`
	Pets           string `json:"pets"`
	Religion       string `json:"religion"`
}

type CriterionRequest struct {
	Values string `json:"values"`
	Strict *bool  `json:"strict,omitempty"`
}

type CriterionResponse struct {
	Values []string `json:"values"`
	Strict bool     `json:"strict"`
}

type PreferencesUpdateRequest struct {
	AgeMin       int    `json:"age_min"`
	AgeMax       int    `json:"age_max"`
	AgeStrict    *bool  `json:"age_strict,omitempty"`
	HeightMin    string `json:"height_min"`
	HeightMax    string `json:"height_max"`
	HeightStrict *bool  `json:"height_strict,omitempty"`

	Location       string `json:"location"`
	LocationStrict *bool  `json:"location_strict,omitempty"`

	MaritalStatus  CriterionRequest `json:"marital_status"`
	Community      CriterionRequest `json:"community"`
	SubCommunity   CriterionRequest `json:"sub_community"`
	Gotra          CriterionRequest `json:"gotra"`
	Diet           CriterionRequest `json:"diet"`
	Smoking        CriterionRequest `json:"smoking"`
	Drinking       CriterionRequest `json:"drinking"`
	Citizenship    CriterionRequest `json:"citizenship"`
	GrewUpIn       CriterionRequest `json:"grew_up_in"`
	Relocation     CriterionRequest `json:"relocation"`
	Education      CriterionRequest `json:"education"`
	Income         CriterionRequest `json:"income"`
	Occupation     CriterionRequest `json:"occupation"`
	FamilyValues   CriterionRequest `json:"family_values"`
	FamilyLocation CriterionRequest `json:"family_location"`
	MotherTongue   CriterionRequest `json:"mother_tongue"`
	Pets           CriterionRequest `json:"pets"`
	Religion       CriterionRequest `json:"religion"`
}

type PreferencesResponse struct {
	AgeMin       int  `json:"age_min"`
	AgeMax       int  `json:"age_max"`
	AgeStrict    bool `json:"age_strict"`
	HeightMinIn  int  `json:"height_min_in"`
	HeightMaxIn  int  `json:"height_max_in"`
	HeightStrict bool `json:"height_strict"`

	Location       string `json:"location"`
	LocationStrict bool   `json:"location_strict"`

	MaritalStatus  CriterionResponse `json:"marital_status"`
	Community      CriterionResponse `json:"community"`
	SubCommunity   CriterionResponse `json:"sub_community"`
	Gotra          CriterionResponse `json:"gotra"`
	Diet           CriterionResponse `json:"diet"`
	Smoking        CriterionResponse `json:"smoking"`
	Drinking       CriterionResponse `json:"drinking"`
	Citizenship    CriterionResponse `json:"citizenship"`
	GrewUpIn       CriterionResponse `json:"grew_up_in"`
	Relocation     CriterionResponse `json:"relocation"`
	Education      CriterionResponse `json:"education"`
	Income         CriterionResponse `json:"income"`
	Occupation     CriterionResponse `json:"occupation"`
	FamilyValues   CriterionResponse `json:"family_values"`
	FamilyLocation CriterionResponse `json:"family_location"`
	MotherTongue   CriterionResponse `json:"mother_tongue"`
	Pets           CriterionResponse `json:"pets"`
	Religion       CriterionResponse `json:"religion"`
}

type MeResponse struct {
	Profile     ProfileResponse     `json:"profile"`
	Preferences PreferencesResponse `json:"preferences"`
}
