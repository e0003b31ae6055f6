package model

// Criterion is one preference field: the values the seeker will accept and
// whether the field is a hard filter. An empty Values list means "doesn't
// matter" and the strict flag is non-binding regardless of its value; the
// profiles service reconciles that at write time.
type Criterion struct {
	Values []string `json:"values"`
	Strict bool     `json:"strict"`
}

// IsBinding reports whether the criterion participates as a hard filter.
func (c Criterion) IsBinding() bool {
	return c.Strict && len(c.Values) > 0
}

// Preferences is the seeker-side half of a profile: what they are looking
// for, field by field. Ranges use zero for "unset".
type Preferences struct {
	UserID int64 `json:"user_id"`

	AgeMin       int  `json:"age_min"`
	AgeMax       int  `json:"age_max"`
	AgeStrict    bool `json:"age_strict"`
	HeightMinIn  int  `json:"height_min_in"`
	HeightMaxIn  int  `json:"height_max_in"`
	HeightStrict bool `json:"height_strict"`

	Location       string `json:"location"`
	LocationStrict bool   `json:"location_strict"`

	MaritalStatus  Criterion `json:"marital_status"`
	Community      Criterion `json:"community"`
	SubCommunity   Criterion `json:"sub_community"`
	Gotra          Criterion `json:"gotra"`
	Diet           Criterion `json:"diet"`
	Smoking        Criterion `json:"smoking"`
	Drinking       Criterion `json:"drinking"`
	Citizenship    Criterion `json:"citizenship"`
	GrewUpIn       Criterion `json:"grew_up_in"`
	Relocation     Criterion `json:"relocation"`
	Education      Criterion `json:"education"`
	Income         Criterion `json:"income"`
	Occupation     Criterion `json:"occupation"`
	FamilyValues   Criterion `json:"family_values"`
	FamilyLocation Criterion `json:"family_location"`
	MotherTongue   Criterion `json:"mother_tongue"`
	Pets           Criterion `json:"pets"`
	Religion       Criterion `json:"religion"`
}
