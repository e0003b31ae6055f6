package profiles

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/laksanil/vivaahready/internal/domain/enums"
	"github.com/laksanil/vivaahready/internal/domain/model"
	"github.com/laksanil/vivaahready/internal/domain/rules"
	"github.com/laksanil/vivaahready/internal/pkg/validate"
	pgrepo "github.com/laksanil/vivaahready/internal/repo/postgres"
)

var (
	ErrValidation      = errors.New("validation error")
	ErrProfileNotFound = errors.New("profile not found")
)

type Store interface {
	GetProfile(ctx context.Context, userID int64) (model.Profile, error)
	SaveProfile(ctx context.Context, p model.Profile) error
	GetPreferences(ctx context.Context, userID int64) (model.Preferences, error)
	SavePreferences(ctx context.Context, prefs model.Preferences) error
	UpdateModerationStatus(ctx context.Context, userID int64, status enums.ModerationStatus) error
}

type CandidateCache interface {
	Invalidate(ctx context.Context, seekerID int64) error
}

type Service struct {
	store Store
	cache CandidateCache
	now   func() time.Time
}

// ProfileInput carries the raw form values. Everything is free text at this
// boundary; normalization into the closed enums happens here so the
// evaluator and the repos only ever see canonical values.
type ProfileInput struct {
	DisplayName    string
	Gender         string
	Birthdate      string
	Height         string
	MaritalStatus  string
	Community      string
	SubCommunity   string
	Gotra          string
	Diet           string
	Smoking        string
	Drinking       string
	Citizenship    string
	GrewUpIn       string
	Location       string
	Education      string
	Income         string
	Occupation     string
	FamilyValues   string
	FamilyLocation string
	MotherTongue   string
	Pets           string
	Religion       string
}

// CriterionInput is one preference field as submitted: a value list in
// either historical encoding (JSON array or comma string) and an optional
// dealbreaker flag. A nil flag takes the per-field default.
type CriterionInput struct {
	Values string
	Strict *bool
}

type PreferencesInput struct {
	AgeMin       int
	AgeMax       int
	AgeStrict    *bool
	HeightMin    string
	HeightMax    string
	HeightStrict *bool

	Location       string
	LocationStrict *bool

	MaritalStatus  CriterionInput
	Community      CriterionInput
	SubCommunity   CriterionInput
	Gotra          CriterionInput
	Diet           CriterionInput
	Smoking        CriterionInput
	Drinking       CriterionInput
	Citizenship    CriterionInput
	GrewUpIn       CriterionInput
	Relocation     CriterionInput
	Education      CriterionInput
	Income         CriterionInput
	Occupation     CriterionInput
	FamilyValues   CriterionInput
	FamilyLocation CriterionInput
	MotherTongue   CriterionInput
	Pets           CriterionInput
	Religion       CriterionInput
}

func NewService(store Store, cache CandidateCache) *Service {
	return &Service{
		store: store,
		cache: cache,
		now:   time.Now,
	}
}

func (s *Service) GetMe(ctx context.Context, userID int64) (model.Profile, model.Preferences, error) {
	if userID <= 0 {
		return model.Profile{}, model.Preferences{}, fmt.Errorf("invalid user id: %w", ErrValidation)
	}
	if s.store == nil {
		return model.Profile{}, model.Preferences{}, fmt.Errorf("profile store is nil")
	}

	profile, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, pgrepo.ErrProfileNotFound) {
			return model.Profile{}, model.Preferences{}, ErrProfileNotFound
		}
		return model.Profile{}, model.Preferences{}, fmt.Errorf("get profile: %w", err)
	}

	prefs, err := s.store.GetPreferences(ctx, userID)
	if err != nil {
		return model.Profile{}, model.Preferences{}, fmt.Errorf("get preferences: %w", err)
	}

	return profile, prefs, nil
}

// UpdateProfile normalizes and stores the member's own biodata. Edits send
// the profile back through moderation.
func (s *Service) UpdateProfile(ctx context.Context, userID int64, in ProfileInput) (model.Profile, error) {
	if userID <= 0 {
		return model.Profile{}, fmt.Errorf("invalid user id: %w", ErrValidation)
	}
	if s.store == nil {
		return model.Profile{}, fmt.Errorf("profile store is nil")
	}

	profile, err := normalizeProfileInput(userID, in)
	if err != nil {
		return model.Profile{}, err
	}

	if err := s.store.SaveProfile(ctx, profile); err != nil {
		return model.Profile{}, fmt.Errorf("save profile: %w", err)
	}

	s.invalidateCache(ctx, userID)

	return profile, nil
}

// UpdatePreferences normalizes and stores the seeker-side criteria. The
// same-as-mine sentinel is resolved against the member's own profile here,
// at write time, so the evaluator never sees it.
func (s *Service) UpdatePreferences(ctx context.Context, userID int64, in PreferencesInput) (model.Preferences, error) {
	if userID <= 0 {
		return model.Preferences{}, fmt.Errorf("invalid user id: %w", ErrValidation)
	}
	if s.store == nil {
		return model.Preferences{}, fmt.Errorf("profile store is nil")
	}

	own, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, pgrepo.ErrProfileNotFound) {
			return model.Preferences{}, ErrProfileNotFound
		}
		return model.Preferences{}, fmt.Errorf("get own profile: %w", err)
	}

	prefs, err := normalizePreferencesInput(userID, in, own)
	if err != nil {
		return model.Preferences{}, err
	}

	if err := s.store.SavePreferences(ctx, prefs); err != nil {
		return model.Preferences{}, fmt.Errorf("save preferences: %w", err)
	}

	s.invalidateCache(ctx, userID)

	return prefs, nil
}

// SetModerationStatus is the reviewer-side transition. Approved profiles
// start appearing in candidate lists, rejected ones drop out.
func (s *Service) SetModerationStatus(ctx context.Context, userID int64, rawStatus string) error {
	if userID <= 0 {
		return fmt.Errorf("invalid user id: %w", ErrValidation)
	}
	status := enums.ParseModerationStatus(rawStatus)
	if status == "" {
		return fmt.Errorf("unknown moderation status %q: %w", rawStatus, ErrValidation)
	}
	if s.store == nil {
		return fmt.Errorf("profile store is nil")
	}

	if err := s.store.UpdateModerationStatus(ctx, userID, status); err != nil {
		if errors.Is(err, pgrepo.ErrProfileNotFound) {
			return ErrProfileNotFound
		}
		return fmt.Errorf("update moderation status: %w", err)
	}

	return nil
}

// Cache invalidation is best effort: a stale first page expires by TTL.
func (s *Service) invalidateCache(ctx context.Context, userID int64) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Invalidate(ctx, userID)
}

func normalizeProfileInput(userID int64, in ProfileInput) (model.Profile, error) {
	if !validate.Required(in.DisplayName) {
		return model.Profile{}, fmt.Errorf("display_name is required: %w", ErrValidation)
	}
	displayName := strings.TrimSpace(in.DisplayName)

	gender := enums.ParseGender(in.Gender)
	if gender == "" {
		return model.Profile{}, fmt.Errorf("gender is required: %w", ErrValidation)
	}

	return model.Profile{
		UserID:           userID,
		DisplayName:      displayName,
		Gender:           gender,
		Birthdate:        strings.TrimSpace(in.Birthdate),
		Height:           strings.TrimSpace(in.Height),
		MaritalStatus:    normalizeMaritalStatus(in.MaritalStatus),
		Community:        rules.Normalize(in.Community),
		SubCommunity:     rules.Normalize(in.SubCommunity),
		Gotra:            rules.Normalize(in.Gotra),
		Diet:             normalizeDiet(in.Diet),
		Smoking:          normalizeHabit(in.Smoking),
		Drinking:         normalizeHabit(in.Drinking),
		Citizenship:      rules.Normalize(in.Citizenship),
		GrewUpIn:         rules.Normalize(in.GrewUpIn),
		Location:         strings.TrimSpace(in.Location),
		Education:        rules.Normalize(in.Education),
		Income:           rules.Normalize(in.Income),
		Occupation:       rules.Normalize(in.Occupation),
		FamilyValues:     rules.Normalize(in.FamilyValues),
		FamilyLocation:   rules.Normalize(in.FamilyLocation),
		MotherTongue:     rules.Normalize(in.MotherTongue),
		Pets:             rules.Normalize(in.Pets),
		Religion:         rules.Normalize(in.Religion),
		ModerationStatus: enums.ModerationStatusPending,
	}, nil
}

// Attribute fields fold into the closed enums when the value is a known
// spelling; unknown legacy tokens are kept in normalized form rather than
// rejected, matching how the historical imports were stored.
func normalizeMaritalStatus(raw string) enums.MaritalStatus {
	if parsed := enums.ParseMaritalStatus(raw); parsed != "" {
		return parsed
	}
	return enums.MaritalStatus(rules.Normalize(raw))
}

func normalizeDiet(raw string) enums.Diet {
	if parsed := enums.ParseDiet(raw); parsed != "" {
		return parsed
	}
	return enums.Diet(rules.Normalize(raw))
}

func normalizeHabit(raw string) enums.Habit {
	if parsed := enums.ParseHabit(raw); parsed != "" {
		return parsed
	}
	return enums.Habit(rules.Normalize(raw))
}

func normalizePreferencesInput(userID int64, in PreferencesInput, own model.Profile) (model.Preferences, error) {
	if in.AgeMin < 0 || in.AgeMax < 0 {
		return model.Preferences{}, fmt.Errorf("negative age bound: %w", ErrValidation)
	}
	if in.AgeMin > 0 && in.AgeMax > 0 && in.AgeMin > in.AgeMax {
		return model.Preferences{}, fmt.Errorf("age_min exceeds age_max: %w", ErrValidation)
	}

	heightMinIn, err := parseHeightBound(in.HeightMin)
	if err != nil {
		return model.Preferences{}, err
	}
	heightMaxIn, err := parseHeightBound(in.HeightMax)
	if err != nil {
		return model.Preferences{}, err
	}
	if heightMinIn > 0 && heightMaxIn > 0 && heightMinIn > heightMaxIn {
		return model.Preferences{}, fmt.Errorf("height_min exceeds height_max: %w", ErrValidation)
	}

	prefs := model.Preferences{
		UserID: userID,

		AgeMin:       in.AgeMin,
		AgeMax:       in.AgeMax,
		AgeStrict:    strictOrDefault(in.AgeStrict, "age"),
		HeightMinIn:  heightMinIn,
		HeightMaxIn:  heightMaxIn,
		HeightStrict: strictOrDefault(in.HeightStrict, "height"),

		Location:       rules.CleanLocationPreference(in.Location),
		LocationStrict: strictOrDefault(in.LocationStrict, "location"),

		MaritalStatus:  normalizeCriterion("marital_status", in.MaritalStatus, string(own.MaritalStatus)),
		Community:      normalizeCriterion("community", in.Community, own.Community),
		SubCommunity:   normalizeCriterion("sub_community", in.SubCommunity, own.SubCommunity),
		Gotra:          normalizeCriterion("gotra", in.Gotra, own.Gotra),
		Diet:           normalizeCriterion("diet", in.Diet, string(own.Diet)),
		Smoking:        normalizeCriterion("smoking", in.Smoking, string(own.Smoking)),
		Drinking:       normalizeCriterion("drinking", in.Drinking, string(own.Drinking)),
		Citizenship:    normalizeCriterion("citizenship", in.Citizenship, own.Citizenship),
		GrewUpIn:       normalizeCriterion("grew_up_in", in.GrewUpIn, own.GrewUpIn),
		Relocation:     normalizeCriterion("relocation", in.Relocation, ""),
		Education:      normalizeCriterion("education", in.Education, own.Education),
		Income:         normalizeCriterion("income", in.Income, own.Income),
		Occupation:     normalizeCriterion("occupation", in.Occupation, own.Occupation),
		FamilyValues:   normalizeCriterion("family_values", in.FamilyValues, own.FamilyValues),
		FamilyLocation: normalizeCriterion("family_location", in.FamilyLocation, own.FamilyLocation),
		MotherTongue:   normalizeCriterion("mother_tongue", in.MotherTongue, own.MotherTongue),
		Pets:           normalizeCriterion("pets", in.Pets, own.Pets),
		Religion:       normalizeCriterion("religion", in.Religion, own.Religion),
	}

	return prefs, nil
}

func parseHeightBound(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || rules.IsNoPreference(trimmed) {
		return 0, nil
	}
	inches, ok := rules.ParseHeight(trimmed)
	if !ok {
		return 0, fmt.Errorf("unparsable height bound %q: %w", raw, ErrValidation)
	}
	return inches, nil
}

func strictOrDefault(flag *bool, field string) bool {
	if flag != nil {
		return *flag
	}
	return rules.DefaultStrict(field)
}

// normalizeCriterion resolves the same-as-mine sentinel against the
// member's own attribute, drops no-preference tokens and dedupes. A field
// without an own-side attribute (relocation) silently drops the sentinel.
func normalizeCriterion(field string, in CriterionInput, ownValue string) model.Criterion {
	parsed := rules.ParseList(in.Values)

	resolved := make([]string, 0, len(parsed))
	for _, v := range parsed {
		if rules.IsSameAsMine(v) {
			if rules.Normalize(ownValue) != "" {
				resolved = append(resolved, rules.Normalize(ownValue))
			}
			continue
		}
		resolved = append(resolved, v)
	}

	return model.Criterion{
		Values: rules.DedupeValues(resolved),
		Strict: strictOrDefault(in.Strict, field),
	}
}
