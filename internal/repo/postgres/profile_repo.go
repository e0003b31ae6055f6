package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/laksanil/vivaahready/internal/domain/enums"
	"github.com/laksanil/vivaahready/internal/domain/model"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrContactNotFound = errors.New("contact info not found")
)

type ProfileRepo struct {
	pool *pgxpool.Pool
}

func NewProfileRepo(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

// CandidateQuery is the bulk read behind candidate listing: approved
// profiles of the wanted gender, minus anyone the seeker has declined.
// Keyset pagination by (created_at, user_id) descending.
type CandidateQuery struct {
	SeekerID        int64
	Gender          enums.Gender
	HasCursor       bool
	CursorCreatedAt time.Time
	CursorUserID    int64
	Limit           int
}

const profileColumns = `
	user_id,
	COALESCE(display_name, ''),
	COALESCE(gender, ''),
	COALESCE(birthdate, ''),
	COALESCE(height, ''),
	COALESCE(marital_status, ''),
	COALESCE(community, ''),
	COALESCE(sub_community, ''),
	COALESCE(gotra, ''),
	COALESCE(diet, ''),
	COALESCE(smoking, ''),
	COALESCE(drinking, ''),
	COALESCE(citizenship, ''),
	COALESCE(grew_up_in, ''),
	COALESCE(location, ''),
	COALESCE(education, ''),
	COALESCE(income, ''),
	COALESCE(occupation, ''),
	COALESCE(family_values, ''),
	COALESCE(family_location, ''),
	COALESCE(mother_tongue, ''),
	COALESCE(pets, ''),
	COALESCE(religion, ''),
	COALESCE(moderation_status, 'pending'),
	created_at,
	updated_at`

func scanProfile(row pgx.Row) (model.Profile, error) {
	var p model.Profile
	var gender, maritalStatus, diet, smoking, drinking, moderation string
	err := row.Scan(
		&p.UserID,
		&p.DisplayName,
		&gender,
		&p.Birthdate,
		&p.Height,
		&maritalStatus,
		&p.Community,
		&p.SubCommunity,
		&p.Gotra,
		&diet,
		&smoking,
		&drinking,
		&p.Citizenship,
		&p.GrewUpIn,
		&p.Location,
		&p.Education,
		&p.Income,
		&p.Occupation,
		&p.FamilyValues,
		&p.FamilyLocation,
		&p.MotherTongue,
		&p.Pets,
		&p.Religion,
		&moderation,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return model.Profile{}, err
	}

	p.Gender = enums.Gender(gender)
	p.MaritalStatus = enums.MaritalStatus(maritalStatus)
	p.Diet = enums.Diet(diet)
	p.Smoking = enums.Habit(smoking)
	p.Drinking = enums.Habit(drinking)
	p.ModerationStatus = enums.ModerationStatus(moderation)
	return p, nil
}

func (r *ProfileRepo) GetProfile(ctx context.Context, userID int64) (model.Profile, error) {
	if userID <= 0 {
		return model.Profile{}, fmt.Errorf("invalid user id")
	}
	if r.pool == nil {
		return model.Profile{}, ErrProfileNotFound
	}

	row := r.pool.QueryRow(ctx, `
SELECT `+profileColumns+`
FROM profiles
WHERE user_id = $1
`, userID)

	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Profile{}, ErrProfileNotFound
		}
		return model.Profile{}, fmt.Errorf("get profile: %w", err)
	}

	return p, nil
}

func (r *ProfileRepo) UpdateModerationStatus(ctx context.Context, userID int64, status enums.ModerationStatus) error {
	if userID <= 0 {
		return fmt.Errorf("invalid user id")
	}
	if r.pool == nil {
		return ErrProfileNotFound
	}

	tag, err := r.pool.Exec(ctx, `
UPDATE profiles
SET moderation_status = $2, updated_at = NOW()
WHERE user_id = $1
`, userID, string(status))
	if err != nil {
		return fmt.Errorf("update moderation status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}

	return nil
}

func (r *ProfileRepo) SaveProfile(ctx context.Context, p model.Profile) error {
	if p.UserID <= 0 {
		return fmt.Errorf("invalid profile payload")
	}
	if r.pool == nil {
		return nil
	}

	if _, err := r.pool.Exec(ctx, `
INSERT INTO profiles (
	user_id, display_name, gender, birthdate, height, marital_status,
	community, sub_community, gotra, diet, smoking, drinking,
	citizenship, grew_up_in, location, education, income, occupation,
	family_values, family_location, mother_tongue, pets, religion,
	moderation_status, created_at, updated_at
) VALUES (
	$1, $2, $3, $4, $5, $6,
	$7, $8, $9, $10, $11, $12,
	$13, $14, $15, $16, $17, $18,
	$19, $20, $21, $22, $23,
	$24, NOW(), NOW()
)
ON CONFLICT (user_id) DO UPDATE SET
	display_name = EXCLUDED.display_name,
	gender = EXCLUDED.gender,
	birthdate = EXCLUDED.birthdate,
	height = EXCLUDED.height,
	marital_status = EXCLUDED.marital_status,
	community = EXCLUDED.community,
	sub_community = EXCLUDED.sub_community,
	gotra = EXCLUDED.gotra,
	diet = EXCLUDED.diet,
	smoking = EXCLUDED.smoking,
	drinking = EXCLUDED.drinking,
	citizenship = EXCLUDED.citizenship,
	grew_up_in = EXCLUDED.grew_up_in,
	location = EXCLUDED.location,
	education = EXCLUDED.education,
	income = EXCLUDED.income,
	occupation = EXCLUDED.occupation,
	family_values = EXCLUDED.family_values,
	family_location = EXCLUDED.family_location,
	mother_tongue = EXCLUDED.mother_tongue,
	pets = EXCLUDED.pets,
	religion = EXCLUDED.religion,
	moderation_status = EXCLUDED.moderation_status,
	updated_at = NOW()
`,
		p.UserID, p.DisplayName, string(p.Gender), p.Birthdate, p.Height, string(p.MaritalStatus),
		p.Community, p.SubCommunity, p.Gotra, string(p.Diet), string(p.Smoking), string(p.Drinking),
		p.Citizenship, p.GrewUpIn, p.Location, p.Education, p.Income, p.Occupation,
		p.FamilyValues, p.FamilyLocation, p.MotherTongue, p.Pets, p.Religion,
		string(p.ModerationStatus),
	); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}

	return nil
}

func (r *ProfileRepo) GetPreferences(ctx context.Context, userID int64) (model.Preferences, error) {
	if userID <= 0 {
		return model.Preferences{}, fmt.Errorf("invalid user id")
	}
	if r.pool == nil {
		return model.Preferences{UserID: userID}, nil
	}

	prefs := model.Preferences{UserID: userID}
	err := r.pool.QueryRow(ctx, `
SELECT
	age_min, age_max, age_strict,
	height_min_in, height_max_in, height_strict,
	COALESCE(location, ''), location_strict,
	marital_status_values, marital_status_strict,
	community_values, community_strict,
	sub_community_values, sub_community_strict,
	gotra_values, gotra_strict,
	diet_values, diet_strict,
	smoking_values, smoking_strict,
	drinking_values, drinking_strict,
	citizenship_values, citizenship_strict,
	grew_up_in_values, grew_up_in_strict,
	relocation_values, relocation_strict,
	education_values, education_strict,
	income_values, income_strict,
	occupation_values, occupation_strict,
	family_values_values, family_values_strict,
	family_location_values, family_location_strict,
	mother_tongue_values, mother_tongue_strict,
	pets_values, pets_strict,
	religion_values, religion_strict
FROM preferences
WHERE user_id = $1
`, userID).Scan(
		&prefs.AgeMin, &prefs.AgeMax, &prefs.AgeStrict,
		&prefs.HeightMinIn, &prefs.HeightMaxIn, &prefs.HeightStrict,
		&prefs.Location, &prefs.LocationStrict,
		&prefs.MaritalStatus.Values, &prefs.MaritalStatus.Strict,
		&prefs.Community.Values, &prefs.Community.Strict,
		&prefs.SubCommunity.Values, &prefs.SubCommunity.Strict,
		&prefs.Gotra.Values, &prefs.Gotra.Strict,
		&prefs.Diet.Values, &prefs.Diet.Strict,
		&prefs.Smoking.Values, &prefs.Smoking.Strict,
		&prefs.Drinking.Values, &prefs.Drinking.Strict,
		&prefs.Citizenship.Values, &prefs.Citizenship.Strict,
		&prefs.GrewUpIn.Values, &prefs.GrewUpIn.Strict,
		&prefs.Relocation.Values, &prefs.Relocation.Strict,
		&prefs.Education.Values, &prefs.Education.Strict,
		&prefs.Income.Values, &prefs.Income.Strict,
		&prefs.Occupation.Values, &prefs.Occupation.Strict,
		&prefs.FamilyValues.Values, &prefs.FamilyValues.Strict,
		&prefs.FamilyLocation.Values, &prefs.FamilyLocation.Strict,
		&prefs.MotherTongue.Values, &prefs.MotherTongue.Strict,
		&prefs.Pets.Values, &prefs.Pets.Strict,
		&prefs.Religion.Values, &prefs.Religion.Strict,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Preferences{UserID: userID}, nil
		}
		return model.Preferences{}, fmt.Errorf("get preferences: %w", err)
	}

	return prefs, nil
}

func (r *ProfileRepo) SavePreferences(ctx context.Context, prefs model.Preferences) error {
	if prefs.UserID <= 0 {
		return fmt.Errorf("invalid preferences payload")
	}
	if r.pool == nil {
		return nil
	}

	if _, err := r.pool.Exec(ctx, `
INSERT INTO preferences (
	user_id,
	age_min, age_max, age_strict,
	height_min_in, height_max_in, height_strict,
	location, location_strict,
	marital_status_values, marital_status_strict,
	community_values, community_strict,
	sub_community_values, sub_community_strict,
	gotra_values, gotra_strict,
	diet_values, diet_strict,
	smoking_values, smoking_strict,
	drinking_values, drinking_strict,
	citizenship_values, citizenship_strict,
	grew_up_in_values, grew_up_in_strict,
	relocation_values, relocation_strict,
	education_values, education_strict,
	income_values, income_strict,
	occupation_values, occupation_strict,
	family_values_values, family_values_strict,
	family_location_values, family_location_strict,
	mother_tongue_values, mother_tongue_strict,
	pets_values, pets_strict,
	religion_values, religion_strict,
	updated_at
) VALUES (
	$1,
	$2, $3, $4,
	$5, $6, $7,
	$8, $9,
	$10, $11, $12, $13, $14, $15, $16, $17, $18, $19,
	$20, $21, $22, $23, $24, $25, $26, $27, $28, $29,
	$30, $31, $32, $33, $34, $35, $36, $37, $38, $39,
	$40, $41, $42, $43,
	NOW()
)
ON CONFLICT (user_id) DO UPDATE SET
	age_min = EXCLUDED.age_min,
	age_max = EXCLUDED.age_max,
	age_strict = EXCLUDED.age_strict,
	height_min_in = EXCLUDED.height_min_in,
	height_max_in = EXCLUDED.height_max_in,
	height_strict = EXCLUDED.height_strict,
	location = EXCLUDED.location,
	location_strict = EXCLUDED.location_strict,
	marital_status_values = EXCLUDED.marital_status_values,
	marital_status_strict = EXCLUDED.marital_status_strict,
	community_values = EXCLUDED.community_values,
	community_strict = EXCLUDED.community_strict,
	sub_community_values = EXCLUDED.sub_community_values,
	sub_community_strict = EXCLUDED.sub_community_strict,
	gotra_values = EXCLUDED.gotra_values,
	gotra_strict = EXCLUDED.gotra_strict,
	diet_values = EXCLUDED.diet_values,
	diet_strict = EXCLUDED.diet_strict,
	smoking_values = EXCLUDED.smoking_values,
	smoking_strict = EXCLUDED.smoking_strict,
	drinking_values = EXCLUDED.drinking_values,
	drinking_strict = EXCLUDED.drinking_strict,
	citizenship_values = EXCLUDED.citizenship_values,
	citizenship_strict = EXCLUDED.citizenship_strict,
	grew_up_in_values = EXCLUDED.grew_up_in_values,
	grew_up_in_strict = EXCLUDED.grew_up_in_strict,
	relocation_values = EXCLUDED.relocation_values,
	relocation_strict = EXCLUDED.relocation_strict,
	education_values = EXCLUDED.education_values,
	education_strict = EXCLUDED.education_strict,
	income_values = EXCLUDED.income_values,
	income_strict = EXCLUDED.income_strict,
	occupation_values = EXCLUDED.occupation_values,
	occupation_strict = EXCLUDED.occupation_strict,
	family_values_values = EXCLUDED.family_values_values,
	family_values_strict = EXCLUDED.family_values_strict,
	family_location_values = EXCLUDED.family_location_values,
	family_location_strict = EXCLUDED.family_location_strict,
	mother_tongue_values = EXCLUDED.mother_tongue_values,
	mother_tongue_strict = EXCLUDED.mother_tongue_strict,
	pets_values = EXCLUDED.pets_values,
	pets_strict = EXCLUDED.pets_strict,
	religion_values = EXCLUDED.religion_values,
	religion_strict = EXCLUDED.religion_strict,
	updated_at = NOW()
`,
		prefs.UserID,
		prefs.AgeMin, prefs.AgeMax, prefs.AgeStrict,
		prefs.HeightMinIn, prefs.HeightMaxIn, prefs.HeightStrict,
		prefs.Location, prefs.LocationStrict,
		prefs.MaritalStatus.Values, prefs.MaritalStatus.Strict,
		prefs.Community.Values, prefs.Community.Strict,
		prefs.SubCommunity.Values, prefs.SubCommunity.Strict,
		prefs.Gotra.Values, prefs.Gotra.Strict,
		prefs.Diet.Values, prefs.Diet.Strict,
		prefs.Smoking.Values, prefs.Smoking.Strict,
		prefs.Drinking.Values, prefs.Drinking.Strict,
		prefs.Citizenship.Values, prefs.Citizenship.Strict,
		prefs.GrewUpIn.Values, prefs.GrewUpIn.Strict,
		prefs.Relocation.Values, prefs.Relocation.Strict,
		prefs.Education.Values, prefs.Education.Strict,
		prefs.Income.Values, prefs.Income.Strict,
		prefs.Occupation.Values, prefs.Occupation.Strict,
		prefs.FamilyValues.Values, prefs.FamilyValues.Strict,
		prefs.FamilyLocation.Values, prefs.FamilyLocation.Strict,
		prefs.MotherTongue.Values, prefs.MotherTongue.Strict,
		prefs.Pets.Values, prefs.Pets.Strict,
		prefs.Religion.Values, prefs.Religion.Strict,
	); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}

	return nil
}

func (r *ProfileRepo) ListCandidates(ctx context.Context, q CandidateQuery) ([]model.Profile, error) {
	if q.SeekerID <= 0 || q.Gender == "" {
		return nil, fmt.Errorf("invalid candidate query")
	}
	if q.Limit <= 0 {
		q.Limit = 50
	}
	if r.pool == nil {
		return []model.Profile{}, nil
	}

	query := `
SELECT ` + profileColumns + `
FROM profiles
WHERE
	gender = $2
	AND user_id <> $1
	AND moderation_status = 'approved'
	AND NOT EXISTS (
		SELECT 1
		FROM declined_profiles d
		WHERE d.user_id = $1
			AND d.declined_user_id = profiles.user_id
	)
`
	args := []any{q.SeekerID, string(q.Gender)}
	if q.HasCursor {
		query += `	AND (created_at, user_id) < ($3, $4)
`
		args = append(args, q.CursorCreatedAt, q.CursorUserID)
		query += `ORDER BY created_at DESC, user_id DESC
LIMIT $5`
	} else {
		query += `ORDER BY created_at DESC, user_id DESC
LIMIT $3`
	}
	args = append(args, q.Limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	defer rows.Close()

	items := make([]model.Profile, 0, q.Limit)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		items = append(items, p)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate candidates: %w", rows.Err())
	}

	return items, nil
}

// GetOwnContact reads a member's own contact record for notification
// delivery. Disclosure to other members goes through GetContactInfo only.
func (r *ProfileRepo) GetOwnContact(ctx context.Context, userID int64) (model.ContactInfo, error) {
	if userID <= 0 {
		return model.ContactInfo{}, fmt.Errorf("invalid user id")
	}
	if r.pool == nil {
		return model.ContactInfo{}, ErrContactNotFound
	}

	var info model.ContactInfo
	err := r.pool.QueryRow(ctx, `
SELECT
	c.user_id,
	COALESCE(p.display_name, ''),
	COALESCE(c.email, ''),
	COALESCE(c.phone, ''),
	COALESCE(c.linkedin_url, ''),
	COALESCE(c.instagram_id, '')
FROM contacts c
JOIN profiles p ON p.user_id = c.user_id
WHERE c.user_id = $1
`, userID).Scan(
		&info.UserID,
		&info.DisplayName,
		&info.Email,
		&info.Phone,
		&info.LinkedInURL,
		&info.InstagramID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ContactInfo{}, ErrContactNotFound
		}
		return model.ContactInfo{}, fmt.Errorf("get own contact: %w", err)
	}

	return info, nil
}

// GetContactInfo reads the contact record inside the accept transaction so
// disclosure and the status flip commit together. The non-mutual read paths
// never touch this table.
func (r *ProfileRepo) GetContactInfo(ctx context.Context, tx pgx.Tx, userID int64) (model.ContactInfo, error) {
	if userID <= 0 {
		return model.ContactInfo{}, fmt.Errorf("invalid user id")
	}
	if tx == nil {
		return model.ContactInfo{}, fmt.Errorf("transaction is required")
	}

	var info model.ContactInfo
	err := tx.QueryRow(ctx, `
SELECT
	c.user_id,
	COALESCE(p.display_name, ''),
	COALESCE(c.email, ''),
	COALESCE(c.phone, ''),
	COALESCE(c.linkedin_url, ''),
	COALESCE(c.instagram_id, '')
FROM contacts c
JOIN profiles p ON p.user_id = c.user_id
WHERE c.user_id = $1
`, userID).Scan(
		&info.UserID,
		&info.DisplayName,
		&info.Email,
		&info.Phone,
		&info.LinkedInURL,
		&info.InstagramID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ContactInfo{}, ErrContactNotFound
		}
		return model.ContactInfo{}, fmt.Errorf("get contact info: %w", err)
	}

	return info, nil
}
