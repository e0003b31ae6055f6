package candidates

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/laksanil/vivaahready/internal/domain/model"
	"github.com/laksanil/vivaahready/internal/domain/rules"
	pgrepo "github.com/laksanil/vivaahready/internal/repo/postgres"
)

var (
	ErrValidation      = errors.New("validation error")
	ErrProfileNotFound = errors.New("profile not found")
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	// The evaluator runs in memory, so each page may need several DB
	// batches before enough candidates pass the seeker's filters.
	scanBatchSize = 200
	maxScanRounds = 10
)

type Store interface {
	GetProfile(ctx context.Context, userID int64) (model.Profile, error)
	GetPreferences(ctx context.Context, userID int64) (model.Preferences, error)
	ListCandidates(ctx context.Context, q pgrepo.CandidateQuery) ([]model.Profile, error)
}

type PageCache interface {
	GetFirstPage(ctx context.Context, seekerID int64) ([]byte, bool, error)
	SetFirstPage(ctx context.Context, seekerID int64, payload []byte, ttl time.Duration) error
}

type Config struct {
	PageSize int
	CacheTTL time.Duration
}

type Service struct {
	store Store
	cache PageCache
	cfg   Config
	now   func() time.Time
}

// Card is the public slice of a candidate profile shown while browsing.
// Contact details never appear here.
type Card struct {
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

type Page struct {
	Cards      []Card `json:"cards"`
	NextCursor string `json:"next_cursor,omitempty"`
}

type cursorToken struct {
	CreatedAt time.Time `json:"c"`
	UserID    int64     `json:"u"`
}

func NewService(store Store, cache PageCache, cfg Config) *Service {
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	if cfg.PageSize > maxPageSize {
		cfg.PageSize = maxPageSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 2 * time.Minute
	}

	return &Service{
		store: store,
		cache: cache,
		cfg:   cfg,
		now:   time.Now,
	}
}

// Browse returns the next page of candidates acceptable under the seeker's
// preferences. The evaluation is asymmetric: only the seeker's preferences
// gate the listing, the candidate's own preferences are not consulted.
func (s *Service) Browse(ctx context.Context, seekerID int64, cursor string) (Page, error) {
	if seekerID <= 0 {
		return Page{}, fmt.Errorf("invalid seeker id: %w", ErrValidation)
	}
	if s.store == nil {
		return Page{}, fmt.Errorf("candidate store is nil")
	}

	if cursor == "" && s.cache != nil {
		if payload, ok, err := s.cache.GetFirstPage(ctx, seekerID); err == nil && ok {
			var page Page
			if err := json.Unmarshal(payload, &page); err == nil {
				return page, nil
			}
		}
	}

	seeker, err := s.store.GetProfile(ctx, seekerID)
	if err != nil {
		if errors.Is(err, pgrepo.ErrProfileNotFound) {
			return Page{}, ErrProfileNotFound
		}
		return Page{}, fmt.Errorf("get seeker profile: %w", err)
	}

	wanted := seeker.Gender.Opposite()
	if wanted == "" {
		return Page{}, fmt.Errorf("seeker gender is not set: %w", ErrValidation)
	}

	prefs, err := s.store.GetPreferences(ctx, seekerID)
	if err != nil {
		return Page{}, fmt.Errorf("get seeker preferences: %w", err)
	}

	query := pgrepo.CandidateQuery{
		SeekerID: seekerID,
		Gender:   wanted,
		Limit:    scanBatchSize,
	}
	if cursor != "" {
		token, err := decodeCursor(cursor)
		if err != nil {
			return Page{}, fmt.Errorf("bad cursor: %w", ErrValidation)
		}
		query.HasCursor = true
		query.CursorCreatedAt = token.CreatedAt
		query.CursorUserID = token.UserID
	}

	now := s.now()
	page := Page{Cards: make([]Card, 0, s.cfg.PageSize)}

	for round := 0; round < maxScanRounds; round++ {
		batch, err := s.store.ListCandidates(ctx, query)
		if err != nil {
			return Page{}, fmt.Errorf("list candidates: %w", err)
		}
		if len(batch) == 0 {
			page.NextCursor = ""
			break
		}

		exhausted := len(batch) < scanBatchSize
		filled := false
		for i, candidate := range batch {
			if !rules.Acceptable(prefs, candidate, now) {
				continue
			}
			page.Cards = append(page.Cards, cardFromProfile(candidate, now))
			if len(page.Cards) == s.cfg.PageSize {
				// Resume the scan from the last row consumed, not the
				// last row accepted, so filtered rows are not re-read.
				if i == len(batch)-1 && exhausted {
					page.NextCursor = ""
				} else {
					page.NextCursor = encodeCursor(cursorToken{
						CreatedAt: candidate.CreatedAt,
						UserID:    candidate.UserID,
					})
				}
				filled = true
				break
			}
		}
		if filled {
			break
		}
		if exhausted {
			page.NextCursor = ""
			break
		}

		last := batch[len(batch)-1]
		query.HasCursor = true
		query.CursorCreatedAt = last.CreatedAt
		query.CursorUserID = last.UserID
		page.NextCursor = encodeCursor(cursorToken{CreatedAt: last.CreatedAt, UserID: last.UserID})
	}

	if cursor == "" && s.cache != nil {
		if payload, err := json.Marshal(page); err == nil {
			// Best effort: a lost write just means the next request
			// recomputes the page.
			_ = s.cache.SetFirstPage(ctx, seekerID, payload, s.cfg.CacheTTL)
		}
	}

	return page, nil
}

func cardFromProfile(p model.Profile, now time.Time) Card {
	card := Card{
		UserID:        p.UserID,
		DisplayName:   p.DisplayName,
		Height:        p.Height,
		Location:      p.Location,
		Community:     p.Community,
		Education:     p.Education,
		Occupation:    p.Occupation,
		MaritalStatus: string(p.MaritalStatus),
	}
	if age, ok := rules.AgeFromBirthdate(p.Birthdate, now); ok {
		card.Age = age
	}
	return card
}

func encodeCursor(token cursorToken) string {
	payload, err := json.Marshal(token)
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(payload)
}

func decodeCursor(raw string) (cursorToken, error) {
	payload, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return cursorToken{}, err
	}
	var token cursorToken
	if err := json.Unmarshal(payload, &token); err != nil {
		return cursorToken{}, err
	}
	if token.UserID <= 0 || token.CreatedAt.IsZero() {
		return cursorToken{}, fmt.Errorf("incomplete cursor")
	}
	return token, nil
}
