package candidates

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/laksanil/vivaahready/internal/domain/enums"
	"github.com/laksanil/vivaahready/internal/domain/model"
	pgrepo "github.com/laksanil/vivaahready/internal/repo/postgres"
)

type storeStub struct {
	profile    model.Profile
	profileErr error
	prefs      model.Preferences
	candidates []model.Profile
	queries    []pgrepo.CandidateQuery
}

func (s *storeStub) GetProfile(_ context.Context, _ int64) (model.Profile, error) {
	return s.profile, s.profileErr
}

func (s *storeStub) GetPreferences(_ context.Context, _ int64) (model.Preferences, error) {
	return s.prefs, nil
}

func (s *storeStub) ListCandidates(_ context.Context, q pgrepo.CandidateQuery) ([]model.Profile, error) {
	s.queries = append(s.queries, q)
	if q.HasCursor {
		for i, c := range s.candidates {
			if c.UserID == q.CursorUserID {
				return s.candidates[i+1:], nil
			}
		}
		return nil, nil
	}
	return s.candidates, nil
}

type cacheStub struct {
	payload []byte
	hit     bool
	sets    int
}

func (c *cacheStub) GetFirstPage(_ context.Context, _ int64) ([]byte, bool, error) {
	return c.payload, c.hit, nil
}

func (c *cacheStub) SetFirstPage(_ context.Context, _ int64, payload []byte, _ time.Duration) error {
	c.payload = payload
	c.sets++
	return nil
}

var browseNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func newSeekerStore() *storeStub {
	return &storeStub{
		profile: model.Profile{
			UserID: 1,
			Gender: enums.GenderMale,
		},
	}
}

func candidateProfile(id int64, name, community string) model.Profile {
	return model.Profile{
		UserID:           id,
		DisplayName:      name,
		Gender:           enums.GenderFemale,
		Birthdate:        "08/23/1996",
		Height:           `5'4"`,
		Community:        community,
		ModerationStatus: enums.ModerationStatusApproved,
		CreatedAt:        browseNow.Add(-time.Duration(id) * time.Hour),
	}
}

func TestBrowseFiltersByPreferences(t *testing.T) {
	store := newSeekerStore()
	store.prefs = model.Preferences{
		UserID:    1,
		Community: model.Criterion{Values: []string{"brahmin"}, Strict: true},
	}
	store.candidates = []model.Profile{
		candidateProfile(2, "A", "brahmin"),
		candidateProfile(3, "B", "kayastha"),
		candidateProfile(4, "C", "brahmin"),
	}

	svc := NewService(store, nil, Config{PageSize: 10})
	svc.now = func() time.Time { return browseNow }

	page, err := svc.Browse(context.Background(), 1, "")
	if err != nil {
		t.Fatalf("browse: %v", err)
	}

	if len(page.Cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(page.Cards))
	}
	if page.Cards[0].UserID != 2 || page.Cards[1].UserID != 4 {
		t.Fatalf("unexpected card order: %+v", page.Cards)
	}
	if page.Cards[0].Age != 29 {
		t.Fatalf("expected derived age 29, got %d", page.Cards[0].Age)
	}
	if page.NextCursor != "" {
		t.Fatalf("expected empty cursor on exhausted listing, got %q", page.NextCursor)
	}
}

func TestBrowsePaginatesWithCursor(t *testing.T) {
	store := newSeekerStore()
	store.candidates = []model.Profile{
		candidateProfile(2, "A", "brahmin"),
		candidateProfile(3, "B", "brahmin"),
		candidateProfile(4, "C", "brahmin"),
	}

	svc := NewService(store, nil, Config{PageSize: 2})
	svc.now = func() time.Time { return browseNow }

	first, err := svc.Browse(context.Background(), 1, "")
	if err != nil {
		t.Fatalf("browse first page: %v", err)
	}
	if len(first.Cards) != 2 {
		t.Fatalf("expected 2 cards on first page, got %d", len(first.Cards))
	}
	if first.NextCursor == "" {
		t.Fatalf("expected continuation cursor")
	}

	second, err := svc.Browse(context.Background(), 1, first.NextCursor)
	if err != nil {
		t.Fatalf("browse second page: %v", err)
	}
	if len(second.Cards) != 1 || second.Cards[0].UserID != 4 {
		t.Fatalf("unexpected second page: %+v", second.Cards)
	}
}

func TestBrowseRejectsBadCursor(t *testing.T) {
	svc := NewService(newSeekerStore(), nil, Config{})

	if _, err := svc.Browse(context.Background(), 1, "not-base64!!"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for bad cursor, got %v", err)
	}
}

func TestBrowseFirstPageCache(t *testing.T) {
	store := newSeekerStore()
	store.candidates = []model.Profile{candidateProfile(2, "A", "brahmin")}
	cache := &cacheStub{}

	svc := NewService(store, cache, Config{PageSize: 5})
	svc.now = func() time.Time { return browseNow }

	page, err := svc.Browse(context.Background(), 1, "")
	if err != nil {
		t.Fatalf("browse: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected first page to be cached, sets=%d", cache.sets)
	}

	cached := &cacheStub{payload: mustMarshal(t, page), hit: true}
	svc2 := NewService(&storeStub{}, cached, Config{PageSize: 5})

	fromCache, err := svc2.Browse(context.Background(), 1, "")
	if err != nil {
		t.Fatalf("browse from cache: %v", err)
	}
	if len(fromCache.Cards) != 1 || fromCache.Cards[0].UserID != 2 {
		t.Fatalf("unexpected cached page: %+v", fromCache.Cards)
	}
}

func TestBrowseRequiresProfile(t *testing.T) {
	store := &storeStub{profileErr: pgrepo.ErrProfileNotFound}
	svc := NewService(store, nil, Config{})

	if _, err := svc.Browse(context.Background(), 1, ""); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func mustMarshal(t *testing.T, v any) []byte {
	t.Helper()
	payload, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return payload
}
