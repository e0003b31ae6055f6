package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	goredis "github.com/redis/go-redis/v9"

	pgrepo "github.com/laksanil/vivaahready/internal/repo/postgres"
	redrepo "github.com/laksanil/vivaahready/internal/repo/redis"
	authsvc "github.com/laksanil/vivaahready/internal/services/auth"
	interestsvc "github.com/laksanil/vivaahready/internal/services/interests"
	ratesvc "github.com/laksanil/vivaahready/internal/services/rate"
)

func TestInterestHandlerReturnsRateLimitedOnBurst(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	redisClient := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer func() { _ = redisClient.Close() }()

	rateRepo := redrepo.NewRateRepo(redisClient)
	rateLimiter := ratesvc.NewLimiter(rateRepo, 2, 30)

	svc := interestsvc.NewService(interestsvc.Dependencies{
		Interests: pgrepo.NewInterestRepo(nil),
		Declined:  pgrepo.NewDeclinedRepo(nil),
		Profiles:  pgrepo.NewProfileRepo(nil),
		Limiter:   rateLimiter,
	})

	h := NewInterestHandler(svc, 0)

	for i := 0; i < 2; i++ {
		_ = performExpressRequest(t, h, 1000+int64(i)).Code
	}

	resp := performExpressRequest(t, h, 1002)
	if resp.Code != http.StatusTooManyRequests {
		t.Fatalf("unexpected status on third send: got %d want %d", resp.Code, http.StatusTooManyRequests)
	}

	var payload struct {
		Code          string `json:"code"`
		Message       string `json:"message"`
		RetryAfterSec int64  `json:"retry_after_sec"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if payload.Code != "RATE_LIMITED" {
		t.Fatalf("unexpected error code: got %q want %q", payload.Code, "RATE_LIMITED")
	}
	if payload.RetryAfterSec <= 0 {
		t.Fatalf("expected positive retry_after_sec, got %d", payload.RetryAfterSec)
	}
}

func TestInterestHandlerRejectsUnknownAction(t *testing.T) {
	svc := interestsvc.NewService(interestsvc.Dependencies{
		Interests: pgrepo.NewInterestRepo(nil),
		Declined:  pgrepo.NewDeclinedRepo(nil),
		Profiles:  pgrepo.NewProfileRepo(nil),
	})
	h := NewInterestHandler(svc, 0)

	body, err := json.Marshal(map[string]any{"action": "maybe"})
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/interests/5/respond", bytes.NewReader(body))
	ctx := authsvc.WithIdentity(context.Background(), authsvc.Identity{
		UserID:  101,
		ActorID: 101,
		Role:    authsvc.RoleUser,
	})
	req = req.WithContext(withURLParam(ctx, "id", "5"))
	rec := httptest.NewRecorder()
	h.Respond(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: got %d want %d", rec.Code, http.StatusBadRequest)
	}
}

func withURLParam(ctx context.Context, key, value string) context.Context {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return context.WithValue(ctx, chi.RouteCtxKey, routeCtx)
}

func performExpressRequest(t *testing.T, h *InterestHandler, receiverID int64) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(map[string]any{
		"receiver_id": receiverID,
	})
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/interests", bytes.NewReader(body))
	req = req.WithContext(authsvc.WithIdentity(context.Background(), authsvc.Identity{
		UserID:  101,
		ActorID: 101,
		Role:    authsvc.RoleUser,
	}))
	rec := httptest.NewRecorder()
	h.Express(rec, req)
	return rec
}
