package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadUsesDefaultsAndYAMLOverrides(t *testing.T) {
	clearConfigEnv(t)

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	yaml := `
http:
  addr: ":9090"
matching:
  page_size: 40
  cache_ttl: 5m
rate:
  interests_per_day: 50
notify:
  enable_email: true
  email_endpoint: https://mailer.internal/send
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.HTTP.Addr != ":9090" {
		t.Fatalf("unexpected http addr: %s", cfg.HTTP.Addr)
	}
	if cfg.Matching.PageSize != 40 {
		t.Fatalf("unexpected matching page size: %d", cfg.Matching.PageSize)
	}
	if cfg.Matching.CacheTTL != 5*time.Minute {
		t.Fatalf("unexpected matching cache ttl: %s", cfg.Matching.CacheTTL)
	}
	if cfg.Rate.InterestsPerDay != 50 {
		t.Fatalf("unexpected interests/day: %d", cfg.Rate.InterestsPerDay)
	}
	if !cfg.Notify.EnableEmail {
		t.Fatalf("notify.enable_email override not applied")
	}
	if cfg.Notify.EmailEndpoint != "https://mailer.internal/send" {
		t.Fatalf("unexpected email endpoint: %s", cfg.Notify.EmailEndpoint)
	}

	if cfg.Rate.InterestsPerMinute != 5 {
		t.Fatalf("interests_per_minute default should stay 5, got %d", cfg.Rate.InterestsPerMinute)
	}
	if cfg.Matching.ListLimit != 100 {
		t.Fatalf("matching.list_limit default should stay 100, got %d", cfg.Matching.ListLimit)
	}
	if cfg.Auth.DevTokens {
		t.Fatalf("auth.dev_tokens must default to false")
	}
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load config with missing file: %v", err)
	}

	if cfg.HTTP.Addr != ":8080" {
		t.Fatalf("unexpected default http addr: %s", cfg.HTTP.Addr)
	}
	if cfg.Matching.PageSize != 20 {
		t.Fatalf("unexpected default page size: %d", cfg.Matching.PageSize)
	}
	if cfg.Rate.InterestsPerMinute != 5 || cfg.Rate.InterestsPerDay != 30 {
		t.Fatalf("unexpected rate defaults: %d/min %d/day", cfg.Rate.InterestsPerMinute, cfg.Rate.InterestsPerDay)
	}
	if cfg.Auth.JWTAccessTTL != 15*time.Minute {
		t.Fatalf("unexpected jwt access ttl default: %s", cfg.Auth.JWTAccessTTL)
	}
	if cfg.Notify.DeliveryTimeout != 10*time.Second {
		t.Fatalf("unexpected notify delivery timeout default: %s", cfg.Notify.DeliveryTimeout)
	}
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("HTTP_ADDR", ":7070")
	t.Setenv("RATE_INTERESTS_PER_DAY", "12")
	t.Setenv("MATCHING_CACHE_TTL", "90s")
	t.Setenv("AUTH_DEV_TOKENS", "true")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.HTTP.Addr != ":7070" {
		t.Fatalf("env override for http addr not applied: %s", cfg.HTTP.Addr)
	}
	if cfg.Rate.InterestsPerDay != 12 {
		t.Fatalf("env override for interests/day not applied: %d", cfg.Rate.InterestsPerDay)
	}
	if cfg.Matching.CacheTTL != 90*time.Second {
		t.Fatalf("env override for cache ttl not applied: %s", cfg.Matching.CacheTTL)
	}
	if !cfg.Auth.DevTokens {
		t.Fatalf("env override for dev tokens not applied")
	}
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV",
		"HTTP_ADDR",
		"HTTP_READ_TIMEOUT",
		"HTTP_WRITE_TIMEOUT",
		"HTTP_IDLE_TIMEOUT",
		"LOG_LEVEL",
		"POSTGRES_DSN",
		"POSTGRES_MAX_CONNS",
		"REDIS_ADDR",
		"REDIS_PASSWORD",
		"REDIS_DB",
		"JWT_SECRET",
		"JWT_ACCESS_TTL",
		"AUTH_DEV_TOKENS",
		"MATCHING_PAGE_SIZE",
		"MATCHING_CACHE_TTL",
		"MATCHING_LIST_LIMIT",
		"RATE_INTERESTS_PER_MINUTE",
		"RATE_INTERESTS_PER_DAY",
		"NOTIFY_ENABLE_EMAIL",
		"NOTIFY_ENABLE_SMS",
		"NOTIFY_EMAIL_ENDPOINT",
		"NOTIFY_EMAIL_API_KEY",
		"NOTIFY_SMS_ENDPOINT",
		"NOTIFY_SMS_API_KEY",
		"NOTIFY_DELIVERY_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}
