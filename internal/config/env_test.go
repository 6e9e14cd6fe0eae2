package config

import (
	"testing"
	"time"
)

func TestLoadEnvDefaults(t *testing.T) {
	t.Setenv("API_URL", "")
	t.Setenv("CURRENCY_SYMBOL", "")
	t.Setenv("SESSION_TTL", "")

	env := LoadEnv()
	if env.AppAddr != ":8080" {
		t.Fatalf("unexpected addr %q", env.AppAddr)
	}
	if env.CurrencySymbol != "$" {
		t.Fatalf("expected $ currency, got %q", env.CurrencySymbol)
	}
	if env.SessionTTL != 30*time.Minute {
		t.Fatalf("expected 30m session ttl, got %s", env.SessionTTL)
	}
	if env.RedisAddr != "" {
		t.Fatalf("redis should be off by default")
	}
}

func TestLoadEnvFromEnvironment(t *testing.T) {
	t.Setenv("API_URL", "https://booking.example.com/")
	t.Setenv("CURRENCY_SYMBOL", "€")
	t.Setenv("SESSION_TTL", "45m")
	t.Setenv("RATE_LIMIT_PER_MIN", "120")
	t.Setenv("ENV", "production")

	env := LoadEnv()
	if got := env.APIBase(); got != "https://booking.example.com/api" {
		t.Fatalf("unexpected api base %q", got)
	}
	if env.CurrencySymbol != "€" || env.RateLimitPerMin != 120 {
		t.Fatalf("unexpected env %+v", env)
	}
	if env.SessionTTL != 45*time.Minute {
		t.Fatalf("expected 45m, got %s", env.SessionTTL)
	}
	if !env.IsProduction() {
		t.Fatalf("expected production")
	}
}

func TestAllowedOrigins(t *testing.T) {
	env := Env{CORSAllowedOrigins: " https://a.example , ,https://b.example"}
	got := env.AllowedOrigins()
	if len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Fatalf("unexpected origins %v", got)
	}
	if len(Env{}.AllowedOrigins()) == 0 {
		t.Fatalf("expected local dev origins by default")
	}
}

func TestConnectRedisDisabledWithoutAddr(t *testing.T) {
	client, err := ConnectRedis(Env{})
	if err != nil || client != nil {
		t.Fatalf("expected no client and no error, got %v %v", client, err)
	}
	if RedisEnabled() {
		t.Fatalf("redis should not be enabled")
	}
	if err := PingRedis(t.Context()); err != nil {
		t.Fatalf("ping without client should be nil, got %v", err)
	}
}
