package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Env struct {
	AppAddr  string `mapstructure:"APP_ADDR"`
	GinMode  string `mapstructure:"GIN_MODE"`
	AppEnv   string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// APIURL is the booking service origin; the client appends /api.
	APIURL         string `mapstructure:"API_URL"`
	CurrencySymbol string `mapstructure:"CURRENCY_SYMBOL"`

	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`
	RateLimitPerMin    int    `mapstructure:"RATE_LIMIT_PER_MIN"`

	RedisAddr     string        `mapstructure:"REDIS_ADDR"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int           `mapstructure:"REDIS_DB"`
	SessionTTL    time.Duration `mapstructure:"SESSION_TTL"`
}

func LoadEnv() Env {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	v.SetDefault("APP_ADDR", ":8080")
	v.SetDefault("GIN_MODE", "")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("API_URL", "http://localhost:5000")
	v.SetDefault("CURRENCY_SYMBOL", "$")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("RATE_LIMIT_PER_MIN", 60)
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SESSION_TTL", "30m")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("warning: config file ignored: %v", err)
		}
	}

	var env Env
	if err := v.Unmarshal(&env); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return env.normalized()
}

func (e Env) normalized() Env {
	e.AppAddr = strings.TrimSpace(e.AppAddr)
	if e.AppAddr == "" {
		e.AppAddr = ":8080"
	}
	e.GinMode = strings.TrimSpace(e.GinMode)
	e.APIURL = strings.TrimRight(strings.TrimSpace(e.APIURL), "/")
	if strings.TrimSpace(e.CurrencySymbol) == "" {
		e.CurrencySymbol = "$"
	}
	if e.RateLimitPerMin <= 0 {
		e.RateLimitPerMin = 60
	}
	if e.SessionTTL <= 0 {
		e.SessionTTL = 30 * time.Minute
	}
	return e
}

// IsProduction reports whether ENV is set to production.
func (e Env) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(e.AppEnv), "production")
}

// APIBase is the prefix every booking service path is appended to.
func (e Env) APIBase() string {
	return e.APIURL + "/api"
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS, falling back to the local dev
// servers when unset.
func (e Env) AllowedOrigins() []string {
	raw := strings.TrimSpace(e.CORSAllowedOrigins)
	if raw == "" {
		return []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}
	}
	out := []string{}
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}
