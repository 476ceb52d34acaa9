package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverFirestore = "firestore"
	DriverMongo     = "mongo"
	DriverSQLite    = "sqlite"
)

// Config keeps runtime settings for the API server.
type Config struct {
	Port    string
	GinMode string

	StoreDriver        string
	FirebaseCredential string // service account file for Firestore
	MongoURI           string
	MongoDatabase      string
	SQLitePath         string

	JWTSecret        string
	SessionMaxAge    time.Duration
	SessionUpdateAge time.Duration

	SiteURL            string
	UserCacheTTL       time.Duration
	CachePruneInterval time.Duration

	RecaptchaSiteKey    string
	RecaptchaProjectID  string
	RecaptchaCredential string

	CheckEmailMX bool
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("STORE_DRIVER", DriverFirestore)
	v.SetDefault("MONGODB_DATABASE", "planner")
	v.SetDefault("SQLITE_PATH", "planner.db")
	v.SetDefault("SESSION_MAX_AGE", "720h")
	v.SetDefault("SESSION_UPDATE_AGE", "24h")
	v.SetDefault("USER_CACHE_TTL", "30s")
	v.SetDefault("CACHE_PRUNE_INTERVAL", "1m")
	v.SetDefault("AUTH_CHECK_MX", false)
	return v
}

// Load reads .env (when present) and the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found or failed to load")
	}
	return fromViper(newViper())
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Port:                strings.TrimSpace(v.GetString("PORT")),
		GinMode:             v.GetString("GIN_MODE"),
		StoreDriver:         strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER"))),
		FirebaseCredential:  v.GetString("GOOGLE_APPLICATION_CREDENTIALS_1"),
		MongoURI:            v.GetString("MONGODB_URI"),
		MongoDatabase:       v.GetString("MONGODB_DATABASE"),
		SQLitePath:          v.GetString("SQLITE_PATH"),
		JWTSecret:           v.GetString("JWT_SECRET_KEY"),
		SessionMaxAge:       v.GetDuration("SESSION_MAX_AGE"),
		SessionUpdateAge:    v.GetDuration("SESSION_UPDATE_AGE"),
		SiteURL:             strings.TrimSpace(v.GetString("SITE_URL")),
		UserCacheTTL:        v.GetDuration("USER_CACHE_TTL"),
		CachePruneInterval:  v.GetDuration("CACHE_PRUNE_INTERVAL"),
		RecaptchaSiteKey:    v.GetString("RECAPTCHA_SITE_KEY"),
		RecaptchaProjectID:  v.GetString("GOOGLE_CLOUD_PROJECT_ID"),
		RecaptchaCredential: v.GetString("GOOGLE_APPLICATION_CREDENTIALS_2"),
		CheckEmailMX:        v.GetBool("AUTH_CHECK_MX"),
	}

	if cfg.JWTSecret == "" {
		return cfg, fmt.Errorf("JWT_SECRET_KEY is required")
	}
	switch cfg.StoreDriver {
	case DriverFirestore, DriverMongo, DriverSQLite:
	default:
		return cfg, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
	if cfg.SiteURL != "" && !strings.HasPrefix(cfg.SiteURL, "http://") && !strings.HasPrefix(cfg.SiteURL, "https://") {
		return cfg, fmt.Errorf("SITE_URL must start with http:// or https://")
	}
	if cfg.SessionMaxAge <= 0 {
		return cfg, fmt.Errorf("SESSION_MAX_AGE must be positive")
	}
	return cfg, nil
}

// CaptchaEnabled reports whether registration requires a reCAPTCHA token.
func (c Config) CaptchaEnabled() bool {
	return c.RecaptchaSiteKey != ""
}
