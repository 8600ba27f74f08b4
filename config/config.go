package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	CatalogSourceBundled  = "bundled"
	CatalogSourceDatabase = "database"
)

type Config struct {
	Server   ServerConfig
	Catalog  CatalogConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Media    MediaConfig
	Reveal   RevealConfig
}

type ServerConfig struct {
	Port               string   `envconfig:"PORT" default:"8080"`
	GinMode            string   `envconfig:"GIN_MODE" default:"debug"`
	Environment        string   `envconfig:"APP_ENV" default:"development"`
	AllowedOrigins     []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	RateLimitPerMinute int      `envconfig:"RATE_LIMIT_PER_MINUTE" default:"120"`
}

type CatalogConfig struct {
	Source          string        `envconfig:"CATALOG_SOURCE" default:"bundled"`
	RemoteURL       string        `envconfig:"CATALOG_REMOTE_URL" default:"https://young-unit-f3c4.rajlm10bar.workers.dev/allProducts"`
	RemoteTimeout   time.Duration `envconfig:"CATALOG_REMOTE_TIMEOUT" default:"10s"`
	RefreshInterval time.Duration `envconfig:"CATALOG_REFRESH_INTERVAL" default:"15m"`
	CacheTTL        time.Duration `envconfig:"CATALOG_CACHE_TTL" default:"10m"`
}

type DatabaseConfig struct {
	URL string `envconfig:"DB_URL"`
}

type RedisConfig struct {
	URL          string        `envconfig:"REDIS_URL"`
	DialTimeout  time.Duration `envconfig:"REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"REDIS_READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"REDIS_WRITE_TIMEOUT" default:"3s"`
}

type MediaConfig struct {
	CloudinaryURL  string `envconfig:"CLOUDINARY_URL"`
	CloudName      string `envconfig:"CLOUDINARY_CLOUD_NAME"`
	Transformation string `envconfig:"CLOUDINARY_TRANSFORMATION" default:"c_fill,w_600,h_400,q_auto,f_auto"`
}

type RevealConfig struct {
	Threshold    float64 `envconfig:"REVEAL_THRESHOLD" default:"0.1"`
	RootMarginPx float64 `envconfig:"REVEAL_ROOT_MARGIN_PX" default:"50"`
}

var AppConfig *Config

// Load reads the environment into AppConfig
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}

	switch cfg.Catalog.Source {
	case CatalogSourceBundled:
	case CatalogSourceDatabase:
		if cfg.Database.URL == "" {
			return nil, fmt.Errorf("DB_URL is required when CATALOG_SOURCE=%s", CatalogSourceDatabase)
		}
	default:
		return nil, fmt.Errorf("unknown CATALOG_SOURCE %q", cfg.Catalog.Source)
	}

	if cfg.Catalog.RefreshInterval <= 0 {
		return nil, fmt.Errorf("CATALOG_REFRESH_INTERVAL must be positive, got %v", cfg.Catalog.RefreshInterval)
	}

	if cfg.Reveal.Threshold < 0 || cfg.Reveal.Threshold > 1 {
		return nil, fmt.Errorf("REVEAL_THRESHOLD must be within [0, 1], got %v", cfg.Reveal.Threshold)
	}

	AppConfig = &cfg
	return &cfg, nil
}
