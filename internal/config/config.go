package config

import (
	"time"

	"github.com/maxviazov/wrestling-analytics/internal/logger"
	"github.com/maxviazov/wrestling-analytics/internal/parser"
)

// Source kinds.
const (
	SourceFile = "file"
	SourceHTTP = "http"
)

type Config struct {
	App        AppConfig           `mapstructure:"app"`
	Server     ServerConfig        `mapstructure:"server"`
	Logger     logger.LoggerConfig `mapstructure:"logger" validate:"-"` // validated by logger.New after its own defaults
	Sources    SourcesConfig       `mapstructure:"sources"`
	Classifier parser.Classifier   `mapstructure:"classifier"`
	Corpus     CorpusConfig        `mapstructure:"corpus"`
}

type AppConfig struct {
	Name    string `mapstructure:"name" validate:"required"`
	Version string `mapstructure:"version"`
	Env     string `mapstructure:"env" validate:"oneof=dev test staging prod"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
	CORSOrigins     []string      `mapstructure:"cors_origins"`
}

// SourcesConfig tells the loader where per-wrestler files live.
// An empty Files list means "discover": glob Dir with Pattern, or read Manifest over HTTP.
type SourcesConfig struct {
	Kind         string        `mapstructure:"kind" validate:"oneof=file http"`
	Dir          string        `mapstructure:"dir" validate:"required_if=Kind file"`
	BaseURL      string        `mapstructure:"base_url" validate:"required_if=Kind http,omitempty,url"`
	Manifest     string        `mapstructure:"manifest"`
	Pattern      string        `mapstructure:"pattern"`
	Files        []string      `mapstructure:"files"`
	FetchTimeout time.Duration `mapstructure:"fetch_timeout" validate:"gt=0"`
	Concurrency  int           `mapstructure:"concurrency" validate:"min=1,max=64"`
}

type CorpusConfig struct {
	// RefreshInterval reloads all sources periodically; zero disables it.
	RefreshInterval time.Duration `mapstructure:"refresh_interval" validate:"gte=0"`
	// RequireOnStart fails startup when the first load produces no records.
	RequireOnStart bool `mapstructure:"require_on_start"`
}
