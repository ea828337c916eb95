package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/maxviazov/wrestling-analytics/internal/source"
)

// Load reads path (YAML) on top of built-in defaults, then APP_* environment overrides,
// e.g. APP_SOURCES_DIR or APP_SERVER_PORT. A .env file in the working directory is
// loaded first when present. An empty path skips the file.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.Classifier = config.Classifier.WithDefaults()
	if config.Logger.ServiceName == "" {
		config.Logger.ServiceName = config.App.Name
	}
	if config.Logger.ServiceVersion == "" {
		config.Logger.ServiceVersion = config.App.Version
	}

	if err := validator.New().Struct(&config); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}
	return &config, nil
}

// setDefaults registers every key so AutomaticEnv can override keys absent from the file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "wrestling-analytics")
	v.SetDefault("app.version", "0.1.0")
	v.SetDefault("app.env", "prod")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.cors_origins", []string{"*"})

	v.SetDefault("logger.level", "")
	v.SetDefault("logger.format", "")
	v.SetDefault("logger.output_target", "")
	v.SetDefault("logger.env", "")

	v.SetDefault("sources.kind", SourceFile)
	v.SetDefault("sources.dir", "data")
	v.SetDefault("sources.base_url", "")
	v.SetDefault("sources.manifest", "")
	v.SetDefault("sources.pattern", source.DefaultPattern)
	v.SetDefault("sources.files", []string{})
	v.SetDefault("sources.fetch_timeout", "10s")
	v.SetDefault("sources.concurrency", 4)

	v.SetDefault("classifier.vs_policy", "")

	v.SetDefault("corpus.refresh_interval", "0s")
	v.SetDefault("corpus.require_on_start", false)
}
