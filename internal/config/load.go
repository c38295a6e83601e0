package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from an optional config.yaml in the working
// directory and from environment variables with the KTIVA_ prefix
// (e.g. KTIVA_SERVER_PORT, KTIVA_LLM_API_KEY). Environment variables
// take precedence over file values. Returns a populated, validated
// Config or an error describing what is missing.
//
// Credentials for the selected store backend and LLM provider are
// checked here: a missing API key is a startup failure, never a runtime
// surprise on first use.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("store.backend", StoreBackendPostgres)
	v.SetDefault("llm.provider", LLMProviderGemini)
	v.SetDefault("superdata.base_url", "https://api.superdata.com/v1")

	// Every key needs a registered default, even an empty one: viper only
	// resolves automatic env variables during Unmarshal for keys it
	// already knows about.
	v.SetDefault("database.url", "")
	v.SetDefault("superdata.api_key", "")
	v.SetDefault("superdata.database_id", "")
	v.SetDefault("llm.api_key", "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("KTIVA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; env vars may carry everything.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// The model default depends on which provider was selected, so it is
	// registered only once env and file values are readable.
	v.SetDefault("llm.model_name", defaultModelName(v.GetString("llm.provider")))

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := validateSelections(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validateSelections enforces the conditional requirements that struct
// tags cannot express: the selected backend and provider must carry
// their connection settings.
func validateSelections(cfg *Config) error {
	switch cfg.Store.Backend {
	case StoreBackendPostgres:
		if cfg.Database.URL == "" {
			return errors.New("store backend postgres requires database.url")
		}
	case StoreBackendSuperdata:
		if cfg.Superdata.BaseURL == "" {
			return errors.New("store backend superdata requires superdata.base_url")
		}
		if cfg.Superdata.APIKey == "" {
			return errors.New("store backend superdata requires superdata.api_key")
		}
		if cfg.Superdata.DatabaseID == "" {
			return errors.New("store backend superdata requires superdata.database_id")
		}
	}

	if cfg.LLM.APIKey == "" {
		return fmt.Errorf("llm provider %s requires llm.api_key", cfg.LLM.Provider)
	}

	return nil
}

// defaultModelName returns the model used when none is configured.
func defaultModelName(provider string) string {
	switch provider {
	case LLMProviderOpenAI:
		return "gpt-4o"
	default:
		return "gemini-2.0-flash"
	}
}
