package config

// Store backend identifiers.
const (
	StoreBackendPostgres  = "postgres"
	StoreBackendSuperdata = "superdata"
)

// LLM provider identifiers.
const (
	LLMProviderGemini = "gemini"
	LLMProviderOpenAI = "openai"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"    validate:"required"`
	Store     StoreConfig     `mapstructure:"store"     validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Superdata SuperdataConfig `mapstructure:"superdata"`
	LLM       LLMConfig       `mapstructure:"llm"       validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// StoreConfig selects which record-store backend the process uses.
type StoreConfig struct {
	Backend string `mapstructure:"backend" validate:"required,oneof=postgres superdata"`
}

// DatabaseConfig contains the relational backend settings. Required
// when store.backend is postgres.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,url"`
}

// SuperdataConfig contains the key-value HTTP backend settings.
// Required when store.backend is superdata.
type SuperdataConfig struct {
	BaseURL    string `mapstructure:"base_url"    validate:"omitempty,url"`
	APIKey     string `mapstructure:"api_key"`
	DatabaseID string `mapstructure:"database_id"`
}

// LLMConfig contains the completion-capability settings.
type LLMConfig struct {
	Provider  string `mapstructure:"provider"   validate:"required,oneof=gemini openai"`
	APIKey    string `mapstructure:"api_key"`
	ModelName string `mapstructure:"model_name" validate:"required"`
}
