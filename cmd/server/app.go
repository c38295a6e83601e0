package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/ktiva/ktiva-api/internal/config"
	"github.com/ktiva/ktiva-api/internal/generation"
	"github.com/ktiva/ktiva-api/internal/platform/gemini"
	"github.com/ktiva/ktiva-api/internal/platform/openai"
	"github.com/ktiva/ktiva-api/internal/platform/postgres"
	"github.com/ktiva/ktiva-api/internal/platform/superdata"
	"github.com/ktiva/ktiva-api/internal/service"
	"github.com/ktiva/ktiva-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil when the superdata backend is selected.
	db *sql.DB

	textStore     store.TextStore
	learningStore store.LearningStore

	gateway           generation.Gateway
	generationService *service.GenerationService
}

// newApplication creates a new application instance with all
// dependencies initialized: the record stores for the configured
// backend, the completion gateway for the configured provider, and the
// generation service on top.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	if err := app.setupStores(cfg, logger); err != nil {
		return nil, err
	}

	if err := app.setupGateway(ctx, cfg, logger); err != nil {
		return nil, err
	}

	app.generationService = service.NewGenerationService(app.gateway, logger)

	logger.Info("application initialized",
		slog.String("store_backend", cfg.Store.Backend),
		slog.String("llm_provider", cfg.LLM.Provider),
		slog.String("llm_model", cfg.LLM.ModelName))
	return app, nil
}

// setupStores initializes the text and learning stores for the
// configured backend.
func (app *application) setupStores(cfg *config.Config, logger *slog.Logger) error {
	switch cfg.Store.Backend {
	case config.StoreBackendPostgres:
		db, err := setupAppDatabase(cfg, logger)
		if err != nil {
			return fmt.Errorf("failed to set up database: %w", err)
		}
		app.db = db
		app.textStore = postgres.NewPostgresTextStore(db, logger)
		app.learningStore = postgres.NewPostgresLearningStore(db, logger)

	case config.StoreBackendSuperdata:
		client, err := superdata.NewClient(cfg.Superdata, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize superdata client: %w", err)
		}
		app.textStore = superdata.NewSuperdataTextStore(client)
		app.learningStore = superdata.NewSuperdataLearningStore(client)

	default:
		return fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}

	return nil
}

// setupGateway initializes the completion gateway for the configured
// LLM provider.
func (app *application) setupGateway(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	var err error

	switch cfg.LLM.Provider {
	case config.LLMProviderGemini:
		app.gateway, err = gemini.NewGeminiGateway(ctx, logger, cfg.LLM)
	case config.LLMProviderOpenAI:
		app.gateway, err = openai.NewOpenAIGateway(logger, cfg.LLM)
	default:
		return fmt.Errorf("unknown llm provider %q", cfg.LLM.Provider)
	}

	if err != nil {
		return fmt.Errorf("failed to initialize %s gateway: %w", cfg.LLM.Provider, err)
	}
	return nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", slog.String("error", err.Error()))
		}
	}

	app.logger.Info("application shutdown completed")
}
