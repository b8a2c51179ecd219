package main

import (
	"io"
	"log/slog"
	"testing"
	"time"

	govalidator "github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"

	"github.com/tryraisins/Capstone-Main/internal/config"
	"github.com/tryraisins/Capstone-Main/internal/storage/postgres"
)

func newTestConfig() *config.Config {
	return &config.Config{
		Debug: true,
		Limiter: config.Limiter{
			Enabled: false,
		},
		Auth: config.Auth{
			Secret:   "test-secret",
			TokenTTL: time.Hour,
		},
	}
}

// newTestApplication builds an application without a database. Handlers
// that reach into services need newServerApplication instead.
func newTestApplication(t testing.TB) *Application {
	t.Helper()
	cfg := newTestConfig()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	formDecoder := schema.NewDecoder()
	formDecoder.IgnoreUnknownKeys(true)
	return &Application{
		cfg:         cfg,
		log:         log,
		validator:   govalidator.New(govalidator.WithRequiredStructEnabled()),
		formDecoder: formDecoder,
		Http:        &Http{log: log, cfg: cfg},
	}
}

// newServerApplication wires the full stack against the given storage.
func newServerApplication(t testing.TB, storage *postgres.Storage) *Application {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewApplication(newTestConfig(), log, storage)
}
