package main

import (
	"log/slog"

	govalidator "github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"

	"github.com/tryraisins/Capstone-Main/internal/config"
	"github.com/tryraisins/Capstone-Main/internal/services"
	"github.com/tryraisins/Capstone-Main/internal/storage/postgres"
)

type Application struct {
	cfg         *config.Config
	log         *slog.Logger
	Http        *Http
	Services    *services.Services
	validator   *govalidator.Validate
	formDecoder *schema.Decoder
}

func NewApplication(cfg *config.Config, log *slog.Logger, storage *postgres.Storage) *Application {
	formDecoder := schema.NewDecoder()
	formDecoder.IgnoreUnknownKeys(true)
	return &Application{
		cfg:         cfg,
		log:         log,
		validator:   govalidator.New(govalidator.WithRequiredStructEnabled()),
		formDecoder: formDecoder,
		Services:    services.New(log, cfg, storage),
		Http: &Http{
			log: log,
			cfg: cfg,
		},
	}
}
