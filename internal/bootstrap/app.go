package bootstrap

import (
	"context"
	"errors"
	"log/slog"

	"hirs/internal/bootstrap/config"
	"hirs/internal/bootstrap/logging"
	"hirs/internal/domain/hazard"
	"hirs/internal/errs"
)

type App struct {
	Config   config.Config
	Taxonomy hazard.Taxonomy
}

func New(ctx context.Context, configFile string) (*App, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}

	logCtx := logging.WithAttrs(ctx, slog.String("component", "bootstrap.app"))
	logging.Info(logCtx, "loading application config", slog.String("config_file", configFile))

	cfg, err := config.Load(logCtx, configFile)
	if err != nil {
		return nil, errs.Wrap(err, "load config")
	}

	tax, err := LoadTaxonomy(cfg.Taxonomy.File)
	if err != nil {
		return nil, errs.Wrap(err, "load taxonomy")
	}

	logging.Info(
		logCtx,
		"application bootstrap completed",
		slog.Int("taxonomy_categories", len(tax.Categories)),
	)

	return &App{
		Config:   cfg,
		Taxonomy: tax,
	}, nil
}
