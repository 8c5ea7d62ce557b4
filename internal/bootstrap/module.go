package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"hirs/internal/bootstrap/config"
	"hirs/internal/bootstrap/logging"
	"hirs/internal/domain/hazard"
	"hirs/internal/infrastructure/auditlog"
	"hirs/internal/infrastructure/memstore"
	"hirs/internal/ports"
	usecasehazard "hirs/internal/usecase/hazard"
)

var Module = fx.Options(
	fx.Provide(provideConfig),
	fx.Provide(provideTaxonomy),
	fx.Provide(provideApp),
	fx.Provide(provideClock),
	fx.Provide(
		fx.Annotate(
			memstore.New,
			fx.As(new(ports.HazardStore)),
		),
	),
	fx.Provide(
		fx.Annotate(
			auditlog.New,
			fx.As(new(ports.AuditLog)),
		),
	),
	fx.Provide(usecasehazard.NewService),
)

type configParams struct {
	fx.In

	Ctx        context.Context
	ConfigFile string `name:"configFile"`
}

func provideConfig(p configParams) (config.Config, error) {
	ctx := logging.WithAttrs(p.Ctx, slog.String("component", "bootstrap.fx"))
	return config.Load(ctx, p.ConfigFile)
}

func provideTaxonomy(cfg config.Config) (hazard.Taxonomy, error) {
	return LoadTaxonomy(cfg.Taxonomy.File)
}

func provideClock() ports.Clock {
	return ports.ClockFunc(time.Now)
}

func provideApp(cfg config.Config, tax hazard.Taxonomy) *App {
	return &App{
		Config:   cfg,
		Taxonomy: tax,
	}
}
