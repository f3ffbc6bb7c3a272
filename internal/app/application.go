package app

import (
	"log/slog"

	"easyconvert.app/internal/appconf"
	"easyconvert.app/internal/conversion"
	"easyconvert.app/internal/units"
	"easyconvert.app/reportdb"
)

// Application holds the dependencies for our HTTP handlers, helpers, and middleware.
type Application struct {
	Config   appconf.Config
	Logger   *slog.Logger
	Registry *units.Registry
	Engine   *conversion.Engine
	Reports  *reportdb.Client
}

// New wires an Application around a unit catalog. reports may be nil, in which case problem
// reports are only logged.
func New(cfg appconf.Config, logger *slog.Logger, reg *units.Registry, reports *reportdb.Client) *Application {
	return &Application{
		Config:   cfg,
		Logger:   logger,
		Registry: reg,
		Engine:   conversion.NewEngine(reg, logger.With(slog.String("component", "conversion"))),
		Reports:  reports,
	}
}

// LoadRegistry returns the catalog named by path, or the built-in catalog when path is empty.
func LoadRegistry(path string) (*units.Registry, error) {
	if path == "" {
		return units.NewDefaultRegistry(), nil
	}
	return units.LoadCatalogFile(path)
}
