package main

import (
	"flag"

	"easyconvert.app/internal/appconf"
)

type config struct {
	appconf.Config
	configPath string
}

// buildConfig reads the optional YAML file named by -config, then applies any flag given
// explicitly on the command line.
func buildConfig(args []string) (config, error) {
	var cfg config
	var port, rateLimit int
	var env, apiKeys, catalog, reportDB string

	fs := flag.NewFlagSet("api", flag.ContinueOnError)
	fs.StringVar(&cfg.configPath, "config", "", "Path to a YAML config file")
	fs.IntVar(&port, "port", 4000, "API server port")
	fs.StringVar(&env, "env", "development", "Environment (development|test|production)")
	fs.StringVar(&apiKeys, "api-keys", "test", "Comma Separated API Keys (test, etc)")
	fs.IntVar(&rateLimit, "rate-limit", 100, "Requests per second allowed per API key or client")
	fs.StringVar(&catalog, "catalog", "", "Path to a YAML unit catalog replacing the built-in one")
	fs.StringVar(&reportDB, "report-db", "easyconvert.db", "SQLite file for problem reports")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	cfg.Config = appconf.Defaults()
	if cfg.configPath != "" {
		loaded, err := appconf.Load(cfg.configPath)
		if err != nil {
			return cfg, err
		}
		cfg.Config = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Port = port
		case "env":
			cfg.Env = appconf.EnvFlagToEnvironment(env)
		case "api-keys":
			cfg.ApiKeys = appconf.ParseAPIKeys(apiKeys)
		case "rate-limit":
			cfg.RateLimit = rateLimit
		case "catalog":
			cfg.CatalogPath = catalog
		case "report-db":
			cfg.ReportDBPath = reportDB
		}
	})

	return cfg, cfg.Validate()
}
