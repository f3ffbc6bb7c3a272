package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"easyconvert.app/internal/app"
	"easyconvert.app/internal/conversion"
	"easyconvert.app/internal/logging"
	"easyconvert.app/internal/units"
)

// App holds the CLI's streams, settings and, once a command runs, its catalog and engine.
type App struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	config *viper.Viper

	logger   *slog.Logger
	registry *units.Registry
	engine   *conversion.Engine
}

func NewApp(in io.Reader, out, errOut io.Writer) *App {
	v := viper.New()
	v.SetEnvPrefix("EASYCONVERT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return &App{in: in, out: out, errOut: errOut, config: v}
}

// CreateRootCommand creates and configures the root command
func (a *App) CreateRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "easyconvert <query...>",
		Short: "Convert between units from the command line",
		Long: `easyconvert converts free-text unit queries such as "10f to c", "5 miles in km"
or "60 GB to Mebibytes". Words after the command are joined into a single query.`,
		Example:           "  easyconvert 10f to c\n  easyconvert '2 square km => square m'",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return a.convert(strings.Join(args, " "))
		},
	}
	rootCmd.SetIn(a.in)
	rootCmd.SetOut(a.out)
	rootCmd.SetErr(a.errOut)

	flags := rootCmd.PersistentFlags()
	flags.String("catalog", "", "YAML unit catalog replacing the built-in one")
	flags.String("log-level", "warn", "Set log level (debug|info|warn|error)")
	flags.Bool("plain", false, "Print results without styling")
	for _, name := range []string{"catalog", "log-level", "plain"} {
		_ = a.config.BindPFlag(name, flags.Lookup(name))
	}

	a.addCatalogCommands(rootCmd)
	a.addReplCommand(rootCmd)

	return rootCmd
}

// setup configures logging and loads the catalog before any command runs.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	level, err := logging.ParseLevel(a.config.GetString("log-level"))
	if err != nil {
		return a.fail(err)
	}
	a.logger = logging.NewConsoleLogger(a.errOut, level, "easyconvert")

	reg, err := app.LoadRegistry(a.config.GetString("catalog"))
	if err != nil {
		return a.fail(err)
	}
	a.registry = reg
	a.engine = conversion.NewEngine(reg, a.logger)
	return nil
}

func (a *App) plain() bool {
	return a.config.GetBool("plain")
}

// convert prints one conversion, or explains why the query produced none.
func (a *App) convert(query string) error {
	result, err := a.engine.ParseConversion(query)
	if err != nil {
		if errors.Is(err, conversion.ErrNoResult) {
			return a.fail(fmt.Errorf("couldn't parse %q (%s)", query, conversion.FailureKind(err)))
		}
		return a.fail(err)
	}
	_, err = fmt.Fprintln(a.out, renderResult(result, a.plain()))
	return err
}

// fail reports err on the error stream and returns it so the process exits non-zero.
func (a *App) fail(err error) error {
	fmt.Fprintln(a.errOut, renderError(err, a.plain()))
	return err
}
