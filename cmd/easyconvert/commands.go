package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"easyconvert.app/internal/units"
	"easyconvert.app/internal/utils"
)

// addCatalogCommands adds the commands that inspect the unit catalog.
func (a *App) addCatalogCommands(rootCmd *cobra.Command) {
	var family string
	var metric bool

	unitsCmd := &cobra.Command{
		Use:   "units",
		Short: "List the units in the catalog",
		Long: `List every unit with its family, metric flag and aliases, in registration order.
Use --type and --metric to narrow the list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := utils.ValidateFamily(family, a.registry.Families()); err != nil {
				return a.fail(fmt.Errorf("%w: %q", err, family))
			}

			filter := units.Filter{Type: family}
			if cmd.Flags().Changed("metric") {
				filter.Metric = &metric
			}
			_, err := fmt.Fprintln(a.out, renderUnits(a.registry.ListUnits(filter), a.plain()))
			return err
		},
	}
	unitsCmd.Flags().StringVar(&family, "type", "", "Only list units of this family (length, mass, ...)")
	unitsCmd.Flags().BoolVar(&metric, "metric", false, "Only list metric (or, with --metric=false, non-metric) units")

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the catalog's aliases",
		Long: `Report aliases that name more than one unit of the same family, including prefixed
forms, and list aliases shared between families. Exits non-zero when a conflict is found.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.check()
		},
	}

	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the catalog as YAML",
		Long: `Print the active unit catalog as YAML. The output can be edited and passed back
with --catalog.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return units.WriteCatalog(a.out, a.registry)
		},
	}

	rootCmd.AddCommand(unitsCmd, checkCmd, catalogCmd)
}

func (a *App) check() error {
	conflicts := a.registry.Conflicts()
	overlaps := a.registry.Overlaps()

	for _, c := range conflicts {
		fmt.Fprintln(a.out, "conflict:", c)
	}
	for _, o := range overlaps {
		fmt.Fprintf(a.out, "overlap: alias %q is %s (%s) and %s (%s)\n",
			o.Alias, o.Units[0], o.Types[0], o.Units[1], o.Types[1])
	}
	fmt.Fprintf(a.out, "%d units, %d prefixes, %d conflicts, %d cross-family overlaps\n",
		len(a.registry.Units()), len(a.registry.Prefixes()), len(conflicts), len(overlaps))

	if len(conflicts) > 0 {
		return a.fail(fmt.Errorf("%w: %d alias conflicts", units.ErrInvalidCatalog, len(conflicts)))
	}
	return nil
}
