package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"spacexdash/adapters/excel"
	"spacexdash/domain/launch"
	"spacexdash/internal/profiling"
	"spacexdash/internal/testkit"

	"github.com/spf13/cobra"
)

func main() {
	var dataFile string

	rootCmd := &cobra.Command{
		Use:   "launch-cli",
		Short: "Query SpaceX launch records from the command line",
	}
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "spacex_launch_dash.csv", "Launch data file (.csv or .xlsx)")

	rootCmd.AddCommand(
		newSitesCmd(&dataFile),
		newSummarizeCmd(&dataFile),
		newScatterCmd(&dataFile),
		newExportCmd(&dataFile),
		newGenerateCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// selectionFlags are the filter flags shared by the query commands.
type selectionFlags struct {
	site       string
	payloadMin float64
	payloadMax float64
	noPayload  bool
}

func (f *selectionFlags) register(cmd *cobra.Command, withPayload bool) {
	cmd.Flags().StringVar(&f.site, "site", launch.AllSitesValue, "Launch site, or ALL")
	f.noPayload = !withPayload
	if withPayload {
		cmd.Flags().Float64Var(&f.payloadMin, "payload-min", -1, "Lower payload bound in kg (default: dataset minimum)")
		cmd.Flags().Float64Var(&f.payloadMax, "payload-max", -1, "Upper payload bound in kg (default: dataset maximum)")
	}
}

func (f *selectionFlags) selection(ds *launch.Dataset) launch.Selection {
	site := launch.ParseSiteChoice(f.site)
	if f.noPayload {
		return launch.SiteOnly(site)
	}
	lo, hi, _ := ds.PayloadBounds()
	if f.payloadMin >= 0 {
		lo = f.payloadMin
	}
	if f.payloadMax >= 0 {
		hi = f.payloadMax
	}
	return launch.SiteAndPayload(site, lo, hi)
}

func loadDataset(ctx context.Context, path string) (*launch.Dataset, error) {
	snap, err := excel.NewLaunchLoader(path).ReadLaunches(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Data, nil
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newSitesCmd(dataFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "sites",
		Short: "List launch sites and the payload range of the dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(cmd.Context(), *dataFile)
			if err != nil {
				return err
			}
			lo, hi, _ := ds.PayloadBounds()
			return printJSON(cmd, map[string]interface{}{
				"sites":       ds.Sites(),
				"records":     ds.Len(),
				"payload_min": lo,
				"payload_max": hi,
			})
		},
	}
}

func newSummarizeCmd(dataFile *string) *cobra.Command {
	var flags selectionFlags
	var withStats bool

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Count successful and failed launches for a site",
		Long: `Count launches per outcome class (1=success, 0=failure) for a site.

Without payload flags this matches the dashboard's success pie chart, which
ignores the payload slider.

Example: launch-cli summarize --site "Cape Canaveral" --stats`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(cmd.Context(), *dataFile)
			if err != nil {
				return err
			}
			sel := flags.selection(ds)
			view := launch.Filter(ds, sel)
			if !withStats {
				return printJSON(cmd, launch.Summarize(view).Slices())
			}
			profile, err := profiling.NewProfiler(0.95).ProfileView(sel.Site.Value(), view)
			if err != nil {
				return err
			}
			return printJSON(cmd, profile)
		},
	}

	flags.register(cmd, false)
	cmd.Flags().BoolVar(&withStats, "stats", false, "Include payload statistics and per-site success rates")
	return cmd
}

func newScatterCmd(dataFile *string) *cobra.Command {
	var flags selectionFlags

	cmd := &cobra.Command{
		Use:   "scatter",
		Short: "Print payload/outcome/booster points for a site and payload range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(cmd.Context(), *dataFile)
			if err != nil {
				return err
			}
			return printJSON(cmd, launch.Project(launch.Filter(ds, flags.selection(ds))))
		},
	}

	flags.register(cmd, true)
	return cmd
}

func newExportCmd(dataFile *string) *cobra.Command {
	var flags selectionFlags
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the filtered launch records to an xlsx workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(cmd.Context(), *dataFile)
			if err != nil {
				return err
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			view := launch.Filter(ds, flags.selection(ds))
			if err := excel.WriteView(f, view); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d launches to %s\n", len(view), out)
			return nil
		},
	}

	flags.register(cmd, true)
	cmd.Flags().StringVarP(&out, "output", "o", "launches.xlsx", "Output file")
	return cmd
}

func newGenerateCmd() *cobra.Command {
	var out string
	var count int
	var seed int64

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic launch dataset for demos and load testing",
		Long: `Write deterministic synthetic launch records. The format follows the
output extension: .xlsx writes a workbook, anything else writes CSV.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count <= 0 {
				return fmt.Errorf("--count must be > 0")
			}
			config := testkit.DefaultLaunchConfig()
			config.Count = count
			config.Seed = seed
			records := testkit.NewLaunchDataGenerator(config).Generate()

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if strings.EqualFold(filepath.Ext(out), ".xlsx") {
				err = excel.WriteView(f, launch.FilteredView(records))
			} else {
				err = excel.WriteCSV(f, records)
			}
			if err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d synthetic launches to %s\n", len(records), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "synthetic_launches.csv", "Output file (.csv or .xlsx)")
	cmd.Flags().IntVar(&count, "count", 56, "Number of launches")
	cmd.Flags().Int64Var(&seed, "seed", 42, "RNG seed (deterministic)")
	return cmd
}
