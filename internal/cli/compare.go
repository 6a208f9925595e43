package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"adcheck/internal/aircraft"
	"adcheck/internal/applicability"
	"adcheck/internal/batch"
	"adcheck/internal/domain"
)

// CompareOptions holds flags for the compare command.
type CompareOptions struct {
	*RootOptions
	FleetPath    string
	ManifestPath string
	OutPath      string
}

// NewCompareCommand creates the compare command.
func NewCompareCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompareOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare a fleet against extracted directives",
		Long: `Compare every aircraft of a fleet CSV against every directive listed
in a YAML manifest, and write the results table as CSV.

The manifest is an ordered list of labeled directive documents:

  directives:
    - label: "AD 2025-0254"
      path: ./ads/2025-0254.json

Example:
  adcheck compare --fleet fleet.csv --manifest ads.yaml --out results.csv`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.FleetPath, "fleet", "", "path to the fleet CSV (required)")
	cmd.Flags().StringVar(&opts.ManifestPath, "manifest", "", "path to the directive manifest YAML (required)")
	cmd.Flags().StringVar(&opts.OutPath, "out", "results.csv", "path of the results CSV")
	_ = cmd.MarkFlagRequired("fleet")
	_ = cmd.MarkFlagRequired("manifest")

	return cmd
}

func runCompare(cmd *cobra.Command, opts *CompareOptions) error {
	logLevel := slog.LevelWarn
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: logLevel}))

	fleetFile, err := os.Open(opts.FleetPath)
	if err != nil {
		return fmt.Errorf("open fleet table: %w", err)
	}
	defer fleetFile.Close()

	fleet, err := aircraft.ParseCSV(fleetFile)
	if err != nil {
		return err
	}
	logger.Debug("fleet table loaded", "path", opts.FleetPath, "records", len(fleet.Records))

	set, err := LoadManifest(opts.ManifestPath)
	if err != nil {
		return err
	}
	logger.Debug("manifest loaded", "path", opts.ManifestPath, "directives", set.Len())

	comparator := batch.NewComparator(applicability.NewEngine(), nil)
	table, err := comparator.Compare(cmd.Context(), fleet, set)
	if err != nil {
		return err
	}

	out, err := os.Create(opts.OutPath)
	if err != nil {
		return fmt.Errorf("create results file: %w", err)
	}
	if err := table.WriteCSV(out); err != nil {
		_ = out.Close()
		return fmt.Errorf("write results file: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("write results file: %w", err)
	}

	printSummary(cmd, fleet.Records, set, table, opts.OutPath)
	return nil
}

func printSummary(cmd *cobra.Command, records []domain.AircraftRecord, set *batch.DirectiveSet, table *batch.ResultTable, outPath string) {
	counts := map[domain.Verdict]int{}
	for _, row := range table.Verdicts {
		for _, verdict := range row {
			counts[verdict]++
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Compared %d aircraft against %d directives\n", len(records), set.Len())
	fmt.Fprintf(out, "  %s  %d\n", domain.LabelAffected, counts[domain.VerdictAffected])
	fmt.Fprintf(out, "  %s  %d\n", domain.LabelNotAffected, counts[domain.VerdictNotAffected])
	fmt.Fprintf(out, "  %s  %d\n", domain.LabelNotApplicable, counts[domain.VerdictNotApplicable])
	fmt.Fprintf(out, "Results written to %s\n", outPath)
}
