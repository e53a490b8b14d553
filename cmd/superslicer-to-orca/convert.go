package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/theophile/superslicer-to-orca/internal/convert"
	"github.com/theophile/superslicer-to-orca/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <pattern>...",
	Short: "Convert INI profiles to OrcaSlicer JSON",
	Long: `Convert reads each file matched by the input patterns, detects its
flavor and profile type, translates the parameters, and writes a JSON
profile under <outdir>/process/, <outdir>/filament/, or <outdir>/machine/.

Config bundles holding several profiles in [print:...], [filament:...]
and [printer:...] sections are split automatically. A failure in one
file is reported and the rest of the batch continues.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := types.ConvertConfig{
			OutDir:          viper.GetString("outdir"),
			OnExisting:      types.ExistingPolicy(viper.GetString("on-existing")),
			NozzleSize:      viper.GetFloat64("nozzle-size"),
			PhysicalPrinter: viper.GetString("physical-printer"),
			Force:           viper.GetBool("force"),
			ReportPath:      viper.GetString("report"),
		}
		if !cfg.OnExisting.Valid() {
			return fmt.Errorf("invalid --on-existing policy %q (want skip, overwrite, or merge)", cfg.OnExisting)
		}

		c, err := convert.NewConverter(cfg)
		if err != nil {
			return err
		}
		result, err := c.Run(args, os.Stdout)
		if err != nil {
			return err
		}
		if result.HasFailures() {
			fmt.Fprintf(os.Stderr, "%d profile(s) failed; see output above\n", result.Failed)
		}
		return nil
	},
}

func init() {
	convertCmd.Flags().String("outdir", "", "base output directory (required unless set in config)")
	convertCmd.Flags().String("on-existing", string(types.PolicySkip), "policy for pre-existing output files: skip, overwrite, or merge")
	convertCmd.Flags().Float64("nozzle-size", 0, "nozzle diameter in mm for percent-based extrusion widths (0 = infer from layer height)")
	convertCmd.Flags().String("physical-printer", "", "physical printer INI merged into converted printer profiles")
	convertCmd.Flags().Bool("force", false, "create the output directory if it does not exist")
	convertCmd.Flags().String("report", "", "write a YAML run report to this path")

	for _, flag := range []string{"outdir", "on-existing", "nozzle-size", "physical-printer", "force", "report"} {
		if err := viper.BindPFlag(flag, convertCmd.Flags().Lookup(flag)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(convertCmd)
}
