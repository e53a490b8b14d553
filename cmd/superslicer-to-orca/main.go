// Package main is the entry point for the superslicer-to-orca CLI, which
// converts SuperSlicer and PrusaSlicer INI profiles into OrcaSlicer JSON
// profiles.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the superslicer-to-orca CLI.
var rootCmd = &cobra.Command{
	Use:   "superslicer-to-orca",
	Short: "Convert SuperSlicer/PrusaSlicer profiles to OrcaSlicer",
	Long: `superslicer-to-orca converts slicer configuration profiles (filament,
print/process, and printer settings) from the INI format written by
SuperSlicer and PrusaSlicer into the JSON format OrcaSlicer reads.

The convert subcommand performs the batch conversion; detect inspects
input files without writing anything.`,
}

// helpShown records that a help screen was printed so main can exit
// with status 1, matching the upstream tool's -h behavior.
var helpShown bool

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./superslicer-to-orca.yaml or ~/.config/superslicer-to-orca/config.yaml)")

	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		defaultHelp(cmd, args)
		helpShown = true
	})
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("superslicer-to-orca")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "superslicer-to-orca"))
		}
	}

	viper.SetEnvPrefix("SUPERSLICER_TO_ORCA")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	err := rootCmd.Execute()
	if err != nil || helpShown {
		os.Exit(1)
	}
}
