package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theophile/superslicer-to-orca/internal/convert"
	"github.com/theophile/superslicer-to-orca/internal/mapping"
	"github.com/theophile/superslicer-to-orca/internal/profile"
)

var detectCmd = &cobra.Command{
	Use:   "detect <pattern>...",
	Short: "Inspect input profiles without converting them",
	Long: `Detect reads each file matched by the input patterns and prints the
detected source flavor, profile type, and the number of recognized keys.
Nothing is written.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := convert.Expand(args)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return fmt.Errorf("no input files match %v", args)
		}

		for _, path := range files {
			profiles, err := profile.Load(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
				continue
			}
			for _, p := range profiles {
				t := p.Type
				matches := 0
				if t != "" {
					matches = mapping.MatchCount(p.Keys, t)
				} else {
					detected, n, ok := mapping.Detect(p.Keys)
					matches = n
					if !ok {
						fmt.Printf("%s: %s, unsupported (%d keys recognized)\n", path, p.Flavor, n)
						continue
					}
					t = detected
				}
				fmt.Printf("%s: %s %s profile %q (%d keys recognized)\n", path, p.Flavor, t, p.Name, matches)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
