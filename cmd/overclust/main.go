// Command overclust bundles the s-overlapping cluster editing
// experiment harnesses. Every subcommand reads one graph6 string per
// line from standard input (blank lines skipped), runs its experiment
// and writes a human-readable report to standard output, exiting 0 at
// EOF.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

func main() {
	rootCmd := &cobra.Command{
		Use:          "overclust",
		Short:        "Experiment harnesses for s-overlapping cluster editing",
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newSolveCommand())
	rootCmd.AddCommand(newBoundCommand())
	rootCmd.AddCommand(newCliquesCommand())
	rootCmd.AddCommand(newUniqueCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
