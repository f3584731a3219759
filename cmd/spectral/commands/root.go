package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	log     zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "spectral",
	Short: "SBM spectra and elbow-based dimensionality selection",
	Long: `spectral - stochastic block model spectrum experiments

Sample planted partitions, inspect their singular-value spectra, and see
where profile-likelihood elbow selection places the embedding dimension
(including the regimes where it misses the true block count).`,
}

// Execute runs the root command; errors terminate the process with status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().
			Logger()
	}

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(suiteCmd)
}
