package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"modupload/internal/config"
)

var (
	// Global flags
	configFile string
	verbose    bool

	// Upload flags
	modulePath         string
	subscriptionPlanID int
)

// rootCmd represents the base command; running it without a subcommand
// performs the upload.
var rootCmd = &cobra.Command{
	Use:   "modupload [flags] PATH",
	Short: "Upload a module and its resources in the correct order",
	Long: `Upload a module and its resources in the correct order.

PATH is the module directory: its *.html files are the module's
resources, uploaded in alphabetical filename order, and a single
.yml/.yaml file (searched recursively) carries the module's name and
description. Database connection parameters are read from an INI
configuration file with a [postgresql] section.

Example:
  modupload ./modules/introduction
  modupload -m ./modules/introduction/meta -s 2 --verbose ./modules/introduction`,
	Args: cobra.ExactArgs(1),
	RunE: runUpload,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", config.DefaultFile, "Path to the database configuration file")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log each upload step")

	rootCmd.Flags().StringVarP(&modulePath, "module", "m", "", "Path to the module description file (defaults to PATH)")
	rootCmd.Flags().IntVarP(&subscriptionPlanID, "subscriptionplan", "s", 1, "Id of the subscription plan to which this module is intended")
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	rootCmd.SilenceErrors = true // Prevent Cobra from printing the error
	rootCmd.SilenceUsage = true  // Prevent Cobra from printing usage on error

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// logOutput is swappable in tests, same as openDatabase.
var logOutput io.Writer = os.Stderr

// newLogger builds the run's logger. Without --verbose only warnings
// and errors are emitted, so a normal run produces no progress output.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: logOutput}).
		Level(level).
		With().Timestamp().Logger()
}
