package cli

import (
	"fmt"
	"os"

	"github.com/ruboto-labs/ruboto/internal/branding"
	"github.com/ruboto-labs/ruboto/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	projectDir string
	logFile    string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds Android applications written in Ruby: it creates projects,
generates activities, services and broadcast receivers, and keeps the manifest in sync.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		configureLogger(logFile, verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&projectDir, "project", "C", ".", "Project directory")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at debug level")
}

// Execute runs the root command with build info injected via ldflags. Errors
// are printed to stderr and returned; the caller decides the exit status.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
