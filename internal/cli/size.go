package cli

import (
	"fmt"

	"github.com/ruboto-labs/ruboto/internal/budget"
	"github.com/ruboto-labs/ruboto/internal/config"
	"github.com/ruboto-labs/ruboto/internal/manifest"
	"github.com/spf13/cobra"
)

var (
	sizeAPK   string
	sizeBuild bool
)

func init() {
	sizeCmd.Flags().StringVar(&sizeAPK, "apk", "", "Packaged artifact to check (default bin/<AppName>-debug.apk)")
	sizeCmd.Flags().BoolVar(&sizeBuild, "build", false, "Run the packaging toolchain before checking")
	sizeCmd.MarkFlagsMutuallyExclusive("apk", "build")
	rootCmd.AddCommand(sizeCmd)
}

var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Check the packaged artifact against its size budget",
	Long: `Check the packaged artifact against the size budget for the project's platform
mode, Android target and JRuby version. An artifact below 90% of the limit
also fails: the limit is stale and should be lowered.`,
	RunE: runSize,
}

func runSize(cmd *cobra.Command, args []string) error {
	d, err := manifest.LoadDescriptor(projectDir)
	if err != nil {
		return err
	}
	cfg := budget.Config{
		Platform:      d.Platform,
		AndroidTarget: d.Target,
		JRubyVersion:  d.JRubyVersion,
	}

	var artifact *budget.Artifact
	switch {
	case sizeBuild:
		b := &budget.AntBuilder{
			AppName: d.AppName,
			Timeout: config.BuildTimeout(),
			Stdout:  cmd.ErrOrStderr(),
			Stderr:  cmd.ErrOrStderr(),
		}
		artifact, err = b.Build(cmd.Context(), projectDir)
	case sizeAPK != "":
		artifact, err = budget.Probe(sizeAPK)
	default:
		artifact, err = budget.Probe(budget.ArtifactPath(projectDir, d.AppName))
	}
	if err != nil {
		return err
	}

	report, err := budget.Check(cfg, artifact)
	if report != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %.1fKB (budget %.1fKB - %.1fKB, %s)\n",
			report.Path, report.SizeKB, report.LowerKB, report.UpperKB, report.Config)
	}
	return err
}
