package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/ruboto-labs/ruboto/internal/assets"
	"github.com/ruboto-labs/ruboto/internal/branding"
	"github.com/ruboto-labs/ruboto/internal/manifest"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(verifyCmd)
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check a project for consistency",
	Long: `Check the launcher icons against the bundled originals, parse the manifest and
validate the project descriptor against its schema.`,
	RunE: runVerify,
}

type verifyRow struct {
	check  string
	err    error
	detail string
}

func runVerify(cmd *cobra.Command, args []string) error {
	var rows []verifyRow

	checks, err := assets.Verify(cmd.Context(), projectDir)
	if checks == nil && err != nil {
		return err
	}
	for _, c := range checks {
		rows = append(rows, verifyRow{
			check:  c.Icon.Path,
			err:    c.Err,
			detail: fmt.Sprintf("%d bytes", c.Size),
		})
	}

	manifestPath := filepath.Join(projectDir, branding.ManifestFile())
	row := verifyRow{check: branding.ManifestFile()}
	if data, err := os.ReadFile(manifestPath); err != nil {
		row.err = err
	} else if m, err := manifest.Parse(data); err != nil {
		row.err = err
	} else {
		row.detail = fmt.Sprintf("%s, %d component(s)", m.Package, len(m.Components))
	}
	rows = append(rows, row)

	row = verifyRow{check: manifest.DescriptorFile}
	if d, err := manifest.LoadDescriptor(projectDir); err != nil {
		row.err = err
	} else {
		row.detail = fmt.Sprintf("%s, target %d", d.Platform, d.Target)
	}
	rows = append(rows, row)

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Check", "Status", "Detail"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	failed := 0
	for _, r := range rows {
		status, detail := "ok", r.detail
		if r.err != nil {
			status, detail = "FAIL", r.err.Error()
			failed++
		}
		table.Append([]string{r.check, status, detail})
	}
	table.Render()

	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	return nil
}
