package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/ruboto-labs/ruboto/internal/branding"
	"github.com/ruboto-labs/ruboto/internal/manifest"
	"github.com/ruboto-labs/ruboto/internal/naming"
	"github.com/spf13/cobra"
)

var (
	listKindFilter string
	listJSON       bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered components",
	Long:  `List the activities, services and broadcast receivers registered in AndroidManifest.xml.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listKindFilter, "kind", "", "Filter by kind (activity, service, broadcast_receiver)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents a registered component for display.
type listEntry struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
}

func runList(cmd *cobra.Command, args []string) error {
	path := filepath.Join(projectDir, branding.ManifestFile())
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading manifest: %w", err)
	}
	m, err := manifest.Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	var kind naming.Kind
	if listKindFilter != "" {
		if kind, err = naming.ParseKind(listKindFilter); err != nil {
			return err
		}
	}

	var entries []listEntry
	for _, c := range m.Components {
		if kind != "" && c.Kind != kind {
			continue
		}
		entries = append(entries, listEntry{Kind: string(c.Kind), Name: c.Name})
	}

	if listJSON {
		return printListJSON(cmd, entries)
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No components registered.")
		return nil
	}
	printListTable(cmd, m.Package, entries)
	return nil
}

func printListTable(cmd *cobra.Command, pkg string, entries []listEntry) {
	fmt.Fprintf(cmd.OutOrStdout(), "Package: %s\n\n", pkg)
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Kind", "Name"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	for _, e := range entries {
		table.Append([]string{e.Kind, e.Name})
	}
	table.Render()
}

func printListJSON(cmd *cobra.Command, entries []listEntry) error {
	if entries == nil {
		entries = []listEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
