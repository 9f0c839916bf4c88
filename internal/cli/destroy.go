package cli

import (
	"github.com/ruboto-labs/ruboto/internal/generator"
	"github.com/spf13/cobra"
)

var destroyClassName string

func init() {
	destroyClassCmd.Flags().StringVar(&destroyClassName, "name", "", "Class name to remove")
	_ = destroyClassCmd.MarkFlagRequired("name")

	destroyCmd.AddCommand(destroyClassCmd)
	rootCmd.AddCommand(destroyCmd)
}

var destroyCmd = &cobra.Command{
	Use:   "destroy",
	Short: "Remove generated components",
}

var destroyClassCmd = &cobra.Command{
	Use:   "class <kind>",
	Short: "Remove a component and its manifest registration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := generator.New(nil).Destroy(cmd.Context(), generator.Command{
			ProjectDir: projectDir,
			Kind:       args[0],
			Name:       destroyClassName,
		})
		if err != nil {
			return err
		}
		printFiles(cmd, "removed", res.CreatedFiles)
		return nil
	},
}
