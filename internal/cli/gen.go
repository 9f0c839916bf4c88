package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ruboto-labs/ruboto/internal/branding"
	"github.com/ruboto-labs/ruboto/internal/config"
	"github.com/ruboto-labs/ruboto/internal/generator"
	"github.com/ruboto-labs/ruboto/internal/naming"
	"github.com/spf13/cobra"
)

var (
	genClassName string

	genAppPackage  string
	genAppPath     string
	genAppName     string
	genAppTarget   int
	genAppMinSDK   int
	genAppPlatform string
	genAppJRuby    string
)

func init() {
	genClassCmd.Flags().StringVar(&genClassName, "name", "", "Class name, e.g. VeryNewActivity")
	_ = genClassCmd.MarkFlagRequired("name")

	genAppCmd.Flags().StringVar(&genAppPackage, "package", "", "Java package, e.g. org.ruboto.example")
	genAppCmd.Flags().StringVar(&genAppPath, "path", "", "Project directory (default: last package segment)")
	genAppCmd.Flags().StringVar(&genAppName, "name", "", "Application name (default: camelized last package segment)")
	genAppCmd.Flags().IntVar(&genAppTarget, "target", 0, "Android target API level (default from config)")
	genAppCmd.Flags().IntVar(&genAppMinSDK, "min-sdk", 0, "Minimum Android API level (default from config)")
	genAppCmd.Flags().StringVar(&genAppPlatform, "platform", "", "Platform mode: CURRENT, FROM_GEM or STANDALONE (default from config)")
	genAppCmd.Flags().StringVar(&genAppJRuby, "jruby", "", "JRuby version bundled by STANDALONE projects")
	_ = genAppCmd.MarkFlagRequired("package")

	genCmd.AddCommand(genAppCmd)
	genCmd.AddCommand(genClassCmd)
	rootCmd.AddCommand(genCmd)
}

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate projects and components",
}

var genClassCmd = &cobra.Command{
	Use:   "class <kind>",
	Short: "Generate an activity, service or broadcast receiver",
	Long: `Generate a component in the current project: a Java source stub, a Ruby
script, a test stub and a manifest registration. Kinds: ` + kindList() + `.

Either every file is written and the manifest updated, or nothing changes.`,
	Example: "  " + branding.CLIName() + " gen class activity --name VeryNewActivity",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := generator.New(nil).Generate(cmd.Context(), generator.Command{
			ProjectDir: projectDir,
			Kind:       args[0],
			Name:       genClassName,
		})
		if err != nil {
			return err
		}
		printFiles(cmd, "created", res.CreatedFiles)
		return nil
	},
}

var genAppCmd = &cobra.Command{
	Use:   "app",
	Short: "Create a new project",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := genAppPath
		if path == "" {
			segments := strings.Split(genAppPackage, ".")
			path = segments[len(segments)-1]
		}
		if !filepath.IsAbs(path) && projectDir != "." {
			path = filepath.Join(projectDir, path)
		}

		app := generator.AppCommand{
			Path:         path,
			Package:      genAppPackage,
			Name:         genAppName,
			Target:       intOrDefault(genAppTarget, config.KeyDefaultTarget),
			MinSDK:       intOrDefault(genAppMinSDK, config.KeyDefaultMinSDK),
			Platform:     strings.ToUpper(stringOrDefault(genAppPlatform, config.KeyDefaultPlatform)),
			JRubyVersion: genAppJRuby,
		}
		res, err := generator.New(nil).CreateProject(cmd.Context(), app)
		if err != nil {
			return err
		}
		printFiles(cmd, "created", res.CreatedFiles)
		fmt.Fprintf(cmd.OutOrStdout(), "Project %s created in %s\n", genAppPackage, path)
		return nil
	},
}

func printFiles(cmd *cobra.Command, verb string, files []string) {
	for _, f := range files {
		fmt.Fprintf(cmd.OutOrStdout(), "  %-8s %s\n", verb, f)
	}
}

func kindList() string {
	names := make([]string, len(naming.Kinds))
	for i, k := range naming.Kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

func intOrDefault(v int, key string) int {
	if v != 0 {
		return v
	}
	return config.GetInt(key)
}

func stringOrDefault(v, key string) string {
	if v != "" {
		return v
	}
	return config.Get(key)
}
