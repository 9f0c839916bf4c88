// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is embedded with //go:embed, so a fork can rename the tool
// and its home directory without touching Go code.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	HomeDir      string `yaml:"home_dir"`
	EnvPrefix    string `yaml:"env_prefix"`
	LockFile     string `yaml:"lock_file"`
	ManifestFile string `yaml:"manifest_file"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:      "ruboto",
			DisplayName:  "Ruboto",
			Description:  "Scaffold Android applications written in Ruby",
			HomeDir:      ".ruboto",
			EnvPrefix:    "RUBOTO",
			LockFile:     ".ruboto.lock",
			ManifestFile: "AndroidManifest.xml",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "ruboto").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".ruboto").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "RUBOTO").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// LockFile returns the name of the per-project generation lock file.
func LockFile() string { load(); return defaults.LockFile }

// ManifestFile returns the application manifest file name.
func ManifestFile() string { load(); return defaults.ManifestFile }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "RUBOTO_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
