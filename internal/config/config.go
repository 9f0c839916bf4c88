package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ruboto-labs/ruboto/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys understood by the CLI.
const (
	KeyLogFilename   = "log.filename"
	KeyLogLevel      = "log.level"
	KeyLogMaxSize    = "log.max_size"
	KeyLogMaxBackups = "log.max_backups"
	KeyLogMaxAge     = "log.max_age"
	KeyLogCompress   = "log.compress"

	KeyBuildTimeout    = "build.timeout"
	KeyDefaultTarget   = "defaults.target"
	KeyDefaultMinSDK   = "defaults.min_sdk"
	KeyDefaultPlatform = "defaults.platform"
)

const (
	defaultLogLevel      = "info"
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true

	defaultBuildTimeout = 10 * time.Minute
	defaultTarget       = 10
	defaultMinSDK       = 7
	defaultPlatform     = "CURRENT"
)

// Dir returns the path to the config directory (~/.ruboto/).
// RUBOTO_HOME overrides the location.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("HOME")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.ruboto/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// LogFilePath returns the default log file location inside Dir.
func LogFilePath() string {
	return filepath.Join(Dir(), branding.CLIName()+".log")
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeyLogFilename, LogFilePath())
	viper.SetDefault(KeyLogLevel, defaultLogLevel)
	viper.SetDefault(KeyLogMaxSize, defaultLogMaxSize)
	viper.SetDefault(KeyLogMaxBackups, defaultLogMaxBackups)
	viper.SetDefault(KeyLogMaxAge, defaultLogMaxAge)
	viper.SetDefault(KeyLogCompress, defaultLogCompress)
	viper.SetDefault(KeyBuildTimeout, defaultBuildTimeout.String())
	viper.SetDefault(KeyDefaultTarget, defaultTarget)
	viper.SetDefault(KeyDefaultMinSDK, defaultMinSDK)
	viper.SetDefault(KeyDefaultPlatform, defaultPlatform)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GetInt returns an integer config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a boolean config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// BuildTimeout returns the package build timeout, falling back to the
// default when the configured value does not parse.
func BuildTimeout() time.Duration {
	d, err := time.ParseDuration(viper.GetString(KeyBuildTimeout))
	if err != nil || d <= 0 {
		return defaultBuildTimeout
	}
	return d
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
