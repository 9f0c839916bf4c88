// Package config manages user-level settings stored at ~/.ruboto/config.yaml.
// Values can be overridden with RUBOTO_* environment variables; keys cover
// logging, the package build timeout, and defaults for new projects.
package config
