package budget

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/ruboto-labs/ruboto/internal/manifest"
)

// LowerRatio is the lower limit as a fraction of the upper limit.
const LowerRatio = 0.9

// Config selects a row of the limit table. It is built explicitly from the
// project descriptor and flags.
type Config struct {
	Platform      string `validate:"required,platform"`
	AndroidTarget int    `validate:"gte=3"`
	JRubyVersion  string // only consulted for STANDALONE
}

// String describes the configuration the way budget failures report it.
func (c Config) String() string {
	s := fmt.Sprintf("PLATFORM: %s, ANDROID_TARGET: %d", c.Platform, c.AndroidTarget)
	if c.Platform == manifest.PlatformStandalone {
		s += ", JRuby: " + c.JRubyVersion
	}
	return s
}

type jrubyLimit struct {
	version   string
	below15KB float64
	from15KB  float64
}

// Standalone builds bundle the JRuby jars, so their limits depend on the
// JRuby version.
var standaloneLimits = []jrubyLimit{
	{version: "1.6.7", below15KB: 5800.0, from15KB: 5800.0},
	{version: "1.7.0.preview1", below15KB: 7062.0, from15KB: 7308.0},
	{version: "1.7.0.preview2.dev", below15KB: 7062.0, from15KB: 7308.0},
}

const defaultStandaloneKB = 4200.0

var targetLimits = map[int]float64{
	7:  62.0,
	10: 63.0,
	15: 66.0,
}

const defaultTargetKB = 64.0

// UpperLimit returns the upper size limit in kilobytes.
func UpperLimit(cfg Config) float64 {
	if cfg.Platform != manifest.PlatformStandalone {
		if kb, ok := targetLimits[cfg.AndroidTarget]; ok {
			return kb
		}
		return defaultTargetKB
	}

	v, err := ParseJRubyVersion(cfg.JRubyVersion)
	if err != nil {
		return defaultStandaloneKB
	}
	for _, row := range standaloneLimits {
		rv, err := ParseJRubyVersion(row.version)
		if err != nil || !rv.Equal(v) {
			continue
		}
		if cfg.AndroidTarget < 15 {
			return row.below15KB
		}
		return row.from15KB
	}
	return defaultStandaloneKB
}

// Limits returns the [lower, upper] band in kilobytes.
func Limits(cfg Config) (lower, upper float64) {
	upper = UpperLimit(cfg)
	return upper * LowerRatio, upper
}

// ParseJRubyVersion parses JRuby's dotted pre-release style, e.g.
// "1.7.0.preview1" becomes semver 1.7.0-preview1.
func ParseJRubyVersion(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	parts := strings.SplitN(version, ".", 4)
	if len(parts) == 4 {
		version = strings.Join(parts[:3], ".") + "-" + parts[3]
	}
	v, err := semver.StrictNewVersion(version)
	if err != nil {
		return nil, fmt.Errorf("parsing JRuby version %q: %w", version, err)
	}
	return v, nil
}
