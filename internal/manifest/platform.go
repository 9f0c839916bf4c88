package manifest

import (
	"slices"

	"github.com/go-playground/validator/v10"
)

// Platform modes. STANDALONE projects bundle JRuby; the others load it from
// the device or a gem.
const (
	PlatformCurrent    = "CURRENT"
	PlatformFromGem    = "FROM_GEM"
	PlatformStandalone = "STANDALONE"
)

// Platforms lists every platform mode in schema order.
var Platforms = []string{PlatformCurrent, PlatformFromGem, PlatformStandalone}

// PlatformTag is the struct validation tag registered by RegisterValidations.
const PlatformTag = "platform"

// IsPlatform reports whether s is a known platform mode.
func IsPlatform(s string) bool {
	return slices.Contains(Platforms, s)
}

// RegisterValidations adds the platform tag to v.
func RegisterValidations(v *validator.Validate) error {
	return v.RegisterValidation(PlatformTag, func(fl validator.FieldLevel) bool {
		return IsPlatform(fl.Field().String())
	})
}
