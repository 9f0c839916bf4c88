package naming

import (
	"fmt"
	"strings"
)

// ValidName is a component name that passed Validate.
type ValidName struct {
	Kind Kind
	Name string
}

// Underscore returns the snake_case form of the name.
func (v ValidName) Underscore() string { return Underscore(v.Name) }

// RejectedNameError describes why a name was refused.
type RejectedNameError struct {
	Kind   Kind
	Name   string
	Reason string
}

func (e *RejectedNameError) Error() string {
	return fmt.Sprintf("invalid %s name %q: %s", e.Kind, e.Name, e.Reason)
}

// Validate checks a raw component name. Names must start with an uppercase
// ASCII letter and contain only ASCII letters, digits and underscores.
func Validate(kind Kind, raw string) (ValidName, error) {
	reject := func(reason string) (ValidName, error) {
		return ValidName{}, &RejectedNameError{Kind: kind, Name: raw, Reason: reason}
	}

	if raw == "" {
		return reject("name must not be empty")
	}
	if !isUpper(raw[0]) {
		return reject("name must start with an uppercase letter")
	}
	for i := 1; i < len(raw); i++ {
		if !isIdentChar(raw[i]) {
			return reject(fmt.Sprintf("character %q at position %d is not allowed", raw[i], i))
		}
	}
	return ValidName{Kind: kind, Name: raw}, nil
}

// ValidatePackage checks a dotted Java package name such as
// "org.ruboto.test_app". At least two segments are required and every
// segment must start with a lowercase letter.
func ValidatePackage(pkg string) error {
	segments := strings.Split(pkg, ".")
	if len(segments) < 2 {
		return fmt.Errorf("invalid package %q: need at least two dot-separated segments", pkg)
	}
	for _, seg := range segments {
		if seg == "" || !isLower(seg[0]) {
			return fmt.Errorf("invalid package %q: segment %q must start with a lowercase letter", pkg, seg)
		}
		for i := 1; i < len(seg); i++ {
			if !isIdentChar(seg[i]) {
				return fmt.Errorf("invalid package %q: segment %q contains %q", pkg, seg, seg[i])
			}
		}
	}
	return nil
}

// PackagePath converts a Java package to a slash-separated directory path.
func PackagePath(pkg string) string {
	return strings.ReplaceAll(pkg, ".", "/")
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentChar(c byte) bool {
	return isUpper(c) || isLower(c) || isDigit(c) || c == '_'
}
