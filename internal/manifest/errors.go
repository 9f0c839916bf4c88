package manifest

import (
	"errors"
	"fmt"

	"github.com/ruboto-labs/ruboto/internal/naming"
)

// ErrNoApplication is returned when the manifest has no <application>
// element that can hold components.
var ErrNoApplication = errors.New("manifest has no <application> element to register components in")

// DuplicateComponentError is returned when registering a name that is
// already present.
type DuplicateComponentError struct {
	Name     string
	Existing naming.Kind
}

func (e *DuplicateComponentError) Error() string {
	return fmt.Sprintf("component %q is already registered as %s", e.Name, e.Existing)
}

// ComponentNotFoundError is returned when unregistering a name that is not
// registered.
type ComponentNotFoundError struct {
	Name string
}

func (e *ComponentNotFoundError) Error() string {
	return fmt.Sprintf("component %q is not registered in the manifest", e.Name)
}
