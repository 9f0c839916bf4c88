package naming

import (
	"fmt"
	"strings"
)

// Kind identifies the type of component being generated.
type Kind string

// Supported component kinds.
const (
	KindActivity          Kind = "activity"
	KindService           Kind = "service"
	KindBroadcastReceiver Kind = "broadcast_receiver"
)

// Kinds lists every supported kind in a stable order.
var Kinds = []Kind{KindActivity, KindService, KindBroadcastReceiver}

// UnknownKindError is returned by ParseKind for unsupported kinds.
type UnknownKindError struct {
	Raw string
}

func (e *UnknownKindError) Error() string {
	names := make([]string, len(Kinds))
	for i, k := range Kinds {
		names[i] = string(k)
	}
	return fmt.Sprintf("unknown component kind %q: supported kinds are %s", e.Raw, strings.Join(names, ", "))
}

// ParseKind accepts both the snake_case and the Android class form of a kind,
// e.g. "broadcast_receiver" and "BroadcastReceiver".
func ParseKind(raw string) (Kind, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(raw), "_", ""))
	for _, k := range Kinds {
		if strings.ReplaceAll(string(k), "_", "") == key {
			return k, nil
		}
	}
	return "", &UnknownKindError{Raw: raw}
}

// ManifestTag returns the AndroidManifest.xml element name that registers
// components of this kind.
func (k Kind) ManifestTag() string {
	switch k {
	case KindBroadcastReceiver:
		return "receiver"
	default:
		return string(k)
	}
}

// KindForTag maps a manifest element name back to a Kind.
func KindForTag(tag string) (Kind, bool) {
	for _, k := range Kinds {
		if k.ManifestTag() == tag {
			return k, true
		}
	}
	return "", false
}
