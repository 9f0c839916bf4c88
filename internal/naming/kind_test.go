package naming

import (
	"errors"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		raw  string
		want Kind
	}{
		{"activity", KindActivity},
		{"Activity", KindActivity},
		{"service", KindService},
		{"Service", KindService},
		{"broadcast_receiver", KindBroadcastReceiver},
		{"BroadcastReceiver", KindBroadcastReceiver},
		{"  activity ", KindActivity},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.raw)
		if err != nil {
			t.Errorf("ParseKind(%q) error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestParseKind_Unknown(t *testing.T) {
	_, err := ParseKind("fragment")
	var unknown *UnknownKindError
	if !errors.As(err, &unknown) {
		t.Fatalf("ParseKind(fragment) error = %v, want *UnknownKindError", err)
	}
	if unknown.Raw != "fragment" {
		t.Errorf("Raw = %q", unknown.Raw)
	}
}

func TestKindTags(t *testing.T) {
	tests := []struct {
		kind Kind
		tag  string
	}{
		{KindActivity, "activity"},
		{KindService, "service"},
		{KindBroadcastReceiver, "receiver"},
	}
	for _, tt := range tests {
		if got := tt.kind.ManifestTag(); got != tt.tag {
			t.Errorf("%s.ManifestTag() = %q, want %q", tt.kind, got, tt.tag)
		}
		back, ok := KindForTag(tt.tag)
		if !ok || back != tt.kind {
			t.Errorf("KindForTag(%q) = %q, %v", tt.tag, back, ok)
		}
	}
	if _, ok := KindForTag("provider"); ok {
		t.Error("KindForTag(provider) should not resolve")
	}
}
