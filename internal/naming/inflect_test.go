package naming

import "testing"

func TestUnderscore(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"VeryNewActivity", "very_new_activity"},
		{"A", "a"},
		{"HTTPService", "http_service"},
		{"MyHTTP", "my_http"},
		{"Main2Activity", "main2_activity"},
		{"My_Service", "my_service"},
		{"already_snake", "already_snake"},
	}
	for _, tt := range tests {
		if got := Underscore(tt.in); got != tt.want {
			t.Errorf("Underscore(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCamelize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"test_app", "TestApp"},
		{"activity", "Activity"},
		{"broadcast_receiver", "BroadcastReceiver"},
		{"very__new", "VeryNew"},
		{"app2", "App2"},
	}
	for _, tt := range tests {
		if got := Camelize(tt.in); got != tt.want {
			t.Errorf("Camelize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnderscoreCamelizeRoundTrip(t *testing.T) {
	for _, name := range []string{"VeryNewActivity", "MainService", "BootReceiver"} {
		if got := Camelize(Underscore(name)); got != name {
			t.Errorf("Camelize(Underscore(%q)) = %q", name, got)
		}
	}
}

func TestHumanize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"VeryNewActivity", "Very New Activity"},
		{"TestApp", "Test App"},
		{"test_app", "Test App"},
		{"HTTPService", "Http Service"},
	}
	for _, tt := range tests {
		if got := Humanize(tt.in); got != tt.want {
			t.Errorf("Humanize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
