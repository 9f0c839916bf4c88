package manifest

import (
	"testing"
)

func validateTestdata(t *testing.T, name string) *ValidationResult {
	t.Helper()
	data, err := readFile(testPath(name))
	if err != nil {
		t.Fatal(err)
	}
	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate(%s) unexpected error: %v", name, err)
	}
	return result
}

func TestValidate_Valid(t *testing.T) {
	result := validateTestdata(t, "valid-descriptor.yml")
	if !result.Valid {
		for _, issue := range result.Issues {
			t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
		}
	}
}

func TestValidate_Invalid(t *testing.T) {
	invalidFiles := []struct {
		file    string
		desc    string
		keyword string
	}{
		{"invalid-missing-package.yml", "missing required package", "required"},
		{"invalid-platform.yml", "platform outside enum", "enum"},
		{"invalid-target-type.yml", "target is not an integer", "type"},
		{"invalid-lowercase-app.yml", "app name violates pattern", "pattern"},
	}

	for _, tt := range invalidFiles {
		t.Run(tt.file, func(t *testing.T) {
			result := validateTestdata(t, tt.file)
			if result.Valid {
				t.Fatalf("expected invalid for %s (%s), but got valid", tt.file, tt.desc)
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Keyword == tt.keyword {
					found = true
				}
				if issue.Message == "" {
					t.Errorf("issue without message: %+v", issue)
				}
			}
			if !found {
				t.Errorf("no %q issue in %+v", tt.keyword, result.Issues)
			}
		})
	}
}

func TestValidate_InvalidYAML(t *testing.T) {
	_, err := Validate([]byte("package: [unterminated"))
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}
