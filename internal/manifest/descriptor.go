package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

// DescriptorFile is the project descriptor's file name.
const DescriptorFile = "ruboto.yml"


// Descriptor is the ruboto.yml project descriptor.
type Descriptor struct {
	Package      string `yaml:"package" json:"package"`
	AppName      string `yaml:"app_name" json:"app_name"`
	Target       int    `yaml:"target" json:"target"`
	MinSDK       int    `yaml:"min_sdk" json:"min_sdk"`
	Platform     string `yaml:"platform" json:"platform"`
	JRubyVersion string `yaml:"jruby_version,omitempty" json:"jruby_version,omitempty"`
}

// InvalidDescriptorError carries the schema issues of a rejected descriptor.
type InvalidDescriptorError struct {
	Issues []ValidationIssue
}

func (e *InvalidDescriptorError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		msg := issue.Message
		if issue.Path != "" {
			msg = issue.Path + ": " + msg
		}
		msgs = append(msgs, msg)
	}
	return "invalid " + DescriptorFile + ": " + strings.Join(msgs, "; ")
}

// ParseDescriptor validates data against the descriptor schema and decodes it.
func ParseDescriptor(data []byte) (*Descriptor, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, &InvalidDescriptorError{Issues: result.Issues}
	}

	var d Descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", DescriptorFile, err)
	}
	return &d, nil
}

// MarshalDescriptor encodes d and checks the result against the schema, so
// an invalid descriptor is never written.
func MarshalDescriptor(d *Descriptor) ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", DescriptorFile, err)
	}
	if _, err := ParseDescriptor(data); err != nil {
		return nil, err
	}
	return data, nil
}

// LoadDescriptor reads and validates the descriptor of the project in dir.
func LoadDescriptor(dir string) (*Descriptor, error) {
	data, err := readFile(filepath.Join(dir, DescriptorFile))
	if err != nil {
		return nil, err
	}
	return ParseDescriptor(data)
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
