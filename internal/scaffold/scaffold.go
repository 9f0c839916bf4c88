package scaffold

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/ruboto-labs/ruboto/internal/naming"
)

//go:embed templates
var templateFS embed.FS

// Parameter keys understood by the templates.
const (
	ParamPackage      = "Package"
	ParamPackagePath  = "PackagePath"
	ParamName         = "Name"
	ParamUnderscore   = "Underscore"
	ParamAppName      = "AppName"
	ParamMainActivity = "MainActivity"
	ParamTarget       = "Target"
	ParamMinSDK       = "MinSDK"
)

// Params holds template variables. Every value a template references must be
// present and non-empty.
type Params map[string]string

// Spec describes one template in the embedded set.
type Spec struct {
	Name     string   // e.g. "class/activity/source.java"
	Output   string   // project-relative output path pattern; empty for fragments
	Required []string // parameters that must be non-empty
}

func (s Spec) file() string {
	return "templates/" + s.Name + ".tmpl"
}

// RenderedFile is the in-memory result of rendering one Spec.
type RenderedFile struct {
	Template string
	Path     string // slash separated; empty for fragments
	Data     []byte
}

// ErrMissingParam is wrapped by TemplateError when a required parameter is
// absent or empty.
var ErrMissingParam = errors.New("missing required parameter")

// TemplateError reports a template that could not be rendered.
type TemplateError struct {
	Template string
	Param    string
	Err      error
}

func (e *TemplateError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("template %s: %v %q", e.Template, e.Err, e.Param)
	}
	return fmt.Sprintf("template %s: %v", e.Template, e.Err)
}

func (e *TemplateError) Unwrap() error { return e.Err }

var funcs = template.FuncMap{
	"underscore": naming.Underscore,
	"camelize":   naming.Camelize,
	"humanize":   naming.Humanize,
}

var classParams = []string{ParamPackage, ParamPackagePath, ParamName, ParamUnderscore}

// ClassSet returns the templates for one component kind in commit order:
// Java source stub, Ruby companion script, test stub. The manifest fragment
// is returned separately because it is merged, not written.
func ClassSet(kind naming.Kind) (files []Spec, fragment Spec) {
	dir := "class/" + string(kind)
	files = []Spec{
		{Name: dir + "/source.java", Output: "src/{{.PackagePath}}/{{.Name}}.java", Required: classParams},
		{Name: dir + "/script.rb", Output: "src/{{.Underscore}}.rb", Required: classParams},
		{Name: dir + "/test.rb", Output: "test/src/{{.Underscore}}_test.rb", Required: classParams},
	}
	fragment = Spec{Name: dir + "/manifest.xml", Required: []string{ParamName}}
	return files, fragment
}

// AppSet returns the project-level templates for a new application. The
// main activity's own files come from ClassSet(naming.KindActivity).
func AppSet() []Spec {
	return []Spec{
		{Name: "app/build.xml", Output: "build.xml", Required: []string{ParamAppName}},
		{Name: "app/project.properties", Output: "project.properties", Required: []string{ParamTarget}},
		{Name: "app/strings.xml", Output: "res/values/strings.xml", Required: []string{ParamAppName}},
		{Name: "app/gitignore", Output: ".gitignore"},
	}
}

// ManifestSpec is the application manifest template. It is kept apart from
// AppSet because the manifest is always committed last.
func ManifestSpec() Spec {
	return Spec{
		Name:     "app/AndroidManifest.xml",
		Output:   "AndroidManifest.xml",
		Required: []string{ParamPackage, ParamMainActivity, ParamTarget, ParamMinSDK},
	}
}

// Render renders a single template. It never touches the filesystem.
func Render(spec Spec, params Params) (*RenderedFile, error) {
	for _, key := range spec.Required {
		if strings.TrimSpace(params[key]) == "" {
			return nil, &TemplateError{Template: spec.Name, Param: key, Err: ErrMissingParam}
		}
	}

	body, err := templateFS.ReadFile(spec.file())
	if err != nil {
		return nil, &TemplateError{Template: spec.Name, Err: fmt.Errorf("template not found: %w", err)}
	}

	data, err := execute(spec.Name, string(body), params)
	if err != nil {
		return nil, err
	}

	rendered := &RenderedFile{Template: spec.Name, Data: data}
	if spec.Output != "" {
		out, err := execute(spec.Name+" (output path)", spec.Output, params)
		if err != nil {
			return nil, err
		}
		rendered.Path = string(out)
	}
	return rendered, nil
}

// RenderSet renders every spec or none: the first failure is returned and
// the partial results are discarded.
func RenderSet(specs []Spec, params Params) ([]*RenderedFile, error) {
	out := make([]*RenderedFile, 0, len(specs))
	for _, spec := range specs {
		r, err := Render(spec, params)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func execute(name, text string, params Params) ([]byte, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Funcs(funcs).Parse(text)
	if err != nil {
		return nil, &TemplateError{Template: name, Err: fmt.Errorf("parsing: %w", err)}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]string(params)); err != nil {
		return nil, &TemplateError{Template: name, Err: fmt.Errorf("executing: %w", err)}
	}
	return buf.Bytes(), nil
}
