package manifest

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/ruboto-labs/ruboto/internal/naming"
)

const androidNS = "http://schemas.android.com/apk/res/android"

const defaultIndent = "    "

// Component is a registered manifest entry.
type Component struct {
	Kind naming.Kind
	Name string // as written in android:name

	start, end int // byte range of the element
}

// AndroidManifest is a parsed AndroidManifest.xml. The raw bytes are the
// source of truth; the parsed fields are derived from them.
type AndroidManifest struct {
	Package    string
	Components []Component

	raw         []byte
	appClose    int // offset of "</application>", -1 if absent
	childIndent string
}

// Parse reads manifest bytes. The input is copied.
func Parse(data []byte) (*AndroidManifest, error) {
	m := &AndroidManifest{raw: bytes.Clone(data), appClose: -1}

	dec := xml.NewDecoder(bytes.NewReader(m.raw))
	var stack []string
	open := -1 // index into m.Components of the element being read

	for {
		offset := int(dec.InputOffset())
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing manifest XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case len(stack) == 0 && t.Name.Local == "manifest":
				m.Package = attr(t, "", "package")
			case len(stack) == 2 && stack[1] == "application":
				if kind, ok := naming.KindForTag(t.Name.Local); ok {
					m.Components = append(m.Components, Component{
						Kind:  kind,
						Name:  attr(t, androidNS, "name"),
						start: offset,
					})
					open = len(m.Components) - 1
				}
				if m.childIndent == "" {
					m.childIndent = lineIndent(m.raw, offset)
				}
			}
			stack = append(stack, t.Name.Local)

		case xml.EndElement:
			stack = stack[:len(stack)-1]
			switch {
			case len(stack) == 2 && open >= 0:
				m.Components[open].end = int(dec.InputOffset())
				open = -1
			case len(stack) == 1 && t.Name.Local == "application":
				m.appClose = offset
			}
		}
	}

	if len(stack) != 0 {
		return nil, fmt.Errorf("parsing manifest XML: unclosed element <%s>", stack[len(stack)-1])
	}
	return m, nil
}

// Bytes returns a copy of the manifest content.
func (m *AndroidManifest) Bytes() []byte {
	return bytes.Clone(m.raw)
}

// Lookup finds a registered component by name. Names match in bare
// ("Foo"), relative (".Foo") and fully qualified ("pkg.Foo") form.
func (m *AndroidManifest) Lookup(name string) (Component, bool) {
	want := m.normalize(name)
	for _, c := range m.Components {
		if m.normalize(c.Name) == want {
			return c, true
		}
	}
	return Component{}, false
}

// Contains reports whether name appears anywhere in the manifest text.
func (m *AndroidManifest) Contains(name string) bool {
	return name != "" && bytes.Contains(m.raw, []byte(name))
}

func (m *AndroidManifest) normalize(name string) string {
	if m.Package != "" {
		name = strings.TrimPrefix(name, m.Package)
	}
	return strings.TrimPrefix(name, ".")
}

// RegisterComponent returns a manifest with fragment appended as the last
// child of <application>. The fragment must declare the component c.
func RegisterComponent(m *AndroidManifest, c Component, fragment []byte) (*AndroidManifest, error) {
	if existing, ok := m.Lookup(c.Name); ok {
		return nil, &DuplicateComponentError{Name: c.Name, Existing: existing.Kind}
	}
	if m.appClose < 0 {
		return nil, ErrNoApplication
	}

	lineStart := bytes.LastIndexByte(m.raw[:m.appClose], '\n') + 1
	closeIndent := m.raw[lineStart:m.appClose]

	var insertAt int
	var buf bytes.Buffer
	if len(bytes.TrimSpace(closeIndent)) == 0 {
		// "</application>" starts its own line: insert a full line above it.
		indent := m.childIndent
		if indent == "" {
			indent = string(closeIndent) + defaultIndent
		}
		insertAt = lineStart
		writeIndented(&buf, fragment, indent)
	} else {
		insertAt = m.appClose
		buf.Write(bytes.TrimSpace(fragment))
	}

	out := make([]byte, 0, len(m.raw)+buf.Len())
	out = append(out, m.raw[:insertAt]...)
	out = append(out, buf.Bytes()...)
	out = append(out, m.raw[insertAt:]...)

	updated, err := Parse(out)
	if err != nil {
		return nil, fmt.Errorf("registering %s %q: %w", c.Kind, c.Name, err)
	}
	got, ok := updated.Lookup(c.Name)
	if !ok || got.Kind != c.Kind {
		return nil, fmt.Errorf("registering %s %q: fragment does not declare the component", c.Kind, c.Name)
	}
	return updated, nil
}

// UnregisterComponent returns a manifest without the named component. When
// the element sits on its own line(s), the whole line is removed.
func UnregisterComponent(m *AndroidManifest, name string) (*AndroidManifest, error) {
	c, ok := m.Lookup(name)
	if !ok {
		return nil, &ComponentNotFoundError{Name: name}
	}

	start, end := c.start, c.end
	lineStart := bytes.LastIndexByte(m.raw[:start], '\n') + 1
	lineEnd := bytes.IndexByte(m.raw[end:], '\n')
	if lineEnd >= 0 &&
		len(bytes.TrimSpace(m.raw[lineStart:start])) == 0 &&
		len(bytes.TrimSpace(m.raw[end:end+lineEnd])) == 0 {
		start, end = lineStart, end+lineEnd+1
	}

	out := make([]byte, 0, len(m.raw)-(end-start))
	out = append(out, m.raw[:start]...)
	out = append(out, m.raw[end:]...)

	updated, err := Parse(out)
	if err != nil {
		return nil, fmt.Errorf("unregistering %q: %w", name, err)
	}
	return updated, nil
}

func writeIndented(buf *bytes.Buffer, fragment []byte, indent string) {
	for _, line := range strings.Split(strings.TrimSpace(string(fragment)), "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			buf.WriteByte('\n')
			continue
		}
		buf.WriteString(indent)
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
}

// lineIndent returns the whitespace between the start of the line holding
// offset and offset itself, or "" if anything else precedes it.
func lineIndent(raw []byte, offset int) string {
	lineStart := bytes.LastIndexByte(raw[:offset], '\n') + 1
	prefix := raw[lineStart:offset]
	if len(bytes.TrimSpace(prefix)) != 0 {
		return ""
	}
	return string(prefix)
}

func attr(el xml.StartElement, space, local string) string {
	for _, a := range el.Attr {
		if a.Name.Local != local {
			continue
		}
		if space == "" || a.Name.Space == space || a.Name.Space == "android" {
			return a.Value
		}
	}
	return ""
}
