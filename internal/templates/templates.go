package templates

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/readmecraft/readmecraft/internal/errors"
	"github.com/readmecraft/readmecraft/internal/placeholder"
)

// SourceBuiltin is the Source of templates compiled into the binary.
const SourceBuiltin = "builtin"

// Template represents a README template.
type Template struct {
	// Name is the template name.
	Name string `json:"name"`

	// Description describes the template.
	Description string `json:"description"`

	// Content is the Markdown with {{name}} placeholders.
	Content string `json:"-"`

	// Source is SourceBuiltin or the path the template was read from.
	Source string `json:"source"`
}

// Render substitutes vars into the template.
func (t *Template) Render(vars map[string]string) string {
	return placeholder.Substitute(t.Content, vars)
}

// RenderAt is Render with an explicit clock for the year default.
func (t *Template) RenderAt(vars map[string]string, now time.Time) string {
	return placeholder.SubstituteAt(t.Content, vars, now)
}

// Unresolved returns the placeholders Render would leave in place for vars.
func (t *Template) Unresolved(vars map[string]string) []string {
	return placeholder.Unresolved(t.Content, vars)
}

// Available templates.
var builtins = map[string]*Template{
	"simple":   simpleTemplate(),
	"advanced": advancedTemplate(),
}

// Get returns a built-in template by name. Names are case-insensitive.
func Get(name string) (*Template, error) {
	tmpl, ok := builtins[strings.ToLower(name)]
	if !ok {
		return nil, unknownTemplate(name, List())
	}
	return tmpl, nil
}

// List returns the built-in template names in sorted order.
func List() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtins returns the built-in templates sorted by name.
func Builtins() []*Template {
	out := make([]*Template, 0, len(builtins))
	for _, name := range List() {
		out = append(out, builtins[name])
	}
	return out
}

func unknownTemplate(name string, available []string) error {
	return errors.New("E003").
		WithDetail("Template '" + name + "' not found").
		WithSuggestion("Available templates: " + strings.Join(available, ", "))
}

// LoadFile reads a template from a Markdown file. The template is named after
// the file without its extension.
func LoadFile(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E004").
			WithDetail("Failed to load template from " + path).
			WithPath(path).
			Wrap(err)
	}
	return &Template{
		Name:        strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Description: "Template from " + path,
		Content:     string(data),
		Source:      path,
	}, nil
}

// ListDir returns the names of the .md files in dir, sorted. A missing or
// unreadable directory has no templates.
func ListDir(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".md" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".md"))
	}
	sort.Strings(names)
	return names
}

// Loader resolves template names against a directory before the built-ins.
// The zero value only knows the built-in templates.
type Loader struct {
	// Dir holds <name>.md templates. Empty means none.
	Dir string
}

// Get returns the template called name. <Dir>/<name>.md wins over a built-in
// template of the same name.
func (l Loader) Get(name string) (*Template, error) {
	if l.Dir != "" && name != "" {
		path := filepath.Join(l.Dir, name+".md")
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	if tmpl, ok := builtins[strings.ToLower(name)]; ok {
		return tmpl, nil
	}
	return nil, unknownTemplate(name, l.Names())
}

// Names returns every template name the loader resolves, sorted.
func (l Loader) Names() []string {
	set := make(map[string]struct{})
	for _, name := range List() {
		set[name] = struct{}{}
	}
	for _, name := range ListDir(l.Dir) {
		set[name] = struct{}{}
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns every template the loader resolves, sorted by name.
func (l Loader) List() ([]*Template, error) {
	names := l.Names()
	out := make([]*Template, 0, len(names))
	for _, name := range names {
		tmpl, err := l.Get(name)
		if err != nil {
			return nil, err
		}
		out = append(out, tmpl)
	}
	return out, nil
}
