// Package metadata holds the project record README generation reads from.
//
// A Project is supplied once per invocation, from command-line flags and
// optionally a YAML file, and is never mutated: Merge returns a new value.
package metadata

import (
	"bytes"
	"io"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/readmecraft/readmecraft/internal/badges"
	"github.com/readmecraft/readmecraft/internal/errors"
	"github.com/readmecraft/readmecraft/internal/sections"
)

// Project is the metadata of the project a README is generated for.
type Project struct {
	Name           string            `yaml:"name" json:"name"`
	Description    string            `yaml:"description" json:"description"`
	Author         string            `yaml:"author" json:"author"`
	RepoURL        string            `yaml:"repoUrl" json:"repoUrl"`
	License        string            `yaml:"license" json:"license"`
	PackageName    string            `yaml:"package" json:"package"`
	Username       string            `yaml:"username" json:"username"`
	Repo           string            `yaml:"repo" json:"repo"`
	Year           string            `yaml:"year" json:"year"`
	Languages      []string          `yaml:"languages" json:"languages"`
	Features       []string          `yaml:"features" json:"features"`
	InstallCommand string            `yaml:"installCommand" json:"installCommand"`
	UsageExample   string            `yaml:"usageExample" json:"usageExample"`
	TestCommand    string            `yaml:"testCommand" json:"testCommand"`
	Variables      map[string]string `yaml:"variables" json:"variables"`
}

// LoadFile reads a project from a YAML file.
func LoadFile(path string) (Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Project{}, errors.New("E006").WithPath(path).Wrap(err)
	}
	p, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Project{}, errors.New("E006").
			WithPath(path).
			WithSuggestion("Check the field names: name, description, author, repoUrl, license, package, languages").
			Wrap(err)
	}
	return p, nil
}

// Decode reads a project from YAML. Unknown fields are rejected.
func Decode(r io.Reader) (Project, error) {
	var p Project
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && err != io.EOF {
		return Project{}, err
	}
	return p, nil
}

// Merge returns a copy of p where every non-empty field of override wins.
func (p Project) Merge(override Project) Project {
	out := p
	pick := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	pick(&out.Name, override.Name)
	pick(&out.Description, override.Description)
	pick(&out.Author, override.Author)
	pick(&out.RepoURL, override.RepoURL)
	pick(&out.License, override.License)
	pick(&out.PackageName, override.PackageName)
	pick(&out.Username, override.Username)
	pick(&out.Repo, override.Repo)
	pick(&out.Year, override.Year)
	pick(&out.InstallCommand, override.InstallCommand)
	pick(&out.UsageExample, override.UsageExample)
	pick(&out.TestCommand, override.TestCommand)
	if len(override.Languages) > 0 {
		out.Languages = append([]string(nil), override.Languages...)
	}
	if len(override.Features) > 0 {
		out.Features = append([]string(nil), override.Features...)
	}
	if len(p.Variables) > 0 || len(override.Variables) > 0 {
		out.Variables = make(map[string]string, len(p.Variables)+len(override.Variables))
		for k, v := range p.Variables {
			out.Variables[k] = v
		}
		for k, v := range override.Variables {
			out.Variables[k] = v
		}
	}
	return out
}

// WithDefaults fills empty fields from defaults.
func (p Project) WithDefaults(defaults Project) Project {
	return defaults.Merge(p)
}

// RepoPath returns "owner/repo" taken from a GitHub repository URL, or
// "user/repo" when the URL is not a GitHub URL.
func (p Project) RepoPath() string {
	_, after, ok := strings.Cut(p.RepoURL, "github.com/")
	if !ok {
		return "user/repo"
	}
	after = strings.TrimSuffix(strings.TrimSuffix(after, "/"), ".git")
	if after == "" {
		return "user/repo"
	}
	return after
}

// RepoLink returns RepoURL, or "#" when it is empty.
func (p Project) RepoLink() string {
	if p.RepoURL == "" {
		return "#"
	}
	return p.RepoURL
}

// AuthorHandle returns the author lowercased with whitespace removed, or
// "yourusername" without an author.
func (p Project) AuthorHandle() string {
	if p.Author == "" {
		return "yourusername"
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, p.Author)
}

// GitHubCoordinates returns the username and repository badges point at,
// derived from RepoURL when not set explicitly.
func (p Project) GitHubCoordinates() (username, repo string) {
	username, repo = p.Username, p.Repo
	if username != "" && repo != "" {
		return username, repo
	}
	if !strings.Contains(p.RepoURL, "github.com/") {
		return username, repo
	}
	owner, name, _ := strings.Cut(p.RepoPath(), "/")
	if username == "" {
		username = owner
	}
	if repo == "" {
		repo = name
	}
	return username, repo
}

// TemplateVariables returns the placeholder values for templates. Every
// known name is present, so built-in templates resolve completely; "year" is
// only present when set so the substitution default applies.
func (p Project) TemplateVariables() map[string]string {
	vars := make(map[string]string, 12+len(p.Variables))
	for k, v := range p.Variables {
		vars[k] = v
	}
	vars["projectName"] = p.Name
	vars["description"] = p.Description
	vars["author"] = p.Author
	vars["repoUrl"] = p.RepoURL
	vars["license"] = p.License
	vars["packageName"] = p.PackageName
	vars["languages"] = strings.Join(p.Languages, ", ")
	vars["repoLink"] = p.RepoLink()
	vars["repoPath"] = p.RepoPath()
	vars["authorHandle"] = p.AuthorHandle()
	username, repo := p.GitHubCoordinates()
	vars["username"] = username
	vars["repo"] = repo
	if p.Year != "" {
		vars["year"] = p.Year
	}
	return vars
}

// SplitList splits a comma-separated list such as a --languages or
// --features flag. Entries are trimmed and blank entries dropped.
func SplitList(list string) []string {
	var out []string
	for _, part := range strings.Split(list, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ProjectInfo converts the project for the section builders.
func (p Project) ProjectInfo() sections.ProjectInfo {
	return sections.ProjectInfo{
		Name:           p.Name,
		Description:    p.Description,
		InstallCommand: p.InstallCommand,
		UsageExample:   p.UsageExample,
		TestCommand:    p.TestCommand,
		Author:         p.Author,
		RepoURL:        p.RepoURL,
		License:        p.License,
		Year:           p.Year,
		Features:       p.Features,
	}
}

// BadgeConfig converts the project for the badge set builder.
func (p Project) BadgeConfig() badges.SetConfig {
	username, repo := p.GitHubCoordinates()
	return badges.SetConfig{
		Username:    username,
		Repo:        repo,
		PackageName: p.PackageName,
		License:     p.License,
		Languages:   p.Languages,
	}
}
