// Package sections generates common README sections.
//
// Each builder maps a small metadata record to a fixed Markdown block and
// applies a default for every optional field. Complete assembles a whole
// README from a fixed subset of the builders.
package sections

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ProjectInfo is the metadata the section builders read.
type ProjectInfo struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	InstallCommand string `json:"installCommand,omitempty"`
	UsageExample   string `json:"usageExample,omitempty"`
	TestCommand    string `json:"testCommand,omitempty"`
	Author         string `json:"author,omitempty"`
	RepoURL        string `json:"repoUrl,omitempty"`

	// License, Year and Features feed the license and features sections.
	// Empty values fall back to DefaultLicense, the current year and
	// DefaultFeatures.
	License  string   `json:"license,omitempty"`
	Year     string   `json:"year,omitempty"`
	Features []string `json:"features,omitempty"`
}

const fence = "```"

// Installation returns the installation section.
func Installation(info ProjectInfo) string {
	command := info.InstallCommand
	if command == "" {
		command = "npm install " + info.Name
	}

	return "## Installation\n\n" +
		fence + "bash\n" + command + "\n" + fence + "\n\n" +
		"For global installation:\n\n" +
		fence + "bash\nnpm install -g " + info.Name + "\n" + fence + "\n"
}

// Usage returns the usage section.
func Usage(info ProjectInfo) string {
	example := info.UsageExample
	if example == "" {
		example = fmt.Sprintf("import %[1]s from '%[1]s';\n\n// Use the library\n%[1]s.doSomething();", info.Name)
	}

	return "## Usage\n\n" + fence + "javascript\n" + example + "\n" + fence + "\n"
}

// DefaultFeatures is the feature list used when none is given.
var DefaultFeatures = []string{
	"Fast and lightweight",
	"Easy to use",
	"Highly configurable",
	"Well documented",
	"Fully tested",
}

// Features returns the features section, one bullet per feature.
func Features(features []string) string {
	items := make([]string, 0, len(features))
	for _, f := range features {
		items = append(items, "- ✨ "+f)
	}
	return "## Features\n\n" + strings.Join(items, "\n") + "\n"
}

// Contributing returns the contributing section. Without a repository URL
// the pull request and issue links fall back to prose.
func Contributing(repoURL string) string {
	prURL := "your repository"
	issuesURL := "the issues page"
	if repoURL != "" {
		prURL = repoURL + "/pulls"
		issuesURL = repoURL + "/issues"
	}

	return `## Contributing

Contributions are always welcome! Here's how you can help:

1. Fork the repository
2. Create your feature branch (` + "`git checkout -b feature/AmazingFeature`" + `)
3. Commit your changes (` + "`git commit -m 'Add some AmazingFeature'`" + `)
4. Push to the branch (` + "`git push origin feature/AmazingFeature`" + `)
5. Open a Pull Request at ` + prURL + `

Please read [CONTRIBUTING.md](CONTRIBUTING.md) for details on our code of conduct and the process for submitting pull requests.

### Found a bug?

Please report it by opening an issue at ` + issuesURL + `.
`
}

// DefaultLicense is the license used when none is given.
const DefaultLicense = "MIT"

// License returns the license section. Empty arguments fall back to MIT,
// the current year and "Project Contributors".
func License(license, year, author string) string {
	return licenseAt(license, year, author, time.Now())
}

func licenseAt(license, year, author string, now time.Time) string {
	if license == "" {
		license = DefaultLicense
	}
	if year == "" {
		year = strconv.Itoa(now.Year())
	}
	if author == "" {
		author = "Project Contributors"
	}

	return "## License\n\n" +
		"This project is licensed under the " + license + " License.\n\n" +
		"Copyright © " + year + " " + author + "\n\n" +
		"See [LICENSE](LICENSE) file for details.\n"
}

// Method documents one entry of the API reference.
type Method struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Params      string `json:"params,omitempty" yaml:"params,omitempty"`
	Returns     string `json:"returns,omitempty" yaml:"returns,omitempty"`
}

// API returns the API reference section.
func API(methods []Method) string {
	var b strings.Builder
	b.WriteString("## API Reference\n\n")

	for _, m := range methods {
		b.WriteString("### `" + m.Name + "`\n\n")
		b.WriteString(m.Description + "\n\n")
		if m.Params != "" {
			b.WriteString("**Parameters:** " + m.Params + "\n\n")
		}
		if m.Returns != "" {
			b.WriteString("**Returns:** " + m.Returns + "\n\n")
		}
		b.WriteString("---\n\n")
	}

	return b.String()
}

// Testing returns the testing section. The command defaults to "npm test".
func Testing(command string) string {
	if command == "" {
		command = "npm test"
	}

	return "## Testing\n\n" +
		"Run the test suite:\n\n" +
		fence + "bash\n" + command + "\n" + fence + "\n\n" +
		"For coverage report:\n\n" +
		fence + "bash\nnpm run test:coverage\n" + fence + "\n"
}

// Status is the state of a roadmap item.
type Status string

const (
	StatusCompleted  Status = "completed"
	StatusInProgress Status = "in-progress"
	StatusPlanned    Status = "planned"
)

// RoadmapItem is one line of the roadmap.
type RoadmapItem struct {
	Title  string `json:"title" yaml:"title"`
	Status Status `json:"status" yaml:"status"`
}

func (s Status) icon() string {
	switch s {
	case StatusCompleted:
		return "✅"
	case StatusInProgress:
		return "🚧"
	default:
		return "📋"
	}
}

// Roadmap returns the roadmap section.
func Roadmap(items []RoadmapItem) string {
	var b strings.Builder
	b.WriteString("## Roadmap\n\n")
	for _, item := range items {
		b.WriteString("- " + item.Status.icon() + " " + item.Title + "\n")
	}
	b.WriteString("\nSee the [open issues](issues) for a full list of proposed features and known issues.\n")
	return b.String()
}

// Acknowledgments returns the acknowledgments section.
func Acknowledgments(credits []string) string {
	items := make([]string, 0, len(credits))
	for _, c := range credits {
		items = append(items, "- "+c)
	}
	return "## Acknowledgments\n\n" + strings.Join(items, "\n") + "\n"
}

// Support returns the support section.
func Support(info ProjectInfo) string {
	issuesURL := "the issues page"
	discussionsURL := "discussions"
	if info.RepoURL != "" {
		issuesURL = info.RepoURL + "/issues"
		discussionsURL = info.RepoURL + "/discussions"
	}

	return "## Support\n\n" +
		"- 📚 Documentation: Check out our [Wiki](wiki)\n" +
		"- 💬 Discussions: Join our [GitHub Discussions](" + discussionsURL + ")\n" +
		"- 🐛 Issues: Report bugs at " + issuesURL + "\n" +
		"- ⭐ Star: If you find this project useful, please star it!\n"
}
