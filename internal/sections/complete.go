package sections

import "strings"

// CompleteOptions toggles the optional parts of Complete.
type CompleteOptions struct {
	// Features is rendered as a features section when non-empty.
	Features []string

	// IncludeRoadmap adds a two-item starter roadmap.
	IncludeRoadmap bool
}

// Complete returns a README with title, description, installation, usage,
// optional features and roadmap, contributing and a license section.
func Complete(info ProjectInfo, opts CompleteOptions) string {
	var b strings.Builder
	b.WriteString("# " + info.Name + "\n\n")
	b.WriteString(info.Description + "\n\n")
	b.WriteString(Installation(info))
	b.WriteString(Usage(info))

	if len(opts.Features) > 0 {
		b.WriteString(Features(opts.Features))
	}

	if opts.IncludeRoadmap {
		b.WriteString(Roadmap([]RoadmapItem{
			{Title: "Initial release", Status: StatusCompleted},
			{Title: "Add more features", Status: StatusPlanned},
		}))
	}

	b.WriteString(Contributing(info.RepoURL))
	b.WriteString(License(info.License, info.Year, info.Author))
	return b.String()
}
