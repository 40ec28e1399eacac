package badges

import "strings"

// SetConfig selects the badges included by Set.
type SetConfig struct {
	Username    string   `json:"username"`
	Repo        string   `json:"repo"`
	PackageName string   `json:"packageName,omitempty"`
	License     string   `json:"license,omitempty"`
	Languages   []string `json:"languages,omitempty"`
}

// Set returns the badge block for a project, one badge per line.
func Set(cfg SetConfig) string {
	lines := []string{Build(cfg.Username, cfg.Repo, "")}

	if cfg.PackageName != "" {
		lines = append(lines, Version(cfg.PackageName), Downloads(cfg.PackageName))
	}

	if cfg.License != "" {
		lines = append(lines, License(cfg.License))
	}

	if len(cfg.Languages) > 0 {
		lines = append(lines, Languages(cfg.Languages))
	}

	return strings.Join(lines, "\n")
}
