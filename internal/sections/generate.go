package sections

import (
	"sort"
	"strings"

	"github.com/readmecraft/readmecraft/internal/errors"
)

// generators maps section type names to their builders.
var generators = map[string]func(ProjectInfo) string{
	"installation": Installation,
	"usage":        Usage,
	"features":     featuresOf,
	"contributing": func(info ProjectInfo) string { return Contributing(info.RepoURL) },
	"license":      func(info ProjectInfo) string { return License(info.License, info.Year, info.Author) },
	"testing":      func(info ProjectInfo) string { return Testing(info.TestCommand) },
	"support":      Support,
}

func featuresOf(info ProjectInfo) string {
	if len(info.Features) == 0 {
		return Features(DefaultFeatures)
	}
	return Features(info.Features)
}

// Generate builds the section named kind. Names are case-insensitive.
func Generate(kind string, info ProjectInfo) (string, error) {
	gen, ok := generators[strings.ToLower(kind)]
	if !ok {
		return "", errors.New("E002").
			WithDetail("Unknown section type: " + kind).
			WithSuggestion("Available sections: " + strings.Join(Types(), ", "))
	}
	return gen(info), nil
}

// Types returns the section type names accepted by Generate, sorted.
func Types() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
