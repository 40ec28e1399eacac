package badges

import "strings"

type languageStyle struct {
	logo  string
	color string
}

var languageStyles = map[string]languageStyle{
	"TypeScript": {logo: "typescript", color: "3178C6"},
	"JavaScript": {logo: "javascript", color: "F7DF1E"},
	"Python":     {logo: "python", color: "3776AB"},
	"Java":       {logo: "java", color: "007396"},
	"Go":         {logo: "go", color: "00ADD8"},
	"Rust":       {logo: "rust", color: "black"},
	"Ruby":       {logo: "ruby", color: "CC342D"},
}

// Language returns the flat-square badge for a single language.
// Unknown languages get the default color and no logo.
func Language(lang string) string {
	style, ok := languageStyles[lang]
	if !ok {
		style = languageStyle{color: DefaultColor}
	}
	return Custom(Options{
		Label: lang,
		Color: style.color,
		Logo:  style.logo,
		Style: StyleFlatSquare,
	})
}

// Languages returns one line with a badge per language, separated by spaces.
func Languages(languages []string) string {
	out := make([]string, 0, len(languages))
	for _, lang := range languages {
		out = append(out, Language(lang))
	}
	return strings.Join(out, " ")
}
