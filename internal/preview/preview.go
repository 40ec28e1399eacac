// Package preview renders generated Markdown for humans: as HTML for the
// browser preview and as styled text for the terminal.
package preview

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/readmecraft/readmecraft/internal/errors"
)

// DefaultWidth is the terminal word-wrap width.
const DefaultWidth = 80

// md renders GitHub-flavored Markdown. Raw HTML passes through because README
// templates use it for centered badge blocks.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// HTML converts Markdown into an HTML fragment.
func HTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", errors.New("E009").Wrap(err)
	}
	return buf.String(), nil
}

// Style selects the terminal color scheme.
type Style string

const (
	StyleAuto  Style = "auto"
	StyleDark  Style = "dark"
	StyleLight Style = "light"
	StyleNoTTY Style = "notty"
)

// Terminal renders Markdown for a terminal, wrapped at width columns.
// A width of zero or less uses DefaultWidth.
func Terminal(source string, width int, style Style) (string, error) {
	if width <= 0 {
		width = DefaultWidth
	}
	styleOpt := glamour.WithAutoStyle()
	if style != StyleAuto && style != "" {
		styleOpt = glamour.WithStandardStyle(string(style))
	}

	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return "", errors.New("E009").Wrap(err)
	}
	out, err := r.Render(source)
	if err != nil {
		return "", errors.New("E009").Wrap(err)
	}
	return out, nil
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { max-width: 860px; margin: 2rem auto; padding: 0 1rem; font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif; line-height: 1.5; color: #1f2328; }
pre { background: #f6f8fa; padding: 1rem; border-radius: 6px; overflow: auto; }
code { font-family: ui-monospace, SFMono-Regular, Menlo, monospace; }
h1, h2 { border-bottom: 1px solid #d0d7de; padding-bottom: .3em; }
table { border-collapse: collapse; }
td, th { border: 1px solid #d0d7de; padding: 6px 13px; }
img { max-width: 100%; }
</style>
</head>
<body>
<article class="markdown-body">
{{.Body}}
</article>
{{.Script}}
</body>
</html>
`))

// Page wraps an HTML fragment in a standalone document. script is inserted
// verbatim before </body>.
func Page(title, body, script string) (string, error) {
	var buf strings.Builder
	err := pageTemplate.Execute(&buf, struct {
		Title  string
		Body   template.HTML
		Script template.HTML
	}{
		Title:  title,
		Body:   template.HTML(body),
		Script: template.HTML(script),
	})
	if err != nil {
		return "", errors.New("E009").Wrap(err)
	}
	return buf.String(), nil
}
