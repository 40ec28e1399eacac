package badges

import (
	"fmt"
	"net/url"
	"strings"
)

// ShieldsURL is the base URL of the badge rendering service.
const ShieldsURL = "https://img.shields.io"

// Style is a shields.io badge style.
type Style string

const (
	StyleFlat        Style = "flat"
	StyleFlatSquare  Style = "flat-square"
	StylePlastic     Style = "plastic"
	StyleForTheBadge Style = "for-the-badge"
	StyleSocial      Style = "social"
)

// DefaultColor is used when Options.Color is empty.
const DefaultColor = "blue"

// Options describes a custom static badge.
type Options struct {
	Label     string `json:"label"`
	Message   string `json:"message"`
	Color     string `json:"color,omitempty"`
	Style     Style  `json:"style,omitempty"`
	Logo      string `json:"logo,omitempty"`
	LogoColor string `json:"logoColor,omitempty"`
}

// Custom renders a static shields.io badge. Label and message are
// percent-encoded; color, style and logo are inserted verbatim.
func Custom(opts Options) string {
	color := opts.Color
	if color == "" {
		color = DefaultColor
	}
	style := opts.Style
	if style == "" {
		style = StyleFlat
	}

	u := fmt.Sprintf("%s/badge/%s-%s-%s", ShieldsURL, encodeComponent(opts.Label), encodeComponent(opts.Message), color)

	var params []string
	if style != StyleFlat {
		params = append(params, "style="+string(style))
	}
	if opts.Logo != "" {
		params = append(params, "logo="+opts.Logo)
	}
	if opts.LogoColor != "" {
		params = append(params, "logoColor="+opts.LogoColor)
	}
	if len(params) > 0 {
		u += "?" + strings.Join(params, "&")
	}

	return image(opts.Label, u)
}

// Build returns the GitHub Actions CI badge. An empty branch means "main".
func Build(username, repo, branch string) string {
	if branch == "" {
		branch = "main"
	}
	return image("Build Status", fmt.Sprintf("https://github.com/%s/%s/workflows/CI/badge.svg?branch=%s", username, repo, branch))
}

// Version returns the npm version badge for a package.
func Version(packageName string) string {
	return image("npm version", fmt.Sprintf("%s/npm/v/%s.svg?style=flat", ShieldsURL, packageName))
}

// Downloads returns the npm monthly downloads badge for a package.
func Downloads(packageName string) string {
	return image("npm downloads", fmt.Sprintf("%s/npm/dm/%s.svg?style=flat", ShieldsURL, packageName))
}

// LicenseColor returns green for MIT and blue for every other license.
func LicenseColor(license string) string {
	if license == "MIT" {
		return "green"
	}
	return "blue"
}

// License returns the license badge.
func License(license string) string {
	return image("License", fmt.Sprintf("%s/badge/license-%s-%s.svg", ShieldsURL, license, LicenseColor(license)))
}

// CoverageColor maps a coverage percentage to a badge color.
func CoverageColor(percent int) string {
	switch {
	case percent >= 80:
		return "brightgreen"
	case percent >= 60:
		return "yellow"
	default:
		return "red"
	}
}

// Coverage returns a test coverage badge.
func Coverage(percent int) string {
	return image("Coverage", fmt.Sprintf("%s/badge/coverage-%d%%25-%s.svg", ShieldsURL, percent, CoverageColor(percent)))
}

// Security returns the Snyk vulnerabilities badge for a GitHub repository.
func Security(username, repo string) string {
	return image("Security", fmt.Sprintf("%s/snyk/vulnerabilities/github/%s/%s.svg", ShieldsURL, username, repo))
}

// PackageSize returns the bundlephobia minzipped size badge.
func PackageSize(packageName string) string {
	return image("Package Size", fmt.Sprintf("%s/bundlephobia/minzip/%s.svg", ShieldsURL, packageName))
}

// CodeQuality returns the Codacy grade badge.
func CodeQuality(username, repo string) string {
	return image("Code Quality", fmt.Sprintf("%s/codacy/grade/%s/%s.svg", ShieldsURL, username, repo))
}

func image(alt, u string) string {
	return "![" + alt + "](" + u + ")"
}

// encodeComponent percent-encodes s the way JavaScript's encodeURIComponent
// does: only A-Z a-z 0-9 and - _ . ! ~ * ' ( ) are kept.
func encodeComponent(s string) string {
	escaped := url.QueryEscape(s)
	replacer := strings.NewReplacer(
		"+", "%20",
		"%21", "!",
		"%27", "'",
		"%28", "(",
		"%29", ")",
		"%2A", "*",
		"%7E", "~",
	)
	return replacer.Replace(escaped)
}
