package badges

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCustom(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{
			name: "defaults",
			opts: Options{Label: "status", Message: "ok"},
			want: "![status](https://img.shields.io/badge/status-ok-blue)",
		},
		{
			name: "label and message are encoded",
			opts: Options{Label: "build status", Message: "passing/ok", Color: "green"},
			want: "![build status](https://img.shields.io/badge/build%20status-passing%2Fok-green)",
		},
		{
			name: "encodeURIComponent keeps marks",
			opts: Options{Label: "it's (ok)!", Message: "a*b~c"},
			want: "![it's (ok)!](https://img.shields.io/badge/it's%20(ok)!-a*b~c-blue)",
		},
		{
			name: "style logo and logo color",
			opts: Options{Label: "Go", Color: "00ADD8", Style: StyleForTheBadge, Logo: "go", LogoColor: "white"},
			want: "![Go](https://img.shields.io/badge/Go--00ADD8?style=for-the-badge&logo=go&logoColor=white)",
		},
		{
			name: "flat style is implicit",
			opts: Options{Label: "a", Message: "b", Style: StyleFlat, Logo: "npm"},
			want: "![a](https://img.shields.io/badge/a-b-blue?logo=npm)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Custom(tt.opts); got != tt.want {
				t.Errorf("Custom() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSingleBadges(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"build default branch", Build("a", "b", ""), "![Build Status](https://github.com/a/b/workflows/CI/badge.svg?branch=main)"},
		{"build branch", Build("a", "b", "dev"), "![Build Status](https://github.com/a/b/workflows/CI/badge.svg?branch=dev)"},
		{"version", Version("pkg"), "![npm version](https://img.shields.io/npm/v/pkg.svg?style=flat)"},
		{"downloads", Downloads("pkg"), "![npm downloads](https://img.shields.io/npm/dm/pkg.svg?style=flat)"},
		{"security", Security("a", "b"), "![Security](https://img.shields.io/snyk/vulnerabilities/github/a/b.svg)"},
		{"package size", PackageSize("pkg"), "![Package Size](https://img.shields.io/bundlephobia/minzip/pkg.svg)"},
		{"code quality", CodeQuality("a", "b"), "![Code Quality](https://img.shields.io/codacy/grade/a/b.svg)"},
		{"coverage", Coverage(85), "![Coverage](https://img.shields.io/badge/coverage-85%25-brightgreen.svg)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestLicense(t *testing.T) {
	mit := License("MIT")
	if !strings.Contains(mit, "MIT") || !strings.Contains(mit, "green") {
		t.Errorf("License(MIT) = %q, want MIT and green", mit)
	}

	for _, license := range []string{"Apache-2.0", "GPL-3.0", "mit", ""} {
		got := License(license)
		if !strings.Contains(got, "-blue.svg") {
			t.Errorf("License(%q) = %q, want blue", license, got)
		}
	}
}

func TestCoverageColor(t *testing.T) {
	tests := map[int]string{100: "brightgreen", 80: "brightgreen", 79: "yellow", 60: "yellow", 59: "red", 0: "red"}
	for percent, want := range tests {
		if got := CoverageColor(percent); got != want {
			t.Errorf("CoverageColor(%d) = %q, want %q", percent, got, want)
		}
	}
}

func TestLanguages(t *testing.T) {
	got := Languages([]string{"Go", "Elixir"})
	want := "![Go](https://img.shields.io/badge/Go--00ADD8?style=flat-square&logo=go) " +
		"![Elixir](https://img.shields.io/badge/Elixir--blue?style=flat-square)"
	if got != want {
		t.Errorf("Languages() = %q, want %q", got, want)
	}

	if Languages(nil) != "" {
		t.Error("Languages(nil) should be empty")
	}
}

func TestSet(t *testing.T) {
	t.Run("build only", func(t *testing.T) {
		out := Set(SetConfig{Username: "a", Repo: "b"})
		lines := strings.Split(out, "\n")
		if len(lines) != 1 {
			t.Fatalf("got %d lines, want 1: %q", len(lines), out)
		}
		if !strings.Contains(lines[0], "a/b") {
			t.Errorf("build badge %q does not reference a/b", lines[0])
		}
	})

	t.Run("package adds two lines", func(t *testing.T) {
		base := strings.Split(Set(SetConfig{Username: "a", Repo: "b"}), "\n")
		lines := strings.Split(Set(SetConfig{Username: "a", Repo: "b", PackageName: "pkg"}), "\n")
		if len(lines) != len(base)+2 {
			t.Fatalf("got %d lines, want %d", len(lines), len(base)+2)
		}
		for _, line := range lines[1:] {
			if !strings.Contains(line, "pkg") {
				t.Errorf("line %q does not reference pkg", line)
			}
		}
	})

	t.Run("full ordering", func(t *testing.T) {
		out := Set(SetConfig{
			Username:    "a",
			Repo:        "b",
			PackageName: "pkg",
			License:     "MIT",
			Languages:   []string{"Go", "Rust"},
		})
		lines := strings.Split(out, "\n")
		want := []string{
			Build("a", "b", ""),
			Version("pkg"),
			Downloads("pkg"),
			License("MIT"),
			Languages([]string{"Go", "Rust"}),
		}
		if diff := cmp.Diff(want, lines); diff != "" {
			t.Errorf("Set() mismatch (-want +got):\n%s", diff)
		}
	})
}
