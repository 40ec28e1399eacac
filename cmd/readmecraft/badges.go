package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/readmecraft/readmecraft/internal/badges"
	"github.com/readmecraft/readmecraft/internal/errors"
	"github.com/readmecraft/readmecraft/internal/metadata"
)

func badgesCmd(c *cli) *cobra.Command {
	var (
		username  string
		repo      string
		pkg       string
		license   string
		languages string
		out       string
		from      string
	)

	cmd := &cobra.Command{
		Use:   "badges",
		Short: "Generate badges for your README",
		Long: `Generate shields.io badges for your README.

The build badge is always included. Version and download badges are added
for --package, a license badge for --license, and one line of language
badges for --languages.

Examples:
  readmecraft badges -u octocat -r hello-world
  readmecraft badges -u octocat -r hello-world -p hello-world -l MIT --languages Go,Rust
  readmecraft badges --from readme.yaml -o BADGES.md`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := metadata.Project{
				Username:    username,
				Repo:        repo,
				PackageName: pkg,
				License:     license,
				Languages:   metadata.SplitList(languages),
			}
			p, err := c.resolveProject(metadata.Project{}, from, flags)
			if err != nil {
				return err
			}

			cfg := p.BadgeConfig()
			var missing []string
			if cfg.Username == "" {
				missing = append(missing, "--username")
			}
			if cfg.Repo == "" {
				missing = append(missing, "--repo")
			}
			if len(missing) > 0 {
				return errors.New("E001").
					WithDetail("Missing required option: " + strings.Join(missing, ", ")).
					WithSuggestion("readmecraft badges --username <name> --repo <repo>")
			}

			if err := c.writer(cmd).Write(cmd.Context(), out, badges.Set(cfg)+"\n"); err != nil {
				return err
			}
			if out != "" {
				c.success(cmd.ErrOrStderr(), "Badges saved to %s", describeDest(out))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "GitHub username (required)")
	cmd.Flags().StringVarP(&repo, "repo", "r", "", "Repository name (required)")
	cmd.Flags().StringVarP(&pkg, "package", "p", "", "npm package name")
	cmd.Flags().StringVarP(&license, "license", "l", "", "License type")
	cmd.Flags().StringVar(&languages, "languages", "", "Comma-separated list of languages")
	cmd.Flags().StringVarP(&out, "output", "o", "", "Output file or s3://bucket/key (default: stdout)")
	cmd.Flags().StringVar(&from, "from", "", "Read project metadata from a YAML file")

	return cmd
}
