package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/readmecraft/readmecraft/internal/metadata"
	"github.com/readmecraft/readmecraft/internal/sections"
)

// sectionDefaults are the project values used when nothing else sets them.
var sectionDefaults = metadata.Project{
	Name:        "my-project",
	Description: "A great project",
}

func sectionCmd(c *cli) *cobra.Command {
	var (
		name        string
		description string
		author      string
		repoURL     string
		out         string
		from        string
	)

	cmd := &cobra.Command{
		Use:   "section <type>",
		Short: "Generate a specific README section",
		Long: `Generate a single README section.

Types: ` + strings.Join(sections.Types(), ", ") + `

Examples:
  readmecraft section installation --name my-lib
  readmecraft section contributing --repo-url https://github.com/me/my-lib
  readmecraft section license --author "Ada Lovelace" -o LICENSE.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := metadata.Project{
				Name:        changed(cmd, "name", name),
				Description: changed(cmd, "description", description),
				Author:      author,
				RepoURL:     repoURL,
			}
			p, err := c.resolveProject(sectionDefaults, from, flags)
			if err != nil {
				return err
			}

			md, err := sections.Generate(args[0], p.ProjectInfo())
			if err != nil {
				return err
			}

			if err := c.writer(cmd).Write(cmd.Context(), out, md); err != nil {
				return err
			}
			if out != "" {
				c.success(cmd.ErrOrStderr(), "Section saved to %s", describeDest(out))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", sectionDefaults.Name, "Project name")
	cmd.Flags().StringVarP(&description, "description", "d", sectionDefaults.Description, "Project description")
	cmd.Flags().StringVar(&author, "author", "", "Author name")
	cmd.Flags().StringVar(&repoURL, "repo-url", "", "Repository URL")
	cmd.Flags().StringVarP(&out, "output", "o", "", "Output file or s3://bucket/key (default: stdout)")
	cmd.Flags().StringVar(&from, "from", "", "Read project metadata from a YAML file")

	return cmd
}
