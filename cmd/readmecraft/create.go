package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/readmecraft/readmecraft/internal/metadata"
	"github.com/readmecraft/readmecraft/internal/sections"
	"github.com/readmecraft/readmecraft/internal/templates"
)

// createDefaults are the project values used when nothing else sets them.
var createDefaults = metadata.Project{
	Name:        "my-project",
	Description: "A great project",
	Author:      "Your Name",
}

func createCmd(c *cli) *cobra.Command {
	var (
		templateName string
		name         string
		description  string
		author       string
		repoURL      string
		out          string
		templateFile string
		templatesDir string
		from         string
		year         string
		compose      bool
		features     string
		roadmap      bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a complete README from a template",
		Long: `Create a complete README from a template.

Templates:
  simple     Minimalist README for small projects (default)
  advanced   Comprehensive README with all sections

Templates in --templates-dir (<name>.md) are available by name and replace
built-in templates of the same name. --template-file renders any file.
--compose skips templates and assembles the README from sections.

Examples:
  readmecraft create --name my-lib
  readmecraft create -t advanced -n my-lib --author "Ada Lovelace" --repo-url https://github.com/ada/my-lib
  readmecraft create --template-file docs/README.tmpl.md --from readme.yaml -o -
  readmecraft create --compose --features "Fast,Small" --roadmap`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stderr := cmd.ErrOrStderr()

			flags := metadata.Project{
				Name:        changed(cmd, "name", name),
				Description: changed(cmd, "description", description),
				Author:      changed(cmd, "author", author),
				RepoURL:     repoURL,
				Year:        year,
				Features:    metadata.SplitList(features),
			}
			p, err := c.resolveProject(createDefaults, from, flags)
			if err != nil {
				return err
			}

			dest := out
			if !cmd.Flags().Changed("output") {
				dest = c.cfg.OutputPath()
			}

			if compose {
				c.title(stderr, "Composing README...")
				readme := sections.Complete(p.ProjectInfo(), sections.CompleteOptions{
					Features:       p.Features,
					IncludeRoadmap: roadmap,
				})
				if err := c.writer(cmd).Write(cmd.Context(), dest, readme); err != nil {
					return err
				}
				c.success(stderr, "README created: %s", describeDest(dest))
				c.info(stderr, "Project: %s", p.Name)
				return nil
			}

			var tmpl *templates.Template
			if templateFile != "" {
				tmpl, err = templates.LoadFile(templateFile)
			} else {
				dir := templatesDir
				if !cmd.Flags().Changed("templates-dir") {
					dir = c.cfg.TemplatesPath()
				}
				tmpl, err = templates.Loader{Dir: dir}.Get(templateName)
			}
			if err != nil {
				return err
			}

			c.title(stderr, "Creating README...")

			vars := p.TemplateVariables()
			if missing := tmpl.Unresolved(vars); len(missing) > 0 {
				c.logger.Warn("placeholders left unresolved", "template", tmpl.Name, "names", strings.Join(missing, ","))
			}

			if err := c.writer(cmd).Write(cmd.Context(), dest, tmpl.Render(vars)); err != nil {
				return err
			}

			c.success(stderr, "README created: %s", describeDest(dest))
			c.info(stderr, "Template: %s", tmpl.Name)
			c.info(stderr, "Project: %s", p.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&templateName, "template", "t", "simple", "Template name (simple, advanced)")
	cmd.Flags().StringVarP(&name, "name", "n", createDefaults.Name, "Project name")
	cmd.Flags().StringVarP(&description, "description", "d", createDefaults.Description, "Project description")
	cmd.Flags().StringVar(&author, "author", createDefaults.Author, "Author name")
	cmd.Flags().StringVar(&repoURL, "repo-url", "", "Repository URL")
	cmd.Flags().StringVarP(&out, "output", "o", "README.md", "Output file, s3://bucket/key, or - for stdout")
	cmd.Flags().StringVar(&templateFile, "template-file", "", "Render this Markdown file instead of a named template")
	cmd.Flags().StringVar(&templatesDir, "templates-dir", "", "Directory of <name>.md templates")
	cmd.Flags().StringVar(&from, "from", "", "Read project metadata from a YAML file")
	cmd.Flags().StringVar(&year, "year", "", "Copyright year (default: current year)")
	cmd.Flags().BoolVar(&compose, "compose", false, "Assemble the README from sections instead of a template")
	cmd.Flags().StringVar(&features, "features", "", "Comma-separated feature list for --compose")
	cmd.Flags().BoolVar(&roadmap, "roadmap", false, "Include a starter roadmap with --compose")

	return cmd
}
