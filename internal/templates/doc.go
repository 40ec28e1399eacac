// Package templates provides the README templates documents are created from.
//
// Two templates are built in:
//
//   - simple: Minimalist README for small projects
//   - advanced: Comprehensive README with all sections
//
// A Loader with a directory adds every <name>.md file in it as a template; a
// file named after a built-in template replaces it.
//
// # Usage
//
//	tmpl, err := templates.Get("simple")
//	if err != nil {
//	    return err
//	}
//	readme := tmpl.Render(project.TemplateVariables())
//
// # Template Variables
//
// Built-in templates use these placeholders:
//
//	{{projectName}}   - Name of the project
//	{{description}}   - Project description
//	{{author}}        - Author name
//	{{year}}          - Copyright year, the current year by default
//	{{repoUrl}}       - Repository URL
//	{{repoLink}}      - Repository URL, or "#" without one
//	{{repoPath}}      - "owner/repo" from a GitHub URL
//	{{authorHandle}}  - Author lowercased without whitespace
package templates
