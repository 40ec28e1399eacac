// Package errors provides structured, actionable error messages for readmecraft.
//
// Every failure a command can report is registered under a short code so
// that the CLI and the preview server describe it the same way:
//
//   - E001: a required flag is missing
//   - E002: unknown section type
//   - E003: unknown template
//   - E004: template file could not be read
//   - E005: output could not be written
//   - E006: metadata file is invalid
//   - E007: configuration is invalid
//   - E008: publishing to object storage failed
//   - E009: preview rendering failed
//
// # Usage
//
//	err := errors.New("E004").
//	    WithPath("docs/README.tmpl.md").
//	    WithSuggestion("Check the --template-file path").
//	    Wrap(readErr)
//
//	fmt.Fprint(os.Stderr, err.Format())
//	// Output:
//	// ERROR E004: Failed to load template
//	//
//	//   docs/README.tmpl.md
//	//
//	//   Hint: Check the --template-file path
//
// Unresolved placeholders are never reported through this package; they are
// left in the output verbatim.
package errors
