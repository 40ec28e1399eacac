package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	"E001": {
		Category: CategoryCLI,
		Message:  "Missing required argument",
		Detail:   "The command cannot run without the named flags.",
	},
	"E002": {
		Category: CategoryCLI,
		Message:  "Unknown section type",
		Detail:   "Sections are selected by name. Run 'readmecraft section --help' for the list.",
	},
	"E003": {
		Category: CategoryTemplate,
		Message:  "Unknown template",
		Detail:   "Templates are selected by name. Run 'readmecraft templates' for the list.",
	},
	"E004": {
		Category: CategoryTemplate,
		Message:  "Failed to load template",
	},
	"E005": {
		Category: CategoryIO,
		Message:  "Failed to write output",
	},
	"E006": {
		Category: CategoryConfig,
		Message:  "Invalid metadata file",
		Detail:   "Metadata files are YAML documents with top-level project fields.",
	},
	"E007": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
	},
	"E008": {
		Category: CategoryIO,
		Message:  "Failed to publish output",
		Detail:   "Uploading to object storage failed. Credentials are read from the standard AWS environment.",
	},
	"E009": {
		Category: CategoryRender,
		Message:  "Failed to render preview",
	},
	"E010": {
		Category: CategoryCLI,
		Message:  "Invalid option value",
	},
}
