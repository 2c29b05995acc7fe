package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"
	FieldLines = "lines"

	// Session fields.
	FieldSession  = "session"
	FieldMode     = "mode"
	FieldFileType = "filetype"
	FieldCommand  = "command"
	FieldKey      = "key"

	// Document fields.
	FieldLine   = "line"
	FieldCol    = "col"
	FieldTarget = "target"

	// Configuration fields.
	FieldConfig = "config"
	FieldLevel  = "level"
	FieldScript = "script"
)
