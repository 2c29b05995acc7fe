package filetype

import "errors"

var (
	// ErrInvalidDefinition is returned when a file type definition is malformed.
	ErrInvalidDefinition = errors.New("invalid file type definition")

	// ErrScript is returned when a Lua file type script fails.
	ErrScript = errors.New("file type script failed")
)
