package filetype

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed filetypes.yaml
var builtinYAML []byte

// File is the top-level layout of a file type YAML document.
type File struct {
	FileTypes []Definition `yaml:"filetypes"`
}

// ParseYAML decodes and compiles every definition in data.
func ParseYAML(data []byte) ([]*FileType, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}

	out := make([]*FileType, 0, len(file.FileTypes))
	for _, def := range file.FileTypes {
		ft, err := def.Compile()
		if err != nil {
			return nil, err
		}
		out = append(out, ft)
	}
	return out, nil
}

// Builtin returns the built-in file types.
func Builtin() ([]*FileType, error) {
	return ParseYAML(builtinYAML)
}
