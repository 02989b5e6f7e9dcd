package scenario

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtin returns the scripts shipped with the simulator, in file order.
func Builtin() ([]Script, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("scenario: builtin: %w", err)
	}

	var scripts []Script
	for _, e := range entries {
		data, err := fs.ReadFile(builtinFS, "builtin/"+e.Name())
		if err != nil {
			return nil, fmt.Errorf("scenario: builtin: %w", err)
		}
		s, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("scenario: builtin %s: %w", e.Name(), err)
		}
		scripts = append(scripts, s...)
	}
	return scripts, nil
}
