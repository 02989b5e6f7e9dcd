// Package practicedir encapsulates all path knowledge for the .sadhguru/
// project directory. It provides a Dir value object with accessors for the
// config file, user scenario scripts, and local runtime state.
package practicedir

import (
	"os"
	"path/filepath"
	"sort"
)

// DefaultRoot is the directory name used when none is given.
const DefaultRoot = ".sadhguru"

// Dir is a value object that resolves paths within a .sadhguru/ directory.
type Dir struct {
	root string
}

// New creates a Dir rooted at the given path. The path is converted to an
// absolute path. No I/O is performed; use EnsureStructure to create the
// directory layout.
func New(root string) Dir {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}

	return Dir{root: abs}
}

// Root returns the absolute path to the .sadhguru/ directory.
func (d Dir) Root() string { return d.root }

// ConfigPath returns the path to the main config file.
func (d Dir) ConfigPath() string { return filepath.Join(d.root, "config.yaml") }

// ScenariosDir returns the path to the user scenario scripts.
func (d Dir) ScenariosDir() string { return filepath.Join(d.root, "scenarios") }

// LocalDir returns the path to the local (gitignored) runtime state directory.
func (d Dir) LocalDir() string { return filepath.Join(d.root, "local") }

// LogPath returns the default log file inside local/.
func (d Dir) LogPath() string { return filepath.Join(d.root, "local", "sadhguru.log") }

// GitignorePath returns the path to the .gitignore file inside .sadhguru/.
func (d Dir) GitignorePath() string { return filepath.Join(d.root, ".gitignore") }

// Scenarios returns sorted paths of all *.yaml files in the scenarios
// directory (non-recursive). Returns nil if the directory does not exist.
func (d Dir) Scenarios() []string {
	matches, err := filepath.Glob(filepath.Join(d.ScenariosDir(), "*.yaml"))
	if err != nil || len(matches) == 0 {
		return nil
	}

	sort.Strings(matches)

	return matches
}

// Exists reports whether the .sadhguru/ root directory exists on disk.
func (d Dir) Exists() bool {
	info, err := os.Stat(d.root)

	return err == nil && info.IsDir()
}
