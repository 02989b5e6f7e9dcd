package practicedir

import (
	"errors"
	"fmt"
	"os"
)

const gitignoreContent = "local/\n"

// EnsureStructure creates the local/ and scenarios/ directories and the
// .gitignore file if they are missing. It is safe to call multiple times. It
// does NOT create the .sadhguru/ root itself.
func EnsureStructure(d Dir) error {
	for _, dir := range []string{d.LocalDir(), d.ScenariosDir()} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("practicedir: create %s: %w", dir, err)
		}
	}

	if err := ensureFile(d.GitignorePath(), []byte(gitignoreContent)); err != nil {
		return fmt.Errorf("practicedir: gitignore: %w", err)
	}

	return nil
}

// BootstrapWithConfig creates the directory layout and writes configYAML as
// the config file. An existing config file is left untouched.
func BootstrapWithConfig(d Dir, configYAML []byte) error {
	if err := os.MkdirAll(d.Root(), 0o750); err != nil {
		return fmt.Errorf("practicedir: create root: %w", err)
	}

	if err := EnsureStructure(d); err != nil {
		return err
	}

	if err := ensureFile(d.ConfigPath(), configYAML); err != nil {
		return fmt.Errorf("practicedir: config: %w", err)
	}

	return nil
}

// ensureFile writes data to path unless the file already exists.
func ensureFile(path string, data []byte) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}
