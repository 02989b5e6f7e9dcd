package main

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/engine"
	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/practicedir"
)

// loadDotEnv loads environment variables from path. Missing files are ignored.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// resolveConfigPath picks the config file: explicit flag, then
// <dir>/config.yaml, then sadhguru.yaml. It returns "" when none exists so
// that defaults apply.
func resolveConfigPath(explicit, dirPath string) string {
	if explicit != "" {
		return explicit
	}

	candidates := []string{practicedir.New(dirPath).ConfigPath(), "sadhguru.yaml"}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}

// loadConfig resolves the configuration for cmd, honoring its flags.
func loadConfig(cmd *cobra.Command) (engine.Config, error) {
	explicit, _ := cmd.Flags().GetString("config")
	dir, _ := cmd.Flags().GetString("dir")

	return engine.LoadConfig(resolveConfigPath(explicit, dir), cmd.Flags())
}

// setup loads the config and builds the logger and engine. Logs go to the
// configured file, or to fallback when none is set. The returned cleanup
// closes the engine and the log file.
func setup(cmd *cobra.Command, fallback io.Writer) (*engine.Engine, *slog.Logger, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}

	log, closeLog, err := engine.NewLogger(cfg.Log, fallback)
	if err != nil {
		return nil, nil, nil, err
	}

	eng, err := engine.New(cfg, log)
	if err != nil {
		_ = closeLog()
		return nil, nil, nil, err
	}

	cleanup := func() {
		_ = eng.Close()
		_ = closeLog()
	}
	return eng, log, cleanup, nil
}
