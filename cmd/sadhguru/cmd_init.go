package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/engine"
	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/lessons"
	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/practicedir"
)

// initAnswers are the wizard fields, kept as strings the way huh inputs
// produce them.
type initAnswers struct {
	LogLevel        string
	InitialTopic    string
	FormAddress     string
	RegistrationKey string //nolint:gosec // practice value, not a secret
	ServerAddr      string
	MaxSessions     string
}

func defaultAnswers() initAnswers {
	def := engine.DefaultConfig()
	return initAnswers{
		LogLevel:        def.Log.Level,
		InitialTopic:    def.Lessons.InitialTopic,
		FormAddress:     def.Form.Address,
		RegistrationKey: def.Form.RegistrationKey,
		ServerAddr:      def.Server.Addr,
		MaxSessions:     strconv.Itoa(def.Server.MaxSessions),
	}
}

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a .sadhguru directory with a config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			useDefaults, _ := cmd.Flags().GetBool("defaults")

			answers := defaultAnswers()
			if !useDefaults {
				if err := runInitWizard(&answers); err != nil {
					return err
				}
			}

			data, err := buildInitConfig(answers)
			if err != nil {
				return err
			}

			d := practicedir.New(dir)
			if err := practicedir.BootstrapWithConfig(d, data); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s\n", d.Root())
			return nil
		},
	}

	cmd.Flags().Bool("defaults", false, "skip the wizard and write the default config")

	return cmd
}

func runInitWizard(a *initAnswers) error {
	topicOpts := make([]huh.Option[string], 0)
	for _, l := range lessons.Default().Lessons() {
		topicOpts = append(topicOpts, huh.NewOption(l.Title, string(l.Topic)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Starting lesson").
				Options(topicOpts...).
				Value(&a.InitialTopic),
			huh.NewSelect[string]().
				Title("Log level").
				Options(
					huh.NewOption("Debug", "debug"),
					huh.NewOption("Info", "info"),
					huh.NewOption("Warn", "warn"),
					huh.NewOption("Error", "error"),
				).
				Value(&a.LogLevel),
		),
		huh.NewGroup(
			huh.NewInput().Title("Device address pre-filled in the add form").Value(&a.FormAddress).Validate(requireNonEmpty),
			huh.NewInput().Title("Registration key pre-filled in the add form").Value(&a.RegistrationKey).Validate(requireNonEmpty),
		),
		huh.NewGroup(
			huh.NewInput().Title("Websocket listen address").Value(&a.ServerAddr).Validate(requireNonEmpty),
			huh.NewInput().Title("Max concurrent sessions (0 = unlimited)").Value(&a.MaxSessions).Validate(validateNonNegativeInt),
		),
	).Run()
}

func requireNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validateNonNegativeInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return fmt.Errorf("must be a non-negative integer")
	}
	return nil
}

// buildInitConfig turns wizard answers into a validated config YAML.
func buildInitConfig(a initAnswers) ([]byte, error) {
	maxSessions, err := strconv.Atoi(strings.TrimSpace(a.MaxSessions))
	if err != nil {
		return nil, fmt.Errorf("max sessions: %w", err)
	}

	cfg := engine.Config{
		Log:     engine.LogConfig{Level: a.LogLevel},
		Lessons: engine.LessonsConfig{InitialTopic: a.InitialTopic},
		Form: engine.FormConfig{
			Address:         strings.TrimSpace(a.FormAddress),
			RegistrationKey: strings.TrimSpace(a.RegistrationKey),
		},
		Server: engine.ServerConfig{
			Addr:        strings.TrimSpace(a.ServerAddr),
			MaxSessions: maxSessions,
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}
