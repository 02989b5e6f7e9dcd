package main

import (
	"github.com/spf13/cobra"

	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/practicedir"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sadhguru",
		Short: "Practice onboarding a firewall appliance to its manager",
		Long: `sadhguru is a hands-on simulator for onboarding a threat defense
appliance to its management center. Work through a lesson checklist,
type diagnostic commands at a mock CLI, register and approve devices in a
mock management console, and watch graphical actions echo as CLI.

Running sadhguru without a command starts the terminal practice UI.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			envFile, _ := cmd.Flags().GetString("env")
			return loadDotEnv(envFile)
		},
		RunE: runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "path to configuration file (default: .sadhguru/config.yaml or sadhguru.yaml)")
	pf.String("dir", practicedir.DefaultRoot, "path to .sadhguru directory")
	pf.String("env", ".env", "path to .env file (ignored if missing)")
	pf.String("log-level", "", "log level: debug, info, warn or error")
	pf.String("log-file", "", "write logs to this file")
	pf.String("lessons", "", "load the lesson catalog from this YAML file")
	pf.String("topic", "", "lesson to start on")

	rootCmd.AddCommand(
		newRunCmd(),
		newServeCmd(),
		newMCPCmd(),
		newCheckCmd(),
		newLessonsCmd(),
		newInitCmd(),
	)

	return rootCmd
}
