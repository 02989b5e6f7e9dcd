package main

import (
	"context"
	"io"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sushantdantal07-hub/network-sadhguru-practice/cmd/sadhguru/internal/app"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the terminal practice UI (default command)",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
}

func runTUI(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// The UI owns the terminal, so logs only go to a configured file.
	eng, log, cleanup, err := setup(cmd, io.Discard)
	if err != nil {
		return err
	}
	defer cleanup()

	ctrl, err := eng.NewSession()
	if err != nil {
		return err
	}
	defer eng.RemoveSession(ctrl.ID())

	log.Info("practice ui started", "session", ctrl.ID())

	model := app.New(ctrl, eng.Config().Form)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	_, err = p.Run()
	return err
}
