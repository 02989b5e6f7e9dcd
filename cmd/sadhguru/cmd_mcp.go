package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/mcpserver"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve one practice session as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			// stdout carries the protocol; logs go to stderr.
			eng, log, cleanup, err := setup(cmd, os.Stderr)
			if err != nil {
				return err
			}
			defer cleanup()

			ctrl, err := eng.NewSession()
			if err != nil {
				return err
			}

			srv := mcpserver.NewPractice(ctrl, version, mcpserver.WithLogger(log))

			log.Info("mcp server started", "session", ctrl.ID())
			return srv.Serve(ctx, os.Stdin, os.Stdout)
		},
	}
}
