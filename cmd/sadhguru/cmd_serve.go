package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/wsapi"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve practice sessions over websockets",
		Long: `Serve one isolated practice session per websocket connection.

Endpoints:
  GET /session   send intent envelopes, receive session views
  GET /watch     stream session events (?session=<id> to filter)
  GET /healthz   liveness and open session count`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			eng, log, cleanup, err := setup(cmd, os.Stderr)
			if err != nil {
				return err
			}
			defer cleanup()

			origins, _ := cmd.Flags().GetStringSlice("origin")
			srv := wsapi.New(eng, wsapi.WithLogger(log), wsapi.WithOriginPatterns(origins...))

			return srv.ListenAndServe(ctx, eng.Config().Server.Addr)
		},
	}

	cmd.Flags().String("addr", "", "listen address (default from config server.addr)")
	cmd.Flags().StringSlice("origin", nil, "allowed browser origin host patterns")

	return cmd
}
