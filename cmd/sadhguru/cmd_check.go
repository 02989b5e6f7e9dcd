package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/lessons"
	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/practicedir"
	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/scenario"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [script.yaml...]",
		Short: "Replay scenario scripts and verify the resulting sessions",
		Long: `Replay scenario scripts against fresh sessions and report which
expectations hold.

Without arguments, the built-in scenarios run followed by every script in
<dir>/scenarios/.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, cleanup, err := setup(cmd, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer cleanup()

			scripts, err := collectScripts(cmd, args)
			if err != nil {
				return err
			}

			return runScripts(cmd.OutOrStdout(), eng.Catalog(), scripts)
		},
	}
}

func collectScripts(cmd *cobra.Command, args []string) ([]scenario.Script, error) {
	paths := args
	var scripts []scenario.Script

	if len(args) == 0 {
		builtin, err := scenario.Builtin()
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, builtin...)

		dir, _ := cmd.Flags().GetString("dir")
		paths = practicedir.New(dir).Scenarios()
	}

	for _, p := range paths {
		s, err := scenario.LoadFile(p)
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, s...)
	}
	return scripts, nil
}

// runScripts prints one line per script plus its failures and returns an
// error when any script failed.
func runScripts(w io.Writer, catalog lessons.Catalog, scripts []scenario.Script) error {
	var failed int
	for _, s := range scripts {
		res, err := scenario.Run(catalog, s)
		if err != nil {
			failed++
			fmt.Fprintf(w, "ERROR %s\n      %v\n", s.Name, err)
			continue
		}
		if res.Passed() {
			fmt.Fprintf(w, "PASS  %s\n", s.Name)
			continue
		}
		failed++
		fmt.Fprintf(w, "FAIL  %s\n", s.Name)
		for _, f := range res.Failures {
			fmt.Fprintf(w, "      %s\n", f)
		}
	}

	fmt.Fprintf(w, "\n%d scenarios, %d failed\n", len(scripts), failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(scripts))
	}
	return nil
}
