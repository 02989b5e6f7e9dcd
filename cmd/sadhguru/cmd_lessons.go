package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/sushantdantal07-hub/network-sadhguru-practice/pkg/lessons"
)

func newLessonsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lessons",
		Short: "List the practice lessons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			catalog := lessons.Default()
			if cfg.Lessons.File != "" {
				if catalog, err = lessons.LoadFile(cfg.Lessons.File); err != nil {
					return err
				}
			}

			steps, _ := cmd.Flags().GetBool("steps")
			printLessons(cmd.OutOrStdout(), catalog, steps)
			return nil
		},
	}

	cmd.Flags().Bool("steps", false, "also list each lesson's steps")

	return cmd
}

func printLessons(w io.Writer, catalog lessons.Catalog, withSteps bool) {
	header := []string{"TOPIC", "TITLE", "STEPS", "ACTIONS"}
	rows := [][]string{header}
	for _, l := range catalog.Lessons() {
		actions := "-"
		if len(l.Actions) > 0 {
			actions = strings.Join(l.Actions, ", ")
		}
		rows = append(rows, []string{string(l.Topic), l.Title, fmt.Sprint(len(l.Steps)), actions})
	}

	widths := make([]int, len(header))
	for _, r := range rows {
		for i, cell := range r {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	lessonList := catalog.Lessons()
	for i, r := range rows {
		var b strings.Builder
		for j, cell := range r {
			if j == len(r)-1 {
				b.WriteString(cell)
				break
			}
			b.WriteString(runewidth.FillRight(cell, widths[j]+2))
		}
		fmt.Fprintln(w, b.String())

		if withSteps && i > 0 {
			for _, s := range lessonList[i-1].Steps {
				fmt.Fprintf(w, "    %s\n", s)
			}
		}
	}
}
