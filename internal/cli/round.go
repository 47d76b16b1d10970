package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newRoundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "round",
		Short: "Round commands",
	}

	cmd.AddCommand(newRoundNewCmd())
	cmd.AddCommand(newRoundGetCmd())
	cmd.AddCommand(newRoundSelectCmd())
	cmd.AddCommand(newRoundHintCmd())
	cmd.AddCommand(newRoundAbandonCmd())

	return cmd
}

func newRoundNewCmd() *cobra.Command {
	var (
		language  string
		gridSize  int
		wordCount int
		words     []string
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new round",
		Long: `Create a new round on the server.

Without --words the server samples words from its pool for the chosen
language. The response includes the answer key, since whoever creates
the round is hosting the puzzle.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{}
			if language != "" {
				req["language"] = language
			}
			if gridSize > 0 {
				req["grid_size"] = gridSize
			}
			if wordCount > 0 {
				req["word_count"] = wordCount
			}
			if len(words) > 0 {
				req["words"] = words
			}

			var result Round
			if err := client.Post("/api/v1/rounds", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "", "Word pool language (default: en)")
	cmd.Flags().IntVarP(&gridSize, "size", "s", 0, "Grid size (default: 9)")
	cmd.Flags().IntVarP(&wordCount, "count", "c", 0, "Number of words to sample (default: 6)")
	cmd.Flags().StringSliceVarP(&words, "words", "w", nil, "Explicit words to place instead of sampling")

	return cmd
}

func newRoundGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a round's current state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Round

			if err := client.Get(fmt.Sprintf("/api/v1/rounds/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRoundSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <id> <row,col> [row,col...]",
		Short: "Submit a selection of grid cells",
		Long: `Submit the cells of a suspected word, in the order you traced them.

Each cell is given as row,col. Example:

  fwgame round select ABC123 0,0 0,1 0,2`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cells := make([]Position, 0, len(args)-1)
			for _, arg := range args[1:] {
				cell, err := parseCell(arg)
				if err != nil {
					return err
				}
				cells = append(cells, cell)
			}

			req := map[string]any{"cells": cells}
			var result Submission

			if err := client.Post(fmt.Sprintf("/api/v1/rounds/%s/selections", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRoundHintCmd() *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:   "hint <id>",
		Short: "Reveal where one unfound word starts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{}
			if strategy != "" {
				req["strategy"] = strategy
			}

			var result Hint
			if err := client.Post(fmt.Sprintf("/api/v1/rounds/%s/hints", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", "", "Hint strategy (default: random)")

	return cmd
}

func newRoundAbandonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "abandon <id>",
		Short: "Give up on a round and reveal the answers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Round

			if err := client.Delete(fmt.Sprintf("/api/v1/rounds/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

// parseCell parses a "row,col" argument
func parseCell(arg string) (Position, error) {
	parts := strings.Split(arg, ",")
	if len(parts) != 2 {
		return Position{}, fmt.Errorf("invalid cell %q: expected row,col", arg)
	}

	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Position{}, fmt.Errorf("invalid row in %q: %w", arg, err)
	}

	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Position{}, fmt.Errorf("invalid col in %q: %w", arg, err)
	}

	return Position{Row: row, Col: col}, nil
}
