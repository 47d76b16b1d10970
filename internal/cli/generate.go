package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fillword/fillwordgame-go/internal/factory"
	"github.com/fillword/fillwordgame-go/internal/model"
	"github.com/fillword/fillwordgame-go/internal/services/alphabet"
	"github.com/fillword/fillwordgame-go/internal/services/round"
)

func newGenerateCmd() *cobra.Command {
	var (
		language  string
		gridSize  int
		wordCount int
		words     []string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a puzzle locally without a server",
		Long: `Generate a filled word-search grid on this machine, printing the grid
and its answer key. Useful for making printable puzzles.

Without --words, words are sampled from the built-in pool for the
chosen language.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			factoryCfg := factory.Config{}
			if cfg.Verbose {
				factoryCfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
			}

			app, err := factory.New(factoryCfg)
			if err != nil {
				return err
			}

			if language == "" {
				language = alphabet.DefaultLanguage
			}
			if gridSize <= 0 {
				gridSize = round.DefaultGridSize
			}
			if wordCount <= 0 {
				wordCount = round.DefaultWordCount
			}

			if len(words) == 0 {
				if err := app.WordlistService.LoadDefaults(); err != nil {
					return err
				}
				sampled, err := app.WordlistService.Sample(language, wordCount, gridSize)
				if err != nil {
					return err
				}
				words = sampled
			}

			puzzle, err := app.GeneratorService.Generate(words, gridSize, language)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(puzzleFromModel(puzzle))
			return nil
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "", "Word pool language (default: en)")
	cmd.Flags().IntVarP(&gridSize, "size", "s", 0, "Grid size (default: 9)")
	cmd.Flags().IntVarP(&wordCount, "count", "c", 0, "Number of words to sample (default: 6)")
	cmd.Flags().StringSliceVarP(&words, "words", "w", nil, "Explicit words to place instead of sampling")

	return cmd
}

func puzzleFromModel(p *model.Puzzle) Puzzle {
	grid := Grid{Size: p.Grid.Size, Cells: make([][]string, p.Grid.Size)}
	for row := 0; row < p.Grid.Size; row++ {
		grid.Cells[row] = make([]string, p.Grid.Size)
		for col := 0; col < p.Grid.Size; col++ {
			if p.Grid.Cells[row][col] != 0 {
				grid.Cells[row][col] = string(p.Grid.Cells[row][col])
			}
		}
	}

	placements := make([]Placement, 0, len(p.Placements))
	for _, pl := range p.Placements {
		placements = append(placements, Placement{
			Word:      pl.Word,
			Start:     Position{Row: pl.Start.Row, Col: pl.Start.Col},
			Direction: string(pl.Direction),
		})
	}

	return Puzzle{Grid: grid, Placements: placements, Skipped: p.Skipped}
}
