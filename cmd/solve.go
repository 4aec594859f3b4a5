package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/crillab/knights/puzzle"
)

func (a *app) solveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve [puzzle files...]",
		Short: "Solve puzzles and print the facts they entail",
		Long: `Solves the given YAML puzzle files and prints, for each of them, the candidate symbols
entailed by its knowledge base. Without arguments, the builtin puzzles and the ones listed
in the configuration file are solved.`,
		RunE: a.runSolve,
	}
}

func (a *app) runSolve(cmd *cobra.Command, args []string) error {
	puzzles, err := a.puzzles(args)
	if err != nil {
		return err
	}
	solver := puzzle.NewSolver(a.checker(), a.logger)
	out := cmd.OutOrStdout()
	for _, p := range puzzles {
		res, err := solver.Solve(cmd.Context(), p)
		switch {
		case errors.Is(err, puzzle.ErrNotImplemented):
			a.colors.printNotImplemented(out, p.Name)
		case err != nil:
			return err
		default:
			a.colors.printResult(out, res)
		}
	}
	stats := solver.Checker.Stats
	a.logger.Info("puzzles solved",
		zap.Int("nbPuzzles", len(puzzles)),
		zap.Int64("nbChecks", stats.NbChecks),
		zap.Int64("nbModels", stats.NbModels))
	return nil
}

// puzzles returns the puzzles stored in the given files or,
// if there are none, the builtin puzzles followed by the ones of the configuration.
func (a *app) puzzles(paths []string) ([]puzzle.Puzzle, error) {
	var res []puzzle.Puzzle
	if len(paths) == 0 {
		res = puzzle.Builtin()
		paths = a.cfg.Puzzles
	}
	for _, path := range paths {
		p, err := puzzle.LoadFile(path)
		if err != nil {
			return nil, err
		}
		a.logger.Debug("puzzle loaded", zap.String("path", path), zap.String("puzzle", p.Name))
		res = append(res, p)
	}
	return res, nil
}

// A palette holds the colors of a single command execution.
// Disabling it leaves the global color.NoColor untouched.
type palette struct {
	title *color.Color
	fact  *color.Color
	warn  *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		title: color.New(color.Bold),
		fact:  color.New(color.FgGreen),
		warn:  color.New(color.FgYellow),
	}
	if !enabled {
		p.title.DisableColor()
		p.fact.DisableColor()
		p.warn.DisableColor()
	}
	return p
}

func (p palette) printResult(w io.Writer, res puzzle.Result) {
	p.title.Fprintln(w, res.Puzzle)
	for _, sym := range res.Entailed {
		p.fact.Fprintf(w, "    %s\n", sym)
	}
}

func (p palette) printNotImplemented(w io.Writer, name string) {
	p.title.Fprintln(w, name)
	p.warn.Fprintf(w, "    %s\n", "Not yet implemented.")
}

func printf(w io.Writer, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(w, format, args...)
}
