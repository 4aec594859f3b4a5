package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/crillab/knights/logic"
)

func (a *app) countCmd() *cobra.Command {
	var satisfiable bool
	cmd := &cobra.Command{
		Use:   "count [sentences...]",
		Short: "Count the models of a sentence",
		Long: `Counts the models of the conjunction of the given sentences, over the symbols they reference.
With --sat, prints SATISFIABLE and a model, or UNSATISFIABLE, instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := logic.ParseString(strings.Join(args, ";"))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			nbSymbols := len(logic.Symbols(s))
			a.logger.Debug("enumerating models", zap.Int("nbSymbols", nbSymbols), zap.Int("nbModels", 1<<nbSymbols))
			if !satisfiable {
				printf(out, "%d\n", logic.CountModels(s))
				return nil
			}
			model, ok := logic.Satisfiable(s)
			if !ok {
				printf(out, "UNSATISFIABLE\n")
				return nil
			}
			printf(out, "SATISFIABLE\n")
			printModel(out, model)
			return nil
		},
	}
	cmd.Flags().BoolVar(&satisfiable, "sat", false, "Only look for a model")
	return cmd
}
