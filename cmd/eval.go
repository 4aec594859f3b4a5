package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/crillab/knights/logic"
)

func (a *app) evalCmd() *cobra.Command {
	var bindings map[string]string
	cmd := &cobra.Command{
		Use:   "eval <sentence>",
		Short: "Evaluate a sentence under a model",
		Long: `Evaluates a sentence under the model given with --set.
Every symbol of the sentence must be bound.
Example) knights eval 'a -> b' --set a=true,b=false`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := logic.ParseString(args[0])
			if err != nil {
				return err
			}
			model := make(logic.Model, len(bindings))
			for name, val := range bindings {
				b, err := strconv.ParseBool(val)
				if err != nil {
					return fmt.Errorf("invalid binding %s=%s: %w", name, val, err)
				}
				model[logic.Symbol(name)] = b
			}
			res, err := logic.Evaluate(s, model)
			if err != nil {
				return err
			}
			printf(cmd.OutOrStdout(), "%t\n", res)
			return nil
		},
	}
	cmd.Flags().StringToStringVar(&bindings, "set", nil, "Bindings of the symbols, e.g a=true,b=false")
	return cmd
}
