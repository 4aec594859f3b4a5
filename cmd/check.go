package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/crillab/knights/logic"
)

type checkOptions struct {
	knowledge     []string
	knowledgeFile string
	counterModel  bool
}

func (a *app) checkCmd() *cobra.Command {
	var opts checkOptions
	cmd := &cobra.Command{
		Use:   "check [queries...]",
		Short: "Check whether a knowledge base entails queries",
		Long: `Checks, for each query, whether it is entailed by the knowledge base made of the
--knowledge sentences and of the content of --file.
Example) knights check -k 'rain -> wet' -k rain wet`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd, opts, args)
		},
	}
	cmd.Flags().StringArrayVarP(&opts.knowledge, "knowledge", "k", nil, "Sentence of the knowledge base (can be repeated)")
	cmd.Flags().StringVarP(&opts.knowledgeFile, "file", "f", "", "File holding sentences of the knowledge base, separated by ';'")
	cmd.Flags().BoolVar(&opts.counterModel, "counter-model", false, "Print a counter-model for queries that are not entailed")
	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, opts checkOptions, args []string) error {
	knowledge, err := readKnowledge(opts)
	if err != nil {
		return err
	}
	checker := a.checker()
	out := cmd.OutOrStdout()
	for _, arg := range args {
		query, err := logic.ParseString(arg)
		if err != nil {
			return fmt.Errorf("could not parse query %q: %w", arg, err)
		}
		model, err := checker.Refute(cmd.Context(), knowledge, query)
		if err != nil {
			return err
		}
		if model == nil {
			a.colors.fact.Fprintf(out, "%s: entailed\n", arg)
			continue
		}
		a.colors.warn.Fprintf(out, "%s: not entailed\n", arg)
		if opts.counterModel {
			printModel(out, model)
		}
	}
	return nil
}

func readKnowledge(opts checkOptions) (logic.Sentence, error) {
	var subs []logic.Sentence
	if opts.knowledgeFile != "" {
		f, err := os.Open(opts.knowledgeFile)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", opts.knowledgeFile, err)
		}
		defer f.Close()
		kb, err := logic.ParseKnowledge(f)
		if err != nil {
			return nil, fmt.Errorf("could not parse %q: %w", opts.knowledgeFile, err)
		}
		conjuncts, _ := logic.Conjuncts(kb)
		subs = append(subs, conjuncts...)
	}
	for _, k := range opts.knowledge {
		s, err := logic.ParseString(k)
		if err != nil {
			return nil, fmt.Errorf("could not parse knowledge %q: %w", k, err)
		}
		subs = append(subs, s)
	}
	return logic.And(subs...), nil
}

// printModel prints the bindings of model, sorted by symbol name.
func printModel(w io.Writer, model logic.Model) {
	keys := make([]string, 0, len(model))
	for sym := range model {
		keys = append(keys, sym.Name())
	}
	sort.Strings(keys)
	for _, k := range keys {
		printf(w, "    %s: %t\n", k, model[logic.Symbol(k)])
	}
}
