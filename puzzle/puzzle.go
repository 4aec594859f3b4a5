package puzzle

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/crillab/knights/logic"
)

// ErrNotImplemented is returned when solving a puzzle whose knowledge base holds no constraint yet.
var ErrNotImplemented = errors.New("not yet implemented")

// A Puzzle is a knowledge base and the symbols whose entailment must be checked.
type Puzzle struct {
	Name       string
	Knowledge  logic.Sentence // By convention, a conjunction of constraints
	Candidates []logic.Symbol
}

// A Character is someone who is either a knight or a knave.
type Character struct {
	Name   string
	Knight logic.Symbol
	Knave  logic.Symbol
}

// NewCharacter returns the character with the given name.
func NewCharacter(name string) Character {
	return Character{
		Name:   name,
		Knight: logic.Symbol(name + " is a Knight"),
		Knave:  logic.Symbol(name + " is a Knave"),
	}
}

// Exclusive states the character is either a knight or a knave, but not both.
func (c Character) Exclusive() logic.Sentence {
	return logic.Xor(c.Knight, c.Knave)
}

// Says returns the constraints implied by the character saying statement:
// if the statement is true, the character is a knight, else it is a knave.
func (c Character) Says(statement logic.Sentence) []logic.Sentence {
	return []logic.Sentence{
		logic.Implication(statement, c.Knight),
		logic.Implication(logic.Not(statement), c.Knave),
	}
}

// A Result lists the candidates entailed by the knowledge base of a puzzle.
type Result struct {
	Puzzle   string
	Entailed []logic.Symbol
}

// A Solver solves puzzles by model checking.
type Solver struct {
	Checker *logic.Checker
	Logger  *zap.Logger
}

// NewSolver returns a solver that checks entailment with checker.
// logger can be nil.
func NewSolver(checker *logic.Checker, logger *zap.Logger) *Solver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Solver{Checker: checker, Logger: logger}
}

// Solve returns the candidates of p entailed by its knowledge base, in the order of p.Candidates.
// If the knowledge base holds no constraint, ErrNotImplemented is returned.
// The knowledge base of p must be a conjunction.
func (s *Solver) Solve(ctx context.Context, p Puzzle) (Result, error) {
	res := Result{Puzzle: p.Name}
	conjuncts, err := logic.Conjuncts(p.Knowledge)
	if err != nil {
		return res, fmt.Errorf("invalid knowledge base for %q: %w", p.Name, err)
	}
	if len(conjuncts) == 0 {
		return res, ErrNotImplemented
	}
	s.Logger.Debug("solving puzzle",
		zap.String("puzzle", p.Name),
		zap.Int("nbConstraints", len(conjuncts)),
		zap.Int("nbCandidates", len(p.Candidates)))
	for _, candidate := range p.Candidates {
		ok, err := s.Checker.Check(ctx, p.Knowledge, candidate)
		if err != nil {
			return res, fmt.Errorf("could not solve %q: %w", p.Name, err)
		}
		if ok {
			res.Entailed = append(res.Entailed, candidate)
		}
	}
	s.Logger.Debug("puzzle solved",
		zap.String("puzzle", p.Name),
		zap.Stringers("entailed", res.Entailed))
	return res, nil
}
