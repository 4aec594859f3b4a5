package logic

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedSentence is the error wrapped by panics raised when a
	// connective is given an operand that is not a sentence.
	ErrMalformedSentence = errors.New("malformed sentence")
	// ErrUndefinedSymbol is the error wrapped by panics raised when a sentence
	// is evaluated under a model lacking one of its symbols.
	ErrUndefinedSymbol = errors.New("undefined symbol")
	// ErrNotConjunction is returned by Conjuncts when its argument is not an And.
	ErrNotConjunction = errors.New("not a conjunction")
)

// A MalformedError describes a connective built with an invalid operand.
type MalformedError struct {
	Connective string
	Operand    int // index of the invalid operand
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%v: operand %d of %s is not a sentence", ErrMalformedSentence, e.Operand, e.Connective)
}

func (e *MalformedError) Unwrap() error { return ErrMalformedSentence }

// An UndefinedSymbolError describes a symbol that has no binding in a model.
type UndefinedSymbolError struct {
	Symbol Symbol
}

func (e *UndefinedSymbolError) Error() string {
	return fmt.Sprintf("%v: model lacks binding for %q", ErrUndefinedSymbol, string(e.Symbol))
}

func (e *UndefinedSymbolError) Unwrap() error { return ErrUndefinedSymbol }

// mustBeSentences panics if one of the operands is nil.
func mustBeSentences(connective string, operands ...Sentence) {
	for i, op := range operands {
		if op == nil {
			panic(&MalformedError{Connective: connective, Operand: i})
		}
	}
}
