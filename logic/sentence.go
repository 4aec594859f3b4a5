package logic

import (
	"sort"
	"strings"
)

// A Sentence is a propositional-logic formula.
// The set of sentence types is closed: only the types defined in this package
// implement it.
type Sentence interface {
	// Eval returns the truth value of the sentence under the given model.
	// It panics with an *UndefinedSymbolError if one of the symbols
	// of the sentence has no binding in the model.
	Eval(model Model) bool
	String() string
	// collect adds all the symbols referenced by the sentence to set.
	collect(set map[Symbol]struct{})
}

// A Model associates symbols with their truth value.
type Model map[Symbol]bool

// A Symbol is an atomic proposition.
// Two symbols with the same name denote the same proposition.
type Symbol string

// Name returns the name of the symbol.
func (s Symbol) Name() string { return string(s) }

func (s Symbol) String() string { return string(s) }

// Eval returns the binding of s in model.
func (s Symbol) Eval(model Model) bool {
	b, ok := model[s]
	if !ok {
		panic(&UndefinedSymbolError{Symbol: s})
	}
	return b
}

func (s Symbol) collect(set map[Symbol]struct{}) { set[s] = struct{}{} }

// Not represents a negation. It negates the given subsentence.
func Not(s Sentence) Sentence {
	mustBeSentences("not", s)
	return not{s}
}

type not [1]Sentence

func (n not) String() string                  { return "not(" + n[0].String() + ")" }
func (n not) Eval(model Model) bool           { return !n[0].Eval(model) }
func (n not) collect(set map[Symbol]struct{}) { n[0].collect(set) }

// And generates a conjunction of subsentences.
// An empty conjunction is always true.
func And(subs ...Sentence) Sentence {
	mustBeSentences("and", subs...)
	return and(clone(subs))
}

type and []Sentence

func (a and) String() string { return "and(" + join(a) + ")" }

func (a and) Eval(model Model) bool {
	for _, s := range a {
		if !s.Eval(model) {
			return false
		}
	}
	return true
}

func (a and) collect(set map[Symbol]struct{}) {
	for _, s := range a {
		s.collect(set)
	}
}

// Or generates a disjunction of subsentences.
// An empty disjunction is always false.
func Or(subs ...Sentence) Sentence {
	mustBeSentences("or", subs...)
	return or(clone(subs))
}

type or []Sentence

func (o or) String() string { return "or(" + join(o) + ")" }

func (o or) Eval(model Model) bool {
	for _, s := range o {
		if s.Eval(model) {
			return true
		}
	}
	return false
}

func (o or) collect(set map[Symbol]struct{}) {
	for _, s := range o {
		s.collect(set)
	}
}

// Implication indicates the antecedent implies the consequent.
func Implication(antecedent, consequent Sentence) Sentence {
	mustBeSentences("implication", antecedent, consequent)
	return implication{antecedent: antecedent, consequent: consequent}
}

type implication struct {
	antecedent Sentence
	consequent Sentence
}

func (i implication) String() string {
	return "implies(" + i.antecedent.String() + ", " + i.consequent.String() + ")"
}

func (i implication) Eval(model Model) bool {
	return !i.antecedent.Eval(model) || i.consequent.Eval(model)
}

func (i implication) collect(set map[Symbol]struct{}) {
	i.antecedent.collect(set)
	i.consequent.collect(set)
}

// Biconditional indicates two subsentences are equivalent.
func Biconditional(left, right Sentence) Sentence {
	mustBeSentences("biconditional", left, right)
	return biconditional{left: left, right: right}
}

type biconditional struct {
	left  Sentence
	right Sentence
}

func (b biconditional) String() string {
	return "iff(" + b.left.String() + ", " + b.right.String() + ")"
}

func (b biconditional) Eval(model Model) bool {
	return b.left.Eval(model) == b.right.Eval(model)
}

func (b biconditional) collect(set map[Symbol]struct{}) {
	b.left.collect(set)
	b.right.collect(set)
}

// Xor indicates exactly one of the two given subsentences is true.
func Xor(s1, s2 Sentence) Sentence {
	return And(Or(s1, s2), Not(And(s1, s2)))
}

// ExactlyOne indicates exactly one of the given subsentences is true.
// The number of generated constraints is quadratic in len(subs).
func ExactlyOne(subs ...Sentence) Sentence {
	res := make([]Sentence, 1, 1+len(subs)*(len(subs)-1)/2)
	res[0] = Or(subs...)
	for i := 0; i < len(subs)-1; i++ {
		for j := i + 1; j < len(subs); j++ {
			res = append(res, Or(Not(subs[i]), Not(subs[j])))
		}
	}
	return And(res...)
}

// Symbols returns the symbols referenced by the given sentences, sorted by name.
func Symbols(sentences ...Sentence) []Symbol {
	set := make(map[Symbol]struct{})
	for _, s := range sentences {
		mustBeSentences("symbols", s)
		s.collect(set)
	}
	res := make([]Symbol, 0, len(set))
	for sym := range set {
		res = append(res, sym)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

// Conjuncts returns the top-level constraints of a knowledge base,
// i.e the operands of the given And.
// An error wrapping ErrNotConjunction is returned for any other kind of sentence.
func Conjuncts(s Sentence) ([]Sentence, error) {
	a, ok := s.(and)
	if !ok {
		return nil, &notConjunctionError{s: s}
	}
	return clone(a), nil
}

type notConjunctionError struct {
	s Sentence
}

func (e *notConjunctionError) Error() string {
	if e.s == nil {
		return ErrNotConjunction.Error() + ": <nil>"
	}
	return ErrNotConjunction.Error() + ": " + e.s.String()
}

func (e *notConjunctionError) Unwrap() error { return ErrNotConjunction }

// Equal returns true iff s1 and s2 are structurally identical.
// Operands of conjunctions and disjunctions are compared regardless of their order.
// Values of any type not built by this package are never equal to anything.
func Equal(s1, s2 Sentence) bool {
	switch s1 := s1.(type) {
	case Symbol:
		s2, ok := s2.(Symbol)
		return ok && s1 == s2
	case not:
		s2, ok := s2.(not)
		return ok && Equal(s1[0], s2[0])
	case and:
		s2, ok := s2.(and)
		return ok && sameOperands(s1, s2)
	case or:
		s2, ok := s2.(or)
		return ok && sameOperands(s1, s2)
	case implication:
		s2, ok := s2.(implication)
		return ok && Equal(s1.antecedent, s2.antecedent) && Equal(s1.consequent, s2.consequent)
	case biconditional:
		s2, ok := s2.(biconditional)
		return ok && Equal(s1.left, s2.left) && Equal(s1.right, s2.right)
	case nil:
		return s2 == nil
	default:
		return false
	}
}

// sameOperands returns true iff subs2 is a permutation of subs1, modulo Equal.
// Since Equal is an equivalence relation, matching each operand greedily is enough.
func sameOperands(subs1, subs2 []Sentence) bool {
	if len(subs1) != len(subs2) {
		return false
	}
	used := make([]bool, len(subs2))
next:
	for _, s1 := range subs1 {
		for j, s2 := range subs2 {
			if !used[j] && Equal(s1, s2) {
				used[j] = true
				continue next
			}
		}
		return false
	}
	return true
}

func clone(subs []Sentence) []Sentence {
	res := make([]Sentence, len(subs))
	copy(res, subs)
	return res
}

func join(subs []Sentence) string {
	strs := make([]string, len(subs))
	for i, s := range subs {
		strs[i] = s.String()
	}
	return strings.Join(strs, ", ")
}
