// Package logic decides entailment between propositional-logic sentences.
//
// Sentences are built programmatically from symbols and the usual connectives,
// or parsed from text with Parse. A knowledge base is, by convention, an And
// whose operands are the individual constraints of a domain.
//
// For example, the knowledge base
//
//	(a -> b) & a
//
// is built with the following code:
//
//	kb := And(Implication(Symbol("a"), Symbol("b")), Symbol("a"))
//
// and ModelCheck(kb, Symbol("b")) returns true: every model satisfying kb also
// satisfies b.
//
// Entailment is decided by enumerating all the 2^n models over the n symbols
// referenced by the knowledge base and the query. This is only suitable for
// small domains, typically logic puzzles involving a handful of symbols.
package logic
