// Package puzzle builds and solves knights-and-knaves puzzles.
//
// Each character of a puzzle is either a knight, who always tells the truth,
// or a knave, who always lies. Solving a puzzle means finding which of the
// candidate symbols ("A is a Knight", "A is a Knave", ...) are entailed by the
// knowledge base built from what the characters said.
//
// Puzzles are either built in Go, as the ones returned by Builtin, or loaded
// from YAML files:
//
//	name: Puzzle 1
//	symbols:
//	  AKnight: A is a Knight
//	  AKnave: A is a Knave
//	  BKnight: B is a Knight
//	  BKnave: B is a Knave
//	constraints:
//	  - AKnight <-> (AKnave & BKnave)
//	  - AKnight | AKnave
//	  - '!(AKnight & AKnave)'
//	  - BKnight | BKnave
//	  - '!(BKnight & BKnave)'
//
// Constraints are written with the syntax accepted by logic.Parse and refer to
// symbols through their alias. Constraints starting with "!" must be quoted,
// or YAML reads them as tags.
package puzzle
