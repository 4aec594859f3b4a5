package puzzle

import "github.com/crillab/knights/logic"

var (
	charA = NewCharacter("A")
	charB = NewCharacter("B")
	charC = NewCharacter("C")
)

// Candidates are the symbols checked for every builtin puzzle.
var Candidates = []logic.Symbol{
	charA.Knight, charA.Knave,
	charB.Knight, charB.Knave,
	charC.Knight, charC.Knave,
}

// Builtin returns the four classic knights-and-knaves puzzles.
func Builtin() []Puzzle {
	return []Puzzle{
		{Name: "Puzzle 0", Knowledge: knowledge0(), Candidates: Candidates},
		{Name: "Puzzle 1", Knowledge: knowledge1(), Candidates: Candidates},
		{Name: "Puzzle 2", Knowledge: knowledge2(), Candidates: Candidates},
		{Name: "Puzzle 3", Knowledge: knowledge3(), Candidates: Candidates},
	}
}

// A says "I am both a knight and a knave."
func knowledge0() logic.Sentence {
	var constraints []logic.Sentence
	constraints = append(constraints, charA.Says(logic.And(charA.Knight, charA.Knave))...)
	constraints = append(constraints, charA.Exclusive())
	return logic.And(constraints...)
}

// A says "We are both knaves."
// B says nothing.
func knowledge1() logic.Sentence {
	var constraints []logic.Sentence
	constraints = append(constraints, charA.Says(logic.And(charA.Knave, charB.Knave))...)
	constraints = append(constraints, charA.Exclusive(), charB.Exclusive())
	return logic.And(constraints...)
}

// A says "We are the same kind."
// B says "We are of different kinds."
func knowledge2() logic.Sentence {
	sameKind := logic.Or(logic.And(charA.Knight, charB.Knight), logic.And(charA.Knave, charB.Knave))
	differentKinds := logic.Or(logic.And(charA.Knight, charB.Knave), logic.And(charA.Knave, charB.Knight))
	var constraints []logic.Sentence
	constraints = append(constraints, charA.Says(sameKind)...)
	constraints = append(constraints, charB.Says(differentKinds)...)
	constraints = append(constraints, charA.Exclusive(), charB.Exclusive())
	return logic.And(constraints...)
}

// A says either "I am a knight." or "I am a knave.", but you don't know which.
// B says "A said 'I am a knave'."
// B says "C is a knave."
// C says "A is a knight."
func knowledge3() logic.Sentence {
	aSaysKnight := logic.And(charA.Says(charA.Knight)...)
	aSaysKnave := logic.And(charA.Says(charA.Knave)...)
	var constraints []logic.Sentence
	constraints = append(constraints, logic.Or(aSaysKnight, aSaysKnave))
	constraints = append(constraints, charB.Says(aSaysKnave)...)
	constraints = append(constraints, charB.Says(charC.Knave)...)
	constraints = append(constraints, charC.Says(charA.Knight)...)
	constraints = append(constraints, charA.Exclusive(), charB.Exclusive(), charC.Exclusive())
	return logic.And(constraints...)
}
