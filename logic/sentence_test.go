package logic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	a = Symbol("a")
	b = Symbol("b")
	c = Symbol("c")
)

func TestString(t *testing.T) {
	tests := []struct {
		s        Sentence
		expected string
	}{
		{a, "a"},
		{Not(a), "not(a)"},
		{And(Or(a, Not(b)), Not(c)), "and(or(a, not(b)), not(c))"},
		{Implication(a, Biconditional(b, c)), "implies(a, iff(b, c))"},
		{And(), "and()"},
		{Or(), "or()"},
		{Symbol("A is a Knight"), "A is a Knight"},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, test.s.String())
	}
}

func TestSymbolIdentity(t *testing.T) {
	s1 := Symbol("A is a Knight")
	s2 := Symbol("A is" + " a Knight")
	assert.True(t, s1 == s2)
	set := map[Symbol]bool{s1: true}
	assert.True(t, set[s2], "symbols with the same name must hash equal")
	assert.Equal(t, "A is a Knight", s1.Name())
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(And(a, b), And(b, a)))
	assert.True(t, Equal(Or(a, Not(b), c), Or(c, a, Not(b))))
	assert.True(t, Equal(And(Or(a, b), c), And(c, Or(b, a))))
	assert.True(t, Equal(And(), And()))
	assert.True(t, Equal(Implication(a, b), Implication(a, b)))
	assert.True(t, Equal(Biconditional(a, And(b, c)), Biconditional(a, And(c, b))))

	assert.False(t, Equal(And(a, b), Or(a, b)))
	assert.False(t, Equal(And(a, a), And(a, b)))
	assert.False(t, Equal(And(a, b), And(a, b, b)))
	assert.False(t, Equal(Implication(a, b), Implication(b, a)))
	assert.False(t, Equal(Not(a), a))
	assert.False(t, Equal(a, b))
	assert.False(t, Equal(nil, a))
	assert.False(t, Equal(a, nil))
	assert.True(t, Equal(nil, nil))
}

// wrapped is a Sentence type that is not one of the connectives of this package.
type wrapped struct{ Sentence }

func TestEqualForeignType(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.False(t, Equal(wrapped{a}, a))
		assert.False(t, Equal(a, wrapped{a}))
		assert.False(t, Equal(wrapped{a}, wrapped{a}))
		assert.False(t, Equal(And(wrapped{a}), And(a)))
	})
}

func TestImmutable(t *testing.T) {
	subs := []Sentence{a, b}
	s := And(subs...)
	subs[0] = c
	assert.Equal(t, "and(a, b)", s.String())

	conjuncts, err := Conjuncts(s)
	require.NoError(t, err)
	conjuncts[1] = c
	assert.Equal(t, "and(a, b)", s.String())
}

func TestMalformed(t *testing.T) {
	assert.PanicsWithError(t, "malformed sentence: operand 0 of not is not a sentence", func() { Not(nil) })
	assert.PanicsWithError(t, "malformed sentence: operand 1 of and is not a sentence", func() { And(a, nil, b) })
	assert.PanicsWithError(t, "malformed sentence: operand 2 of or is not a sentence", func() { Or(a, b, nil) })
	assert.PanicsWithError(t, "malformed sentence: operand 1 of implication is not a sentence", func() { Implication(a, nil) })
	assert.PanicsWithError(t, "malformed sentence: operand 0 of biconditional is not a sentence", func() { Biconditional(nil, a) })

	defer func() {
		r := recover()
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrMalformedSentence))
	}()
	And(nil)
}

func TestSymbols(t *testing.T) {
	s := And(Implication(c, Not(a)), Or(b, Biconditional(a, c)))
	assert.Equal(t, []Symbol{a, b, c}, Symbols(s))
	assert.Equal(t, []Symbol{a}, Symbols(Not(Not(a))))
	assert.Equal(t, []Symbol{a, b}, Symbols(a, b, a))
	assert.Empty(t, Symbols(And()))
	assert.Empty(t, Symbols(And(Or(), And())))
}

func TestConjuncts(t *testing.T) {
	conjuncts, err := Conjuncts(And(a, Or(b, c)))
	require.NoError(t, err)
	require.Len(t, conjuncts, 2)
	assert.Equal(t, a, conjuncts[0])
	assert.True(t, Equal(Or(b, c), conjuncts[1]))

	conjuncts, err = Conjuncts(And())
	require.NoError(t, err)
	assert.Empty(t, conjuncts)

	for _, s := range []Sentence{a, Or(a, b), Not(And(a)), Implication(a, b), nil} {
		_, err := Conjuncts(s)
		assert.ErrorIs(t, err, ErrNotConjunction)
	}
}

func TestXor(t *testing.T) {
	for _, f := range []Sentence{Xor(a, b), ExactlyOne(a, b)} {
		assert.True(t, f.Eval(Model{a: true, b: false}))
		assert.True(t, f.Eval(Model{a: false, b: true}))
		assert.False(t, f.Eval(Model{a: true, b: true}))
		assert.False(t, f.Eval(Model{a: false, b: false}))
	}
	assert.Equal(t, 3, CountModels(ExactlyOne(a, b, c)))
	assert.Equal(t, 4, CountModels(ExactlyOne(a, b, c, Symbol("d"))))
}
