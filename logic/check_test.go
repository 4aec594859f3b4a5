package logic

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var (
	aKnight = Symbol("A is a Knight")
	aKnave  = Symbol("A is a Knave")
	bKnight = Symbol("B is a Knight")
	bKnave  = Symbol("B is a Knave")
)

// allModels returns every model over syms, built independently of enumerate.
func allModels(syms []Symbol) []Model {
	res := make([]Model, 0, 1<<len(syms))
	for mask := 0; mask < 1<<len(syms); mask++ {
		m := make(Model, len(syms))
		for i, sym := range syms {
			m[sym] = mask&(1<<i) != 0
		}
		res = append(res, m)
	}
	return res
}

func referenceEntails(knowledge, query Sentence) bool {
	for _, m := range allModels(Symbols(knowledge, query)) {
		if knowledge.Eval(m) && !query.Eval(m) {
			return false
		}
	}
	return true
}

func randomSentence(r *rand.Rand, syms []Symbol, depth int) Sentence {
	if depth == 0 || r.Intn(4) == 0 {
		return syms[r.Intn(len(syms))]
	}
	subs := func() []Sentence {
		res := make([]Sentence, r.Intn(4))
		for i := range res {
			res[i] = randomSentence(r, syms, depth-1)
		}
		return res
	}
	switch r.Intn(5) {
	case 0:
		return Not(randomSentence(r, syms, depth-1))
	case 1:
		return And(subs()...)
	case 2:
		return Or(subs()...)
	case 3:
		return Implication(randomSentence(r, syms, depth-1), randomSentence(r, syms, depth-1))
	default:
		return Biconditional(randomSentence(r, syms, depth-1), randomSentence(r, syms, depth-1))
	}
}

func testSymbols(n int) []Symbol {
	res := make([]Symbol, n)
	for i := range res {
		res[i] = Symbol(fmt.Sprintf("s%d", i))
	}
	return res
}

func TestEvalIdentities(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	syms := testSymbols(4)
	for i := 0; i < 200; i++ {
		s1 := randomSentence(r, syms, 4)
		s2 := randomSentence(r, syms, 4)
		for _, m := range allModels(syms) {
			assert.Equal(t, s1.Eval(m), Not(Not(s1)).Eval(m), "double negation of %s", s1)
			assert.Equal(t, Or(Not(s1), s2).Eval(m), Implication(s1, s2).Eval(m), "material implication %s -> %s", s1, s2)
			assert.Equal(t, s1.Eval(m) == s2.Eval(m), Biconditional(s1, s2).Eval(m))
			assert.True(t, And().Eval(m))
			assert.False(t, Or().Eval(m))
		}
	}
}

func TestEvalUndefined(t *testing.T) {
	s := And(a, Or(b, c))
	assert.PanicsWithError(t, `undefined symbol: model lacks binding for "b"`, func() {
		s.Eval(Model{a: true, c: true})
	})
	_, err := Evaluate(s, Model{a: true})
	assert.ErrorIs(t, err, ErrUndefinedSymbol)
	var undef *UndefinedSymbolError
	require.ErrorAs(t, err, &undef)
	assert.Equal(t, b, undef.Symbol)

	val, err := Evaluate(s, Model{a: true, b: false, c: true})
	require.NoError(t, err)
	assert.True(t, val)
}

func TestModelCheckReference(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for n := 1; n <= 6; n++ {
		syms := testSymbols(n)
		for i := 0; i < 100; i++ {
			knowledge := And(randomSentence(r, syms, 3), randomSentence(r, syms, 3))
			queries := []Sentence{
				randomSentence(r, syms, 3),
				syms[r.Intn(n)],
				Not(syms[r.Intn(n)]),
				Or(knowledge, randomSentence(r, syms, 2)),
			}
			for _, query := range queries {
				expected := referenceEntails(knowledge, query)
				assert.Equal(t, expected, ModelCheck(knowledge, query), "%s |= %s", knowledge, query)
			}
		}
	}
}

func TestModelCheckKnightOrKnave(t *testing.T) {
	says := And(aKnight, aKnave)
	knowledge := And(
		Implication(says, aKnight),
		Implication(Not(says), aKnave),
		Xor(aKnight, aKnave),
	)
	assert.True(t, ModelCheck(knowledge, aKnave))
	assert.False(t, ModelCheck(knowledge, aKnight))
}

func TestModelCheckSameKind(t *testing.T) {
	sameKind := Or(And(aKnight, bKnight), And(aKnave, bKnave))
	differentKinds := Or(And(aKnight, bKnave), And(aKnave, bKnight))
	knowledge := And(
		Implication(sameKind, aKnight),
		Implication(Not(sameKind), aKnave),
		Implication(differentKinds, bKnight),
		Implication(Not(differentKinds), bKnave),
		Xor(aKnight, aKnave),
		Xor(bKnight, bKnave),
	)
	for _, workers := range []int{0, 1, 2, 3, 8} {
		checker := Checker{Workers: workers}
		for sym, expected := range map[Symbol]bool{aKnave: true, bKnight: true, aKnight: false, bKnave: false} {
			ok, err := checker.Check(context.Background(), knowledge, sym)
			require.NoError(t, err)
			assert.Equal(t, expected, ok, "%s with %d workers", sym, workers)
		}
	}
}

func TestModelCheckEdgeCases(t *testing.T) {
	assert.True(t, ModelCheck(And(), And()), "empty knowledge entails the empty conjunction")
	assert.False(t, ModelCheck(And(), Or()), "empty knowledge does not entail a contradiction")
	assert.True(t, ModelCheck(And(), Or(a, Not(a))), "empty knowledge entails tautologies")
	assert.False(t, ModelCheck(And(), a))
	assert.True(t, ModelCheck(And(a, Not(a)), b), "a contradiction entails everything")
	assert.True(t, ModelCheck(a, a))
}

func TestNbModels(t *testing.T) {
	for _, workers := range []int{1, 4} {
		for k := 0; k <= 10; k++ {
			syms := testSymbols(k)
			subs := make([]Sentence, k)
			for i, sym := range syms {
				subs[i] = Or(sym, Not(sym))
			}
			checker := Checker{Workers: workers}
			// A tautology is entailed, so every model is enumerated.
			ok, err := checker.Check(context.Background(), And(), And(subs...))
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, int64(1)<<k, checker.Stats.NbModels, "%d symbols, %d workers", k, workers)
			assert.Equal(t, int64(1), checker.Stats.NbChecks)
			assert.Zero(t, checker.Stats.NbCounterModels)
		}
	}
}

func TestShortCircuit(t *testing.T) {
	syms := testSymbols(8)
	all := make([]Sentence, len(syms))
	for i, sym := range syms {
		all[i] = sym
	}
	// Every symbol is bound to true in the first model, which is a counter-model.
	var checker Checker
	ok, err := checker.Check(context.Background(), And(), Not(And(all...)))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, int64(1), checker.Stats.NbModels)
	assert.Equal(t, int64(1), checker.Stats.NbCounterModels)

	checker = Checker{Workers: 4}
	ok, err = checker.Check(context.Background(), And(), And(all...))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Less(t, checker.Stats.NbModels, int64(1)<<len(syms))
}

func TestRefute(t *testing.T) {
	checker := Checker{Logger: zaptest.NewLogger(t)}
	model, err := checker.Refute(context.Background(), Or(a, b), a)
	require.NoError(t, err)
	require.NotNil(t, model)
	assert.Equal(t, Model{a: false, b: true}, model)

	model, err = checker.Refute(context.Background(), And(a, b), a)
	require.NoError(t, err)
	assert.Nil(t, model)
}

func TestCheckCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, workers := range []int{1, 4} {
		checker := Checker{Workers: workers}
		_, err := checker.Check(ctx, And(a, b), Or(a, b, c))
		assert.ErrorIs(t, err, context.Canceled)
	}
}

func TestSatisfiable(t *testing.T) {
	model, ok := Satisfiable(And(a, Not(b), Implication(a, c)))
	require.True(t, ok)
	assert.Equal(t, Model{a: true, b: false, c: true}, model)

	model, ok = Satisfiable(And(a, Not(a)))
	assert.False(t, ok)
	assert.Nil(t, model)

	_, ok = Satisfiable(And())
	assert.True(t, ok)
}

func TestCountModels(t *testing.T) {
	assert.Equal(t, 1, CountModels(And()))
	assert.Equal(t, 0, CountModels(Or()))
	assert.Equal(t, 1, CountModels(And(a, b)))
	assert.Equal(t, 3, CountModels(Or(a, b)))
	assert.Equal(t, 2, CountModels(Biconditional(a, b)))
	assert.Equal(t, 8, CountModels(Or(a, Not(a), And(b, c))))
}
