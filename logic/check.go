package logic

import (
	"context"
	"errors"
	"fmt"
	"math/bits"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Stats are statistics about the models enumerated by a Checker.
// They are updated atomically, so a Checker can be shared between goroutines.
type Stats struct {
	NbChecks        int64 // Number of calls to Check or Refute
	NbModels        int64 // Number of complete models evaluated
	NbCounterModels int64 // Number of checks that found a counter-model
}

// A Checker decides entailment by enumerating every model over the symbols
// of the knowledge base and of the query.
// The zero value is a valid, sequential checker.
type Checker struct {
	// Workers is the number of goroutines the enumeration is split between.
	// Values <= 1 mean the enumeration is sequential.
	Workers int
	// Logger receives debug information about counter-models. It can be nil.
	Logger *zap.Logger
	Stats  Stats
}

// errCounterModel stops the other branches of a parallel enumeration
// as soon as one of them found a counter-model.
var errCounterModel = errors.New("counter-model found")

// ModelCheck returns true iff knowledge entails query, i.e iff every model
// that makes knowledge true also makes query true.
func ModelCheck(knowledge, query Sentence) bool {
	var c Checker
	model, _ := c.Refute(context.Background(), knowledge, query)
	return model == nil
}

// Check returns true iff knowledge entails query.
// The only possible error is the one of ctx, if it is done before the enumeration is over.
func (c *Checker) Check(ctx context.Context, knowledge, query Sentence) (bool, error) {
	model, err := c.Refute(ctx, knowledge, query)
	if err != nil {
		return false, err
	}
	return model == nil, nil
}

// Refute looks for a counter-model, i.e a model in which knowledge is true and query is false.
// It returns nil if there is none, meaning knowledge entails query.
// The enumeration stops as soon as a counter-model is found.
// When the enumeration is parallel, which counter-model is returned is not specified.
func (c *Checker) Refute(ctx context.Context, knowledge, query Sentence) (Model, error) {
	mustBeSentences("model check", knowledge, query)
	atomic.AddInt64(&c.Stats.NbChecks, 1)
	symbols := Symbols(knowledge, query)
	var (
		counter Model
		err     error
	)
	if c.Workers <= 1 || len(symbols) == 0 {
		counter, err = c.refuteSeq(ctx, knowledge, query, symbols)
	} else {
		counter, err = c.refutePar(ctx, knowledge, query, symbols)
	}
	if err != nil {
		return nil, fmt.Errorf("could not check %s: %w", query, err)
	}
	if counter != nil {
		atomic.AddInt64(&c.Stats.NbCounterModels, 1)
		c.logger().Debug("found counter-model",
			zap.Stringer("query", query),
			zap.Int("nbSymbols", len(symbols)),
			zap.Any("model", counter))
	}
	return counter, nil
}

func (c *Checker) refuteSeq(ctx context.Context, knowledge, query Sentence, symbols []Symbol) (Model, error) {
	b := newBranch(ctx, knowledge, query, make(Model, len(symbols)))
	enumerate(symbols, b.model, b.visit)
	atomic.AddInt64(&c.Stats.NbModels, b.nbModels)
	return b.counter, b.err
}

// refutePar splits the enumeration on the first symbols, so that there are at least
// as many branches as workers, and explores each branch in its own goroutine.
func (c *Checker) refutePar(ctx context.Context, knowledge, query Sentence, symbols []Symbol) (Model, error) {
	depth := bits.Len(uint(c.Workers - 1))
	if depth > len(symbols) {
		depth = len(symbols)
	}
	prefix, rest := symbols[:depth], symbols[depth:]
	var (
		mu      sync.Mutex
		counter Model
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(c.Workers)
	for i := 0; i < 1<<depth; i++ {
		g.Go(func() error {
			model := make(Model, len(symbols))
			for j, sym := range prefix {
				model[sym] = i&(1<<j) == 0
			}
			b := newBranch(gCtx, knowledge, query, model)
			enumerate(rest, model, b.visit)
			atomic.AddInt64(&c.Stats.NbModels, b.nbModels)
			if b.counter != nil {
				mu.Lock()
				if counter == nil {
					counter = b.counter
				}
				mu.Unlock()
				return errCounterModel
			}
			return b.err
		})
	}
	err := g.Wait()
	if counter != nil {
		return counter, nil
	}
	if err != nil && !errors.Is(err, errCounterModel) {
		return nil, err
	}
	return nil, nil
}

func (c *Checker) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// A branch is a part of the model space explored by a single goroutine.
type branch struct {
	done      <-chan struct{}
	ctx       context.Context
	knowledge Sentence
	query     Sentence
	model     Model
	nbModels  int64
	counter   Model // First counter-model found, if any
	err       error
}

func newBranch(ctx context.Context, knowledge, query Sentence, model Model) *branch {
	return &branch{
		done:      ctx.Done(),
		ctx:       ctx,
		knowledge: knowledge,
		query:     query,
		model:     model,
	}
}

// visit checks a complete model. It returns false when the enumeration must stop.
func (b *branch) visit(model Model) bool {
	select {
	case <-b.done:
		b.err = b.ctx.Err()
		return false
	default:
	}
	b.nbModels++
	if !b.knowledge.Eval(model) || b.query.Eval(model) {
		return true
	}
	b.counter = make(Model, len(model))
	for sym, val := range model {
		b.counter[sym] = val
	}
	return false
}

// enumerate calls visit on each of the 2^len(symbols) extensions of model, depth first,
// the true binding of each symbol being explored before the false one.
// The enumeration stops as soon as visit returns false, in which case enumerate returns false.
// model is modified in place.
func enumerate(symbols []Symbol, model Model, visit func(Model) bool) bool {
	if len(symbols) == 0 {
		return visit(model)
	}
	sym, rest := symbols[0], symbols[1:]
	model[sym] = true
	if !enumerate(rest, model, visit) {
		return false
	}
	model[sym] = false
	return enumerate(rest, model, visit)
}

// Satisfiable returns a model of s and true if s is satisfiable,
// or nil and false if it is a contradiction.
func Satisfiable(s Sentence) (Model, bool) {
	var c Checker
	model, _ := c.Refute(context.Background(), s, Or())
	return model, model != nil
}

// CountModels returns the number of models over Symbols(s) that satisfy s.
func CountModels(s Sentence) int {
	mustBeSentences("count", s)
	nb := 0
	symbols := Symbols(s)
	enumerate(symbols, make(Model, len(symbols)), func(model Model) bool {
		if s.Eval(model) {
			nb++
		}
		return true
	})
	return nb
}

// Evaluate returns the truth value of s under model.
// Contrary to s.Eval, it returns an error wrapping ErrUndefinedSymbol
// rather than panicking when model lacks one of the symbols of s.
func Evaluate(s Sentence, model Model) (val bool, err error) {
	mustBeSentences("evaluate", s)
	defer func() {
		if r := recover(); r != nil {
			undef, ok := r.(*UndefinedSymbolError)
			if !ok {
				panic(r)
			}
			val, err = false, undef
		}
	}()
	return s.Eval(model), nil
}
