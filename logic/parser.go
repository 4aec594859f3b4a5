package logic

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/scanner"
)

// A ParseOption customizes the way sentences are parsed.
type ParseOption func(*parser)

// WithSymbols makes the parser resolve identifiers through table.
// Identifiers absent from table are rejected.
// This is useful when symbol names are not valid identifiers,
// e.g "A is a Knight" can be referred to as AKnight.
func WithSymbols(table map[string]Symbol) ParseOption {
	return func(p *parser) { p.table = table }
}

type parser struct {
	s     scanner.Scanner
	tok   rune             // Last token read
	token string           // Text of the last token read, with multi-char operators merged
	pos   scanner.Position // Position of the last token read
	table map[string]Symbol
	err   error // First error reported by the scanner
}

// Parse parses a sentence from the given input Reader.
// Sentences are written using the following operators (from lowest to highest priority) :
//
// - for a biconditional, the "<->" operator,
// - for an implication, the "->" operator,
// - for a disjunction ("or"), the "|" operator,
// - for a conjunction ("and"), the "&" operator,
// - for a negation, the "!" unary operator.
//
// Parentheses can be used to group subsentences. "<->" and "->" are right-associative.
// Symbols are either identifiers or double-quoted strings, e.g "A is a Knight".
// Several sentences can be separated by ";": the result is then their conjunction.
func Parse(r io.Reader, opts ...ParseOption) (Sentence, error) {
	subs, err := newParser(r, opts).parseAll()
	if err != nil {
		return nil, err
	}
	switch len(subs) {
	case 0:
		return nil, fmt.Errorf("expected sentence, found EOF")
	case 1:
		return subs[0], nil
	default:
		return And(subs...), nil
	}
}

// ParseKnowledge parses a knowledge base, i.e a list of sentences separated by ";".
// The result is always a conjunction, possibly an empty one if r holds no sentence.
func ParseKnowledge(r io.Reader, opts ...ParseOption) (Sentence, error) {
	subs, err := newParser(r, opts).parseAll()
	if err != nil {
		return nil, err
	}
	return And(subs...), nil
}

// ParseString is like Parse, but reads the sentence from str.
func ParseString(str string, opts ...ParseOption) (Sentence, error) {
	return Parse(strings.NewReader(str), opts...)
}

func newParser(r io.Reader, opts []ParseOption) *parser {
	p := &parser{}
	p.s.Init(r)
	p.s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanStrings | scanner.ScanComments | scanner.SkipComments
	p.s.Error = func(s *scanner.Scanner, msg string) {
		if p.err == nil {
			p.err = fmt.Errorf("%s at %s", msg, s.Pos())
		}
	}
	for _, opt := range opts {
		opt(p)
	}
	p.scan()
	return p
}

func (p *parser) eof() bool { return p.tok == scanner.EOF }

func (p *parser) scan() {
	if p.eof() && p.token != "" {
		return
	}
	p.tok = p.s.Scan()
	p.pos = p.s.Position
	p.token = p.s.TokenText()
	switch p.tok {
	case '-':
		if p.s.Peek() == '>' {
			p.s.Next()
			p.token = "->"
		}
	case '<':
		if p.s.Peek() == '-' {
			p.s.Next()
			p.token = "<-"
			if p.s.Peek() == '>' {
				p.s.Next()
				p.token = "<->"
			}
		}
	case scanner.EOF:
		p.token = "EOF"
	}
}

func (p *parser) errorf(format string, args ...interface{}) error {
	if p.err != nil {
		return p.err
	}
	return fmt.Errorf(format+" at %s", append(args, p.pos)...)
}

func (p *parser) isOperator() bool {
	if p.tok == scanner.String {
		return false
	}
	switch p.token {
	case "<->", "->", "|", "&", ";", ")":
		return true
	}
	return false
}

func (p *parser) parseAll() ([]Sentence, error) {
	var res []Sentence
	for !p.eof() {
		if p.tok == ';' {
			p.scan()
			continue
		}
		f, err := p.parseEquiv()
		if err != nil {
			return nil, err
		}
		res = append(res, f)
		if !p.eof() && p.tok != ';' {
			return nil, p.errorf("unexpected token %q", p.token)
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	return res, nil
}

func (p *parser) parseEquiv() (Sentence, error) {
	f, err := p.parseImplies()
	if err != nil {
		return nil, err
	}
	if p.token != "<->" {
		return f, nil
	}
	p.scan()
	f2, err := p.parseEquiv()
	if err != nil {
		return nil, err
	}
	return Biconditional(f, f2), nil
}

func (p *parser) parseImplies() (Sentence, error) {
	f, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.token != "->" {
		return f, nil
	}
	p.scan()
	f2, err := p.parseImplies()
	if err != nil {
		return nil, err
	}
	return Implication(f, f2), nil
}

func (p *parser) parseOr() (Sentence, error) {
	f, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	subs := []Sentence{f}
	for p.tok == '|' {
		p.scan()
		f, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		subs = append(subs, f)
	}
	if len(subs) == 1 {
		return subs[0], nil
	}
	return Or(subs...), nil
}

func (p *parser) parseAnd() (Sentence, error) {
	f, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	subs := []Sentence{f}
	for p.tok == '&' {
		p.scan()
		f, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		subs = append(subs, f)
	}
	if len(subs) == 1 {
		return subs[0], nil
	}
	return And(subs...), nil
}

func (p *parser) parseNot() (Sentence, error) {
	if p.tok != '!' {
		return p.parseBasic()
	}
	p.scan()
	f, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	return Not(f), nil
}

func (p *parser) parseBasic() (Sentence, error) {
	switch {
	case p.eof():
		return nil, p.errorf("expected sentence, found EOF")
	case p.isOperator():
		return nil, p.errorf("unexpected token %q", p.token)
	case p.tok == '(':
		p.scan()
		f, err := p.parseEquiv()
		if err != nil {
			return nil, err
		}
		if p.tok != ')' {
			return nil, p.errorf("expected closing parenthesis, found %q", p.token)
		}
		p.scan()
		return f, nil
	case p.tok == scanner.Ident:
		return p.symbol(p.token)
	case p.tok == scanner.String:
		name, err := strconv.Unquote(p.token)
		if err != nil {
			return nil, p.errorf("invalid symbol %s", p.token)
		}
		return p.symbol(name)
	default:
		return nil, p.errorf("unexpected token %q", p.token)
	}
}

// symbol resolves name and reads the next token.
func (p *parser) symbol(name string) (Sentence, error) {
	if name == "" {
		return nil, p.errorf("empty symbol name")
	}
	sym := Symbol(name)
	if p.table != nil {
		var ok bool
		if sym, ok = p.table[name]; !ok {
			return nil, p.errorf("unknown symbol %q", name)
		}
	}
	p.scan()
	return sym, nil
}
