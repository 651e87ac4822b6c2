package cllang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/gocl"
	"github.com/npillmayer/gocl/clterm"
)

// --- Errors ----------------------------------------------------------------

// ErrorKind classifies parse errors.
type ErrorKind int8

// Kinds of parse errors.
const (
	TooManyOpenParens ErrorKind = iota + 1
	TooManyCloseParens
	EmptyTerm
)

func (k ErrorKind) String() string {
	switch k {
	case TooManyOpenParens:
		return "Too many open parens"
	case TooManyCloseParens:
		return "Too many close parens"
	case EmptyTerm:
		return "Empty or incomplete empty subterm"
	}
	return "Unknown parse error"
}

// ParseError is the error type returned by Parse. Span locates the offending
// parenthesis or group in the input.
type ParseError struct {
	Kind ErrorKind
	Span gocl.Span
}

func (e *ParseError) Error() string {
	return e.Kind.String()
}

// Is matches parse errors of the same kind, ignoring the span.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}

// Sentinel errors for use with errors.Is.
var (
	ErrTooManyOpenParens  = &ParseError{Kind: TooManyOpenParens}
	ErrTooManyCloseParens = &ParseError{Kind: TooManyCloseParens}
	ErrEmptyTerm          = &ParseError{Kind: EmptyTerm}
)

// --- Parser ----------------------------------------------------------------

// Term    ::=  { Element }
// Element ::=  atom | '(' Term ')'
//
// A group must not be empty. Whitespace-only input is the empty term.

// Parse reads a term in CL notation.
func Parse(input string) (*clterm.Term, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	return parseTokens(tokens)
}

func parseTokens(tokens []CLToken) (*clterm.Term, error) {
	p := &parser{tokens: tokens}
	t, depth, err := p.sequence(0)
	if err != nil {
		return nil, err
	}
	if depth < 0 {
		return nil, &ParseError{Kind: TooManyCloseParens, Span: p.tokens[p.pos-1].Span()}
	}
	if depth > 0 {
		return nil, &ParseError{Kind: TooManyOpenParens, Span: p.opens[0].Span().Extend(p.last().Span())}
	}
	tracer().Debugf("parsed term %s", t)
	return t, nil
}

type parser struct {
	tokens []CLToken
	pos    int
	opens  []CLToken // stack of unmatched open parens
}

func (p *parser) next() CLToken {
	tok := p.tokens[p.pos]
	if tok.TokType() != EOF {
		p.pos++
	}
	return tok
}

func (p *parser) last() CLToken {
	return p.tokens[len(p.tokens)-1]
}

// sequence reads elements up to the next closing paren or the end of input.
// It returns the term read and the nesting depth after it, which is depth-1
// if a closing paren ended the sequence.
func (p *parser) sequence(depth int) (*clterm.Term, int, error) {
	var elems []*clterm.Term
	for {
		tok := p.next()
		switch tok.TokType() {
		case EOF:
			return clterm.List(elems...), depth, nil
		case RParen:
			if len(p.opens) > 0 {
				p.opens = p.opens[:len(p.opens)-1]
			}
			return clterm.List(elems...), depth - 1, nil
		case LParen:
			p.opens = append(p.opens, tok)
			t, d, err := p.sequence(depth + 1)
			if err != nil {
				return nil, d, err
			}
			if t.IsEmpty() {
				span := tok.Span().Extend(p.tokens[p.pos-1].Span())
				return nil, d, &ParseError{Kind: EmptyTerm, Span: span}
			}
			depth = d
			elems = append(elems, t)
		default:
			elems = append(elems, clterm.Atom(tok.Lexeme()))
		}
	}
}
