package cllang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/gocl/clterm"
	"github.com/samber/lo"
)

// ParseDefinition reads a combinator rule of the form
//
//    name p1 … pn = body
//
// The parameters must be distinct atoms. As '=' is a valid character of atoms,
// it has to be separated by whitespace. In the body, occurences of parameter
// pi refer to the i-th argument, every other atom stands for itself:
//
//    B x y z = x (y z)     ⇒   B #0 #1 #2 = #0 (#1 #2)
//    Y f = f (Y f)         ⇒   Y #0 = #0 (Y #0)
//
func ParseDefinition(input string) (clterm.Combinator, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return clterm.Combinator{}, err
	}
	_, eq, found := lo.FindIndexOf(tokens, func(tok CLToken) bool {
		return tok.TokType() == Atom && tok.Lexeme() == "="
	})
	if !found {
		return clterm.Combinator{}, fmt.Errorf("%w: missing '='", clterm.ErrMalformedDefinition)
	}
	lhs := tokens[:eq]
	if len(lhs) == 0 {
		return clterm.Combinator{}, fmt.Errorf("%w: missing combinator name", clterm.ErrMalformedDefinition)
	}
	for _, tok := range lhs {
		if tok.TokType() != Atom {
			return clterm.Combinator{}, fmt.Errorf("%w: unexpected %q left of '='",
				clterm.ErrMalformedDefinition, tok.Lexeme())
		}
	}
	name := lhs[0].Lexeme()
	params := lo.Map(lhs[1:], func(tok CLToken, _ int) string {
		return tok.Lexeme()
	})
	if dups := lo.FindDuplicates(params); len(dups) > 0 {
		return clterm.Combinator{}, fmt.Errorf("%w: %s has duplicate parameter %q",
			clterm.ErrMalformedDefinition, name, dups[0])
	}
	if lo.Contains(params, name) {
		return clterm.Combinator{}, fmt.Errorf("%w: %s used as its own parameter",
			clterm.ErrMalformedDefinition, name)
	}
	body, err := parseTokens(tokens[eq+1:])
	if err != nil {
		return clterm.Combinator{}, fmt.Errorf("%w: body of %s: %v", clterm.ErrMalformedDefinition, name, err)
	}
	if body.IsEmpty() {
		return clterm.Combinator{}, fmt.Errorf("%w: %s has an empty body", clterm.ErrMalformedDefinition, name)
	}
	return clterm.NewCombinator(name, len(params), template(body, params))
}

// template turns a term into a rule body, replacing parameters by slots.
func template(t *clterm.Term, params []string) clterm.Template {
	if t.IsList() {
		return clterm.Group(lo.Map(t.Children(), func(child *clterm.Term, _ int) clterm.Template {
			return template(child, params)
		})...)
	}
	if i := lo.IndexOf(params, t.Name()); i >= 0 {
		return clterm.Slot(i)
	}
	return clterm.Lit(t.Name())
}
