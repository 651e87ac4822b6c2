package termr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/gocl/clterm"
)

// Reduce performs a single leftmost-outermost reduction step on t and returns
// the resulting term. The redex is the one HasRedex finds. If t has no redex,
// t itself is returned.
//
// Reduction works on the application spine [h a1 … am] of t:
//
//   - h is a combinator of arity n ≤ m: the first n+1 elements are replaced by
//     the instantiated rule body b, i.e. [h a1 … an] ⇒ b and
//     [h a1 … an an+1 … am] ⇒ [b an+1 … am].
//   - h is any other atom: the tail [a1 … am] is reduced as a spine of its own
//     and h is put in front of the result.
//   - h is an application: it is flattened into the spine, ((f a) b) ≡ (f a b),
//     and reduction continues on the flat spine.
//
// The result shares no nodes with t.
func Reduce(t *clterm.Term, env clterm.Environment) *clterm.Term {
	if !HasRedex(t, env) {
		return t
	}
	spine := []*clterm.Term{t.Clone()}
	if t.IsList() {
		spine = spine[0].Children()
	}
	r := &reducer{env: env}
	return r.step(spine)
}

type reducer struct {
	env clterm.Environment
}

// step reduces spine w by one step and returns the resulting term.
func (r *reducer) step(w []*clterm.Term) *clterm.Term {
	if len(w) == 0 {
		return clterm.Empty()
	}
	head, tail := w[0], w[1:]
	switch head.Kind() {
	case clterm.AtomKind:
		if c, ok := r.env.Lookup(head.Name()); ok && len(tail) >= c.Arity {
			tracer().Debugf("firing %s on %d of %d arguments", c.Name, c.Arity, len(tail))
			body := c.Body.Instantiate(tail[:c.Arity])
			if len(tail) > c.Arity {
				return clterm.List(concat([]*clterm.Term{body}, tail[c.Arity:])...)
			}
			return body
		}
		rest := r.step(tail)
		if rest.IsList() {
			return clterm.List(concat([]*clterm.Term{head}, rest.Children())...)
		}
		return clterm.List(head, rest)
	case clterm.ListKind:
		return r.step(concat(head.Children(), tail))
	}
	return r.step(tail)
}
