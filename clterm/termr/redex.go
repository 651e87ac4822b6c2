package termr

import (
	"github.com/npillmayer/gocl/clterm"
)

// HasRedex reports whether some suffix of t's application spine starts with a
// combinator applied to at least as many arguments as its arity.
//
// The spine is scanned from left to right. A combinator head with enough
// arguments is a redex; any other atom is skipped. A nested list in head
// position is flattened into the spine, as ((f a) b) ≡ (f a b).
func HasRedex(t *clterm.Term, env clterm.Environment) bool {
	spine := []*clterm.Term{t}
	if t.IsList() {
		spine = t.Children()
	}
	for len(spine) > 0 {
		head := spine[0]
		switch head.Kind() {
		case clterm.AtomKind:
			if c, ok := env.Lookup(head.Name()); ok && len(spine)-1 >= c.Arity {
				tracer().Debugf("redex %s with %d arguments", head.Name(), len(spine)-1)
				return true
			}
			spine = spine[1:]
		case clterm.ListKind:
			spine = concat(head.Children(), spine[1:])
		default:
			spine = spine[1:]
		}
	}
	return false
}

// concat returns a fresh slice containing a followed by b.
func concat(a, b []*clterm.Term) []*clterm.Term {
	s := make([]*clterm.Term, 0, len(a)+len(b))
	s = append(s, a...)
	return append(s, b...)
}
