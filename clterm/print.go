package clterm

import (
	"strings"

	"github.com/samber/lo"
)

// String returns the canonical textual form of a term. Atoms are printed
// verbatim, the empty term as "". The children of a list are separated by
// single spaces; children which are lists themselves are put in parentheses,
// the outermost list is not:
//
//     S x y z  ⇒  x z (y z)
//
// Output of String() parses back into an equal term.
func (t *Term) String() string {
	return termString(t, false)
}

func termString(t *Term, nested bool) string {
	switch t.Kind() {
	case AtomKind:
		return t.name
	case ListKind:
		parts := lo.Map(t.children, func(c *Term, _ int) string {
			return termString(c, true)
		})
		if nested {
			return "(" + strings.Join(parts, " ") + ")"
		}
		return strings.Join(parts, " ")
	}
	return ""
}
