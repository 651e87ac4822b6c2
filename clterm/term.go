package clterm

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/exp/slices"
)

// Kind is the variant of a term.
type Kind int8

// Term variants
const (
	EmptyKind Kind = iota // no term at all
	AtomKind              // an opaque identifier
	ListKind              // left-associated application of two or more terms
)

func (k Kind) String() string {
	switch k {
	case EmptyKind:
		return "Empty"
	case AtomKind:
		return "Atom"
	case ListKind:
		return "List"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Term is a node of a CL expression tree. A nil *Term is treated as the empty term.
//
// Terms form strict trees: a list exclusively owns its children.
type Term struct {
	kind     Kind
	name     string  // name of an atom
	children []*Term // children of a list, len ≥ 2
}

// emptyTerm is shared, as it carries no data.
var emptyTerm = &Term{kind: EmptyKind}

// Empty returns the empty term.
func Empty() *Term {
	return emptyTerm
}

// Atom creates an atom. An empty name results in the empty term.
func Atom(name string) *Term {
	if name == "" {
		return emptyTerm
	}
	return &Term{kind: AtomKind, name: name}
}

// List creates an application list of children. Empty children are dropped.
// A list without children is the empty term, a list with a single child is
// the child itself.
//
//     List()                     ⇒  Empty
//     List(Atom("x"))            ⇒  x
//     List(Atom("x"), Atom("y")) ⇒  x y
//
func List(children ...*Term) *Term {
	ch := make([]*Term, 0, len(children))
	for _, c := range children {
		if !c.IsEmpty() {
			ch = append(ch, c)
		}
	}
	switch len(ch) {
	case 0:
		return emptyTerm
	case 1:
		return ch[0]
	}
	return &Term{kind: ListKind, children: ch}
}

// Kind returns the variant of t.
func (t *Term) Kind() Kind {
	if t == nil {
		return EmptyKind
	}
	return t.kind
}

// IsEmpty is a predicate: is t the empty term?
func (t *Term) IsEmpty() bool {
	return t.Kind() == EmptyKind
}

// IsAtom is a predicate: is t an atom?
func (t *Term) IsAtom() bool {
	return t.Kind() == AtomKind
}

// IsList is a predicate: is t an application list?
func (t *Term) IsList() bool {
	return t.Kind() == ListKind
}

// Name returns the name of an atom, or "" for other terms.
func (t *Term) Name() string {
	if t.IsAtom() {
		return t.name
	}
	return ""
}

// Len returns the number of children of a list, or 0 for other terms.
func (t *Term) Len() int {
	if t.IsList() {
		return len(t.children)
	}
	return 0
}

// Child returns the i-th child of a list. Returns the empty term if i is out of range.
func (t *Term) Child(i int) *Term {
	if !t.IsList() || i < 0 || i >= len(t.children) {
		return emptyTerm
	}
	return t.children[i]
}

// Children returns the children of a list as a fresh slice. Callers may modify
// the slice, but not the child terms.
func (t *Term) Children() []*Term {
	if !t.IsList() {
		return nil
	}
	return slices.Clone(t.children)
}

// Equal compares two terms structurally.
func (t *Term) Equal(other *Term) bool {
	if t.Kind() != other.Kind() {
		return false
	}
	switch t.Kind() {
	case AtomKind:
		return t.name == other.name
	case ListKind:
		return slices.EqualFunc(t.children, other.children, func(a, b *Term) bool {
			return a.Equal(b)
		})
	}
	return true
}

// Clone returns a deep copy of t.
func (t *Term) Clone() *Term {
	switch t.Kind() {
	case AtomKind:
		return &Term{kind: AtomKind, name: t.name}
	case ListKind:
		ch := make([]*Term, len(t.children))
		for i, c := range t.children {
			ch[i] = c.Clone()
		}
		return &Term{kind: ListKind, children: ch}
	}
	return emptyTerm
}

// Dump is a debugging helper, writing an indented tree of t to the tracer.
func (t *Term) Dump(level tracing.TraceLevel) {
	var b strings.Builder
	dumpTerm(&b, t, 0)
	for _, line := range strings.Split(strings.TrimRight(b.String(), "\n"), "\n") {
		switch level {
		case tracing.LevelError:
			tracer().Errorf("%s", line)
		case tracing.LevelInfo:
			tracer().Infof("%s", line)
		default:
			tracer().Debugf("%s", line)
		}
	}
}

func dumpTerm(b *strings.Builder, t *Term, indent int) {
	b.WriteString(strings.Repeat("  ", indent))
	switch t.Kind() {
	case EmptyKind:
		b.WriteString("<empty>\n")
	case AtomKind:
		b.WriteString(t.name)
		b.WriteString("\n")
	case ListKind:
		fmt.Fprintf(b, "(%d)\n", len(t.children))
		for _, c := range t.children {
			dumpTerm(b, c, indent+1)
		}
	}
}
