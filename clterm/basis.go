package clterm

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
)

// ErrMalformedDefinition is returned for combinator definitions which cannot be
// used for reduction, e.g. because the rule body references more arguments than
// the combinator receives.
var ErrMalformedDefinition = errors.New("malformed combinator definition")

// --- Combinators -----------------------------------------------------------

// Combinator pairs an arity with a rule body. A combinator fires as soon as it
// is applied to at least Arity arguments.
type Combinator struct {
	Name  string
	Arity int
	Body  Template
}

// NewCombinator creates a combinator definition and checks it for consistency:
// the name must be usable as an atom and every slot of the body must address one
// of the arity arguments, i.e. 0 ≤ slot < arity.
func NewCombinator(name string, arity int, body Template) (Combinator, error) {
	c := Combinator{Name: name, Arity: arity, Body: body}
	if !isAtomName(name) {
		return c, fmt.Errorf("%w: invalid name %q", ErrMalformedDefinition, name)
	}
	if arity < 0 {
		return c, fmt.Errorf("%w: %s has negative arity %d", ErrMalformedDefinition, name, arity)
	}
	if m := body.MaxSlot(); m >= arity {
		return c, fmt.Errorf("%w: %s references argument #%d, arity is %d",
			ErrMalformedDefinition, name, m, arity)
	}
	if body.hasEmptyGroup() {
		return c, fmt.Errorf("%w: %s has an empty group in its body", ErrMalformedDefinition, name)
	}
	if body.minSlot() < 0 {
		return c, fmt.Errorf("%w: %s references a negative argument", ErrMalformedDefinition, name)
	}
	for _, lit := range body.literals() {
		if !isAtomName(lit) {
			return c, fmt.Errorf("%w: %s uses invalid atom %q", ErrMalformedDefinition, name, lit)
		}
	}
	return c, nil
}

func isAtomName(s string) bool {
	return s != "" && !strings.ContainsAny(s, " \t\n\r()")
}

func mustCombinator(name string, arity int, body Template) Combinator {
	c, err := NewCombinator(name, arity, body)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Combinator) String() string {
	var b strings.Builder
	b.WriteString(c.Name)
	for i := 0; i < c.Arity; i++ {
		fmt.Fprintf(&b, " #%d", i)
	}
	b.WriteString(" = ")
	b.WriteString(c.Body.String())
	return b.String()
}

// --- Environments ----------------------------------------------------------

// Environment maps atom names to combinators. Unknown names are not an error,
// they are inert atoms (free variables).
//
// Environments are consulted for every redex check and must not change
// while a term is reduced.
type Environment interface {
	Lookup(name string) (Combinator, bool)
}

// EnvironmentFunc adapts a plain function to the Environment interface.
type EnvironmentFunc func(name string) (Combinator, bool)

// Lookup is part of interface Environment.
func (f EnvironmentFunc) Lookup(name string) (Combinator, bool) {
	return f(name)
}

// The classic basis
var (
	combI = mustCombinator("I", 1, Slot(0))
	combK = mustCombinator("K", 2, Slot(0))
	combS = mustCombinator("S", 3, Group(Slot(0), Slot(2), Group(Slot(1), Slot(2))))
)

func lookupSKI(name string) (Combinator, bool) {
	switch name {
	case "I":
		return combI, true
	case "K":
		return combK, true
	case "S":
		return combS, true
	}
	return Combinator{}, false
}

// SKI returns the default environment:
//
//     I x     = x
//     K x y   = x
//     S x y z = x z (y z)
//
// Any other name is not a combinator. The environment is stateless and safe for
// concurrent use.
func SKI() Environment {
	return EnvironmentFunc(lookupSKI)
}

// --- Basis -----------------------------------------------------------------

// Basis is an extensible environment. It holds definitions in a table ordered by
// name and falls back to a parent environment for names it does not define.
// Definitions of a basis shadow those of its parent.
//
// A Basis must not be modified while it is used for reduction.
type Basis struct {
	Name   string
	parent Environment
	defs   *treemap.Map
}

// NewBasis creates an empty basis. parent may be nil.
func NewBasis(name string, parent Environment) *Basis {
	return &Basis{
		Name:   name,
		parent: parent,
		defs:   treemap.NewWithStringComparator(),
	}
}

// Define adds a combinator to the basis, replacing a previous definition of the
// same name. The combinator is checked as in NewCombinator.
func (b *Basis) Define(c Combinator) error {
	if _, err := NewCombinator(c.Name, c.Arity, c.Body); err != nil {
		return err
	}
	if _, found := b.defs.Get(c.Name); found {
		tracer().Infof("basis %s: re-defining combinator %s", b.Name, c.Name)
	}
	b.defs.Put(c.Name, c)
	return nil
}

// Lookup is part of interface Environment.
func (b *Basis) Lookup(name string) (Combinator, bool) {
	if v, found := b.defs.Get(name); found {
		return v.(Combinator), true
	}
	if b.parent != nil {
		return b.parent.Lookup(name)
	}
	return Combinator{}, false
}

// Len returns the number of combinators defined by b itself.
func (b *Basis) Len() int {
	return b.defs.Size()
}

// Names returns the names of the combinators defined by b itself, in
// lexicographic order.
func (b *Basis) Names() []string {
	names := make([]string, 0, b.defs.Size())
	for _, k := range b.defs.Keys() {
		names = append(names, k.(string))
	}
	return names
}

// Each iterates over the combinators defined by b itself, in lexicographic order.
func (b *Basis) Each(f func(Combinator)) {
	b.defs.Each(func(_ interface{}, v interface{}) {
		f(v.(Combinator))
	})
}

// Parent returns the environment b falls back to, or nil.
func (b *Basis) Parent() Environment {
	return b.parent
}

// StandardBasis returns a fresh basis containing I, K and S, ready to be extended.
func StandardBasis() *Basis {
	b := NewBasis("SKI", nil)
	for _, c := range []Combinator{combI, combK, combS} {
		b.defs.Put(c.Name, c)
	}
	return b
}

// Extended returns a fresh basis defining
//
//     B x y z = x (y z)
//     C x y z = x z y
//     W x y   = x y y
//     Y f     = f (Y f)
//
// on top of SKI().
func Extended() *Basis {
	b := NewBasis("BCWY", SKI())
	b.defs.Put("B", mustCombinator("B", 3, Group(Slot(0), Group(Slot(1), Slot(2)))))
	b.defs.Put("C", mustCombinator("C", 3, Group(Slot(0), Slot(2), Slot(1))))
	b.defs.Put("W", mustCombinator("W", 2, Group(Slot(0), Slot(1), Slot(1))))
	b.defs.Put("Y", mustCombinator("Y", 1, Group(Slot(0), Group(Lit("Y"), Slot(0)))))
	return b
}

var _ Environment = (*Basis)(nil)
var _ Environment = EnvironmentFunc(nil)
