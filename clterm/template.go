package clterm

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

type templateKind int8

const (
	slotTemplate templateKind = iota
	groupTemplate
	litTemplate
)

// Template is a substitution template, describing the rule body of a combinator
// independent of actual arguments. It is one of
//
//     Slot(i)          placeholder for the i-th argument (0-based)
//     Group(t1 … tn)   application of the instantiated sub-templates
//     Lit(name)        a constant atom
//
// Templates are immutable; instantiating one never alters it.
type Template struct {
	kind  templateKind
	slot  int
	name  string
	group []Template
}

// Slot creates a placeholder for the i-th argument of a combinator.
func Slot(i int) Template {
	return Template{kind: slotTemplate, slot: i}
}

// Group creates a template for an application of sub-templates.
func Group(children ...Template) Template {
	return Template{kind: groupTemplate, group: append([]Template(nil), children...)}
}

// Lit creates a template for a constant atom.
func Lit(name string) Template {
	return Template{kind: litTemplate, name: name}
}

// Instantiate creates a term from a template by substituting the arguments for
// the slots. Arguments are cloned, so the result shares no nodes with args.
//
// A slot index outside of args is an error in the combinator definition and
// will panic. NewCombinator rejects such templates.
func (tm Template) Instantiate(args []*Term) *Term {
	switch tm.kind {
	case slotTemplate:
		if tm.slot < 0 || tm.slot >= len(args) {
			panic(fmt.Sprintf("template slot #%d out of range for %d arguments", tm.slot, len(args)))
		}
		return args[tm.slot].Clone()
	case litTemplate:
		return Atom(tm.name)
	}
	return List(lo.Map(tm.group, func(sub Template, _ int) *Term {
		return sub.Instantiate(args)
	})...)
}

// MaxSlot returns the largest slot index referenced by a template, or -1 if
// there are no slots.
func (tm Template) MaxSlot() int {
	switch tm.kind {
	case slotTemplate:
		return tm.slot
	case groupTemplate:
		return lo.Reduce(tm.group, func(m int, sub Template, _ int) int {
			return lo.Max([]int{m, sub.MaxSlot()})
		}, -1)
	}
	return -1
}

// minSlot returns the smallest slot index of a template, or 0 if there are no slots.
func (tm Template) minSlot() int {
	switch tm.kind {
	case slotTemplate:
		return tm.slot
	case groupTemplate:
		return lo.Reduce(tm.group, func(m int, sub Template, _ int) int {
			return lo.Min([]int{m, sub.minSlot()})
		}, 0)
	}
	return 0
}

// hasEmptyGroup reports whether a template contains a group without parts.
func (tm Template) hasEmptyGroup() bool {
	if tm.kind != groupTemplate {
		return false
	}
	return len(tm.group) == 0 || lo.SomeBy(tm.group, Template.hasEmptyGroup)
}

// literals returns the names of all constant atoms of a template.
func (tm Template) literals() []string {
	switch tm.kind {
	case litTemplate:
		return []string{tm.name}
	case groupTemplate:
		return lo.FlatMap(tm.group, func(sub Template, _ int) []string {
			return sub.literals()
		})
	}
	return nil
}

// String renders a template in term notation, with slots written as #i.
func (tm Template) String() string {
	return templateString(tm, false)
}

func templateString(tm Template, nested bool) string {
	switch tm.kind {
	case slotTemplate:
		return "#" + strconv.Itoa(tm.slot)
	case litTemplate:
		return tm.name
	}
	parts := lo.Map(tm.group, func(sub Template, _ int) string {
		return templateString(sub, true)
	})
	if nested && len(parts) > 1 {
		return "(" + strings.Join(parts, " ") + ")"
	}
	return strings.Join(parts, " ")
}
