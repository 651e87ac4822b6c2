/*
Package clterm provides the data types of combinatory logic: terms,
substitution templates and environments of combinators.

A CL term is either empty, an atom or an application list. Application is
left-associative, so the list

    (a b c)

denotes ((a b) c). Lists are kept normalized: a list never has zero or one
children. Terms are immutable once constructed; operations which "change" a term
return a new one.

A combinator is an atom with an arity and a rule body. The body is a
substitution template, a small tree of argument slots:

    S x y z = x z (y z)      is written as   Group(Slot(0), Slot(2), Group(Slot(1), Slot(2)))

Environments map atom names to combinators. SKI() returns the classic basis,
type Basis allows clients to assemble their own.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>


*/
package clterm

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gocl.clterm'.
func tracer() tracing.Trace {
	return tracing.Select("gocl.clterm")
}
