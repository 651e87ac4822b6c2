/*
Package cllang implements the textual notation of combinatory logic terms.

Terms are written as whitespace-separated atoms, grouped by parentheses:

    S (K x) y (a b c)

Application associates to the left, i.e. "a b c" is read as "(a b) c". An
atom is any run of characters other than whitespace and parentheses. A group
with a single member is the member itself; an empty group is an error.

Parse reads a term, ParseDefinition reads a combinator rule like

    B x y z = x (y z)

and Run drives reduction over a stream of input lines, printing every
intermediate term.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cllang

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gocl.cllang'.
func tracer() tracing.Trace {
	return tracing.Select("gocl.cllang")
}
