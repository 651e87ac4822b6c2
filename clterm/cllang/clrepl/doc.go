/*
Package clrepl/main provides an interactive command line tool (CL.REPL)
for terms of combinatory logic. Every term entered is reduced step by step,
printing the intermediate terms. Users may define combinators of their own.

    cl> :def B x y z = x (y z)
    cl> B (K a) I b
    cl> :nf S I I (S I I)
    cl> :tree S (K x) y
    cl> :env

With flag -batch, CL.REPL reads terms from stdin, one per line, and prints
the reduction steps to stdout, without any decoration.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gocl.repl'
func tracer() tracing.Trace {
	return tracing.Select("gocl.repl")
}
