/*
Package termr implements term rewriting for combinatory logic: detection of
redexes and reduction, one step at a time.

Reduction is leftmost-outermost. A term is viewed as its flat application
spine, i.e. ((f a) b) c is treated as [f a b c]. If the head of the spine is a
combinator with enough arguments, it fires. Otherwise the head is kept and the
search continues on the tail of the spine, from left to right. Applications met
on the way are flattened into the spine before any rule fires.

Reduce performs exactly one step. Clients loop while HasRedex reports true,
or use one of the step-limited drivers ReduceN, Steps and Normalize. Terms of
CL may reduce forever; the drivers let clients decide when to stop.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package termr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gocl.clterm'.
func tracer() tracing.Trace {
	return tracing.Select("gocl.clterm")
}
