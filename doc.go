/*
Package gocl is a toolbox for combinatory logic.

GoCL parses terms of combinatory logic (CL), finds reducible expressions and
rewrites them one step at a time, leftmost-outermost. Package structure is
as follows:

■ clterm: Package clterm implements CL terms, substitution templates for
combinator rules and environments of combinators (a basis like S, K, I).

■ clterm/termr: Package termr implements redex detection and single-step reduction,
together with step-limited drivers.

■ clterm/cllang: Package cllang implements a parser for the textual CL notation and
the line-oriented reduction protocol. Command clrepl lives below it.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gocl
