package cllang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/npillmayer/gocl/clterm"
	"github.com/npillmayer/gocl/clterm/termr"
)

// MaxLineLength is the maximum length of an input line of Run, in bytes.
const MaxLineLength = math.MaxInt32

// Option configures Run.
type Option func(*runner)

// StepLimit stops reducing a line's term after n steps. n ≤ 0 means no limit.
func StepLimit(n int) Option {
	return func(r *runner) {
		r.limit = n
	}
}

type runner struct {
	env   clterm.Environment
	limit int
	out   io.Writer
}

// Run reads terms from in, one per line, and reduces each of them. For every
// line it writes the term to out, followed by every intermediate term, each on
// a line of its own and indented by one space:
//
//    S K K x
//     K x (K x)
//     x
//
// A line which cannot be parsed results in an output line "Error: <message>".
// Run returns an error if reading the input or writing the output fails.
func Run(in io.Reader, out io.Writer, env clterm.Environment, opts ...Option) error {
	r := &runner{env: env, out: out}
	for _, opt := range opts {
		opt(r)
	}
	lines := bufio.NewScanner(in)
	lines.Buffer(make([]byte, 0, 64*1024), MaxLineLength)
	for lines.Scan() {
		if err := r.line(lines.Text()); err != nil {
			return err
		}
	}
	return lines.Err()
}

func (r *runner) line(text string) error {
	t, err := Parse(text)
	if err != nil {
		_, err = fmt.Fprintf(r.out, "Error: %s\n", err)
		return err
	}
	if _, err = fmt.Fprintln(r.out, t); err != nil {
		return err
	}
	S := termr.Steps(t, r.env)
	for t = S.Next(); !S.Done(); t = S.Next() {
		if _, err = fmt.Fprintf(r.out, " %s\n", t); err != nil {
			return err
		}
		if r.limit > 0 && S.Count() >= r.limit {
			tracer().Infof("stopped after %d steps", S.Count())
			break
		}
	}
	return nil
}
