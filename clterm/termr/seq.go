package termr

import (
	"github.com/npillmayer/gocl/clterm"
)

// ReduceN performs at most n reduction steps on t, stopping early if no redex
// is left. It returns the resulting term and the number of steps taken.
func ReduceN(t *clterm.Term, env clterm.Environment, n int) (*clterm.Term, int) {
	steps := 0
	for steps < n && HasRedex(t, env) {
		t = Reduce(t, env)
		steps++
	}
	return t, steps
}

// TermSeq is a sequence of the successive reduction steps of a term.
// Sequences are lazy: each call to Next performs one reduction step.
//
//     for t, S := termr.Steps(term, env).First(); !S.Done(); t = S.Next() {
//         …    // t₀, t₁, …, up to the normal form (if any)
//     }
//
// Sequences of terms without a normal form never end by themselves. Clients
// call Break or stop iterating.
type TermSeq struct {
	term  *clterm.Term
	steps int
	seq   TermGenerator
}

// TermGenerator is a function type to generate a sequence of terms.
type TermGenerator func() TermSeq

// Steps wraps the reduction of a term into a sequence, starting with t itself.
func Steps(t *clterm.Term, env clterm.Environment) TermSeq {
	var S TermGenerator
	S = func() TermSeq {
		if !HasRedex(t, env) {
			return TermSeq{t, 0, nil}
		}
		t = Reduce(t, env)
		return TermSeq{t, 1, S}
	}
	return TermSeq{t, 0, S}
}

// Break signals a sequence to stop iterating.
func (seq *TermSeq) Break() {
	seq.seq = nil
}

// Done returns true if a sequence stopped iterating.
func (seq *TermSeq) Done() bool {
	return seq.seq == nil
}

// First returns the first term of a sequence, together with the sequence.
func (seq TermSeq) First() (*clterm.Term, TermSeq) {
	return seq.term, seq
}

// Term returns the current term of a sequence.
func (seq TermSeq) Term() *clterm.Term {
	return seq.term
}

// Count returns the number of reduction steps performed so far.
func (seq TermSeq) Count() int {
	return seq.steps
}

// Next performs a reduction step and returns the resulting term. If there is
// no redex left, the sequence is done and the current term is returned.
func (seq *TermSeq) Next() *clterm.Term {
	if seq.Done() {
		return seq.term
	}
	next := seq.seq()
	seq.term = next.term
	seq.steps += next.steps
	seq.seq = next.seq
	return seq.term
}

// List returns at most n terms of a sequence, starting with the current one.
func (seq TermSeq) List(n int) []*clterm.Term {
	var terms []*clterm.Term
	for t, S := seq.First(); !S.Done() && len(terms) < n; t = S.Next() {
		terms = append(terms, t)
	}
	return terms
}
