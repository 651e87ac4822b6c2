package termr_test

import (
	"context"
	"errors"
	"testing"

	"github.com/npillmayer/gocl/clterm"
	"github.com/npillmayer/gocl/clterm/cllang"
	"github.com/npillmayer/gocl/clterm/termr"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func mustParse(t *testing.T, input string) *clterm.Term {
	t.Helper()
	term, err := cllang.Parse(input)
	if err != nil {
		t.Fatalf("cannot parse %q: %v", input, err)
	}
	return term
}

func TestHasRedex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocl.clterm")
	defer teardown()
	//
	env := clterm.SKI()
	for _, tt := range []struct {
		input string
		redex bool
	}{
		{"", false},
		{"I", false},
		{"x", false},
		{"I x", true},
		{"K x", false},
		{"K x y", true},
		{"S x y", false},
		{"S x y z", true},
		{"x y z", false},
		{"(K x) y", true},
		{"x (I y)", true},
		{"x K y z", true},
		{"a (b c)", false},
		{"x (K a) b", true},
		{"((S a) b) c", true},
	} {
		if got := termr.HasRedex(mustParse(t, tt.input), env); got != tt.redex {
			t.Errorf("HasRedex(%q): expected %v, got %v", tt.input, tt.redex, got)
		}
	}
}

func TestReduceSingleStep(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocl.clterm")
	defer teardown()
	//
	env := clterm.SKI()
	for _, tt := range []struct {
		input, want string
	}{
		{"", ""},
		{"I", "I"},
		{"I x", "x"},
		{"I x y z", "x y z"},
		{"K x y z a", "x z a"},
		{"K x", "K x"},
		{"S x y z", "x z (y z)"},
		{"S x y z a b c", "(x z (y z)) a b c"},
		{"S (a b c) (S x y z) (d e f)", "(a b c) (d e f) ((S x y z) (d e f))"},
		{"(K x) y z", "x z"},
		{"((S a) b) c", "a c (b c)"},
		{"x (I y z)", "x y z"},
		{"a (b c) (I x)", "a b c x"},
		{"x (a b) (I c)", "x a b c"},
		{"x (S K K y)", "x K y (K y)"},
		{"x K y z", "x y"},
		{"x (K a) b", "x a"},
		{"x (S a b c d) e", "x (a c (b c)) d e"},
		{"S K K x", "K x (K x)"},
	} {
		got := termr.Reduce(mustParse(t, tt.input), env)
		want := mustParse(t, tt.want)
		if !got.Equal(want) {
			t.Errorf("Reduce(%q): expected %q, got %q", tt.input, want, got)
		}
	}
}

func TestReduceWithoutRedexIsFixpoint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocl.clterm")
	defer teardown()
	//
	env := clterm.SKI()
	for _, input := range []string{"", "x", "K x", "a (b c)", "(a b) c", "x (y (z w)) v", "S (K x)"} {
		term := mustParse(t, input)
		if termr.HasRedex(term, env) {
			t.Fatalf("%q is not expected to have a redex", input)
		}
		if r := termr.Reduce(term, env); r != term {
			t.Errorf("expected Reduce(%q) to return the term unchanged, got %q", input, r)
		}
	}
}

func TestReduceSharesNoNodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocl.clterm")
	defer teardown()
	//
	env := clterm.SKI()
	term := mustParse(t, "S (a b) c (d e)")
	r := termr.Reduce(term, env)
	if r.String() != "(a b) (d e) (c (d e))" {
		t.Fatalf("unexpected result %q", r)
	}
	if r.Child(1) == term.Child(3) || r.Child(1) == r.Child(2).Child(1) {
		t.Errorf("expected reduced term to share no nodes")
	}
	if term.String() != "S (a b) c (d e)" {
		t.Errorf("expected input term to be unchanged, is %q", term)
	}
}

func TestExtendedBasis(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocl.clterm")
	defer teardown()
	//
	env := clterm.Extended()
	for _, tt := range []struct {
		input, want string
	}{
		{"B f g x", "f (g x)"},
		{"C f x y", "f y x"},
		{"W f x", "f x x"},
		{"Y f", "f (Y f)"},
		{"K x y", "x"},
	} {
		got := termr.Reduce(mustParse(t, tt.input), env)
		if got.String() != tt.want {
			t.Errorf("Reduce(%q): expected %q, got %q", tt.input, tt.want, got)
		}
	}
}

func TestNullaryCombinator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocl.clterm")
	defer teardown()
	//
	env := clterm.NewBasis("user", clterm.Extended())
	omega, err := cllang.ParseDefinition("Ω = W W W")
	if err != nil {
		t.Fatal(err)
	}
	if err = env.Define(omega); err != nil {
		t.Fatal(err)
	}
	for _, tt := range []struct {
		input, want string
	}{
		{"Ω", "W W W"},
		{"Ω x", "(W W W) x"},
		{"x Ω", "x W W W"},
	} {
		term := mustParse(t, tt.input)
		if !termr.HasRedex(term, env) {
			t.Errorf("expected %q to have a redex", tt.input)
		}
		if got := termr.Reduce(term, env); got.String() != tt.want {
			t.Errorf("Reduce(%q): expected %q, got %q", tt.input, tt.want, got)
		}
	}
}

func TestReduceN(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocl.clterm")
	defer teardown()
	//
	env := clterm.SKI()
	r, n := termr.ReduceN(mustParse(t, "S I I (S I I)"), env, 5)
	if n != 5 {
		t.Errorf("expected 5 steps, got %d", n)
	}
	if !termr.HasRedex(r, env) {
		t.Errorf("expected %q to still have a redex", r)
	}
	r, n = termr.ReduceN(mustParse(t, "S K K x"), env, 10)
	if n != 2 || r.String() != "x" {
		t.Errorf("expected x after 2 steps, got %q after %d", r, n)
	}
	if r, n = termr.ReduceN(mustParse(t, "I x"), env, 0); n != 0 || r.String() != "I x" {
		t.Errorf("expected no step for n=0")
	}
}

func TestSteps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocl.clterm")
	defer teardown()
	//
	env := clterm.SKI()
	terms := termr.Steps(mustParse(t, "S K K x"), env).List(10)
	want := []string{"S K K x", "K x (K x)", "x"}
	if len(terms) != len(want) {
		t.Fatalf("expected %d terms, got %d", len(want), len(terms))
	}
	for i, term := range terms {
		if term.String() != want[i] {
			t.Errorf("step %d: expected %q, got %q", i, want[i], term)
		}
	}
	seq := termr.Steps(mustParse(t, "S I I (S I I)"), env)
	for i := 0; i < 7; i++ {
		seq.Next()
	}
	if seq.Done() || seq.Count() != 7 {
		t.Errorf("expected running sequence after 7 steps, count is %d", seq.Count())
	}
	seq.Break()
	if !seq.Done() {
		t.Errorf("expected sequence to be done after Break")
	}
	if n := len(termr.Steps(mustParse(t, "S I I (S I I)"), env).List(4)); n != 4 {
		t.Errorf("expected List(4) to return 4 terms, got %d", n)
	}
}

func TestNormalize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocl.clterm")
	defer teardown()
	//
	ctx := context.Background()
	env := clterm.SKI()
	r, stats, err := termr.Normalize(ctx, mustParse(t, "S K K x"), env)
	if err != nil || r.String() != "x" || stats.Steps != 2 {
		t.Errorf("expected x after 2 steps, got %q after %d (%v)", r, stats.Steps, err)
	}
	_, stats, err = termr.Normalize(ctx, mustParse(t, "S I I (S I I)"), env, termr.MaxSteps(10))
	if !errors.Is(err, termr.ErrStepLimit) || stats.Steps != 10 {
		t.Errorf("expected step limit after 10 steps, got %v after %d", err, stats.Steps)
	}
	r, stats, err = termr.Normalize(ctx, mustParse(t, "W W W"), clterm.Extended(),
		termr.DetectCycles(true), termr.MaxSteps(100))
	if !errors.Is(err, termr.ErrCycle) || stats.CycleLen != 1 {
		t.Errorf("expected cycle of length 1, got %v with length %d", err, stats.CycleLen)
	}
	if r.String() != "W W W" {
		t.Errorf("expected W W W, got %q", r)
	}
	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, stats, err = termr.Normalize(cancelled, mustParse(t, "I x"), env)
	if !errors.Is(err, context.Canceled) || stats.Steps != 0 {
		t.Errorf("expected cancellation before the first step, got %v", err)
	}
}
