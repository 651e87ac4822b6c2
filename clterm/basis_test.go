package clterm

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSKI(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocl.clterm")
	defer teardown()
	//
	env := SKI()
	for _, tt := range []struct {
		name  string
		arity int
		body  string
	}{
		{"I", 1, "#0"},
		{"K", 2, "#0"},
		{"S", 3, "#0 #2 (#1 #2)"},
	} {
		c, ok := env.Lookup(tt.name)
		if !ok {
			t.Fatalf("expected %s to be a combinator", tt.name)
		}
		if c.Arity != tt.arity || c.Body.String() != tt.body {
			t.Errorf("unexpected definition %v", c)
		}
	}
	if _, ok := env.Lookup("x"); ok {
		t.Errorf("expected x not to be a combinator")
	}
}

func TestBasis(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocl.clterm")
	defer teardown()
	//
	b := NewBasis("test", SKI())
	c, _ := NewCombinator("W", 2, Group(Slot(0), Slot(1), Slot(1)))
	if err := b.Define(c); err != nil {
		t.Fatal(err)
	}
	if err := b.Define(Combinator{Name: "V", Arity: 1, Body: Slot(3)}); err == nil {
		t.Errorf("expected malformed definition to be rejected")
	}
	if _, ok := b.Lookup("W"); !ok {
		t.Errorf("expected W to be defined")
	}
	if _, ok := b.Lookup("S"); !ok {
		t.Errorf("expected S to be found in parent environment")
	}
	k, _ := NewCombinator("K", 1, Slot(0))
	b.Define(k)
	if c, _ := b.Lookup("K"); c.Arity != 1 {
		t.Errorf("expected K of basis to shadow K of parent")
	}
	if b.Len() != 2 {
		t.Errorf("expected basis to define 2 combinators, has %d", b.Len())
	}
	names := b.Names()
	if len(names) != 2 || names[0] != "K" || names[1] != "W" {
		t.Errorf("expected names [K W], have %v", names)
	}
	var seen []string
	b.Each(func(c Combinator) { seen = append(seen, c.Name) })
	if len(seen) != 2 || seen[0] != "K" {
		t.Errorf("expected Each to iterate in order, have %v", seen)
	}
}

func TestExtended(t *testing.T) {
	b := Extended()
	for _, name := range []string{"B", "C", "W", "Y", "S", "K", "I"} {
		if _, ok := b.Lookup(name); !ok {
			t.Errorf("expected %s to be defined in extended basis", name)
		}
	}
	if b.Len() != 4 {
		t.Errorf("expected extended basis to define 4 combinators itself, has %d", b.Len())
	}
	if s := StandardBasis(); s.Len() != 3 || s.Parent() != nil {
		t.Errorf("expected standard basis to hold exactly I, K, S")
	}
}
