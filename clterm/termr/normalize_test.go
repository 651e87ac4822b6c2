package termr

import (
	"testing"

	"github.com/npillmayer/gocl/clterm"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFingerprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocl.clterm")
	defer teardown()
	//
	a, b, c := clterm.Atom("a"), clterm.Atom("b"), clterm.Atom("c")
	left := clterm.List(clterm.List(a, b), c)
	right := clterm.List(a, clterm.List(b, c))
	fpLeft, err := fingerprint(left)
	if err != nil {
		t.Fatal(err)
	}
	fpRight, _ := fingerprint(right)
	if fpLeft == fpRight {
		t.Errorf("expected (a b) c and a (b c) to have different fingerprints")
	}
	fpClone, _ := fingerprint(left.Clone())
	if fpLeft != fpClone {
		t.Errorf("expected structurally equal terms to have equal fingerprints")
	}
	fpAtom, _ := fingerprint(clterm.Atom("abc"))
	fpApp, _ := fingerprint(clterm.List(a, b, c))
	if fpAtom == fpApp {
		t.Errorf("expected atom abc and application a b c to differ")
	}
}
