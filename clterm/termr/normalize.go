package termr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"context"
	"errors"
	"fmt"

	"github.com/cnf/structhash"
	"github.com/npillmayer/gocl/clterm"
)

// Errors reported by Normalize. The term reached so far is returned with them.
var (
	ErrStepLimit = errors.New("step limit reached")
	ErrCycle     = errors.New("reduction cycle detected")
)

// Stats reports on a call to Normalize.
type Stats struct {
	Steps    int // number of reduction steps performed
	CycleLen int // length of a detected cycle, 0 if none
}

// Option configures Normalize.
type Option func(*config)

type config struct {
	maxSteps     int
	detectCycles bool
}

// MaxSteps limits the number of reduction steps. n ≤ 0 means no limit.
func MaxSteps(n int) Option {
	return func(c *config) {
		c.maxSteps = n
	}
}

// DetectCycles sets or clears cycle detection. With cycle detection on,
// Normalize remembers a fingerprint of every term it visits and stops as soon
// as a term repeats, as for W W W ⇒ W W W with W x y = x y y.
func DetectCycles(b bool) Option {
	return func(c *config) {
		c.detectCycles = b
	}
}

// Normalize reduces t until no redex is left and returns the normal form.
// Reduction stops early when the context is cancelled, when the step limit is
// reached (ErrStepLimit) or when a cycle is detected (ErrCycle). In all cases the
// last term reached is returned.
func Normalize(ctx context.Context, t *clterm.Term, env clterm.Environment, opts ...Option) (
	*clterm.Term, Stats, error) {
	//
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	var stats Stats
	var seen map[string]int
	if cfg.detectCycles {
		seen = make(map[string]int)
	}
	for HasRedex(t, env) {
		if err := ctx.Err(); err != nil {
			return t, stats, err
		}
		if seen != nil {
			fp, err := fingerprint(t)
			if err != nil {
				return t, stats, err
			}
			if at, ok := seen[fp]; ok {
				stats.CycleLen = stats.Steps - at
				tracer().Infof("term repeats after %d steps: %s", stats.CycleLen, t)
				return t, stats, ErrCycle
			}
			seen[fp] = stats.Steps
		}
		if cfg.maxSteps > 0 && stats.Steps >= cfg.maxSteps {
			return t, stats, ErrStepLimit
		}
		t = Reduce(t, env)
		stats.Steps++
		tracer().Debugf("step %d: %s", stats.Steps, t)
	}
	return t, stats, nil
}

// termPrint mirrors the structure of a term for hashing. Terms with equal
// fingerprints are structurally equal, up to hash collisions.
type termPrint struct {
	Kind     int
	Name     string
	Children []termPrint
}

func newTermPrint(t *clterm.Term) termPrint {
	tp := termPrint{Kind: int(t.Kind()), Name: t.Name()}
	for _, child := range t.Children() {
		tp.Children = append(tp.Children, newTermPrint(child))
	}
	return tp
}

func fingerprint(t *clterm.Term) (string, error) {
	h, err := structhash.Hash(newTermPrint(t), 1)
	if err != nil {
		return "", fmt.Errorf("cannot fingerprint term: %w", err)
	}
	return h, nil
}
