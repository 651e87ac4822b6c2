package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/gocl/clterm"
	"github.com/npillmayer/gocl/clterm/cllang"
	"github.com/npillmayer/gocl/clterm/termr"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// main() starts an interactive CLI ("CL.REPL"), where users may enter terms
// of combinatory logic. CL.REPL will reduce each term and print every step.
//
// Please refer to packages "clterm" and "cllang".
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load of definitions and terms")
	batch := flag.Bool("batch", false, "Reduce terms from stdin, without decoration")
	maxSteps := flag.Int("max", 1000, "Maximum number of steps per term, 0 for no limit")
	basis := flag.String("basis", "ski", "Combinator basis [ski|extended]")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	tracer().Infof("Trace level is %s", *tlevel)
	tracer().SetTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	//
	// set up the environment of combinators
	env, err := makeEnvironment(*basis)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	intp := &Intp{
		env:      env,
		maxSteps: *maxSteps,
		quiet:    *batch,
	}
	intp.loadInitFile(*initf) // init file name provided by flag
	if *batch {
		if err := cllang.Run(os.Stdin, os.Stdout, env, cllang.StepLimit(*maxSteps)); err != nil {
			tracer().Errorf("%v", err)
			os.Exit(1)
		}
		return
	}
	pterm.Info.Println("Welcome to CL.REPL") // colored welcome message
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	tracer().Infof("Input argument is \"%s\"", input)
	//
	// set up REPL
	intp.repl, err = readline.New("cl> ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	if input != "" {
		intp.Eval(input)
	}
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// makeEnvironment creates the user's basis on top of a standard one.
func makeEnvironment(name string) (*clterm.Basis, error) {
	switch strings.ToLower(name) {
	case "ski":
		return clterm.NewBasis("user", clterm.StandardBasis()), nil
	case "extended":
		return clterm.NewBasis("user", clterm.Extended()), nil
	}
	return nil, fmt.Errorf("unknown basis %q", name)
}

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	env      *clterm.Basis
	maxSteps int
	quiet    bool // suppress output
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), cllang.MaxLineLength)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: %v", err)
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, _ := intp.Eval(line)
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval evaluates a line of input: either a command or a term to reduce.
//
//    :def <definition>   define a combinator
//    :env                list the combinators in scope
//    :nf <term>          print the normal form of a term, if any
//    :tree <term>        display a term as a tree
//    :quit               leave the REPL
//
func (intp *Intp) Eval(line string) (bool, error) {
	cmd, arg := line, ""
	if i := strings.IndexAny(line, " \t"); i > 0 {
		cmd, arg = line[:i], strings.TrimSpace(line[i:])
	}
	var err error
	switch cmd {
	case ":quit", ":q":
		return true, nil
	case ":def":
		err = intp.define(arg)
	case ":env":
		intp.listEnvironment()
	case ":nf":
		err = intp.normalize(arg)
	case ":tree":
		err = intp.tree(arg)
	default:
		if strings.HasPrefix(cmd, ":") {
			err = fmt.Errorf("unknown command %s", cmd)
		} else {
			err = intp.reduce(line)
		}
	}
	if err != nil {
		intp.printError(err)
	}
	return false, err
}

func (intp *Intp) define(text string) error {
	c, err := cllang.ParseDefinition(text)
	if err != nil {
		return err
	}
	if err = intp.env.Define(c); err != nil {
		return err
	}
	intp.info(c.String())
	return nil
}

func (intp *Intp) parse(text string) (*clterm.Term, error) {
	t, err := cllang.Parse(text)
	if err != nil {
		var perr *cllang.ParseError
		if errors.As(err, &perr) {
			return nil, fmt.Errorf("%w at %s", err, perr.Span)
		}
		return nil, err
	}
	t.Dump(tracing.LevelDebug)
	return t, nil
}

// reduce prints every step of the reduction of a term.
func (intp *Intp) reduce(text string) error {
	t, err := intp.parse(text)
	if err != nil {
		return err
	}
	intp.info(t.String())
	S := termr.Steps(t, intp.env)
	for t = S.Next(); !S.Done(); t = S.Next() {
		intp.println(" " + t.String())
		if intp.maxSteps > 0 && S.Count() >= intp.maxSteps {
			return fmt.Errorf("%w after %d steps", termr.ErrStepLimit, S.Count())
		}
	}
	return nil
}

// normalize prints the normal form of a term, detecting cycles on the way.
func (intp *Intp) normalize(text string) error {
	t, err := intp.parse(text)
	if err != nil {
		return err
	}
	nf, stats, err := termr.Normalize(context.Background(), t, intp.env,
		termr.MaxSteps(intp.maxSteps), termr.DetectCycles(true))
	switch {
	case errors.Is(err, termr.ErrCycle):
		return fmt.Errorf("%w: %s repeats every %d steps", err, nf, stats.CycleLen)
	case err != nil:
		return fmt.Errorf("%w after %d steps: %s", err, stats.Steps, nf)
	}
	intp.info(fmt.Sprintf("%s   [%d steps]", nf, stats.Steps))
	return nil
}

func (intp *Intp) tree(text string) error {
	t, err := intp.parse(text)
	if err != nil {
		return err
	}
	if intp.quiet {
		return nil
	}
	pterm.Println(t.String())
	root := pterm.NewTreeFromLeveledList(leveledTerm(t, pterm.LeveledList{}, 0))
	pterm.DefaultTree.WithRoot(root).Render()
	return nil
}

// leveledTerm flattens a term into a leveled list, with applications as inner
// nodes labeled "@".
func leveledTerm(t *clterm.Term, ll pterm.LeveledList, level int) pterm.LeveledList {
	switch t.Kind() {
	case clterm.EmptyKind:
		return append(ll, pterm.LeveledListItem{Level: level, Text: "ε"})
	case clterm.AtomKind:
		return append(ll, pterm.LeveledListItem{Level: level, Text: t.Name()})
	}
	ll = append(ll, pterm.LeveledListItem{Level: level, Text: "@"})
	for _, child := range t.Children() {
		ll = leveledTerm(child, ll, level+1)
	}
	return ll
}

func (intp *Intp) listEnvironment() {
	var env clterm.Environment = intp.env
	for env != nil {
		b, ok := env.(*clterm.Basis)
		if !ok {
			intp.info("I, K, S   [built in]")
			return
		}
		intp.info(fmt.Sprintf("basis %s", b.Name))
		b.Each(func(c clterm.Combinator) {
			intp.println("   " + c.String())
		})
		env = b.Parent()
	}
}

// --- Output ----------------------------------------------------------------

func (intp *Intp) info(s string) {
	if !intp.quiet {
		pterm.Info.Println(s)
	}
}

func (intp *Intp) println(s string) {
	if !intp.quiet {
		pterm.Println(s)
	}
}

func (intp *Intp) printError(err error) {
	if !intp.quiet {
		pterm.Error.Println(err.Error())
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
