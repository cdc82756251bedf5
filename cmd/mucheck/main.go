/*
Mucheck checks a finite labeled transition system against a list of modal
μ-calculus specifications.

It reads a program file describing the LTS (propositions, actions, initial
states, labels, transitions) and the specifications to check, in an
S-expression syntax. It then prints the overall verification result and, on
failure, a message describing the first error encountered.

Usage:

	mucheck [flags] <path>

The flags are:

	-v, --verbose
		Print each specification's individual verdict before the overall
		result.

	-d, --dot
		Print the loaded LTS as a Graphviz digraph and exit, without
		checking any specifications.

	-r, --repl
		After a successful load, enter an interactive loop that reads
		additional "spec" S-expressions from stdin and reports their
		verdict against the loaded LTS, one at a time, until EOF or "quit".

	-c, --config FILE
		Load default flag values from the given TOML config file.

	--version
		Print the current version and exit.
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/dekarrin/mucheck"
	"github.com/dekarrin/mucheck/internal/dot"
	"github.com/dekarrin/mucheck/internal/interp"
	"github.com/dekarrin/mucheck/internal/lts"
	"github.com/dekarrin/mucheck/internal/mcconfig"
	"github.com/dekarrin/mucheck/internal/mcerrors"
	"github.com/dekarrin/mucheck/internal/replio"
	"github.com/dekarrin/mucheck/internal/sexpr"
	"github.com/dekarrin/mucheck/internal/version"
)

const (
	// ExitSuccess indicates a successful program execution, including a
	// verification whose verdict is false.
	ExitSuccess = iota

	// ExitLoadError indicates an unsuccessful program execution: bad
	// command-line arguments, an unreadable config file, or an error while
	// loading or checking the program.
	ExitLoadError
)

var (
	returnCode  = ExitSuccess
	flagVersion = pflag.Bool("version", false, "Print the current version and exit")
	flagVerbose = pflag.BoolP("verbose", "v", false, "Print each specification's individual verdict")
	flagDot     = pflag.BoolP("dot", "d", false, "Print the loaded LTS as Graphviz and exit")
	flagRepl    = pflag.BoolP("repl", "r", false, "Enter an interactive loop after loading")
	flagConfig  = pflag.StringP("config", "c", "", "TOML file supplying default flag values")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	cfg := mcconfig.Default()
	if *flagConfig != "" {
		loaded, err := mcconfig.Load(*flagConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", mcerrors.Message(err))
			returnCode = ExitLoadError
			return
		}
		cfg = loaded
	}

	verbose := *flagVerbose || cfg.Verbose
	asDot := *flagDot || cfg.Dot

	if pflag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "ERROR: expected exactly one program file argument")
		returnCode = ExitLoadError
		return
	}
	path := pflag.Arg(0)

	if asDot {
		l, err := mucheck.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", mcerrors.Message(err))
			returnCode = ExitLoadError
			return
		}
		fmt.Print(dot.Render(l))
		return
	}

	if *flagRepl {
		l, err := mucheck.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", mcerrors.Message(err))
			returnCode = ExitLoadError
			return
		}
		runRepl(l)
		return
	}

	ok, results, err := mucheck.Check(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Verification failed: %s\n", mcerrors.Message(err))
		returnCode = ExitLoadError
		return
	}

	if verbose {
		for _, r := range results {
			fmt.Printf("%s: %t\n", r.Formula, r.Holds)
		}
	}

	fmt.Printf("Result of the verification: %t\n", ok)
}

// runRepl reads "(spec <formula>)" S-expressions from stdin one at a time
// and reports their verdict against the already-built LTS l, until EOF or
// the line "quit".
func runRepl(l lts.LTS) {
	reader := replio.NewDirectReader(os.Stdin)
	if isatty.IsTerminal(os.Stdin.Fd()) {
		if ir, err := replio.NewInteractiveReader("spec> "); err == nil {
			defer ir.Close()
			replLoop(l, ir)
			return
		}
	}
	defer reader.Close()
	replLoop(l, reader)
}

func replLoop(l lts.LTS, r replio.LineReader) {
	for {
		line, err := r.ReadLine()
		if err != nil {
			return
		}
		if strings.EqualFold(line, "quit") {
			return
		}

		exprs, err := sexpr.ParseAll(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", mcerrors.Message(err))
			continue
		}
		if len(exprs) != 1 {
			fmt.Fprintln(os.Stderr, "ERROR: expected exactly one (spec <formula>) form")
			continue
		}

		instr, err := interp.ParseInstruction(exprs[0])
		if err != nil || instr.Kind() != interp.KindSetSpec {
			fmt.Fprintln(os.Stderr, "ERROR: expected a (spec <formula>) form")
			continue
		}

		f := instr.Spec()
		sat, err := lts.Sat(l, f, nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", mcerrors.Message(err))
			continue
		}

		holds := true
		for s := range l.Initial() {
			if !sat.Has(s) {
				holds = false
				break
			}
		}
		fmt.Printf("%s: %t\n", f.String(), holds)
	}
}
