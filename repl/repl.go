/*
File    : lynx/repl/repl.go
*/

// Package repl implements the Read-Eval-Print Loop for Lynx. Input is read
// line by line via readline (arrow-key history, basic line editing).
// Results print in yellow, errors in red.
package repl

import (
	"bufio"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/lynxlang/lynx/environment"
	"github.com/lynxlang/lynx/evaluator"
	"github.com/lynxlang/lynx/object"
	"github.com/lynxlang/lynx/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for an interactive session: the
// banner shown at startup and the prompt shown on every line.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
}

// NewRepl creates a Repl with the given banner, version string, separator
// line, and prompt.
func NewRepl(banner, version, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

func (r *Repl) printBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintln(writer, "Type your code and press enter. Type '.exit' to quit.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop against writer until the user exits (`.exit` or
// EOF). A single environment persists across every line evaluated in the
// session, so `let` bindings and function definitions from earlier lines
// remain visible to later ones.
func (r *Repl) Start(writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	eval := evaluator.New(writer)
	env := evaluator.NewGlobalEnvironment()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Goodbye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Goodbye!\n"))
			return
		}
		rl.SaveHistory(line)

		r.evalLine(writer, line, eval, env)
	}
}

// StartConn runs the REPL loop over a plain io.Reader/io.Writer pair using
// a bufio.Scanner rather than readline. readline drives the local terminal
// directly (it ignores whatever io.Reader it's given, see Start above),
// which makes it unusable for a remote connection. StartConn is what the
// `server` subcommand uses so each TCP client actually gets its own
// request/response loop instead of all sharing the server process's
// terminal.
func (r *Repl) StartConn(reader io.Reader, writer io.Writer) {
	r.printBanner(writer)
	io.WriteString(writer, r.Prompt)

	eval := evaluator.New(writer)
	env := evaluator.NewGlobalEnvironment()

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == ".exit" {
			break
		}
		if line != "" {
			r.evalLine(writer, line, eval, env)
		}
		io.WriteString(writer, r.Prompt)
	}
	writer.Write([]byte("Goodbye!\n"))
}

// evalLine parses and evaluates a single line, printing the result in
// yellow or an error in red. Parsing never panics (the parser collects
// ParseErrors rather than raising them), so the only recover needed here
// guards against a bug surfacing as a Go panic deep in evaluation rather
// than an *object.Error. The REPL stays alive and reports it instead of
// crashing the session.
func (r *Repl) evalLine(writer io.Writer, line string, eval *evaluator.Evaluator, env *environment.Environment) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[runtime panic] %v\n", recovered)
		}
	}()

	p := parser.New(line)
	program := p.Parse()

	if p.HasErrors() {
		for _, parseErr := range p.Errors() {
			redColor.Fprintf(writer, "%s\n", parseErr.String())
		}
		return
	}

	result := eval.Eval(program, env)
	if result == nil {
		return
	}
	if result.Type() == object.ErrorObj {
		redColor.Fprintf(writer, "%s\n", result.Inspect())
	} else {
		yellowColor.Fprintf(writer, "%s\n", result.Inspect())
	}
}
