/*
File    : lox/internal/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package repl implements the interactive prompt: read a line, lex it,
// parse it, interpret it, repeat. Kept in go-mix's shape (repl/repl.go):
// a small Repl struct carrying display strings, readline for line
// editing and history, fatih/color for colored diagnostics, and a
// panic-recovery wrapper around each line so a stray bug never takes
// down the whole session. Unlike go-mix, state (the environment and
// bound functions) persists across lines via one shared *interp.Interp,
// since Lox has no per-line Eval-the-last-expression convention, a
// bare expression is just an ExprStmt whose value is discarded, and
// `print` is the only way to see output.
package repl

import (
	"io"
	"net"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/lox/internal/interp"
	"github.com/akashmaji946/lox/internal/lexer"
	"github.com/akashmaji946/lox/internal/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is an interactive Lox session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	Prompt  string
}

func New(banner, version, author, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Lox!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the read-eval-print loop against writer until EOF, an
// error from readline, or the user typing ".exit".
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	cfg := &readline.Config{Prompt: r.Prompt}
	if conn, ok := writer.(net.Conn); ok {
		// A network session reads its input from the connection and is
		// never put into terminal raw mode.
		cfg.Stdin = conn
		cfg.Stdout = conn
		cfg.FuncIsTerminal = func() bool { return false }
	}
	rl, err := readline.NewEx(cfg)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	it := interp.New()
	it.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			return
		}
		rl.SaveHistory(line)

		r.executeWithRecovery(writer, line, it)
	}
}

// executeWithRecovery lexes, parses, and interprets one line, recovering
// from any panic so the session survives an interpreter bug instead of
// crashing the whole REPL.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, it *interp.Interp) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "Error: %v\n", recovered)
		}
	}()

	toks, lexErrs := lexer.New(line).Scan()
	if len(lexErrs) > 0 {
		for _, e := range lexErrs {
			redColor.Fprintf(writer, "%s\n", e.Error())
		}
		return
	}

	stmts, err := parser.New(toks).Parse()
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err.Error())
		return
	}

	if err := it.Interpret(stmts); err != nil {
		redColor.Fprintf(writer, "%s\n", err.Error())
	}
}
