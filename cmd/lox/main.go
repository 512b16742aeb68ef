/*
File    : lox/cmd/lox/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the Lox interpreter: zero arguments
launches the REPL, one argument runs a source file, and anything else
prints a usage message and exits 64. Kept in go-mix's main/main.go shape
(package-level VERSION/AUTHOR/PROMPT/BANNER vars, a `server` subcommand
over net.Listener, --help/--version flags, panic-recovery around file
execution) but rebuilt on the lexer/parser/interp pipeline instead of
go-mix's own.
*/
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/lox/internal/interp"
	"github.com/akashmaji946/lox/internal/lexer"
	"github.com/akashmaji946/lox/internal/parser"
	"github.com/akashmaji946/lox/internal/repl"
)

var (
	VERSION = "v1.0.0"
	AUTHOR  = "akashmaji(@iisc.ac.in)"
	PROMPT  = "lox >>> "
	BANNER  = `
  _
 | |    _____  __
 | |   / _ \ \/ /
 | |__| (_) >  <
 |_____\___/_/\_\
`
	LINE = "----------------------------------------------------------------"
)

var (
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
	yellowColor = color.New(color.FgYellow)
)

func main() {
	switch len(os.Args) {
	case 1:
		r := repl.New(BANNER, VERSION, AUTHOR, LINE, PROMPT)
		r.Start(os.Stdout)
	case 2:
		switch os.Args[1] {
		case "--help", "-h":
			showHelp()
		case "--version", "-v":
			showVersion()
		default:
			runFile(os.Args[1])
		}
	case 3:
		if os.Args[1] == "server" {
			startServer(os.Args[2])
			return
		}
		usage()
	default:
		usage()
	}
}

func usage() {
	fmt.Println("Usage: lox [script]")
	os.Exit(64)
}

func showHelp() {
	cyanColor.Println("Lox - a tree-walking interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  lox                   Start interactive REPL")
	yellowColor.Println("  lox <path>             Execute a Lox source file")
	yellowColor.Println("  lox server <port>      Start a REPL server on the given port")
	yellowColor.Println("  lox --help             Display this help message")
	yellowColor.Println("  lox --version          Display version information")
}

func showVersion() {
	cyanColor.Printf("Lox %s\n", VERSION)
	cyanColor.Printf("Author: %s\n", AUTHOR)
}

// runFile reads path as UTF-8 source and runs it to completion, exiting
// non-zero on any lex, parse, or runtime error.
func runFile(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Error: could not read file '%s': %v\n", path, err)
		os.Exit(1)
	}
	executeFileWithRecovery(string(src))
}

// startServer accepts TCP connections and hands each one its own REPL
// session, using the connection itself as both stdin and stdout. This
// is go-mix's server mode, kept as an extra transport over the same
// interpreter used by the local REPL and file runner.
func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Error: failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("Lox REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "Error: failed to accept connection: %v\n", err)
			continue
		}
		go func() {
			defer conn.Close()
			r := repl.New(BANNER, VERSION, AUTHOR, LINE, PROMPT)
			r.Start(conn)
		}()
	}
}

// executeFileWithRecovery runs source through the full pipeline, with a
// panic recovery layer matching go-mix's so an interpreter bug surfaces
// as a diagnostic rather than a raw Go stack trace.
func executeFileWithRecovery(source string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "Error: %v\n", recovered)
			os.Exit(1)
		}
	}()

	toks, lexErrs := lexer.New(source).Scan()
	if len(lexErrs) > 0 {
		for _, e := range lexErrs {
			redColor.Fprintf(os.Stderr, "%s\n", e.Error())
		}
		os.Exit(1)
	}

	stmts, err := parser.New(toks).Parse()
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}

	it := interp.New()
	if err := it.Interpret(stmts); err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}
}
