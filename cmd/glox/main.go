package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/lox-lang/glox"
)

const (
	historyFile = ".glox_history"
	prompt      = "> "
)

// sysexits-style codes.
const (
	exitUsage    = 64 // command line usage error
	exitData     = 65 // syntax error in the input
	exitSoftware = 70 // runtime error during evaluation
	exitIOErr    = 74 // input file or terminal I/O error
)

func main() {
	root := &cobra.Command{
		Use:   "glox",
		Short: "glox — an interpreter for Lox expressions",
		Long: `glox scans, parses and evaluates Lox expressions.

Run it with no arguments to start the REPL, or use a subcommand:
  run     Run a source file
  repl    Start the interactive prompt
  tokens  Print the token stream of an expression
  ast     Print the parse tree of an expression
`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			os.Exit(runRepl())
		},
	}
	root.AddCommand(runCmd(), replCmd(), tokensCmd(), astCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "glox: %v\n", err)
		os.Exit(exitUsage)
	}
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <file>",
		Short: "Run a Lox source file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			os.Exit(runFile(args[0]))
		},
	}
}

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive prompt",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			os.Exit(runRepl())
		},
	}
}

func runFile(path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "glox: cannot read %s: %v\n", path, err)
		return exitIOErr
	}

	rep := glox.NewReporter()
	ip := glox.NewInterpreter(rep)
	glox.Run(string(src), ip, rep)

	if rep.HadError() {
		return exitData
	}
	if rep.HadRuntimeError() {
		return exitSoftware
	}
	return 0
}

func runRepl() int {
	fmt.Printf("glox %s\nCtrl+C cancels input, Ctrl+D exits.\n", glox.Version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	rep := glox.NewReporter()
	ip := glox.NewInterpreter(rep)

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "glox: %v\n", err)
			return exitIOErr
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		glox.Run(line, ip, rep)
		// Each line is an independent input unit; a syntax error on this
		// one must not suppress evaluation of the next.
		rep.ResetError()
		ln.AppendHistory(line)
	}
}

func tokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <expr>",
		Short: "Print the token stream of an expression",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			rep := glox.NewReporter()
			for _, tok := range glox.NewLexer(args[0], rep).Scan() {
				fmt.Println(tok)
			}
			if rep.HadError() {
				os.Exit(exitData)
			}
		},
	}
}

func astCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ast <expr>",
		Short: "Print the parse tree of an expression",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			rep := glox.NewReporter()
			tokens := glox.NewLexer(args[0], rep).Scan()
			expr, _ := glox.NewParser(tokens, rep).Parse()
			if rep.HadError() {
				os.Exit(exitData)
			}
			fmt.Println(glox.FormatAST(expr))
		},
	}
}
