package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/patlang/internal/config"
	"github.com/funvibe/patlang/internal/evaluator"
	"github.com/funvibe/patlang/internal/modules"
)

// runRepl reads one line at a time, evaluates it in a persistent global
// environment, and echoes the value of the last statement when it is not
// null. The banner and prompt only show on an interactive terminal.
func runRepl(in *os.File, out io.Writer) {
	interactive := isatty.IsTerminal(in.Fd()) || isatty.IsCygwinTerminal(in.Fd())

	proj := LoadProject(".")
	prompt := proj.Prompt
	if prompt == "" {
		prompt = "> "
	}

	e := evaluator.New()
	e.Out = out
	e.In = in
	modules.NewLoader(e, proj.ModuleRoot)

	if interactive {
		fmt.Fprintf(out, "patlang v%s  (type 'exit' to quit)\n", config.Version)
	}

	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(out, prompt)
		}
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "exit" {
			return
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		prog, ok := parseSource(e, line, "<repl>")
		if !ok || len(prog.Statements) == 0 {
			continue
		}

		// evaluate everything, echo the last statement's value
		var result evaluator.Object = evaluator.NIL
		for _, stmt := range prog.Statements {
			result = e.Eval(stmt, e.GlobalEnv)
			if err, isErr := result.(*evaluator.Error); isErr {
				fmt.Fprintln(os.Stderr, err.Inspect())
				break
			}
		}
		if result != nil && !isNullOrSignal(result) {
			fmt.Fprintln(out, result.Inspect())
		}
	}
}

func isNullOrSignal(obj evaluator.Object) bool {
	switch obj.Type() {
	case evaluator.NULL_OBJ, evaluator.ERROR_OBJ,
		evaluator.RETURN_VALUE_OBJ, evaluator.BREAK_SIGNAL_OBJ, evaluator.YIELD_SIGNAL_OBJ:
		return true
	}
	return false
}
