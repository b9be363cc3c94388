package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/funvibe/patlang/internal/ast"
	"github.com/funvibe/patlang/internal/config"
	"github.com/funvibe/patlang/internal/evaluator"
	"github.com/funvibe/patlang/internal/lexer"
	"github.com/funvibe/patlang/internal/modules"
	"github.com/funvibe/patlang/internal/parser"
	"github.com/funvibe/patlang/internal/pipeline"
)

// Entry is the process entry point: parse flags, then run a script file
// or start the REPL. Returns the process exit code.
func Entry(args []string) int {
	var showVersion bool
	exitCode := 0

	root := &cobra.Command{
		Use:           "patlang [file" + config.SourceFileExt + "]",
		Short:         "patlang is a small expression-oriented language",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Fprintf(cmd.OutOrStdout(), "patlang %s\n", config.Version)
				return nil
			}
			if len(args) == 0 {
				runRepl(os.Stdin, os.Stdout)
				return nil
			}
			exitCode = RunFile(args[0], os.Stdout, os.Stderr)
			return nil
		},
	}
	root.Flags().BoolVarP(&showVersion, "version", "v", false, "show version")
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the patlang version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "patlang %s\n", config.Version)
		},
	})
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return exitCode
}

// RunFile reads, parses and evaluates a script. Returns 0 on success, 1
// on any parse or runtime error.
func RunFile(path string, out, errOut io.Writer) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(errOut, "%s: %v\n", path, err)
		return 1
	}

	e := evaluator.New()
	e.Out = out
	e.ErrOut = errOut
	proj := LoadProject(filepath.Dir(path))
	modules.NewLoader(e, proj.ModuleRoot)

	return RunSource(e, string(src), path)
}

// RunSource drives the lex-parse-evaluate pipeline over one source unit
// against an existing evaluator. Returns 0 on success, 1 on error.
func RunSource(e *evaluator.Evaluator, source, filename string) int {
	prog, ok := parseSource(e, source, filename)
	if !ok {
		return 1
	}

	result := e.Eval(prog, e.GlobalEnv)
	if err, isErr := result.(*evaluator.Error); isErr {
		fmt.Fprintln(e.ErrOut, err.Inspect())
		return 1
	}
	return 0
}

func parseSource(e *evaluator.Evaluator, source, filename string) (*ast.Program, bool) {
	ctx := &pipeline.PipelineContext{SourceCode: source, FilePath: filename}
	pipe := pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{})
	ctx = pipe.Run(ctx)
	if ctx.HasErrors() {
		for _, diag := range ctx.Errors {
			fmt.Fprintf(e.ErrOut, "%s: %s\n", filename, diag.Error())
		}
		return nil, false
	}
	prog, ok := ctx.AstRoot.(*ast.Program)
	return prog, ok
}
