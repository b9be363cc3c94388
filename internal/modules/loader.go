package modules

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/funvibe/patlang/internal/ast"
	"github.com/funvibe/patlang/internal/evaluator"
	"github.com/funvibe/patlang/internal/lexer"
	"github.com/funvibe/patlang/internal/parser"
	"github.com/funvibe/patlang/internal/pipeline"
	"github.com/funvibe/patlang/internal/utils"
)

// Loader loads modules and caches them by resolved file path. A module
// being loaded is marked in-progress so a transitive self-import fails
// with a cyclic-import error instead of recursing forever.
type Loader struct {
	loaded  map[string]evaluator.Object
	loading map[string]bool

	// BaseDir anchors relative import paths; empty means the current
	// working directory.
	BaseDir string

	eval *evaluator.Evaluator
}

func NewLoader(e *evaluator.Evaluator, baseDir string) *Loader {
	l := &Loader{
		loaded:  make(map[string]evaluator.Object),
		loading: make(map[string]bool),
		BaseDir: baseDir,
		eval:    e,
	}
	e.Loader = l
	return l
}

// Load resolves, parses and evaluates a module file. Parse and runtime
// errors inside the module are reported to the host error sink and the
// module value is replaced with null, so importing surfaces the
// proximate cause without silently succeeding.
func (l *Loader) Load(path string) (evaluator.Object, error) {
	resolved := utils.ResolveImportPath(l.BaseDir, path)
	absPath, err := filepath.Abs(resolved)
	if err != nil {
		absPath = resolved
	}

	if mod, ok := l.loaded[absPath]; ok {
		return mod, nil
	}
	if l.loading[absPath] {
		return nil, fmt.Errorf("cyclic import of %s", path)
	}

	src, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("Module not found: %s", path)
	}

	ctx := &pipeline.PipelineContext{SourceCode: string(src), FilePath: resolved}
	pipe := pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{})
	ctx = pipe.Run(ctx)
	if ctx.HasErrors() {
		fmt.Fprintf(l.eval.ErrOut, "Parse error in module %s: %s\n", path, ctx.Errors[0].Error())
		return evaluator.NIL, nil
	}
	prog, ok := ctx.AstRoot.(*ast.Program)
	if !ok {
		return evaluator.NIL, nil
	}

	l.loading[absPath] = true
	defer delete(l.loading, absPath)

	modEnv := evaluator.NewEnclosedEnvironment(l.eval.GlobalEnv)
	result := l.eval.Eval(prog, modEnv)
	if err, ok := result.(*evaluator.Error); ok {
		fmt.Fprintf(l.eval.ErrOut, "Runtime error in module %s: %s\n", path, err.Inspect())
		return evaluator.NIL, nil
	}

	mod := &evaluator.Module{Name: utils.ModuleNameFromPath(resolved), Env: modEnv}
	l.loaded[absPath] = mod
	return mod, nil
}
