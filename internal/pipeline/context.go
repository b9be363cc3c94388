package pipeline

import (
	"github.com/funvibe/patlang/internal/diagnostics"
)

// Processor is a single pipeline stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// PipelineContext carries a compilation unit through the stages.
// AstRoot is typed as any to keep this package free of AST imports;
// consumers assert it to *ast.Program.
type PipelineContext struct {
	SourceCode string
	FilePath   string

	// Lexer is installed by the lexer stage and consumed by the parser;
	// typed as any to avoid a dependency cycle.
	Lexer any

	AstRoot any

	Errors []*diagnostics.DiagnosticError
}

// HasErrors reports whether any stage recorded a diagnostic.
func (ctx *PipelineContext) HasErrors() bool {
	return len(ctx.Errors) > 0
}

// AddError appends a diagnostic, stamping the unit's file path.
func (ctx *PipelineContext) AddError(err *diagnostics.DiagnosticError) {
	if err.File == "" {
		err.File = ctx.FilePath
	}
	ctx.Errors = append(ctx.Errors, err)
}
