package parser

import (
	"github.com/funvibe/patlang/internal/diagnostics"
	"github.com/funvibe/patlang/internal/lexer"
	"github.com/funvibe/patlang/internal/pipeline"
	"github.com/funvibe/patlang/internal/token"
)

type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	l, ok := ctx.Lexer.(*lexer.Lexer)
	if !ok || l == nil {
		ctx.AddError(diagnostics.NewError(diagnostics.ErrP001, token.Token{}, "parser: lexer is nil"))
		return ctx
	}

	p := New(l, ctx)
	prog := p.ParseProgram()
	prog.File = ctx.FilePath
	ctx.AstRoot = prog

	for _, err := range ctx.Errors {
		if err.File == "" {
			err.File = ctx.FilePath
		}
	}
	return ctx
}
