package lexer

import (
	"github.com/funvibe/patlang/internal/pipeline"
)

type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	ctx.Lexer = New(ctx.SourceCode)
	return ctx
}
