package parser

import (
	"fmt"

	"github.com/funvibe/patlang/internal/ast"
	"github.com/funvibe/patlang/internal/diagnostics"
	"github.com/funvibe/patlang/internal/lexer"
	"github.com/funvibe/patlang/internal/pipeline"
	"github.com/funvibe/patlang/internal/token"
)

// Parser is a recursive-descent parser with Pratt-style binary
// precedence. It records the first error and suppresses later ones;
// ParseProgram stops after the statement in which that error occurred.
// A program parsed with HadError set must not be executed.
type Parser struct {
	lex      *lexer.Lexer
	ctx      *pipeline.PipelineContext
	cur      token.Token
	hadError bool
}

func New(l *lexer.Lexer, ctx *pipeline.PipelineContext) *Parser {
	p := &Parser{lex: l, ctx: ctx}
	p.advance() // prime first token
	return p
}

func (p *Parser) HadError() bool { return p.hadError }

func (p *Parser) errorf(format string, args ...any) {
	if p.hadError {
		return
	}
	p.hadError = true
	err := diagnostics.NewError(diagnostics.ErrP001, p.cur, fmt.Sprintf(format, args...))
	if p.ctx != nil {
		p.ctx.AddError(err)
	}
}

func (p *Parser) advance() {
	p.cur = p.lex.NextToken()
}

func (p *Parser) check(t token.TokenType) bool { return p.cur.Type == t }

func (p *Parser) match(t token.TokenType) bool {
	if p.check(t) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expect(t token.TokenType) {
	if !p.check(t) {
		p.errorf("expected '%s'", token.Describe(t))
		return
	}
	p.advance()
}

func (p *Parser) skipTerminators() {
	for p.cur.Type == token.NEWLINE || p.cur.Type == token.SEMI {
		p.advance()
	}
}

// snapshot captures parser + lexer state for local backtracking out of a
// speculative template-argument parse.
type snapshot struct {
	lex      lexer.Snapshot
	cur      token.Token
	hadError bool
	errCount int
}

func (p *Parser) save() snapshot {
	s := snapshot{lex: p.lex.Snapshot(), cur: p.cur, hadError: p.hadError}
	if p.ctx != nil {
		s.errCount = len(p.ctx.Errors)
	}
	return s
}

func (p *Parser) restore(s snapshot) {
	p.lex.Restore(s.lex)
	p.cur = s.cur
	p.hadError = s.hadError
	if p.ctx != nil && len(p.ctx.Errors) > s.errCount {
		p.ctx.Errors = p.ctx.Errors[:s.errCount]
	}
}

// ParseProgram parses statements until EOF or until an error is recorded.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	p.skipTerminators()
	for !p.check(token.EOF) && !p.hadError {
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		p.skipTerminators()
	}
	return prog
}

func (p *Parser) parseStatement() ast.Statement {
	pub := false
	if p.check(token.PUB) {
		p.advance()
		pub = true
	}

	switch p.cur.Type {
	case token.FN:
		return p.parseFunctionDeclaration(pub)
	case token.VAR:
		return p.parseVarDeclaration(pub)
	case token.PAT:
		return p.parsePatternDeclaration(pub)
	case token.IMPORT:
		if pub {
			p.errorf("import cannot be pub")
		}
		return p.parseImportDeclaration()
	case token.FOR:
		return p.parseFor()
	case token.WHILE:
		return p.parseWhile()
	case token.SWITCH:
		return p.parseSwitch()
	case token.BREAK:
		tok := p.cur
		p.advance()
		return &ast.BreakStatement{Token: tok}
	case token.YIELD:
		tok := p.cur
		p.advance()
		stmt := &ast.YieldStatement{Token: tok}
		if !p.atStatementEnd() {
			stmt.Value = p.parseExpression()
		}
		return stmt
	case token.RETURN:
		tok := p.cur
		p.advance()
		stmt := &ast.ReturnStatement{Token: tok}
		if !p.atStatementEnd() {
			stmt.Value = p.parseExpression()
		}
		return stmt
	case token.LBRACE:
		sc := p.parseScope()
		// { body } while (cond): a loop with only a trailing condition
		if p.check(token.WHILE) {
			we := &ast.WhileExpression{Token: sc.Token, Body: sc}
			p.advance()
			p.expect(token.LPAREN)
			we.PostCond = p.parseExpression()
			p.expect(token.RPAREN)
			return we
		}
		return sc
	default:
		if pub {
			p.errorf("expected declaration after pub")
			return nil
		}
		tok := p.cur
		expr := p.parseExpression()
		if expr == nil {
			return nil
		}
		return &ast.ExpressionStatement{Token: tok, Expression: expr}
	}
}

func (p *Parser) atStatementEnd() bool {
	return p.check(token.NEWLINE) || p.check(token.SEMI) || p.check(token.EOF) || p.check(token.RBRACE)
}
