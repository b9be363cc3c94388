package parser

import (
	"strconv"

	"github.com/funvibe/patlang/internal/ast"
	"github.com/funvibe/patlang/internal/token"
)

// Binary operator precedence, higher binds tighter. Assignment and the
// ternary are handled separately at the top of expression parsing.
func binopPrec(t token.TokenType) int {
	switch t {
	case token.OR:
		return 1
	case token.AND:
		return 2
	case token.PIPE:
		return 3
	case token.CARET:
		return 4
	case token.AMP:
		return 5
	case token.EQ, token.NEQ:
		return 6
	case token.LT, token.GT, token.LTE, token.GTE:
		return 7
	case token.LSHIFT, token.RSHIFT:
		return 8
	case token.PLUS, token.MINUS:
		return 9
	case token.STAR, token.SLASH, token.PERCENT:
		return 10
	}
	return -1
}

func (p *Parser) parseExpression() ast.Expression {
	return p.parseExpressionPrec(0)
}

func (p *Parser) parseExpressionPrec(minPrec int) ast.Expression {
	left := p.parseUnary()
	if left == nil {
		return nil
	}

	// assignment: lowest precedence, right-associative, recognised only
	// at the top of expression parsing
	if minPrec == 0 && p.check(token.ASSIGN) {
		tok := p.cur
		p.advance()
		right := p.parseExpression()
		left = &ast.AssignExpression{Token: tok, Target: left, Value: right}
	}

	for {
		prec := binopPrec(p.cur.Type)
		if prec < minPrec+1 {
			break
		}
		tok := p.cur
		p.advance()
		right := p.parseExpressionPrec(prec)
		left = &ast.InfixExpression{Token: tok, Operator: tok.Lexeme, Left: left, Right: right}
	}

	// ternary attaches after all binary operators, so that
	// a < b ? c : d reads (a < b) ? c : d
	if minPrec == 0 && p.check(token.QUESTION) {
		tok := p.cur
		p.advance()
		te := &ast.TernaryExpression{Token: tok, Condition: left}
		te.Then = p.parseExpression()
		if p.match(token.COLON) {
			te.Else = p.parseExpression()
		}
		return te
	}

	return left
}

func (p *Parser) parseUnary() ast.Expression {
	switch p.cur.Type {
	case token.MINUS, token.BANG, token.TILDE:
		tok := p.cur
		p.advance()
		return &ast.PrefixExpression{Token: tok, Operator: tok.Lexeme, Right: p.parseUnary()}
	case token.COPY:
		tok := p.cur
		p.advance()
		return &ast.CopyExpression{Token: tok, Operand: p.parseUnary()}
	case token.MOVE:
		tok := p.cur
		p.advance()
		return &ast.MoveExpression{Token: tok, Operand: p.parseUnary()}
	}
	return p.parsePostfix(p.parsePrimary())
}

func (p *Parser) parsePrimary() ast.Expression {
	tok := p.cur

	switch p.cur.Type {
	case token.INT:
		v, _ := strconv.ParseInt(tok.Literal, 10, 64)
		p.advance()
		return &ast.IntegerLiteral{Token: tok, Value: v}
	case token.FLOAT:
		v, _ := strconv.ParseFloat(tok.Literal, 64)
		p.advance()
		return &ast.FloatLiteral{Token: tok, Value: v}
	case token.STRING:
		p.advance()
		return &ast.StringLiteral{Token: tok, Value: tok.Literal}
	case token.NULL:
		p.advance()
		return &ast.NullLiteral{Token: tok}
	case token.IDENT:
		p.advance()
		return &ast.Identifier{Token: tok, Value: tok.Literal}
	case token.LPAREN:
		return p.parseParenOrTuple()
	case token.LBRACE:
		return p.parseScope()
	case token.LT:
		// bare template instantiation prefix: <Type>(...)
		ti := &ast.TemplateInstantiation{Token: tok}
		p.advance()
		for !p.check(token.GT) && !p.check(token.EOF) {
			ti.Args = append(ti.Args, p.parseTypeAnnotation())
			if !p.match(token.COMMA) {
				break
			}
		}
		p.expect(token.GT)
		return p.parsePostfix(ti)
	}

	if !p.check(token.EOF) && !p.check(token.RBRACE) && !p.check(token.RPAREN) &&
		!p.check(token.RBRACKET) && !p.check(token.SEMI) && !p.check(token.NEWLINE) {
		p.errorf("unexpected token in expression")
		p.advance()
	}
	return nil
}

// parseParenOrTuple disambiguates a parenthesised expression, an unnamed
// tuple, and a named tuple after the '(' has been seen.
func (p *Parser) parseParenOrTuple() ast.Expression {
	tok := p.cur
	p.advance() // consume (
	expr := p.parseExpression()

	// named tuple: first element is ident ':' value
	if ident, ok := expr.(*ast.Identifier); ok && p.check(token.COLON) {
		tuple := &ast.TupleLiteral{Token: tok}
		for {
			p.advance() // consume ':'
			tuple.Elements = append(tuple.Elements, p.parseExpression())
			tuple.Names = append(tuple.Names, ident.Value)
			if !p.match(token.COMMA) {
				break
			}
			if p.check(token.RPAREN) {
				break // trailing comma
			}
			expr = p.parseExpression()
			ident, ok = expr.(*ast.Identifier)
			if !ok || !p.check(token.COLON) {
				// remaining elements are positional
				tuple.Elements = append(tuple.Elements, expr)
				tuple.Names = append(tuple.Names, "")
				for p.match(token.COMMA) {
					if p.check(token.RPAREN) {
						break
					}
					tuple.Elements = append(tuple.Elements, p.parseExpression())
					tuple.Names = append(tuple.Names, "")
				}
				break
			}
		}
		p.expect(token.RPAREN)
		return tuple
	}

	// unnamed tuple: (a, b, ...); an assignment directly inside parens is
	// the named-element shorthand (x = 1, y = 2) and also forms a tuple
	if _, isAssign := expr.(*ast.AssignExpression); p.check(token.COMMA) || isAssign {
		tuple := &ast.TupleLiteral{Token: tok, Elements: []ast.Expression{expr}}
		for p.match(token.COMMA) {
			if p.check(token.RPAREN) {
				break // trailing comma
			}
			tuple.Elements = append(tuple.Elements, p.parseExpression())
		}
		p.expect(token.RPAREN)
		return tuple
	}

	// (name: type) style annotation is a 1-tuple
	if ta, ok := expr.(*ast.TypeAnnotation); ok {
		tuple := &ast.TupleLiteral{Token: tok, Elements: []ast.Expression{ta}, Names: []string{ta.Name}}
		p.expect(token.RPAREN)
		return tuple
	}

	p.expect(token.RPAREN)
	return expr
}

func (p *Parser) parsePostfix(base ast.Expression) ast.Expression {
	if base == nil {
		return nil
	}
	for {
		switch p.cur.Type {
		case token.DOT:
			tok := p.cur
			p.advance()
			p.skipTerminators() // allow newline before the member name
			mem := &ast.MemberExpression{Token: tok, Object: base}
			if p.check(token.IDENT) {
				mem.Name = p.cur.Literal
				p.advance()
			}
			base = mem
		case token.LPAREN:
			tok := p.cur
			p.advance()
			p.skipTerminators() // allow newline before args
			call := &ast.CallExpression{Token: tok, Callee: base}
			for !p.check(token.RPAREN) && !p.check(token.EOF) {
				call.Arguments = append(call.Arguments, p.parseExpression())
				if !p.match(token.COMMA) {
					break
				}
			}
			p.expect(token.RPAREN)
			base = call
		case token.LBRACKET:
			tok := p.cur
			p.advance()
			idx := &ast.IndexExpression{Token: tok, Object: base}
			idx.Index = p.parseExpression()
			p.expect(token.RBRACKET)
			base = idx
		case token.LT:
			// Ambiguous: template instantiation ident<Type>(...) or the
			// less-than operator. Speculatively parse template arguments
			// and roll the lexer and current token back on failure.
			ti, ok := p.tryTemplateInstantiation(base)
			if !ok {
				return base
			}
			base = ti
		default:
			return base
		}
	}
}

func (p *Parser) tryTemplateInstantiation(base ast.Expression) (ast.Expression, bool) {
	saved := p.save()
	tok := p.cur
	p.advance() // consume <

	ti := &ast.TemplateInstantiation{Token: tok, Base: base}
	ok := true
	for !p.check(token.GT) && !p.check(token.EOF) {
		arg := p.parseTypeAnnotation()
		if arg == nil || p.hadError {
			ok = false
			break
		}
		ti.Args = append(ti.Args, arg)
		if !p.match(token.COMMA) {
			break
		}
	}
	if ok && p.check(token.GT) {
		p.advance() // consume >
		return ti, true
	}
	p.restore(saved)
	return nil, false
}
