package parser

import (
	"strings"

	"github.com/funvibe/patlang/internal/ast"
	"github.com/funvibe/patlang/internal/token"
)

// parseAttrs consumes attribute keywords after a '::' has already been
// consumed.
func (p *Parser) parseAttrs() ast.Attrs {
	var a ast.Attrs
	for {
		switch p.cur.Type {
		case token.STATIC:
			a.IsStatic = true
			p.advance()
		case token.CONST:
			a.IsConst = true
			p.advance()
		case token.CONSTEXPR:
			a.IsConstexpr = true
			p.advance()
		default:
			return a
		}
	}
}

// fn_decl ::= 'fn' [tmpl] (ident | custom_op) '(' params ')' [':' ret] ['::' attrs] scope
func (p *Parser) parseFunctionDeclaration(pub bool) *ast.FunctionDeclaration {
	fn := &ast.FunctionDeclaration{Token: p.cur, IsPub: pub}
	p.advance() // consume fn

	fn.Template = p.parseTemplateDecl()

	switch p.cur.Type {
	case token.IDENT:
		fn.Name = p.cur.Literal
		p.advance()
	case token.CUSTOM_OP:
		fn.Name = p.cur.Literal
		fn.IsCustomOp = true
		p.advance()
	default:
		p.errorf("expected function name")
		return fn
	}

	p.expect(token.LPAREN)
	for !p.check(token.RPAREN) && !p.check(token.EOF) {
		fn.Parameters = append(fn.Parameters, p.parseParameter())
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.RPAREN)

	// optional return annotation: :(name:type, ...) or :type
	if p.match(token.COLON) {
		if p.check(token.LPAREN) {
			retTok := p.cur
			p.advance()
			ret := &ast.TupleLiteral{Token: retTok}
			for !p.check(token.RPAREN) && !p.check(token.EOF) {
				ta := p.parseTypeAnnotation()
				ret.Elements = append(ret.Elements, ta)
				ret.Names = append(ret.Names, ta.Name)
				if !p.match(token.COMMA) {
					break
				}
			}
			p.expect(token.RPAREN)
			fn.ReturnAnn = ret
		} else if !p.check(token.LBRACE) && !p.check(token.NEWLINE) && !p.check(token.SEMI) {
			fn.ReturnAnn = p.parseTypeAnnotation()
		}
	}
	// function-level attributes may follow with or without a return
	// annotation: fn foo() : (r:i32) :: constexpr { } or fn foo() :: { }
	if p.match(token.DCOLON) {
		fn.Attrs = p.parseAttrs()
	}

	p.skipTerminators()
	if p.check(token.LBRACE) {
		fn.Body = p.parseScope()
	}
	return fn
}

// A parameter is an optional copy/move qualifier, a name, then one of
// three forms: bare, ::attrs, or :type[::attrs], then an optional
// default value.
func (p *Parser) parseParameter() *ast.Parameter {
	param := &ast.Parameter{Token: p.cur}
	if p.check(token.COPY) {
		param.IsCopy = true
		p.advance()
	} else if p.check(token.MOVE) {
		param.IsMove = true
		p.advance()
	}
	if p.check(token.IDENT) {
		param.Name = p.cur.Literal
		p.advance()
	}
	if p.match(token.DCOLON) {
		param.Attrs = p.parseAttrs()
	} else if p.match(token.COLON) {
		param.Type = p.parseTypeAnnotation()
		if p.match(token.DCOLON) {
			param.Attrs = p.parseAttrs()
		}
	}
	if p.match(token.ASSIGN) {
		param.Default = p.parseExpression()
	}
	return param
}

// var_decl ::= 'var' [tmpl] ident (('::' attrs) | (':' [type] ['::' attrs])) ['=' expr]
func (p *Parser) parseVarDeclaration(pub bool) *ast.VarDeclaration {
	vd := &ast.VarDeclaration{Token: p.cur, IsPub: pub}
	p.advance() // consume var

	vd.Template = p.parseTemplateDecl()

	if !p.check(token.IDENT) {
		p.errorf("expected variable name")
		return vd
	}
	vd.Name = p.cur.Literal
	p.advance()

	// Forms:
	//   name:type          — type only
	//   name:type::attrs   — type + attributes
	//   name::attrs        — no type; the initializer is then required
	if p.match(token.DCOLON) {
		vd.Attrs = p.parseAttrs()
		if !p.check(token.ASSIGN) {
			p.errorf("type omitted with '::' but no '=' initializer to infer type from")
		}
	} else if p.match(token.COLON) {
		if !p.check(token.ASSIGN) && !p.check(token.NEWLINE) && !p.check(token.SEMI) &&
			!p.check(token.EOF) && !p.check(token.DCOLON) {
			vd.Type = p.parseTypeAnnotation()
		}
		if p.match(token.DCOLON) {
			vd.Attrs = p.parseAttrs()
		}
	}

	if p.match(token.ASSIGN) {
		vd.Init = p.parseExpression()
	}
	return vd
}

// pat_decl ::= 'pat' [tmpl] ident (('::' attrs) | (':' base ('|' base)* ['::' attrs])) scope
func (p *Parser) parsePatternDeclaration(pub bool) *ast.PatternDeclaration {
	pd := &ast.PatternDeclaration{Token: p.cur, IsPub: pub}
	p.advance() // consume pat

	pd.Template = p.parseTemplateDecl()

	if !p.check(token.IDENT) {
		p.errorf("expected pattern name")
		return pd
	}
	pd.Name = p.cur.Literal
	p.advance()

	if p.match(token.DCOLON) {
		pd.Attrs = p.parseAttrs()
	} else if p.match(token.COLON) {
		for {
			base := &ast.Identifier{Token: p.cur}
			if p.check(token.IDENT) {
				base.Value = p.cur.Literal
				p.advance()
			}
			pd.Bases = append(pd.Bases, base)
			if !p.match(token.PIPE) {
				break
			}
		}
		if p.match(token.DCOLON) {
			pd.Attrs = p.parseAttrs()
		}
	}

	p.skipTerminators()
	if p.check(token.LBRACE) {
		pd.Body = p.parseScope()
	}
	return pd
}

// import_decl ::= 'import' dotted_ident ['as' ident] ['of' ('{' items '}' | items)]
func (p *Parser) parseImportDeclaration() *ast.ImportDeclaration {
	imp := &ast.ImportDeclaration{Token: p.cur}
	p.advance() // consume import

	if !p.check(token.IDENT) {
		p.errorf("expected module name")
		return imp
	}
	var parts []string
	for p.check(token.IDENT) {
		parts = append(parts, p.cur.Literal)
		p.advance()
		if !p.match(token.DOT) {
			break
		}
	}
	imp.Path = strings.Join(parts, ".")

	if p.match(token.AS) {
		if p.check(token.IDENT) {
			imp.Alias = p.cur.Literal
			p.advance()
		}
	}

	if p.match(token.OF) {
		hasBrace := p.match(token.LBRACE)
		for !p.check(token.RBRACE) && !p.check(token.EOF) {
			item := &ast.ImportItem{Token: p.cur}
			if p.check(token.IDENT) {
				item.Name = p.cur.Literal
				p.advance()
			}
			if p.match(token.AS) {
				if p.check(token.IDENT) {
					item.Alias = p.cur.Literal
					p.advance()
				}
			}
			imp.Items = append(imp.Items, item)
			if !p.match(token.COMMA) {
				break
			}
		}
		if hasBrace {
			p.expect(token.RBRACE)
		}
	}
	return imp
}

func (p *Parser) parseScope() *ast.ScopeExpression {
	sc := &ast.ScopeExpression{Token: p.cur}
	p.expect(token.LBRACE)
	p.skipTerminators()
	for !p.check(token.RBRACE) && !p.check(token.EOF) && !p.hadError {
		stmt := p.parseStatement()
		if stmt != nil {
			sc.Statements = append(sc.Statements, stmt)
		}
		p.skipTerminators()
	}
	p.expect(token.RBRACE)
	return sc
}

// for ::= 'for' '(' ident ':' expr ')' scope
func (p *Parser) parseFor() *ast.ForExpression {
	fe := &ast.ForExpression{Token: p.cur}
	p.advance() // consume for
	p.expect(token.LPAREN)
	if p.check(token.IDENT) {
		fe.ItemName = p.cur.Literal
		p.advance()
	}
	p.expect(token.COLON)
	fe.Iterable = p.parseExpression()
	p.expect(token.RPAREN)
	// optional type/attrs after the header, ignored
	if p.match(token.COLON) {
		for p.check(token.COLON) || p.check(token.IDENT) {
			p.advance()
		}
	}
	p.skipTerminators()
	fe.Body = p.parseScope()
	return fe
}

// while ::= ['while' '(' expr ')'] scope ['while' '(' expr ')']
func (p *Parser) parseWhile() *ast.WhileExpression {
	we := &ast.WhileExpression{Token: p.cur}

	if p.check(token.WHILE) {
		p.advance()
		p.expect(token.LPAREN)
		we.Condition = p.parseExpression()
		p.expect(token.RPAREN)
	}

	p.skipTerminators()
	we.Body = p.parseScope()

	if p.check(token.WHILE) {
		p.advance()
		p.expect(token.LPAREN)
		we.PostCond = p.parseExpression()
		p.expect(token.RPAREN)
	}
	return we
}

// switch ::= 'switch' '(' expr ')' '{' case* '}'
func (p *Parser) parseSwitch() *ast.SwitchExpression {
	sw := &ast.SwitchExpression{Token: p.cur}
	p.advance() // consume switch
	p.expect(token.LPAREN)
	sw.Selector = p.parseExpression()
	p.expect(token.RPAREN)
	// optional type/attrs after the header, ignored
	if p.match(token.COLON) {
		for !p.check(token.LBRACE) && !p.check(token.EOF) {
			p.advance()
		}
	}
	p.expect(token.LBRACE)
	p.skipTerminators()
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		if p.check(token.CASE) {
			cas := &ast.CaseClause{Token: p.cur}
			p.advance()
			cas.Condition = p.parseExpression()
			p.expect(token.COLON)
			p.parseCaseBody(cas, false)
			sw.Cases = append(sw.Cases, cas)
		} else if p.check(token.DEFAULT) {
			cas := &ast.CaseClause{Token: p.cur}
			p.advance()
			p.expect(token.COLON)
			p.parseCaseBody(cas, true)
			sw.Cases = append(sw.Cases, cas)
		} else {
			break
		}
		p.skipTerminators()
	}
	p.expect(token.RBRACE)
	return sw
}

// A case body runs until break, the next case/default, or the closing
// brace. A trailing break is consumed; fall-through is not supported.
func (p *Parser) parseCaseBody(cas *ast.CaseClause, isDefault bool) {
	hasBrace := false
	if p.check(token.LBRACE) {
		hasBrace = true
		p.advance()
	}
	p.skipTerminators()
	for !p.check(token.BREAK) && !p.check(token.RBRACE) && !p.check(token.EOF) {
		if !isDefault && (p.check(token.CASE) || p.check(token.DEFAULT)) {
			break
		}
		stmt := p.parseStatement()
		if stmt != nil {
			cas.Body = append(cas.Body, stmt)
		}
		p.skipTerminators()
	}
	if hasBrace && p.check(token.RBRACE) {
		p.advance()
	}
	if p.check(token.BREAK) {
		p.advance()
	}
}
