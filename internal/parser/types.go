package parser

import (
	"github.com/funvibe/patlang/internal/ast"
	"github.com/funvibe/patlang/internal/token"
)

// parseTypeAnnotation parses [name ':'] type ['<' args '>']. The name
// prefix form appears in return tuples and named tuple elements.
func (p *Parser) parseTypeAnnotation() *ast.TypeAnnotation {
	ta := &ast.TypeAnnotation{Token: p.cur}

	if p.check(token.IDENT) && p.lex.Peek().Type == token.COLON {
		ta.Name = p.cur.Literal
		p.advance()
		p.advance() // consume ':'
	}

	switch p.cur.Type {
	case token.IDENT:
		ta.TypeName = p.cur.Literal
		p.advance()
		if p.check(token.LT) {
			ta.Args = p.parseTemplateArgs()
		}
	case token.NULL:
		ta.TypeName = "null"
		p.advance()
	}
	return ta
}

// parseTemplateArgs parses '<' expr (',' expr)* '>' inside a type
// annotation, e.g. Box<i32, 4>.
func (p *Parser) parseTemplateArgs() *ast.TemplateInstantiation {
	ti := &ast.TemplateInstantiation{Token: p.cur}
	p.advance() // consume <
	for !p.check(token.GT) && !p.check(token.EOF) {
		ti.Args = append(ti.Args, p.parseExpression())
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.GT)
	return ti
}

// parseTemplateDecl parses an optional template parameter list:
//
//	<Param[:type][:count][=default], …>
//	<Param::[count][=default], …>   (type omitted, variadic)
//
// '::' directly after the name means the type is omitted and the second
// ':' (the variadic marker) follows immediately.
func (p *Parser) parseTemplateDecl() *ast.TemplateDecl {
	if !p.check(token.LT) {
		return nil
	}
	td := &ast.TemplateDecl{Token: p.cur}
	p.advance() // consume <
	for !p.check(token.GT) && !p.check(token.EOF) {
		if p.check(token.IDENT) {
			param := &ast.TemplateParam{Token: p.cur, Name: p.cur.Literal}
			p.advance()

			if p.match(token.DCOLON) {
				param.IsVariadic = true
				if p.check(token.IDENT) || p.check(token.INT) {
					p.advance() // optional variadic count
				}
			} else if p.match(token.COLON) {
				if p.check(token.IDENT) {
					param.TypeName = p.cur.Literal
					p.advance()
				}
				if p.match(token.COLON) {
					param.IsVariadic = true
					if p.check(token.IDENT) || p.check(token.INT) {
						p.advance() // optional count
					}
				}
			}

			if p.match(token.ASSIGN) {
				param.Default = p.parseExpression()
			}
			td.Params = append(td.Params, param)
		}
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.GT)
	return td
}
