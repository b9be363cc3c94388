package ast

import (
	"github.com/funvibe/patlang/internal/token"
)

// TokenProvider is an interface for any AST node that can provide its
// primary token. This is useful for error reporting.
type TokenProvider interface {
	GetToken() token.Token
}

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
}

// Statement is a Node that represents a statement.
type Statement interface {
	Node
	statementNode()
	GetToken() token.Token
}

// Expression is a Node that represents an expression.
type Expression interface {
	Node
	expressionNode()
	GetToken() token.Token
}

// Program is the root node of every AST the parser produces.
type Program struct {
	File       string // source file path
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

// ExpressionStatement wraps an expression appearing in statement position.
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Lexeme }
func (es *ExpressionStatement) GetToken() token.Token {
	if es == nil {
		return token.Token{}
	}
	return es.Token
}

// TypeAnnotation represents a type written in source, e.g. i32 or
// Box<i32>. Name is set when the annotation binds a name (named return
// values, named tuple elements of the form name:type).
type TypeAnnotation struct {
	Token    token.Token
	Name     string // optional binding name
	TypeName string
	Args     *TemplateInstantiation // optional template arguments
}

func (ta *TypeAnnotation) expressionNode()      {}
func (ta *TypeAnnotation) TokenLiteral() string { return ta.Token.Lexeme }
func (ta *TypeAnnotation) GetToken() token.Token {
	if ta == nil {
		return token.Token{}
	}
	return ta.Token
}

// TemplateParam is one parameter of a template declaration:
// Name[:TypeName][:count] [= Default], or Name::[count] when the type
// is omitted and the parameter is variadic.
type TemplateParam struct {
	Token      token.Token
	Name       string
	TypeName   string // empty when omitted
	IsVariadic bool
	Default    Expression
}

func (tp *TemplateParam) GetToken() token.Token {
	if tp == nil {
		return token.Token{}
	}
	return tp.Token
}

// TemplateDecl is the <...> parameter list on fn/var/pat declarations.
// Parsed and retained; evaluation ignores it.
type TemplateDecl struct {
	Token  token.Token // the '<' token
	Params []*TemplateParam
}

func (td *TemplateDecl) GetToken() token.Token {
	if td == nil {
		return token.Token{}
	}
	return td.Token
}
