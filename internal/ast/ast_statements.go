package ast

import (
	"github.com/funvibe/patlang/internal/token"
)

// Attrs records the attribute keywords accepted after '::'. They are
// parsed and retained; evaluation ignores them.
type Attrs struct {
	IsStatic    bool
	IsConst     bool
	IsConstexpr bool
}

// Parameter is one function parameter: optional copy/move qualifier,
// name, optional type annotation and attributes, optional default.
type Parameter struct {
	Token   token.Token
	Name    string
	IsCopy  bool
	IsMove  bool
	Type    *TypeAnnotation // nil when omitted
	Attrs   Attrs
	Default Expression // nil when absent
}

func (p *Parameter) GetToken() token.Token {
	if p == nil {
		return token.Token{}
	}
	return p.Token
}

// FunctionDeclaration represents fn name(params) [: ret] [:: attrs] { body }.
// The name may be a quoted custom operator such as "+>".
type FunctionDeclaration struct {
	Token      token.Token // the 'fn' token
	Name       string
	IsCustomOp bool
	IsPub      bool
	Template   *TemplateDecl // nil when absent
	Parameters []*Parameter
	ReturnAnn  Expression // *TypeAnnotation or *TupleLiteral of annotations; nil when absent
	Attrs      Attrs
	Body       *ScopeExpression // nil for bodyless declarations
}

func (fd *FunctionDeclaration) statementNode()       {}
func (fd *FunctionDeclaration) TokenLiteral() string { return fd.Token.Lexeme }
func (fd *FunctionDeclaration) GetToken() token.Token {
	if fd == nil {
		return token.Token{}
	}
	return fd.Token
}

// VarDeclaration represents var name [:type] [:: attrs] [= init].
type VarDeclaration struct {
	Token    token.Token // the 'var' token
	Name     string
	IsPub    bool
	Template *TemplateDecl
	Type     *TypeAnnotation // nil when omitted
	Attrs    Attrs
	Init     Expression // nil when absent
}

func (vd *VarDeclaration) statementNode()       {}
func (vd *VarDeclaration) TokenLiteral() string { return vd.Token.Lexeme }
func (vd *VarDeclaration) GetToken() token.Token {
	if vd == nil {
		return token.Token{}
	}
	return vd.Token
}

// PatternDeclaration represents pat Name [:Base|Base2] [:: attrs] { body }.
// Var declarations in the body become fields, fn declarations methods.
type PatternDeclaration struct {
	Token    token.Token // the 'pat' token
	Name     string
	IsPub    bool
	Template *TemplateDecl
	Bases    []*Identifier
	Attrs    Attrs
	Body     *ScopeExpression
}

func (pd *PatternDeclaration) statementNode()       {}
func (pd *PatternDeclaration) TokenLiteral() string { return pd.Token.Lexeme }
func (pd *PatternDeclaration) GetToken() token.Token {
	if pd == nil {
		return token.Token{}
	}
	return pd.Token
}

// ImportItem is one entry of an import's 'of' list: name [as alias].
type ImportItem struct {
	Token token.Token
	Name  string
	Alias string // empty when absent
}

func (ii *ImportItem) GetToken() token.Token {
	if ii == nil {
		return token.Token{}
	}
	return ii.Token
}

// ImportDeclaration represents import a.b.c [as alias] [of items].
type ImportDeclaration struct {
	Token token.Token // the 'import' token
	Path  string      // dotted module name
	Alias string      // empty when absent
	Items []*ImportItem
}

func (id *ImportDeclaration) statementNode()       {}
func (id *ImportDeclaration) TokenLiteral() string { return id.Token.Lexeme }
func (id *ImportDeclaration) GetToken() token.Token {
	if id == nil {
		return token.Token{}
	}
	return id.Token
}

// ForExpression represents for (name : iterable) { body }.
type ForExpression struct {
	Token    token.Token // the 'for' token
	ItemName string
	Iterable Expression
	Body     *ScopeExpression
}

func (fe *ForExpression) statementNode()       {}
func (fe *ForExpression) expressionNode()      {}
func (fe *ForExpression) TokenLiteral() string { return fe.Token.Lexeme }
func (fe *ForExpression) GetToken() token.Token {
	if fe == nil {
		return token.Token{}
	}
	return fe.Token
}

// WhileExpression represents [while(cond)] { body } [while(post)].
// Either condition may be nil.
type WhileExpression struct {
	Token     token.Token
	Condition Expression // checked before each iteration; nil to skip
	Body      *ScopeExpression
	PostCond  Expression // checked after each iteration; nil to skip
}

func (we *WhileExpression) statementNode()       {}
func (we *WhileExpression) expressionNode()      {}
func (we *WhileExpression) TokenLiteral() string { return we.Token.Lexeme }
func (we *WhileExpression) GetToken() token.Token {
	if we == nil {
		return token.Token{}
	}
	return we.Token
}

// CaseClause is one case of a switch. Condition is nil for default.
type CaseClause struct {
	Token     token.Token
	Condition Expression // nil for default
	Body      []Statement
}

func (cc *CaseClause) GetToken() token.Token {
	if cc == nil {
		return token.Token{}
	}
	return cc.Token
}

// SwitchExpression represents switch(selector) { case ... default: ... }.
type SwitchExpression struct {
	Token    token.Token // the 'switch' token
	Selector Expression
	Cases    []*CaseClause
}

func (se *SwitchExpression) statementNode()       {}
func (se *SwitchExpression) expressionNode()      {}
func (se *SwitchExpression) TokenLiteral() string { return se.Token.Lexeme }
func (se *SwitchExpression) GetToken() token.Token {
	if se == nil {
		return token.Token{}
	}
	return se.Token
}

// BreakStatement exits the innermost loop or switch case.
type BreakStatement struct {
	Token token.Token
}

func (bs *BreakStatement) statementNode()       {}
func (bs *BreakStatement) TokenLiteral() string { return bs.Token.Lexeme }
func (bs *BreakStatement) GetToken() token.Token {
	if bs == nil {
		return token.Token{}
	}
	return bs.Token
}

// YieldStatement updates the enclosing loop's accumulator and continues.
type YieldStatement struct {
	Token token.Token
	Value Expression // nil yields null
}

func (ys *YieldStatement) statementNode()       {}
func (ys *YieldStatement) TokenLiteral() string { return ys.Token.Lexeme }
func (ys *YieldStatement) GetToken() token.Token {
	if ys == nil {
		return token.Token{}
	}
	return ys.Token
}

// ReturnStatement returns from the enclosing function.
type ReturnStatement struct {
	Token token.Token
	Value Expression // nil returns null
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Lexeme }
func (rs *ReturnStatement) GetToken() token.Token {
	if rs == nil {
		return token.Token{}
	}
	return rs.Token
}
