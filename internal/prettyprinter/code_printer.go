package prettyprinter

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/funvibe/patlang/internal/ast"
)

// CodePrinter renders an AST back to source text. Binary and ternary
// expressions are printed fully parenthesised so that re-parsing the
// output yields a structurally identical tree.
type CodePrinter struct {
	buf    bytes.Buffer
	indent int
}

func Print(node ast.Node) string {
	p := &CodePrinter{}
	p.printNode(node)
	return p.buf.String()
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *CodePrinter) writeIndent() {
	p.write(strings.Repeat("    ", p.indent))
}

func (p *CodePrinter) printNode(node ast.Node) {
	switch n := node.(type) {
	case *ast.Program:
		for _, stmt := range n.Statements {
			p.writeIndent()
			p.printNode(stmt)
			p.write("\n")
		}
	case *ast.ExpressionStatement:
		p.printNode(n.Expression)

	case *ast.Identifier:
		p.write(n.Value)
	case *ast.IntegerLiteral:
		p.write(strconv.FormatInt(n.Value, 10))
	case *ast.FloatLiteral:
		s := strconv.FormatFloat(n.Value, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		p.write(s)
	case *ast.StringLiteral:
		p.write(quoteString(n.Value))
	case *ast.NullLiteral:
		p.write("null")

	case *ast.PrefixExpression:
		p.write(n.Operator)
		p.printNode(n.Right)
	case *ast.InfixExpression:
		p.write("(")
		p.printNode(n.Left)
		p.write(" " + n.Operator + " ")
		p.printNode(n.Right)
		p.write(")")
	case *ast.AssignExpression:
		p.printNode(n.Target)
		p.write(" = ")
		p.printNode(n.Value)
	case *ast.TernaryExpression:
		p.write("(")
		p.printNode(n.Condition)
		p.write(" ? ")
		p.printNode(n.Then)
		if n.Else != nil {
			p.write(" : ")
			p.printNode(n.Else)
		}
		p.write(")")
	case *ast.CopyExpression:
		p.write("copy ")
		p.printNode(n.Operand)
	case *ast.MoveExpression:
		p.write("move ")
		p.printNode(n.Operand)

	case *ast.CallExpression:
		p.printNode(n.Callee)
		p.write("(")
		for i, arg := range n.Arguments {
			if i > 0 {
				p.write(", ")
			}
			p.printNode(arg)
		}
		p.write(")")
	case *ast.MemberExpression:
		p.printNode(n.Object)
		p.write("." + n.Name)
	case *ast.IndexExpression:
		p.printNode(n.Object)
		p.write("[")
		p.printNode(n.Index)
		p.write("]")
	case *ast.TupleLiteral:
		p.write("(")
		for i, el := range n.Elements {
			if i > 0 {
				p.write(", ")
			}
			if n.Names != nil && n.Names[i] != "" {
				if _, isAnn := el.(*ast.TypeAnnotation); !isAnn {
					p.write(n.Names[i] + ": ")
				}
			}
			p.printNode(el)
		}
		if len(n.Elements) == 1 && n.Names == nil {
			p.write(",")
		}
		p.write(")")
	case *ast.ScopeExpression:
		p.printScope(n)
	case *ast.TemplateInstantiation:
		if n.Base != nil {
			p.printNode(n.Base)
		}
		p.write("<")
		for i, arg := range n.Args {
			if i > 0 {
				p.write(", ")
			}
			p.printNode(arg)
		}
		p.write(">")
	case *ast.TypeAnnotation:
		if n.Name != "" {
			p.write(n.Name + ":")
		}
		p.write(n.TypeName)
		if n.Args != nil {
			p.printNode(n.Args)
		}

	case *ast.FunctionDeclaration:
		p.printFunctionDeclaration(n)
	case *ast.VarDeclaration:
		p.printVarDeclaration(n)
	case *ast.PatternDeclaration:
		p.printPatternDeclaration(n)
	case *ast.ImportDeclaration:
		p.printImportDeclaration(n)

	case *ast.ForExpression:
		p.write("for (" + n.ItemName + " : ")
		p.printNode(n.Iterable)
		p.write(") ")
		p.printScope(n.Body)
	case *ast.WhileExpression:
		if n.Condition != nil {
			p.write("while (")
			p.printNode(n.Condition)
			p.write(") ")
		}
		p.printScope(n.Body)
		if n.PostCond != nil {
			p.write(" while (")
			p.printNode(n.PostCond)
			p.write(")")
		}
	case *ast.SwitchExpression:
		p.printSwitch(n)

	case *ast.BreakStatement:
		p.write("break")
	case *ast.YieldStatement:
		p.write("yield")
		if n.Value != nil {
			p.write(" ")
			p.printNode(n.Value)
		}
	case *ast.ReturnStatement:
		p.write("return")
		if n.Value != nil {
			p.write(" ")
			p.printNode(n.Value)
		}
	}
}

func (p *CodePrinter) printScope(sc *ast.ScopeExpression) {
	if sc == nil {
		p.write("{}")
		return
	}
	p.write("{\n")
	p.indent++
	for i, stmt := range sc.Statements {
		p.writeIndent()
		p.printNode(stmt)
		// newlines inside braces do not end statements, so separate them
		if i+1 < len(sc.Statements) {
			p.write(";")
		}
		p.write("\n")
	}
	p.indent--
	p.writeIndent()
	p.write("}")
}

func (p *CodePrinter) printAttrs(a ast.Attrs) {
	if a.IsStatic {
		p.write(" static")
	}
	if a.IsConst {
		p.write(" const")
	}
	if a.IsConstexpr {
		p.write(" constexpr")
	}
}

func (p *CodePrinter) printTemplateDecl(td *ast.TemplateDecl) {
	if td == nil {
		return
	}
	p.write("<")
	for i, param := range td.Params {
		if i > 0 {
			p.write(", ")
		}
		p.write(param.Name)
		if param.IsVariadic && param.TypeName == "" {
			p.write("::")
		} else if param.TypeName != "" {
			p.write(":" + param.TypeName)
			if param.IsVariadic {
				p.write(":")
			}
		}
		if param.Default != nil {
			p.write(" = ")
			p.printNode(param.Default)
		}
	}
	p.write("> ")
}

func (p *CodePrinter) printFunctionDeclaration(n *ast.FunctionDeclaration) {
	if n.IsPub {
		p.write("pub ")
	}
	p.write("fn ")
	p.printTemplateDecl(n.Template)
	if n.IsCustomOp {
		p.write(fmt.Sprintf("%q", n.Name))
	} else {
		p.write(n.Name)
	}
	p.write("(")
	for i, param := range n.Parameters {
		if i > 0 {
			p.write(", ")
		}
		if param.IsCopy {
			p.write("copy ")
		}
		if param.IsMove {
			p.write("move ")
		}
		p.write(param.Name)
		if param.Type != nil {
			p.write(":")
			p.printNode(param.Type)
		}
		if param.Default != nil {
			p.write(" = ")
			p.printNode(param.Default)
		}
	}
	p.write(")")
	if n.ReturnAnn != nil {
		p.write(" : ")
		p.printNode(n.ReturnAnn)
	}
	if n.Attrs != (ast.Attrs{}) {
		p.write(" ::")
		p.printAttrs(n.Attrs)
	}
	p.write(" ")
	p.printScope(n.Body)
}

func (p *CodePrinter) printVarDeclaration(n *ast.VarDeclaration) {
	if n.IsPub {
		p.write("pub ")
	}
	p.write("var ")
	p.printTemplateDecl(n.Template)
	p.write(n.Name)
	if n.Type != nil {
		p.write(":")
		p.printNode(n.Type)
	}
	if n.Attrs != (ast.Attrs{}) {
		if n.Type == nil {
			p.write("::")
		} else {
			p.write(" ::")
		}
		p.printAttrs(n.Attrs)
	}
	if n.Init != nil {
		p.write(" = ")
		p.printNode(n.Init)
	}
}

func (p *CodePrinter) printPatternDeclaration(n *ast.PatternDeclaration) {
	if n.IsPub {
		p.write("pub ")
	}
	p.write("pat ")
	p.printTemplateDecl(n.Template)
	p.write(n.Name)
	if len(n.Bases) > 0 {
		p.write(":")
		for i, base := range n.Bases {
			if i > 0 {
				p.write("|")
			}
			p.write(base.Value)
		}
	}
	p.write(" ")
	p.printScope(n.Body)
}

func (p *CodePrinter) printImportDeclaration(n *ast.ImportDeclaration) {
	p.write("import " + n.Path)
	if n.Alias != "" {
		p.write(" as " + n.Alias)
	}
	if len(n.Items) > 0 {
		p.write(" of ")
		for i, item := range n.Items {
			if i > 0 {
				p.write(", ")
			}
			p.write(item.Name)
			if item.Alias != "" {
				p.write(" as " + item.Alias)
			}
		}
	}
}

func (p *CodePrinter) printSwitch(n *ast.SwitchExpression) {
	p.write("switch (")
	p.printNode(n.Selector)
	p.write(") {\n")
	p.indent++
	for _, cas := range n.Cases {
		p.writeIndent()
		if cas.Condition != nil {
			p.write("case ")
			p.printNode(cas.Condition)
			p.write(":\n")
		} else {
			p.write("default:\n")
		}
		p.indent++
		for _, stmt := range cas.Body {
			p.writeIndent()
			p.printNode(stmt)
			p.write(";\n")
		}
		p.writeIndent()
		p.write("break\n")
		p.indent--
	}
	p.indent--
	p.writeIndent()
	p.write("}")
}

func quoteString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\n':
			sb.WriteString("\\n")
		case '\t':
			sb.WriteString("\\t")
		case '\r':
			sb.WriteString("\\r")
		case '\\':
			sb.WriteString("\\\\")
		case '"':
			sb.WriteString("\\\"")
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
