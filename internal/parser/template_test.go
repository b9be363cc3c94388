package parser_test

import (
	"testing"

	"github.com/funvibe/patlang/internal/ast"
)

// The '<' after a primary is ambiguous between the less-than operator
// and template instantiation; the parser tries template arguments and
// rolls back when the matching '>' never arrives.

func TestLessThanStaysComparison(t *testing.T) {
	expr := stmtExpr(t, parse(t, "a < b"), 0)
	ie, ok := expr.(*ast.InfixExpression)
	if !ok || ie.Operator != "<" {
		t.Fatalf("expected comparison, got %T", expr)
	}
}

func TestLessThanWithCallStaysComparison(t *testing.T) {
	expr := stmtExpr(t, parse(t, "a < f(1)"), 0)
	ie, ok := expr.(*ast.InfixExpression)
	if !ok || ie.Operator != "<" {
		t.Fatalf("expected comparison, got %T", expr)
	}
	if _, ok := ie.Right.(*ast.CallExpression); !ok {
		t.Fatalf("right side should be the call")
	}
}

func TestTemplateInstantiationCall(t *testing.T) {
	expr := stmtExpr(t, parse(t, "box<i32>(5)"), 0)
	call, ok := expr.(*ast.CallExpression)
	if !ok {
		t.Fatalf("expected call, got %T", expr)
	}
	ti, ok := call.Callee.(*ast.TemplateInstantiation)
	if !ok {
		t.Fatalf("callee should be template instantiation, got %T", call.Callee)
	}
	if ti.Base == nil {
		t.Fatalf("instantiation base missing")
	}
	if len(ti.Args) != 1 {
		t.Fatalf("expected 1 template argument, got %d", len(ti.Args))
	}
	ta, ok := ti.Args[0].(*ast.TypeAnnotation)
	if !ok || ta.TypeName != "i32" {
		t.Fatalf("template arg parsed wrong")
	}
}

func TestTemplateInstantiationMultiArg(t *testing.T) {
	expr := stmtExpr(t, parse(t, "pair<i32, f64>(1, 2.0)"), 0)
	call := expr.(*ast.CallExpression)
	ti := call.Callee.(*ast.TemplateInstantiation)
	if len(ti.Args) != 2 {
		t.Fatalf("expected 2 template arguments, got %d", len(ti.Args))
	}
}

func TestBareTemplatePrefix(t *testing.T) {
	expr := stmtExpr(t, parse(t, "<i32>(x)"), 0)
	call, ok := expr.(*ast.CallExpression)
	if !ok {
		t.Fatalf("expected call, got %T", expr)
	}
	ti, ok := call.Callee.(*ast.TemplateInstantiation)
	if !ok || ti.Base != nil {
		t.Fatalf("expected bare template prefix")
	}
}

func TestComparisonAfterRollbackContinues(t *testing.T) {
	// the rollback must leave the lexer in a state where the rest of the
	// expression still parses
	expr := stmtExpr(t, parse(t, "a < b + 1"), 0)
	ie := expr.(*ast.InfixExpression)
	if ie.Operator != "<" {
		t.Fatalf("expected < at root")
	}
	if sum, ok := ie.Right.(*ast.InfixExpression); !ok || sum.Operator != "+" {
		t.Fatalf("right side should be b + 1")
	}
}

func TestTemplateDeclOnFn(t *testing.T) {
	prog := parse(t, "fn <T, U:i32, V::> f(a) { return a }")
	fd := prog.Statements[0].(*ast.FunctionDeclaration)
	if fd.Template == nil || len(fd.Template.Params) != 3 {
		t.Fatalf("template decl parsed wrong")
	}
	if fd.Template.Params[1].TypeName != "i32" {
		t.Fatalf("typed template param parsed wrong")
	}
	if !fd.Template.Params[2].IsVariadic {
		t.Fatalf("variadic template param parsed wrong")
	}
}

func TestTemplateDeclVariadicWithCount(t *testing.T) {
	prog := parse(t, "fn <T:i32:3> f(a) { return a }")
	fd := prog.Statements[0].(*ast.FunctionDeclaration)
	param := fd.Template.Params[0]
	if !param.IsVariadic || param.TypeName != "i32" {
		t.Fatalf("variadic count param parsed wrong: %+v", param)
	}
}
