package parser_test

import (
	"testing"

	"github.com/funvibe/patlang/internal/ast"
)

// ---------- statement splitting ----------

func TestNewline_SeparatesStatements(t *testing.T) {
	prog := parse(t, "var x = 1\nprintln(x)")
	if len(prog.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(prog.Statements))
	}
}

func TestNewline_MultipleTerminatorsElided(t *testing.T) {
	prog := parse(t, "var x = 1\n\n\n;;\nvar y = 2")
	if len(prog.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(prog.Statements))
	}
}

func TestNewline_SemicolonSeparates(t *testing.T) {
	prog := parse(t, "var x = 1; var y = 2; x + y")
	if len(prog.Statements) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(prog.Statements))
	}
}

// ---------- continuation ----------

func TestNewline_AfterOperatorContinues(t *testing.T) {
	prog := parse(t, "var x = 1 +\n    2")
	vd := prog.Statements[0].(*ast.VarDeclaration)
	if _, ok := vd.Init.(*ast.InfixExpression); !ok {
		t.Fatalf("expression should continue across the newline")
	}
	if len(prog.Statements) != 1 {
		t.Fatalf("expected a single statement")
	}
}

func TestNewline_AfterAssignContinues(t *testing.T) {
	prog := parse(t, "x =\n    5 + 3")
	expr := stmtExpr(t, prog, 0)
	if _, ok := expr.(*ast.AssignExpression); !ok {
		t.Fatalf("assignment should continue across the newline")
	}
}

func TestNewline_InsideCallArgs(t *testing.T) {
	prog := parse(t, "f(1,\n   2,\n   3)")
	call := stmtExpr(t, prog, 0).(*ast.CallExpression)
	if len(call.Arguments) != 3 {
		t.Fatalf("expected 3 arguments, got %d", len(call.Arguments))
	}
}

func TestNewline_InsideTuple(t *testing.T) {
	prog := parse(t, "(a: 1,\n b: 2)")
	tl := stmtExpr(t, prog, 0).(*ast.TupleLiteral)
	if len(tl.Elements) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(tl.Elements))
	}
}

func TestNewline_BeforeMemberName(t *testing.T) {
	// a '.' permits a newline before the member name
	prog := parse(t, "obj.\n    field")
	mem := stmtExpr(t, prog, 0).(*ast.MemberExpression)
	if mem.Name != "field" {
		t.Fatalf("member name lost across newline")
	}
}

func TestNewline_FnBodyOnNextLine(t *testing.T) {
	prog := parse(t, "fn f()\n{ return 1 }")
	fd := prog.Statements[0].(*ast.FunctionDeclaration)
	if fd.Body == nil {
		t.Fatalf("body on next line should attach")
	}
}

func TestNewline_BareReturnTerminated(t *testing.T) {
	prog := parse(t, "fn f() { return\n }")
	fd := prog.Statements[0].(*ast.FunctionDeclaration)
	rs := fd.Body.Statements[0].(*ast.ReturnStatement)
	if rs.Value != nil {
		t.Fatalf("bare return should carry no value")
	}
}
