package parser_test

import (
	"testing"

	"github.com/funvibe/patlang/internal/prettyprinter"
)

// Parsing a program, printing it back to source, and re-parsing must
// yield a structurally identical AST. Printed forms are compared since
// the printer is deterministic over structure.
func TestRoundTrip(t *testing.T) {
	sources := []string{
		"var x = 1 + 2 * 3",
		"fn add(a, b) { return a + b }",
		"pat Point { var x\n var y }",
		"var p = Point(1, 2)",
		"var t = (a: 10, b: 20)",
		"(1, 2, 3)",
		"for (i : 5) { s = s + i }",
		`var r = n > 0 ? "pos" : "neg"`,
		"while (x < 3) { x = x + 1 }",
		"switch (x) {\n case 1:\n  f()\n  break\n default:\n  g()\n  break\n}",
		"a.b(1)[2].c",
		"t[0] = copy v",
		"box<i32>(5)",
		"import a.b.c as m",
		"import x of p, q as r",
		"yield 1\nbreak\nreturn 2",
		"var s = { var y = 1\n y + 1 }",
		"!x && -y || ~z",
	}
	for _, src := range sources {
		first := parse(t, src)
		printed := prettyprinter.Print(first)
		second := parse(t, printed)
		reprinted := prettyprinter.Print(second)
		if printed != reprinted {
			t.Errorf("round trip mismatch for %q:\nfirst print:\n%s\nsecond print:\n%s", src, printed, reprinted)
		}
	}
}
