package modules

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/funvibe/patlang/internal/ast"
	"github.com/funvibe/patlang/internal/evaluator"
	"github.com/funvibe/patlang/internal/lexer"
	"github.com/funvibe/patlang/internal/parser"
	"github.com/funvibe/patlang/internal/pipeline"
)

func writeModule(t *testing.T, dir, name, src string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
}

// runWithLoader evaluates source with imports anchored at dir.
func runWithLoader(t *testing.T, dir, source string) (evaluator.Object, string, string) {
	t.Helper()
	ctx := &pipeline.PipelineContext{SourceCode: source}
	ctx = (&lexer.LexerProcessor{}).Process(ctx)
	ctx = (&parser.ParserProcessor{}).Process(ctx)
	if ctx.HasErrors() {
		t.Fatalf("parse error: %s", ctx.Errors[0].Error())
	}
	prog := ctx.AstRoot.(*ast.Program)

	var out, errOut bytes.Buffer
	e := evaluator.New()
	e.Out = &out
	e.ErrOut = &errOut
	NewLoader(e, dir)

	result := e.Eval(prog, e.GlobalEnv)
	return result, out.String(), errOut.String()
}

func TestImportWholeModule(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "mathx.lang", "fn square(x) { return x * x }\nvar tau = 6")

	_, out, errOut := runWithLoader(t, dir, "import mathx\nprintln(mathx.square(4))\nprintln(mathx.tau)")
	if errOut != "" {
		t.Fatalf("unexpected errors: %s", errOut)
	}
	if strings.TrimRight(out, "\n") != "16\n6" {
		t.Fatalf("output: %q", out)
	}
}

func TestImportAlias(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "mathx.lang", "var tau = 6")

	_, out, _ := runWithLoader(t, dir, "import mathx as m\nprintln(m.tau)")
	if strings.TrimRight(out, "\n") != "6" {
		t.Fatalf("output: %q", out)
	}
}

func TestImportDottedPath(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, filepath.Join("lib", "geo.lang"), "var pi = 3")

	// the default binding name is the last path segment
	_, out, _ := runWithLoader(t, dir, "import lib.geo\nprintln(geo.pi)")
	if strings.TrimRight(out, "\n") != "3" {
		t.Fatalf("output: %q", out)
	}
}

func TestImportOfItems(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "mathx.lang", "fn square(x) { return x * x }\nvar tau = 6")

	_, out, _ := runWithLoader(t, dir, "import mathx of { square as sq, tau }\nprintln(sq(3), tau)")
	if strings.TrimRight(out, "\n") != "9 6" {
		t.Fatalf("output: %q", out)
	}
}

func TestImportMissingModuleBindsNull(t *testing.T) {
	dir := t.TempDir()
	result, _, errOut := runWithLoader(t, dir, "import nothere\nis_null(nothere)")
	if result.Inspect() != "true" {
		t.Fatalf("missing module should bind null, got %s", result.Inspect())
	}
	if !strings.Contains(errOut, "Module not found") {
		t.Fatalf("missing-module error not reported: %q", errOut)
	}
}

func TestImportParseErrorBindsNull(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "bad.lang", "var = =")

	result, _, errOut := runWithLoader(t, dir, "import bad\nis_null(bad)")
	if result.Inspect() != "true" {
		t.Fatalf("broken module should bind null")
	}
	if !strings.Contains(errOut, "Parse error in module") {
		t.Fatalf("parse error not reported: %q", errOut)
	}
}

func TestImportRuntimeErrorBindsNull(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "boom.lang", "var x = 1 / 0")

	result, _, errOut := runWithLoader(t, dir, "import boom\nis_null(boom)")
	if result.Inspect() != "true" {
		t.Fatalf("failing module should bind null")
	}
	if !strings.Contains(errOut, "Runtime error in module") {
		t.Fatalf("runtime error not reported: %q", errOut)
	}
}

func TestImportCacheReturnsSameModule(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "counted.lang", `println("loading")`)

	_, out, _ := runWithLoader(t, dir, "import counted\nimport counted as again\nagain")
	if strings.Count(out, "loading") != 1 {
		t.Fatalf("module should evaluate once, output: %q", out)
	}
}

func TestSelfImportReportsCycle(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "selfish.lang", "import selfish\nvar x = 1")

	_, _, errOut := runWithLoader(t, dir, "import selfish")
	if !strings.Contains(errOut, "cyclic import") {
		t.Fatalf("cycle not reported: %q", errOut)
	}
}

func TestMutualImportReportsCycle(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "alpha.lang", "import beta\nvar a = 1")
	writeModule(t, dir, "beta.lang", "import alpha\nvar b = 2")

	_, _, errOut := runWithLoader(t, dir, "import alpha\nprintln(alpha.a)")
	if !strings.Contains(errOut, "cyclic import") {
		t.Fatalf("mutual cycle not reported: %q", errOut)
	}
}

func TestModuleSeesGlobals(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "usesbuiltin.lang", "var n = len(\"abc\")")

	_, out, _ := runWithLoader(t, dir, "import usesbuiltin\nprintln(usesbuiltin.n)")
	if strings.TrimRight(out, "\n") != "3" {
		t.Fatalf("output: %q", out)
	}
}
