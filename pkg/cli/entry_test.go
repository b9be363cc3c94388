package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

func runScript(t *testing.T, source string) (int, string, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "main.lang")
	if err := os.WriteFile(path, []byte(source), 0644); err != nil {
		t.Fatal(err)
	}
	var out, errOut bytes.Buffer
	code := RunFile(path, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRunFileSuccess(t *testing.T) {
	code, out, errOut := runScript(t, "var x = 1 + 2 * 3\nprintln(x)")
	if code != 0 {
		t.Fatalf("exit code: got %d, want 0 (stderr: %s)", code, errOut)
	}
	if strings.TrimRight(out, "\n") != "7" {
		t.Fatalf("output: %q", out)
	}
}

func TestRunFileRuntimeErrorExits1(t *testing.T) {
	code, _, errOut := runScript(t, "println(1 / 0)")
	if code != 1 {
		t.Fatalf("exit code: got %d, want 1", code)
	}
	if !strings.Contains(errOut, "division by zero") {
		t.Fatalf("stderr should name the cause: %q", errOut)
	}
}

func TestRunFileParseErrorExits1(t *testing.T) {
	code, _, errOut := runScript(t, "var = 1")
	if code != 1 {
		t.Fatalf("exit code: got %d, want 1", code)
	}
	if !strings.Contains(errOut, "Error at line") {
		t.Fatalf("stderr should carry the parse error position: %q", errOut)
	}
}

func TestRunFileMissing(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := RunFile("definitely-not-here.lang", &out, &errOut); code != 1 {
		t.Fatalf("missing file should exit 1, got %d", code)
	}
}

func TestEntryVersionFlag(t *testing.T) {
	// both the -v flag and the version subcommand answer with the version
	if code := Entry([]string{"--version"}); code != 0 {
		t.Fatalf("--version exit code: %d", code)
	}
	if code := Entry([]string{"version"}); code != 0 {
		t.Fatalf("version exit code: %d", code)
	}
	if code := Entry([]string{"-h"}); code != 0 {
		t.Fatalf("-h exit code: %d", code)
	}
}

func TestProjectConfig(t *testing.T) {
	dir := t.TempDir()
	libDir := filepath.Join(dir, "vendorlibs")
	if err := os.MkdirAll(libDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(libDir, "helper.lang"), []byte("var seven = 7"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "patlang.yaml"), []byte("module_root: vendorlibs\n"), 0644); err != nil {
		t.Fatal(err)
	}
	script := filepath.Join(dir, "main.lang")
	if err := os.WriteFile(script, []byte("import helper\nprintln(helper.seven)"), 0644); err != nil {
		t.Fatal(err)
	}

	var out, errOut bytes.Buffer
	if code := RunFile(script, &out, &errOut); code != 0 {
		t.Fatalf("exit code %d, stderr %s", code, errOut.String())
	}
	if strings.TrimRight(out.String(), "\n") != "7" {
		t.Fatalf("output: %q", out.String())
	}
}

func TestProjectConfigMissingIsZero(t *testing.T) {
	proj := LoadProject(t.TempDir())
	if proj.ModuleRoot != "" || proj.Prompt != "" {
		t.Fatalf("missing config should be zero: %+v", proj)
	}
}

// End-to-end program outputs, snapshotted.
func TestProgramSnapshots(t *testing.T) {
	programs := map[string]string{
		"arithmetic": "println(1 + 2 * 3)\nprintln(10 / 4, 10.0 / 4)",
		"patterns": `pat Point {
    var x
    var y
    fn sum(p) { return p.x + p.y }
}
var p = Point(3, 4)
println(p)
println(Point.sum(p))`,
		"tuples": `var t = (a: 10, b: 20)
println(t.a, t.b)
println(t)
t.a = 11
println(t[0])`,
		"loops": `var s = 0
for (i : 5) { s = s + i }
println(s)
var last = { for (i : 3) { yield i * i } }
println(last)`,
		"switch": `switch(2) { case 1: println("a") break case 2: println("b") break default: println("c") }`,
		"strings": `var name = "world"
println("hello " + name)
println(substr(name, 0, 3), len(name))`,
	}
	for name, src := range programs {
		t.Run(name, func(t *testing.T) {
			code, out, errOut := runScript(t, src)
			if code != 0 {
				t.Fatalf("exit code %d, stderr %s", code, errOut)
			}
			snaps.MatchSnapshot(t, out)
		})
	}
}
