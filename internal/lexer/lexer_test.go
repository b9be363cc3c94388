package lexer

import (
	"strings"
	"testing"

	"github.com/funvibe/patlang/internal/token"
)

func collect(input string) []token.Token {
	l := New(input)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

func kinds(toks []token.Token) []token.TokenType {
	out := make([]token.TokenType, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

func expectKinds(t *testing.T, input string, want ...token.TokenType) {
	t.Helper()
	got := kinds(collect(input))
	want = append(want, token.EOF)
	if len(got) != len(want) {
		t.Fatalf("token count mismatch for %q:\n got  %v\n want %v", input, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d mismatch for %q: got %s, want %s", i, input, got[i], want[i])
		}
	}
}

func TestOperators(t *testing.T) {
	expectKinds(t, "a << 2 >> 1",
		token.IDENT, token.LSHIFT, token.INT, token.RSHIFT, token.INT)
	expectKinds(t, "a <= b >= c == d != e",
		token.IDENT, token.LTE, token.IDENT, token.GTE, token.IDENT,
		token.EQ, token.IDENT, token.NEQ, token.IDENT)
	expectKinds(t, "a && b || c",
		token.IDENT, token.AND, token.IDENT, token.OR, token.IDENT)
	expectKinds(t, "x::const", token.IDENT, token.DCOLON, token.CONST)
	expectKinds(t, "a -> b", token.IDENT, token.ARROW, token.IDENT)
	expectKinds(t, "-!~?", token.MINUS, token.BANG, token.TILDE, token.QUESTION)
}

func TestKeywords(t *testing.T) {
	expectKinds(t, "fn var pat import pub",
		token.FN, token.VAR, token.PAT, token.IMPORT, token.PUB)
	expectKinds(t, "for while switch case default",
		token.FOR, token.WHILE, token.SWITCH, token.CASE, token.DEFAULT)
	expectKinds(t, "copy move null as of",
		token.COPY, token.MOVE, token.NULL, token.AS, token.OF)
	expectKinds(t, "static const constexpr",
		token.STATIC, token.CONST, token.CONSTEXPR)
}

func TestNumbers(t *testing.T) {
	toks := collect("42 3.14 1e5 2.5e-3 7.")
	want := []token.TokenType{token.INT, token.FLOAT, token.FLOAT, token.FLOAT, token.INT, token.DOT, token.EOF}
	got := kinds(toks)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
	if toks[1].Literal != "3.14" {
		t.Errorf("float literal: got %q", toks[1].Literal)
	}
	// a dot with no digit after it is not part of the number
	if toks[4].Literal != "7" {
		t.Errorf("trailing-dot integer: got %q", toks[4].Literal)
	}
}

func TestStringsAndEscapes(t *testing.T) {
	toks := collect(`"a\tb" 'c\nd' "\q"`)
	if toks[0].Literal != "a\tb" {
		t.Errorf("double-quoted escape: got %q", toks[0].Literal)
	}
	if toks[1].Literal != "c\nd" {
		t.Errorf("single-quoted escape: got %q", toks[1].Literal)
	}
	// unknown escapes yield the escaped char itself
	if toks[2].Literal != "q" {
		t.Errorf("unknown escape: got %q", toks[2].Literal)
	}
}

func TestCustomOperatorAfterFn(t *testing.T) {
	toks := collect(`fn "+>" (a, b) { }`)
	if toks[0].Type != token.FN {
		t.Fatalf("expected fn, got %s", toks[0].Type)
	}
	if toks[1].Type != token.CUSTOM_OP || toks[1].Literal != "+>" {
		t.Fatalf("expected custom op \"+>\", got %s %q", toks[1].Type, toks[1].Literal)
	}
	// a double-quoted lexeme anywhere else stays a string
	toks = collect(`x = "+>"`)
	if toks[2].Type != token.STRING {
		t.Fatalf("expected string, got %s", toks[2].Type)
	}
}

func TestComments(t *testing.T) {
	expectKinds(t, "1 // comment\n2", token.INT, token.NEWLINE, token.INT)
	expectKinds(t, "1 /* a\nb */ 2", token.INT, token.INT)
}

func TestNewlineAfterStatementEnders(t *testing.T) {
	// after each of these kinds, a newline terminates the statement
	for _, src := range []string{"1\n", "1.5\n", `"s"` + "\n", "x\n", "null\n", "break\n", "yield\n", "return\n"} {
		toks := collect(src)
		if toks[1].Type != token.NEWLINE {
			t.Errorf("%q: expected NEWLINE after first token, got %s", src, toks[1].Type)
		}
	}
	// after an operator the newline is absorbed
	expectKinds(t, "1 +\n2", token.INT, token.PLUS, token.INT)
	expectKinds(t, "x =\n5", token.IDENT, token.ASSIGN, token.INT)
}

func TestNewlineSuppressedInsideBrackets(t *testing.T) {
	expectKinds(t, "f(1,\n2)",
		token.IDENT, token.LPAREN, token.INT, token.COMMA, token.INT, token.RPAREN)
	expectKinds(t, "a[\n0\n]",
		token.IDENT, token.LBRACKET, token.INT, token.RBRACKET)
	// inside braces newlines are suppressed too (brace depth counts)
	toks := collect("{\n1\n}")
	for _, tok := range toks {
		if tok.Type == token.NEWLINE {
			t.Fatalf("unexpected NEWLINE inside braces")
		}
	}
}

func TestPeekDoesNotPerturbState(t *testing.T) {
	l := New("f(1)\n2")
	f := l.NextToken()
	if f.Type != token.IDENT {
		t.Fatalf("got %s", f.Type)
	}
	// peek the '(' without committing its depth change
	if l.Peek().Type != token.LPAREN {
		t.Fatalf("peek mismatch")
	}
	if l.Peek().Type != token.LPAREN {
		t.Fatalf("repeated peek mismatch")
	}
	// now consume it and the rest; the ')' must still balance to zero
	// depth so the newline after it terminates the statement
	var saw []token.TokenType
	for {
		tok := l.NextToken()
		saw = append(saw, tok.Type)
		if tok.Type == token.EOF {
			break
		}
	}
	want := []token.TokenType{token.LPAREN, token.INT, token.RPAREN, token.NEWLINE, token.INT, token.EOF}
	for i := range want {
		if saw[i] != want[i] {
			t.Fatalf("token %d: got %s, want %s", i, saw[i], want[i])
		}
	}
}

func TestSnapshotRestore(t *testing.T) {
	l := New("a<b, c>(1)")
	_ = l.NextToken() // a
	s := l.Snapshot()
	// consume a few tokens, then roll back
	for i := 0; i < 4; i++ {
		l.NextToken()
	}
	l.Restore(s)
	if tok := l.NextToken(); tok.Type != token.LT {
		t.Fatalf("after restore: got %s, want <", tok.Type)
	}
	if tok := l.NextToken(); tok.Type != token.IDENT || tok.Literal != "b" {
		t.Fatalf("after restore: got %s %q", tok.Type, tok.Literal)
	}
}

// Re-lexing the joined lexemes reproduces the same token kind sequence
// for sources without custom operators.
func TestRelexProperty(t *testing.T) {
	sources := []string{
		"var x = 1 + 2 * 3",
		`fn add(a, b) { return a + b }`,
		"for (i : 5) { s = s + i }",
		"a <= b && c != d",
	}
	for _, src := range sources {
		first := collect(src)
		var lexemes []string
		for _, tok := range first {
			if tok.Type == token.EOF {
				break
			}
			lexemes = append(lexemes, tok.Lexeme)
		}
		second := collect(strings.Join(lexemes, " "))
		if len(first) != len(second) {
			t.Fatalf("%q: relex count mismatch", src)
		}
		for i := range first {
			if first[i].Type != second[i].Type {
				t.Fatalf("%q: token %d kind mismatch: %s vs %s", src, i, first[i].Type, second[i].Type)
			}
		}
	}
}
